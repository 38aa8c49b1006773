package exprlang

import "testing"

func TestChunkWriteAndRead(t *testing.T) {
	c := NewChunk()
	c.writeOp(OpNil, 1)
	c.writeOpByte(OpConstant, 0, 2)
	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if c.ByteAt(0) != byte(OpNil) {
		t.Errorf("ByteAt(0) = %d, want OpNil", c.ByteAt(0))
	}
	if c.LineAt(1) != 2 {
		t.Errorf("LineAt(1) = %d, want 2", c.LineAt(1))
	}
}

func TestChunkAddConstantOverflow(t *testing.T) {
	c := NewChunk()
	for i := 0; i < maxConstants; i++ {
		if _, err := c.addConstant(IntValue(int64(i)), 1); err != nil {
			t.Fatalf("addConstant #%d: %v", i, err)
		}
	}
	_, err := c.addConstant(IntValue(999), 1)
	if err == nil {
		t.Fatal("the 257th constant should overflow")
	}
	cerr, ok := err.(*Error)
	if !ok || cerr.Code != ErrConstantStorageOverflow {
		t.Errorf("got %v, want ConstantStorageOverflow", err)
	}
}

func TestChunkJumpPatching(t *testing.T) {
	c := NewChunk()
	pos := c.writeJump(OpJmp, 1)
	c.writeOp(OpReturn, 2)
	c.patchJump(pos)
	if got := c.jumpTarget(pos); got != c.Len() {
		t.Errorf("jumpTarget = %d, want %d", got, c.Len())
	}
}

func TestChunkFinalize(t *testing.T) {
	c := NewChunk()
	if c.Finalized() {
		t.Fatal("a fresh chunk must not be finalized")
	}
	c.finalize()
	if !c.Finalized() {
		t.Fatal("finalize() should mark the chunk finalized")
	}
}
