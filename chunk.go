package exprlang

import "encoding/binary"

// maxConstants is the constant pool's fixed bound: a constant is
// addressed by an unsigned byte, so no chunk may hold more than 256
// distinct constant entries.
const maxConstants = 256

// Chunk is a compiled unit: an append-only instruction byte sequence, a
// parallel source-line map (one entry per code byte), and a bounded
// constant pool. A finalized Chunk is immutable; multiple VMs may execute
// the same Chunk concurrently against different stores.
type Chunk struct {
	code      []byte
	lines     []int
	constants []Value
	final     bool
}

// NewChunk returns an empty, not-yet-finalized chunk.
func NewChunk() *Chunk {
	return &Chunk{
		code:      make([]byte, 0, 64),
		lines:     make([]int, 0, 64),
		constants: make([]Value, 0, 8),
	}
}

func (c *Chunk) Len() int { return len(c.code) }

func (c *Chunk) ByteAt(i int) byte { return c.code[i] }

func (c *Chunk) LineAt(i int) int {
	if i < 0 || i >= len(c.lines) {
		if len(c.lines) == 0 {
			return 0
		}
		return c.lines[len(c.lines)-1]
	}
	return c.lines[i]
}

// writeByte appends a single code byte tagged with its source line and
// returns the index it was written at.
func (c *Chunk) writeByte(b byte, line int) int {
	c.code = append(c.code, b)
	c.lines = append(c.lines, line)
	return len(c.code) - 1
}

// writeOp appends an opcode with no operand.
func (c *Chunk) writeOp(op Op, line int) int {
	return c.writeByte(byte(op), line)
}

// writeOpByte appends an opcode followed by a single unsigned byte operand
// (Constant/DefineExternal/GetExternal/SetExternal).
func (c *Chunk) writeOpByte(op Op, operand byte, line int) int {
	pos := c.writeOp(op, line)
	c.writeByte(operand, line)
	return pos
}

// writeJump appends a jump opcode with a two-byte sentinel operand and
// returns the byte offset of the first operand byte, to be patched later
// with patchJump once the target is known.
func (c *Chunk) writeJump(op Op, line int) int {
	c.writeOp(op, line)
	operandPos := len(c.code)
	c.writeByte(0xFF, line)
	c.writeByte(0xFF, line)
	return operandPos
}

// patchJump overwrites the two-byte sentinel operand at operandPos with
// the big-endian absolute instruction index of the current end of code.
func (c *Chunk) patchJump(operandPos int) {
	target := uint16(len(c.code))
	binary.BigEndian.PutUint16(c.code[operandPos:operandPos+2], target)
}

// patchJumpTo overwrites the two-byte operand at operandPos with an
// explicit absolute target, for callers that already know it.
func (c *Chunk) patchJumpTo(operandPos int, target int) {
	binary.BigEndian.PutUint16(c.code[operandPos:operandPos+2], uint16(target))
}

func (c *Chunk) jumpTarget(operandPos int) int {
	return int(binary.BigEndian.Uint16(c.code[operandPos : operandPos+2]))
}

// addConstant appends v to the constant pool in first-mention order (no
// interning — duplicates are permitted) and returns its index. Overflowing
// the 256-entry bound is reported as ConstantStorageOverflow.
func (c *Chunk) addConstant(v Value, line int) (byte, error) {
	if len(c.constants) >= maxConstants {
		return 0, newCompileError(ErrConstantStorageOverflow, line, "constant pool exceeds %d entries", maxConstants)
	}
	c.constants = append(c.constants, v)
	return byte(len(c.constants) - 1), nil
}

func (c *Chunk) constant(index byte) Value {
	return c.constants[index]
}

// finalize marks the chunk immutable from the parser's side. The parser
// always emits a trailing Return before calling this.
func (c *Chunk) finalize() {
	c.final = true
}

// Finalized reports whether the chunk has been through finalize().
func (c *Chunk) Finalized() bool { return c.final }
