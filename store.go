package exprlang

// Store is the external variable store the core consumes through this
// interface alone. The host owns the concrete
// implementation — an in-memory map, a behaviour-tree blackboard, a
// firmware register file — and the core never retains a reference into it
// between operations: every read clones the value it receives, every
// write hands over a value the store is free to copy or move in.
//
// Invariants the core relies on: Set on a name that was never Define'd
// must fail; Define must always succeed in creating-or-overwriting (it may
// still fail with a wrong-type error if the host store is statically
// typed per slot); Get of an undefined name must fail.
type Store interface {
	// Define creates or overwrites name with v. Returns ErrWrongType (or an
	// error satisfying the same sentinel via errors.Is) if the host store
	// can't represent v's kind for this name.
	Define(name string, v Value) error

	// Get reads name's current value. Returns ErrNotDefined if name hasn't
	// been Define'd.
	Get(name string) (Value, error)

	// Set updates an already-Define'd name. Returns ErrNotDefined if name
	// hasn't been Define'd.
	Set(name string, v Value) error
}
