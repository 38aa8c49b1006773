package exprlang

import jujuerrors "github.com/juju/errors"

// EnumTable is the host-supplied mapping from enumeration variant name to
// signed 8-bit discriminant. The lexer consults it to distinguish enum
// literals from plain identifiers; the parser consults it again at
// emission time to resolve the literal's discriminant.
//
// A host projects each of its enumerations to (name, value) pairs at build
// time and registers them once via RegisterEnumTuple before parsing any
// script that references them.
type EnumTable struct {
	variants map[string]int8
}

// NewEnumTable returns an empty table.
func NewEnumTable() *EnumTable {
	return &EnumTable{variants: make(map[string]int8)}
}

// RegisterEnumTuple adds a single (name, value) pair. Registering the same
// name twice with two different values fails with a duplicate-variant error
// (a juju/errors AlreadyExists error, see errors.IsAlreadyExists);
// re-registering the same name with the same value is a no-op.
func (t *EnumTable) RegisterEnumTuple(name string, value int8) error {
	if existing, ok := t.variants[name]; ok {
		if existing == value {
			return nil
		}
		return jujuerrors.AlreadyExistsf("enum variant %q with a different value", name)
	}
	t.variants[name] = value
	return nil
}

// Discriminant looks up name's signed 8-bit discriminant.
func (t *EnumTable) Discriminant(name string) (int8, bool) {
	v, ok := t.variants[name]
	return v, ok
}

// has reports whether name is a registered enum literal, consulted by the
// lexer while discriminating identifiers from enum tokens.
func (t *EnumTable) has(name string) bool {
	_, ok := t.variants[name]
	return ok
}
