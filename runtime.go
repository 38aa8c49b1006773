package exprlang

import (
	"bytes"
)

// Runtime is the single façade hosts embed: one parser (with its dispatch
// tables and lexer built once), one VM, one enum table, and a captured
// output buffer for anything the script prints. A Runtime is not safe for
// concurrent use by multiple goroutines — embed one per logical script
// session.
type Runtime struct {
	opts   runtimeOptions
	enums  *EnumTable
	parser *Parser
	vm     *VM
	output *bytes.Buffer
}

// NewRuntime builds a Runtime, applying any RuntimeOptions over the
// defaults.
func NewRuntime(options ...RuntimeOption) *Runtime {
	opts := defaultRuntimeOptions()
	for _, opt := range options {
		opt(&opts)
	}

	enums := NewEnumTable()
	vm := NewVM(opts)
	output := &bytes.Buffer{}
	vm.SetOutput(output)

	return &Runtime{
		opts:   opts,
		enums:  enums,
		parser: NewParser(enums, opts),
		vm:     vm,
		output: output,
	}
}

// RegisterEnumTuple registers a single (name, discriminant) pair with the
// runtime's enum table, consulted by both the lexer and the parser.
func (r *Runtime) RegisterEnumTuple(name string, value int8) error {
	return r.enums.RegisterEnumTuple(name, value)
}

// EnumDiscriminant looks up a previously registered enum variant's
// discriminant.
func (r *Runtime) EnumDiscriminant(name string) (int8, bool) {
	return r.enums.Discriminant(name)
}

// Parse compiles src into a Chunk without executing it.
func (r *Runtime) Parse(src string) (*Chunk, error) {
	logf(r.opts, "parsing %d bytes", len(src))
	return r.parser.Parse(src)
}

// Execute runs an already-compiled Chunk against store, returning the
// value of its trailing Return.
func (r *Runtime) Execute(chunk *Chunk, store Store) (Value, error) {
	logf(r.opts, "executing chunk of %d bytes", chunk.Len())
	return r.vm.Execute(chunk, store)
}

// Run clears any previously captured output, then parses and executes src
// in one step.
func (r *Runtime) Run(src string, store Store) (Value, error) {
	r.Clear()
	return r.ContinueRun(src, store)
}

// ContinueRun parses and executes src against store without clearing
// output first, so a sequence of scripts can share one growing transcript.
func (r *Runtime) ContinueRun(src string, store Store) (Value, error) {
	chunk, err := r.Parse(src)
	if err != nil {
		return Nil, err
	}
	return r.Execute(chunk, store)
}

// Stdout returns everything printed by OpPrint since the last Clear.
func (r *Runtime) Stdout() string {
	return r.output.String()
}

// Clear discards the captured output buffer.
func (r *Runtime) Clear() {
	r.output.Reset()
}

// Clone returns a fresh Runtime that shares this one's enum table and
// options but starts with its own parser, VM, and empty output buffer —
// useful for running independent scripts that reference the same host
// enumerations without re-registering them.
func (r *Runtime) Clone() *Runtime {
	vm := NewVM(r.opts)
	output := &bytes.Buffer{}
	vm.SetOutput(output)

	return &Runtime{
		opts:   r.opts,
		enums:  r.enums,
		parser: NewParser(r.enums, r.opts),
		vm:     vm,
		output: output,
	}
}
