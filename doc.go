// Package exprlang implements a small, embeddable expression-scripting
// engine: a lexer, a precedence-climbing parser that emits bytecode
// directly, and a stack-based virtual machine that executes that bytecode
// against a host-supplied variable store.
//
// A host parses a source string once with Parse, then executes the
// resulting Chunk as many times as it likes against its own Store
// implementation. The language has no user-defined functions, no control
// flow, no collections, and no module system; it exists to evaluate short,
// expression-oriented programs that read and write named host variables.
package exprlang
