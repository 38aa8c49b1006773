package exprlang

import "github.com/juju/loggo"

// defaultStackSize is the VM's fixed value-stack capacity: a still small
// but comfortably usable bound, overridable per Runtime via StackSize.
const defaultStackSize = 64

// runtimeOptions is a small bag of knobs set once at construction and
// consulted everywhere else in the package.
type runtimeOptions struct {
	debug        bool
	stackSize    int
	printEnabled bool
}

func defaultRuntimeOptions() runtimeOptions {
	return runtimeOptions{
		stackSize:    defaultStackSize,
		printEnabled: true,
	}
}

// RuntimeOption configures a Runtime at construction time.
type RuntimeOption func(*runtimeOptions)

// StackSize overrides the VM's value-stack capacity.
func StackSize(n int) RuntimeOption {
	return func(o *runtimeOptions) { o.stackSize = n }
}

// Debug toggles debug messages for Runtime.Parse and Runtime.Execute calls
// on the package's "exprlang" loggo logger; they appear only when that
// logger's level is DEBUG or lower. The lexer, parser and VM do not log.
func Debug(enabled bool) RuntimeOption {
	return func(o *runtimeOptions) { o.debug = enabled }
}

// DisablePrint compiles the print directive out: a "print" prefix becomes
// a parse error instead of emitting OpPrint.
func DisablePrint() RuntimeOption {
	return func(o *runtimeOptions) { o.printEnabled = false }
}

var logger = loggo.GetLogger("exprlang")

func logf(opts runtimeOptions, format string, args ...any) {
	if opts.debug {
		logger.Debugf(format, args...)
	}
}
