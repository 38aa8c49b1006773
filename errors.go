package exprlang

import (
	"fmt"
	"runtime"

	jujuerrors "github.com/juju/errors"
)

// Phase identifies which stage of the pipeline produced an Error.
type Phase string

const (
	PhaseLex       Phase = "lex"
	PhaseParse     Phase = "parse"
	PhaseExecution Phase = "execution"
	PhaseStore     Phase = "store"
)

// Compile-time error codes.
const (
	ErrEnumValNotFound         = "EnumValNotFound"
	ErrExpressionExpected      = "ExpressionExpected"
	ErrParseHex                = "ParseHex"
	ErrParseInt                = "ParseInt"
	ErrParseNumber             = "ParseNumber"
	ErrConstantStorageOverflow = "ConstantStorageOverflow"
	ErrTokenExpected           = "TokenExpected"
	ErrUnexpectedChar          = "UnexpectedChar"
	ErrUnterminatedString      = "UnterminatedString"
	ErrCompileUnreachable      = "Unreachable"
)

// Execution error codes.
const (
	ErrBoolNoArithmetic = "BoolNoArithmetic"
	ErrNilValue         = "NilValue"
	ErrNoBoolean        = "NoBoolean"
	ErrNoComparison     = "NoComparison"
	ErrNoInteger        = "NoInteger"
	ErrNoNumber         = "NoNumber"
	ErrStackOverflow    = "StackOverflow"
	ErrOnlyAdd          = "OnlyAdd"
	ErrEnvironment      = "Environment"
	ErrExecUnreachable  = "Unreachable"
)

// Host-store error codes.
const (
	ErrEnvVarExceedsLimits = "EnvVarExceedsLimits"
	ErrEnvVarNotDefined    = "EnvVarNotDefined"
	ErrEnvVarUnknownType   = "EnvVarUnknownType"
	ErrEnvVarWrongType     = "EnvVarWrongType"
	ErrEnvVarSet           = "EnvVarSet"
	ErrEnvVarTypeCast      = "EnvVarTypeCast"
)

// Error is the single top-level result type the façade returns: it wraps
// one of three layered error kinds (lex/parse, execution, host-store).
// The underlying cause is recorded with github.com/juju/errors. Lexer and
// parser errors reach the caller unchanged; a host Store's error is
// annotated once with the variable name (see wrapStoreError) and stays
// reachable through Unwrap and Cause.
type Error struct {
	Phase Phase
	Code  string
	Line  int
	cause error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("[%s:%s line %d] %s", e.Phase, e.Code, e.Line, e.cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Phase, e.Code, e.cause)
}

// Unwrap exposes the annotated cause chain to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the innermost error juju/errors recorded, mirroring
// jujuerrors.Cause for callers that don't want the annotation chain.
func (e *Error) Cause() error { return jujuerrors.Cause(e.cause) }

func newCompileError(code string, line int, format string, args ...any) *Error {
	return &Error{
		Phase: PhaseParse,
		Code:  code,
		Line:  line,
		cause: jujuerrors.Errorf(format, args...),
	}
}

// newLexError is newCompileError's counterpart for errors raised directly
// by the lexer, tagged PhaseLex rather than PhaseParse. Both share the
// same compile-time error codes; only the reported phase differs.
func newLexError(code string, line int, format string, args ...any) *Error {
	e := newCompileError(code, line, format, args...)
	e.Phase = PhaseLex
	return e
}

func newExecError(code string, format string, args ...any) *Error {
	return &Error{
		Phase: PhaseExecution,
		Code:  code,
		cause: jujuerrors.Errorf(format, args...),
	}
}

func newExecErrorAt(code string, line int, format string, args ...any) *Error {
	e := newExecError(code, format, args...)
	e.Line = line
	return e
}

// wrapStoreError annotates an error returned by a host Store implementation
// so it surfaces transparently as the execution-phase "Environment" error,
// preserving the store's own error via juju/errors.Annotate.
func wrapStoreError(err error, name string) *Error {
	return &Error{
		Phase: PhaseExecution,
		Code:  ErrEnvironment,
		cause: jujuerrors.Annotatef(err, "variable %q", name),
	}
}

// unreachable reports a defect in the engine itself: a code path the
// implementation believes can never execute. It captures its own call
// site via runtime.Caller so the error message points straight at the
// offending switch arm.
func unreachable(phase Phase) *Error {
	_, file, line, _ := runtime.Caller(1)
	code := ErrCompileUnreachable
	if phase == PhaseExecution {
		code = ErrExecUnreachable
	}
	return &Error{
		Phase: phase,
		Code:  code,
		cause: jujuerrors.Errorf("unreachable: %s:%d", file, line),
	}
}

// Host-store errors, returned by Store implementations and surfaced
// transparently by wrapStoreError.
var (
	ErrNotDefined = jujuerrors.New(ErrEnvVarNotDefined)
	ErrWrongType  = jujuerrors.New(ErrEnvVarWrongType)
)
