package exprlang

// precedence orders the binding power of infix operators for the
// precedence-climbing loop in parser.go, lowest to highest: None <
// Assignment < Ternary < Or < And < BitOr < BitXor < BitAnd < Equality <
// Comparison < Term < Factor < Unary < Primary.
type precedence int

const (
	precNone precedence = iota
	precAssignment
	precTernary
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precPrimary
)
