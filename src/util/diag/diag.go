// diag.go defines the compiler's error taxonomy and renders diagnostics
// to stderr. Every diagnostic carries a Kind and the source position it
// was raised at; fatal kinds abort the compile while recoverable ones
// let lowering continue with a substitute value. Reports are colourised
// with github.com/fatih/color.

package diag

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// ParseFailure covers lexical and syntactic errors: the source does
	// not match the grammar.
	ParseFailure Kind = iota
	// UnsupportedFunction is reported for any function definition other
	// than the single recognised int main() entry point.
	UnsupportedFunction
	// NonConstInInitializer is reported when a const initializer is not
	// reducible to a compile-time constant. Recoverable: lowering
	// continues using 0 in its place.
	NonConstInInitializer
	// AssignToConst is reported when an assignment statement targets a
	// name bound as a constant in its nearest enclosing scope.
	AssignToConst
	// UnboundName is reported when an identifier has no binding in any
	// enclosing scope.
	UnboundName
	// ArithDomain is reported for a constant-folded operation outside
	// its defined domain, such as division by zero.
	ArithDomain
)

// String returns a short human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case ParseFailure:
		return "parse failure"
	case UnsupportedFunction:
		return "unsupported function"
	case NonConstInInitializer:
		return "non-const in initializer"
	case AssignToConst:
		return "assignment to const"
	case UnboundName:
		return "unbound name"
	case ArithDomain:
		return "arithmetic domain error"
	default:
		return "unknown error"
	}
}

// Recoverable reports whether a diagnostic of this Kind allows lowering to
// continue (with a substituted value) rather than aborting the compile.
func (k Kind) Recoverable() bool {
	return k == NonConstInInitializer
}

// Error is a single compiler diagnostic: a Kind, the source position it was
// raised at, and a free-form message.
type Error struct {
	Kind    Kind
	Line    int
	Col     int
	Message string
}

// NewError builds a diagnostic at line/col with a formatted message.
func NewError(kind Kind, line, col int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Col: col, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Message)
}

var (
	fatalColor     = color.New(color.FgRed, color.Bold)
	recoveredColor = color.New(color.FgYellow)
)

// Report prints a diagnostic to stderr, coloured red if it is fatal and
// yellow if the Kind is recoverable.
func Report(e *Error) {
	if e.Kind.Recoverable() {
		_, _ = recoveredColor.Fprintf(os.Stderr, "recovered: %s\n", e.Error())
		return
	}
	_, _ = fatalColor.Fprintf(os.Stderr, "error: %s\n", e.Error())
}
