// Package xerrors defines the diagnostic error type shared by the
// Pareto-search core for its unrecoverable conditions: precondition
// violations, resource exhaustion, and work-stealing deadlock
// suspicion.
//
// None of these are retryable. The core never returns a user-visible
// error for normal control flow (domination checks, duplicate-label
// detection); Fault exists purely to carry a diagnostic up to a
// boundary — a test, or cmd/paretosp's main — that decides whether to
// panic or exit non-zero.
package xerrors

import "fmt"

// Kind classifies a Fault.
type Kind int

const (
	// Precondition marks invalid input: bad node id, negative weight,
	// arithmetic overflow, a DELETE referencing an absent element.
	Precondition Kind = iota

	// ResourceExhausted marks an exhausted fixed-capacity structure,
	// e.g. a work-stealing deque overflow.
	ResourceExhausted

	// Deadlock marks a worker that exceeded its real-time budget
	// while searching for work in the work-stealing pool.
	Deadlock
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case Precondition:
		return "precondition violation"
	case ResourceExhausted:
		return "resource exhausted"
	case Deadlock:
		return "deadlock suspected"
	default:
		return "unknown fault"
	}
}

// Fault is an unrecoverable diagnostic condition.
type Fault struct {
	Kind    Kind
	Context string
	Err     error
}

// Error implements the error interface.
func (f *Fault) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Context, f.Err)
	}

	return fmt.Sprintf("%s: %s", f.Kind, f.Context)
}

// Unwrap exposes the wrapped cause, if any, to errors.Is/errors.As.
func (f *Fault) Unwrap() error {
	return f.Err
}

// New constructs a Fault of the given Kind with a formatted context.
func New(kind Kind, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Context: fmt.Sprintf(format, args...)}
}

// Wrap constructs a Fault of the given Kind wrapping an existing error.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Fault {
	return &Fault{Kind: kind, Context: fmt.Sprintf(format, args...), Err: err}
}
