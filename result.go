package parsec

import "fmt"

// Error describes a parse failure. Failures are ordinary data-dependent
// outcomes: they propagate as values and are always recoverable by an
// enclosing Or, Alternative or Optional.
type Error struct {
	Message string
	Pos     Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// failure records where the failing parser began and the deepest state
// it reached. The deep state, not the starting one, is the
// authoritative failure position.
type failure struct {
	old  State
	at   State
	mesg string
}

// Result of applying a Parser to a State: either a typed value with
// the state after it, or a failure. Results are plain values, produced
// fresh per invocation.
type Result[T any] struct {
	value T
	next  State
	fail  *failure
}

// Succeed builds a successful Result holding value and the state after
// the parse, and reports it to the trace hook, if any. name identifies
// the combinator and is used only for tracing.
func Succeed[T any](name string, in State, next State, value T) Result[T] {
	if in.tracer != nil {
		in.tracer(Event{Combinator: name, Pos: in.Pos(), OK: true})
	}
	return Result[T]{value: value, next: next}
}

// Fail builds a failed Result. old is the state the failing parser
// started from and at the deepest state it reached; they are often the
// same for leaf parsers.
func Fail[T any](name string, in State, old, at State, mesg string) Result[T] {
	if in.tracer != nil {
		in.tracer(Event{Combinator: name, Pos: in.Pos(), Message: mesg})
	}
	return Result[T]{fail: &failure{old: old, at: at, mesg: mesg}}
}

// Ok reports whether the parse succeeded.
func (r Result[T]) Ok() bool { return r.fail == nil }

// Value returns the parsed value, or the zero value for failures.
func (r Result[T]) Value() T { return r.value }

// State returns the state after a successful parse, or the deepest
// state reached by a failed one.
func (r Result[T]) State() State {
	if r.fail != nil {
		return r.fail.at
	}
	return r.next
}

// Err returns nil for successes and a *Error positioned at the deepest
// failure point otherwise.
func (r Result[T]) Err() error {
	if r.fail == nil {
		return nil
	}
	return &Error{Message: r.fail.mesg, Pos: r.fail.at.Pos()}
}
