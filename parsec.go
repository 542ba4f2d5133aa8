// Package parsec constructs parsers by composing small functions.
// Each Parser consumes input from a shared, immutable State and
// produces either a typed value or a diagnosable failure; combinators
// such as Then, Or and Repeat0 build bigger parsers out of smaller
// ones, bottom up, until a whole grammar is a single Parser value.
//
// A sketch of an arithmetic grammar:
//
//     exprRef := parsec.NewRef[int]()
//     factor := scan.Integer().Or(parsec.Seq3(
//         scan.Text("("), exprRef.Parser(), scan.Text(")"),
//         func(_ string, v int, _ string) int { return v }))
//     expr := parsec.ChainL1(factor, scan.Text("+"),
//         func(lhs int, _ string, rhs int) int { return lhs + rhs })
//     exprRef.Resolve(expr)
//
//     value, err := parsec.Parse(expr, "input", "1+(2+3)")
//
// Grammars are built once, at startup, and are reusable across any
// number of independent parse runs. Failed alternatives need no undo
// logic: a State is never mutated, so retrying is just applying the
// next parser to the original value.
//
// When several alternatives fail, the failure that progressed deepest
// into the input wins; exact ties are merged with " or ". Grammar
// construction mistakes, such as repeating a parser that can succeed
// without consuming input, are programmer errors and panic rather than
// surfacing as parse failures.
package parsec

// A Parser consumes input from a State and produces either a typed
// value or a failure. Parsers are pure functions: all progress is
// threaded through the State, so a Parser built once can run any
// number of parses, each a single synchronous pass over its input.
type Parser[T any] func(State) Result[T]

// A ParseOption adjusts the initial State handed to Parse.
type ParseOption func(State) State

// WithTracer is a ParseOption that reports every combinator outcome
// during the parse to t.
func WithTracer(t Tracer) ParseOption {
	return func(s State) State { return s.WithTracer(t) }
}

// Parse runs parser over text. filename appears only in error
// positions. On failure the error is a *Error whose message is
// prefixed with "Expected " and whose position is the deepest point
// the parse reached.
func Parse[T any](parser Parser[T], filename, text string, options ...ParseOption) (T, error) {
	input := NewState(filename, text)
	for _, option := range options {
		input = option(input)
	}
	r := parser(input)
	if r.fail != nil {
		var zero T
		return zero, &Error{Message: "Expected " + r.fail.mesg, Pos: r.fail.at.Pos()}
	}
	return r.value, nil
}

// Tag replaces the failure message of parser with label, but only when
// parser failed without consuming any input. If it managed to parse
// something the original message already pinpoints the problem, so it
// is kept.
func Tag[T any](parser Parser[T], label string) Parser[T] {
	return func(input State) Result[T] {
		r := parser(input)
		if r.fail == nil {
			return r
		}
		if r.fail.at.index == input.index {
			return Fail[T]("tag", input, r.fail.old, r.fail.at, label)
		}
		return Fail[T]("tag", input, r.fail.old, r.fail.at, r.fail.mesg)
	}
}
