package parsec

import (
	"fmt"
	"io"
)

// An Event describes the outcome of one combinator invocation. Events
// are a pure side channel for debugging grammars; they never influence
// the parse result.
type Event struct {
	Combinator string
	Pos        Position
	OK         bool
	Message    string // failure message, empty on success
}

// A Tracer receives one Event per combinator invocation. Inject one
// with WithTracer.
type Tracer func(Event)

// Logging returns a Tracer that writes one line per Event to w.
func Logging(w io.Writer) Tracer {
	return func(e Event) {
		if e.OK {
			fmt.Fprintf(w, "%s: %s: ok\n", e.Pos, e.Combinator)
		} else {
			fmt.Fprintf(w, "%s: %s: %s\n", e.Pos, e.Combinator, e.Message)
		}
	}
}
