package parsec

import "fmt"

const (
	// EOF is the explicit end-of-input sentinel appended to every
	// input. It can never collide with a rune read from real text.
	EOF rune = -(iota + 1)
)

// Position of a parse within its source.
type Position struct {
	Filename string
	Offset   int
	Line     int
}

func (p Position) String() string {
	filename := p.Filename
	if filename == "" {
		filename = "<source>"
	}
	return fmt.Sprintf("%s:%d", filename, p.Line)
}

// State is an immutable snapshot of the input and the current parse
// position. Combinators never mutate a State in place; they derive new
// ones with Advance, so backtracking is just re-using an older value.
type State struct {
	filename string
	text     []rune // terminated by EOF
	index    int
	line     int
	tracer   Tracer
}

// NewState wraps text in an initial State at offset 0, line 1, with
// the EOF sentinel appended.
func NewState(filename, text string) State {
	runes := make([]rune, 0, len(text)+1)
	for _, r := range text {
		runes = append(runes, r)
	}
	runes = append(runes, EOF)
	return State{filename: filename, text: runes, line: 1}
}

// WithTracer returns a copy of s that reports every combinator outcome
// to t. The hook is carried by all states derived from the copy.
func (s State) WithTracer(t Tracer) State {
	s.tracer = t
	return s
}

// Cur returns the rune at the current offset, EOF at end of input.
func (s State) Cur() rune { return s.text[s.index] }

// At returns the rune n runes past the current offset, EOF if that
// lies beyond the end of input.
func (s State) At(n int) rune {
	if s.index+n >= len(s.text) {
		return EOF
	}
	return s.text[s.index+n]
}

// Index returns the current offset into the input.
func (s State) Index() int { return s.index }

// Line returns the 1-based line number of the current offset.
func (s State) Line() int { return s.line }

// Pos returns the current position for use in diagnostics.
func (s State) Pos() Position {
	return Position{Filename: s.filename, Offset: s.index, Line: s.line}
}

// Advance returns a new State n runes further into the input. The line
// counter is incremented once per '\n' consumed; no other line
// terminator is special-cased.
func (s State) Advance(n int) State {
	for i := 0; i < n; i++ {
		if s.text[s.index+i] == '\n' {
			s.line++
		}
	}
	s.index += n
	return s
}

// withIndex rewrites the offset without touching the line counter.
// Used to report the deepest index reached across alternatives.
func (s State) withIndex(index int) State {
	s.index = index
	return s
}
