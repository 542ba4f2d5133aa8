// Package scan provides the lexical building blocks used at the
// leaves of a grammar: literal text, integer literals, whitespace
// wrappers and the end-of-input marker. They are ordinary parsers
// built on the public parsec API and carry no special status.
package scan

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/parsec-go/parsec"
)

// Text matches s exactly and returns it. The failure message is s in
// single quotes.
func Text(s string) parsec.Parser[string] {
	quoted := "'" + s + "'"
	runes := []rune(s)
	return func(input parsec.State) parsec.Result[string] {
		for i, r := range runes {
			if input.At(i) != r {
				return parsec.Fail[string]("text", input, input, input, quoted)
			}
		}
		return parsec.Succeed("text", input, input.Advance(len(runes)), s)
	}
}

// Match0 consumes the longest run, possibly empty, of leading runes
// satisfying pred. It never fails.
func Match0(pred func(rune) bool) parsec.Parser[string] {
	return func(input parsec.State) parsec.Result[string] {
		n := run(input, 0, pred)
		return parsec.Succeed("match0", input, input.Advance(n), matched(input, n))
	}
}

// Match1 is like Match0 but requires at least one rune to match,
// failing with mesg otherwise.
func Match1(pred func(rune) bool, mesg string) parsec.Parser[string] {
	return func(input parsec.State) parsec.Result[string] {
		n := run(input, 0, pred)
		if n == 0 {
			return parsec.Fail[string]("match1", input, input, input, mesg)
		}
		return parsec.Succeed("match1", input, input.Advance(n), matched(input, n))
	}
}

// Integer matches an optionally signed decimal integer literal. When
// a sign is present but no digits follow, the failure is positioned
// after the sign so that alternation sees the progress made.
func Integer() parsec.Parser[int] {
	return func(input parsec.State) parsec.Result[int] {
		start := 0
		if r := input.At(0); r == '+' || r == '-' {
			start = 1
		}
		n := run(input, start, isDigit)
		if n == 0 {
			return parsec.Fail[int]("integer", input, input, input.Advance(start), "digits")
		}
		value, err := strconv.Atoi(matched(input, start+n))
		if err != nil {
			return parsec.Fail[int]("integer", input, input, input, "integer")
		}
		return parsec.Succeed("integer", input, input.Advance(start+n), value)
	}
}

// Space0 matches parser followed by zero or more whitespace runes,
// returning parser's value. Skipping trailing whitespace after each
// token is the usual convention for grammars over raw text.
func Space0[T any](parser parsec.Parser[T]) parsec.Parser[T] {
	return func(input parsec.State) parsec.Result[T] {
		r := parser(input)
		if !r.Ok() {
			return r
		}
		output := r.State()
		n := run(output, 0, unicode.IsSpace)
		return parsec.Succeed("space0", input, output.Advance(n), r.Value())
	}
}

// Space1 is like Space0 but requires at least one trailing whitespace
// rune.
func Space1[T any](parser parsec.Parser[T]) parsec.Parser[T] {
	return func(input parsec.State) parsec.Result[T] {
		r := parser(input)
		if !r.Ok() {
			return r
		}
		output := r.State()
		n := run(output, 0, unicode.IsSpace)
		if n == 0 {
			return parsec.Fail[T]("space1", input, input, output, "whitespace")
		}
		return parsec.Succeed("space1", input, output.Advance(n), r.Value())
	}
}

// EOT matches the end-of-input sentinel without consuming it.
func EOT() parsec.Parser[rune] {
	return func(input parsec.State) parsec.Result[rune] {
		if input.Cur() != parsec.EOF {
			return parsec.Fail[rune]("eot", input, input, input, "EOT")
		}
		return parsec.Succeed("eot", input, input, parsec.EOF)
	}
}

// Everything matches space, then parser, then end of input, returning
// parser's value. space handles leading whitespace; trailing
// whitespace is expected to be consumed by the grammar's own tokens,
// typically via Space0.
func Everything[T, U any](parser parsec.Parser[T], space parsec.Parser[U]) parsec.Parser[T] {
	return parsec.Seq3(space, parser, EOT(),
		func(_ U, value T, _ rune) T { return value })
}

// run returns the length of the run of runes satisfying pred starting
// at offset from the current position. The EOF sentinel always stops
// the run, whatever pred says of it.
func run(input parsec.State, from int, pred func(rune) bool) int {
	n := from
	for input.At(n) != parsec.EOF && pred(input.At(n)) {
		n++
	}
	return n - from
}

func matched(input parsec.State, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteRune(input.At(i))
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
