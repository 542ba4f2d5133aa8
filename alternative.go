package parsec

import "strings"

// Or tries parser1 and, if it fails, parser2 on the same input. When
// both fail, the failure that reached deeper into the input wins; on
// an exact tie the two messages are joined with " or ".
func Or[T any](parser1, parser2 Parser[T]) Parser[T] {
	return func(input State) Result[T] {
		r1 := parser1(input)
		if r1.fail == nil {
			return r1
		}
		r2 := parser2(input)
		if r2.fail == nil {
			return r2
		}
		f1, f2 := r1.fail, r2.fail
		switch {
		case f1.at.index > f2.at.index:
			return Fail[T]("or", input, f1.old, f1.at, f1.mesg)
		case f1.at.index < f2.at.index:
			return Fail[T]("or", input, f2.old, f2.at, f2.mesg)
		default:
			return Fail[T]("or", input, f2.old, f2.at, f1.mesg+" or "+f2.mesg)
		}
	}
}

// Alternative := e0 | e1 | …
//
// Tries each parser in order on the same input and returns the first
// success. When all fail it reports the messages tied at the deepest
// index reached, joined with " or ". Calling Alternative with no
// parsers is a malformed grammar, not a parse failure, and panics.
func Alternative[T any](parsers ...Parser[T]) Parser[T] {
	if len(parsers) == 0 {
		panic("parsec: Alternative requires at least one parser")
	}
	return func(input State) Result[T] {
		var mesgs []string
		maxIndex := input.index
		for _, parser := range parsers {
			r := parser(input)
			if r.fail == nil {
				return Succeed("alternative", input, r.next, r.value)
			}
			if r.fail.at.index > maxIndex {
				mesgs = []string{r.fail.mesg}
				maxIndex = r.fail.at.index
			} else if r.fail.at.index == maxIndex {
				mesgs = append(mesgs, r.fail.mesg)
			}
		}
		at := input.withIndex(maxIndex)
		return Fail[T]("alternative", input, input, at, strings.Join(mesgs, " or "))
	}
}

// Optional := e?
//
// On failure Optional succeeds with missing and the original,
// unconsumed input, however far parser progressed before failing.
// Optional never fails.
func Optional[T any](parser Parser[T], missing T) Parser[T] {
	return func(input State) Result[T] {
		r := parser(input)
		if r.fail != nil {
			return Succeed("optional", input, input, missing)
		}
		return r
	}
}
