package parsec

// Repeat0 := e*
//
// Applies parser until it fails, collecting the values of each
// success. The first failure is discarded and the sequence so far,
// possibly empty, is returned with the last good state: Repeat0 never
// fails. Every iteration must strictly advance the input; wrapping a
// parser that can succeed without consuming anything would loop
// forever, so that is treated as a malformed grammar and panics.
func Repeat0[T any](parser Parser[T]) Parser[[]T] {
	return func(input State) Result[[]T] {
		output := input
		values := []T{}
		for {
			r := parser(output)
			if r.fail != nil {
				break
			}
			if r.next.index <= output.index {
				panic("parsec: parser under Repeat0 must consume input")
			}
			output = r.next
			values = append(values, r.value)
		}
		return Succeed("repeat0", input, output, values)
	}
}

// Repeat1 := e+
//
// Like Repeat0, but fails with errMesg at the starting position when
// no iteration succeeded.
func Repeat1[T any](parser Parser[T], errMesg string) Parser[[]T] {
	repeated := Repeat0(parser)
	return func(input State) Result[[]T] {
		r := repeated(input)
		if r.next.index > input.index {
			return Succeed("repeat1", input, r.next, r.value)
		}
		return Fail[[]T]("repeat1", input, input, r.next, errMesg)
	}
}

// List := e (sep e)*
//
// Returns the values of each e in order, discarding the separators.
// List fails only if the first e fails.
func List[T, U any](parser Parser[T], sep Parser[U]) Parser[[]T] {
	rest := Repeat0(Next(sep, parser))
	return func(input State) Result[[]T] {
		r := parser(input)
		if r.fail != nil {
			return Result[[]T]{fail: r.fail}
		}
		r2 := rest(r.next)
		values := append([]T{r.value}, r2.value...)
		return Succeed("list", input, r2.next, values)
	}
}
