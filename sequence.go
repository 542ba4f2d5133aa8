package parsec

// Return succeeds with value without consuming any input.
func Return[T any](value T) Parser[T] {
	return func(input State) Result[T] {
		return Succeed("return", input, input, value)
	}
}

// Fails always fails with mesg, consuming nothing.
func Fails[T any](mesg string) Parser[T] {
	return func(input State) Result[T] {
		return Fail[T]("fails", input, input, input, mesg)
	}
}

// Then runs parser and, on success, the parser returned by eval
// applied to its value. A failure from the second parser is re-based
// to start from the original input while keeping its deepest position,
// so enclosing combinators see the whole sequence as one unit. eval is
// never called if parser fails.
//
// Then is often used to translate parsed values:
//
//     Then(p, func(v string) Parser[int] { return Return(len(v)) })
func Then[T, U any](parser Parser[T], eval func(T) Parser[U]) Parser[U] {
	return func(input State) Result[U] {
		r := parser(input)
		if r.fail != nil {
			return Result[U]{fail: r.fail}
		}
		r2 := eval(r.value)(r.next)
		if r2.fail != nil {
			return Fail[U]("then", input, input, r2.fail.at, r2.fail.mesg)
		}
		return r2
	}
}

// Next runs parser1 and then parser2, discarding parser1's value.
// Failures are handled as in Then.
func Next[T, U any](parser1 Parser[T], parser2 Parser[U]) Parser[U] {
	return func(input State) Result[U] {
		r := parser1(input)
		if r.fail != nil {
			return Result[U]{fail: r.fail}
		}
		r2 := parser2(r.next)
		if r2.fail != nil {
			return Fail[U]("next", input, input, r2.fail.at, r2.fail.mesg)
		}
		return r2
	}
}

// Seq2 := e0 e1
//
// If both parses succeed eval is called with the value from each.
// Often simpler to use than Then.
func Seq2[T0, T1, R any](p0 Parser[T0], p1 Parser[T1], eval func(T0, T1) R) Parser[R] {
	return Then(p0, func(a0 T0) Parser[R] {
		return Then(p1, func(a1 T1) Parser[R] {
			return Return(eval(a0, a1))
		})
	})
}

// Seq3 := e0 e1 e2
func Seq3[T0, T1, T2, R any](p0 Parser[T0], p1 Parser[T1], p2 Parser[T2], eval func(T0, T1, T2) R) Parser[R] {
	return Then(p0, func(a0 T0) Parser[R] {
		return Then(p1, func(a1 T1) Parser[R] {
			return Then(p2, func(a2 T2) Parser[R] {
				return Return(eval(a0, a1, a2))
			})
		})
	})
}

// Seq4 := e0 e1 e2 e3
func Seq4[T0, T1, T2, T3, R any](p0 Parser[T0], p1 Parser[T1], p2 Parser[T2], p3 Parser[T3], eval func(T0, T1, T2, T3) R) Parser[R] {
	return Then(p0, func(a0 T0) Parser[R] {
		return Then(p1, func(a1 T1) Parser[R] {
			return Then(p2, func(a2 T2) Parser[R] {
				return Then(p3, func(a3 T3) Parser[R] {
					return Return(eval(a0, a1, a2, a3))
				})
			})
		})
	})
}

// Seq generalizes sequencing to any number of parsers of one value
// type, collecting their values in order. The first failure
// short-circuits the rest.
func Seq[T any](parsers ...Parser[T]) Parser[[]T] {
	return func(input State) Result[[]T] {
		output := input
		values := make([]T, 0, len(parsers))
		for i, parser := range parsers {
			r := parser(output)
			if r.fail != nil {
				if i == 0 {
					return Result[[]T]{fail: r.fail}
				}
				return Fail[[]T]("seq", input, input, r.fail.at, r.fail.mesg)
			}
			output = r.next
			values = append(values, r.value)
		}
		return Succeed("seq", input, output, values)
	}
}
