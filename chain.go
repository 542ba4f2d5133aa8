package parsec

// A parsed (operator, operand) pair, in source order.
type chained[T, U any] struct {
	op      U
	operand T
}

// chainSuffix := (op e)*
//
// Shared plumbing for ChainL1 and ChainR1.
func chainSuffix[T, U any](parser Parser[T], op Parser[U]) Parser[[]chained[T, U]] {
	q := Then(op, func(operator U) Parser[chained[T, U]] {
		return Then(parser, func(value T) Parser[chained[T, U]] {
			return Return(chained[T, U]{op: operator, operand: value})
		})
	})
	return Repeat0(q)
}

// ChainL1 := e (op e)*
//
// Left-associative binary operators: eval folds the (op, e) pairs onto
// the first operand in left-to-right order, so "9-3-2" evaluates as
// (9-3)-2.
func ChainL1[T, U any](parser Parser[T], op Parser[U], eval func(T, U, T) T) Parser[T] {
	suffix := chainSuffix(parser, op)
	return func(input State) Result[T] {
		r := parser(input)
		if r.fail != nil {
			return Result[T]{fail: r.fail}
		}
		r2 := suffix(r.next)
		value := r.value
		for _, term := range r2.value {
			value = eval(value, term.op, term.operand)
		}
		return Succeed("chainl1", input, r2.next, value)
	}
}

// ChainR1 := e (op e)*
//
// Right-associative binary operators: each operator is re-paired with
// the operand before it and eval folds from the last operand backwards,
// so "2^3^2" evaluates as 2^(3^2).
func ChainR1[T, U any](parser Parser[T], op Parser[U], eval func(T, U, T) T) Parser[T] {
	suffix := chainSuffix(parser, op)
	return func(input State) Result[T] {
		r := parser(input)
		if r.fail != nil {
			return Result[T]{fail: r.fail}
		}
		r2 := suffix(r.next)
		terms := r2.value
		if len(terms) == 0 {
			return Succeed("chainr1", input, r2.next, r.value)
		}

		// e1 and [(op1 e2), (op2 e3)] becomes [e1, e2] paired with
		// [op1, op2], with e3 seeding the fold.
		operands := make([]T, 0, len(terms))
		operands = append(operands, r.value)
		for _, term := range terms[:len(terms)-1] {
			operands = append(operands, term.operand)
		}
		value := terms[len(terms)-1].operand
		for i := len(terms) - 1; i >= 0; i-- {
			value = eval(operands[i], terms[i].op, value)
		}
		return Succeed("chainr1", input, r2.next, value)
	}
}
