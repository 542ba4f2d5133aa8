// Package calc implements a small arithmetic-expression evaluator.
// It exists to exercise the combinator library end to end and doubles
// as a worked example of building a recursive grammar.
package calc

import (
	"github.com/parsec-go/parsec"
	"github.com/parsec-go/parsec/scan"
)

// Parser builds the expression grammar:
//
//     expr   := term ([+-] term)*           left associative
//     term   := power ([*/] power)*         left associative
//     power  := factor ([^] factor)*        right associative
//     factor := integer | [-+]? '(' expr ')'
//
// Every token allows trailing whitespace. Integer division truncates.
// The returned parser is reusable across any number of inputs.
func Parser() parsec.Parser[int] {
	plusSign := scan.Space0(scan.Text("+"))
	minusSign := scan.Space0(scan.Text("-"))
	multSign := scan.Space0(scan.Text("*"))
	divSign := scan.Space0(scan.Text("/"))
	expSign := scan.Space0(scan.Text("^"))
	leftParen := scan.Space0(scan.Text("("))
	rightParen := scan.Space0(scan.Text(")"))
	intLiteral := scan.Space0(scan.Integer())

	// Parenthesized expressions refer back to the top-level rule, so
	// the cycle is closed through a forward reference resolved once
	// the whole grammar is built.
	exprRef := parsec.NewRef[int]()
	exprPtr := exprRef.Parser()

	// subExpr := [-+]? '(' expr ')'
	subExpr := parsec.Alternative(
		parsec.Seq4(plusSign, leftParen, exprPtr, rightParen,
			func(_, _ string, v int, _ string) int { return v }),
		parsec.Seq4(minusSign, leftParen, exprPtr, rightParen,
			func(_, _ string, v int, _ string) int { return -v }),
		parsec.Seq3(leftParen, exprPtr, rightParen,
			func(_ string, v int, _ string) int { return v }),
	)

	// The tag gives a better message when a factor fails on its very
	// first character.
	factor := intLiteral.Or(subExpr).Tag("integer or sub-expression")

	power := parsec.ChainR1(factor, expSign,
		func(lhs int, _ string, rhs int) int { return ipow(lhs, rhs) })

	term := parsec.ChainL1(power, multSign.Or(divSign),
		func(lhs int, op string, rhs int) int {
			if op == "*" {
				return lhs * rhs
			}
			return lhs / rhs
		})

	expr := parsec.ChainL1(term, plusSign.Or(minusSign),
		func(lhs int, op string, rhs int) int {
			if op == "+" {
				return lhs + rhs
			}
			return lhs - rhs
		})
	exprRef.Resolve(expr)

	// start := space0 expr EOT
	leading := scan.Space0(parsec.Return(0))
	return scan.Everything(expr, leading)
}

// Eval parses and evaluates text.
func Eval(text string) (int, error) {
	return parsec.Parse(Parser(), "", text)
}

// ipow raises base to a non-negative integer power; negative exponents
// yield 1 since there is no fractional result to give.
func ipow(base, exp int) int {
	value := 1
	for ; exp > 0; exp-- {
		value *= base
	}
	return value
}
