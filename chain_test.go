package parsec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(lhs int, _ rune, rhs int) int { return lhs - rhs }

func pow(lhs int, _ rune, rhs int) int {
	value := 1
	for ; rhs > 0; rhs-- {
		value *= lhs
	}
	return value
}

func TestChainL1IsLeftAssociative(t *testing.T) {
	p := ChainL1(digit(), char('-'), sub)
	value, err := Parse(p, "test", "9-3-2")
	require.NoError(t, err)
	// (9-3)-2, not 9-(3-2).
	assert.Equal(t, 4, value)
}

func TestChainL1SingleOperand(t *testing.T) {
	p := ChainL1(digit(), char('-'), sub)
	value, err := Parse(p, "test", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, value)
}

func TestChainL1FailsWithoutSeed(t *testing.T) {
	p := ChainL1(digit(), char('-'), sub)
	_, err := Parse(p, "test", "-1")
	perr := parseError(t, err)
	assert.Equal(t, "Expected digit", perr.Message)
}

func TestChainL1StopsBeforeDanglingOperator(t *testing.T) {
	p := ChainL1(digit(), char('-'), sub)
	r := p(NewState("test", "9-3-"))
	require.True(t, r.Ok())
	assert.Equal(t, 6, r.Value())
	assert.Equal(t, 3, r.State().Index())
}

func TestChainR1IsRightAssociative(t *testing.T) {
	p := ChainR1(digit(), char('^'), pow)
	value, err := Parse(p, "test", "2^3^2")
	require.NoError(t, err)
	// 2^(3^2) = 512, not (2^3)^2 = 64.
	assert.Equal(t, 512, value)
}

func TestChainR1SingleOperand(t *testing.T) {
	p := ChainR1(digit(), char('^'), pow)
	value, err := Parse(p, "test", "7")
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestChainR1SinglePair(t *testing.T) {
	p := ChainR1(digit(), char('^'), pow)
	value, err := Parse(p, "test", "3^4")
	require.NoError(t, err)
	assert.Equal(t, 81, value)
}

func TestChainR1EvalOrder(t *testing.T) {
	// Record which operand pairs eval sees, from the last pair to the
	// first.
	var seen [][2]int
	p := ChainR1(digit(), char('^'), func(lhs int, _ rune, rhs int) int {
		seen = append(seen, [2]int{lhs, rhs})
		return lhs
	})
	_, err := Parse(p, "test", "1^2^3")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{2, 3}, {1, 2}}, seen)
}
