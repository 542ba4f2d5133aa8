package scan

import (
	"errors"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsec-go/parsec"
)

func parseError(t *testing.T, err error) *parsec.Error {
	t.Helper()
	require.Error(t, err)
	var perr *parsec.Error
	require.True(t, errors.As(err, &perr))
	return perr
}

func TestText(t *testing.T) {
	p := Text("if")

	value, err := parsec.Parse(p, "test", "if x")
	require.NoError(t, err)
	assert.Equal(t, "if", value)

	_, err = parsec.Parse(p, "test", "of x")
	perr := parseError(t, err)
	assert.Equal(t, "Expected 'if'", perr.Message)
	assert.Equal(t, 0, perr.Pos.Offset)
}

func TestTextAtEndOfInput(t *testing.T) {
	_, err := parsec.Parse(Text("if"), "test", "i")
	require.Error(t, err)
}

func TestMatch0(t *testing.T) {
	p := Match0(unicode.IsLetter)

	value, err := parsec.Parse(p, "test", "abc1")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	value, err = parsec.Parse(p, "test", "123")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}

func TestMatch1(t *testing.T) {
	p := Match1(unicode.IsLetter, "letters")

	value, err := parsec.Parse(p, "test", "abc1")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)

	_, err = parsec.Parse(p, "test", "123")
	perr := parseError(t, err)
	assert.Equal(t, "Expected letters", perr.Message)
}

func TestMatchStopsAtEndOfInput(t *testing.T) {
	// A predicate that accepts anything must still stop at the
	// sentinel.
	p := Match0(func(rune) bool { return true })
	value, err := parsec.Parse(p, "test", "ab")
	require.NoError(t, err)
	assert.Equal(t, "ab", value)
}

func TestInteger(t *testing.T) {
	p := Integer()

	for text, expected := range map[string]int{
		"23":   23,
		"0":    0,
		"-100": -100,
		"+1":   1,
	} {
		value, err := parsec.Parse(p, "test", text)
		require.NoError(t, err, "%q", text)
		assert.Equal(t, expected, value, "%q", text)
	}
}

func TestIntegerRequiresDigits(t *testing.T) {
	_, err := parsec.Parse(Integer(), "test", "x")
	perr := parseError(t, err)
	assert.Equal(t, "Expected digits", perr.Message)
	assert.Equal(t, 0, perr.Pos.Offset)
}

func TestIntegerFailsPastConsumedSign(t *testing.T) {
	// "+" with no digits fails after the sign, so alternation sees the
	// progress the sign made.
	_, err := parsec.Parse(Integer(), "test", "+")
	perr := parseError(t, err)
	assert.Equal(t, "Expected digits", perr.Message)
	assert.Equal(t, 1, perr.Pos.Offset)
}

func TestSpace0(t *testing.T) {
	p := Space0(Integer())

	r := p(parsec.NewState("test", "42   x"))
	require.True(t, r.Ok())
	assert.Equal(t, 42, r.Value())
	assert.Equal(t, 5, r.State().Index())

	// Zero trailing whitespace is fine.
	r = p(parsec.NewState("test", "42x"))
	require.True(t, r.Ok())
	assert.Equal(t, 2, r.State().Index())
}

func TestSpace1(t *testing.T) {
	p := Space1(Integer())

	r := p(parsec.NewState("test", "42 x"))
	require.True(t, r.Ok())
	assert.Equal(t, 3, r.State().Index())

	_, err := parsec.Parse(p, "test", "42x")
	perr := parseError(t, err)
	assert.Equal(t, "Expected whitespace", perr.Message)
}

func TestSpaceCountsLines(t *testing.T) {
	p := parsec.Next(Space0(Text("a")), Text("b"))
	_, err := parsec.Parse(p, "test", "a\n\nc")
	perr := parseError(t, err)
	assert.Equal(t, "Expected 'b'", perr.Message)
	assert.Equal(t, 3, perr.Pos.Line)
}

func TestEOT(t *testing.T) {
	_, err := parsec.Parse(EOT(), "test", "")
	require.NoError(t, err)

	_, err = parsec.Parse(EOT(), "test", "x")
	perr := parseError(t, err)
	assert.Equal(t, "Expected EOT", perr.Message)
}

func TestEverything(t *testing.T) {
	leading := Space0(parsec.Return(0))
	p := Everything(Space0(Integer()), leading)

	value, err := parsec.Parse(p, "test", "  42  ")
	require.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = parsec.Parse(p, "test", " 42 7")
	perr := parseError(t, err)
	assert.Equal(t, "Expected EOT", perr.Message)
}
