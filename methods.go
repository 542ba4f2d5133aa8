package parsec

// Fluent spellings of the combinators, delegating to the functions of
// the same name; they tend to make grammar definitions read better.
// Not every combinator has a method form. Go methods cannot add type
// parameters, which rules out Then, Next, List, ChainL1, ChainR1 and
// the SeqN family, and a method whose result changes the shape of T
// (Repeat0 and Repeat1 would return Parser[[]T]) sets off an infinite
// generic instantiation chain — Parser[[]T] needs Repeat0 returning
// Parser[[][]T], and so on — which the compiler rejects. Those stay
// free functions.

// Or tries p and, if it fails, parser2. See Or.
func (p Parser[T]) Or(parser2 Parser[T]) Parser[T] { return Or(p, parser2) }

// Optional makes p optional with missing as the default. See Optional.
func (p Parser[T]) Optional(missing T) Parser[T] { return Optional(p, missing) }

// Tag relabels zero-progress failures of p. See Tag.
func (p Parser[T]) Tag(label string) Parser[T] { return Tag(p, label) }

// Parse runs p over text. See Parse.
func (p Parser[T]) Parse(filename, text string, options ...ParseOption) (T, error) {
	return Parse(p, filename, text, options...)
}
