package parsec

// Ref is a write-once forward reference, the one piece of mutable
// state in a grammar. It closes cycles in an otherwise bottom-up
// combinator graph: create the cell, use its Parser wherever the cycle
// needs to close, then Resolve it with the finished rule before any
// parsing begins. After that single write the cell is read-only.
type Ref[T any] struct {
	parser Parser[T]
}

// NewRef returns an unresolved forward reference.
func NewRef[T any]() *Ref[T] {
	return &Ref[T]{}
}

// Resolve assigns the referenced parser. It must be called exactly
// once; a second call panics.
func (r *Ref[T]) Resolve(parser Parser[T]) {
	if r.parser != nil {
		panic("parsec: forward reference resolved twice")
	}
	r.parser = parser
}

// Parser returns a parser that delegates to whatever the cell holds at
// invocation time. Running it before Resolve panics.
func (r *Ref[T]) Parser() Parser[T] {
	return func(input State) Result[T] {
		if r.parser == nil {
			panic("parsec: forward reference used before Resolve")
		}
		return r.parser(input)
	}
}
