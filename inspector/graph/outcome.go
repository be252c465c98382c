package graph

// Outcome represents parser result: either produced value or no match
type Outcome[T any] struct {
	value   T
	matched bool
}

// Matched returns outcome carrying parsed value
func Matched[T any](value T) Outcome[T] {
	return Outcome[T]{value: value, matched: true}
}

// NoMatch returns outcome for input the parser did not recognize
func NoMatch[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Get returns parsed value and match flag
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.matched
}

// Value returns parsed value or zero value on no match
func (o Outcome[T]) Value() T {
	return o.value
}

// IsMatched returns true if parser produced a value
func (o Outcome[T]) IsMatched() bool {
	return o.matched
}

// Unified represents declarations produced from a single unified-declaration file
type Unified struct {
	Protocols []*ProtocolNode
	Classes   []*ClassNode
}

// IsEmpty returns true if no declaration was produced
func (u *Unified) IsEmpty() bool {
	return len(u.Protocols) == 0 && len(u.Classes) == 0
}
