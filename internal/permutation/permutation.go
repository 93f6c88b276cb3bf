// Package permutation implements a rotatable bijection over the alphabet.
//
// A Permutation is stored as a fixed table plus a rotation offset. Rotating
// is equivalent to moving the head of the sequence to its tail, but costs a
// single addition instead of a copy.
package permutation

import (
	"errors"
	"fmt"

	"github.com/varalys/maschine/internal/alphabet"
)

var (
	ErrLength       = errors.New("permutation must have exactly 26 entries")
	ErrNotBijection = errors.New("permutation is not a bijection")
)

// Permutation is a bijection on [0, alphabet.Size) with a rotation offset.
// The zero value is not usable; construct with New or FromWiring.
type Permutation struct {
	table   [alphabet.Size]int
	inverse [alphabet.Size]int
	offset  int
}

// New builds a Permutation from values, which must contain every index in
// [0, 26) exactly once.
func New(values []int) (*Permutation, error) {
	if len(values) != alphabet.Size {
		return nil, fmt.Errorf("%w: got %d", ErrLength, len(values))
	}
	p := &Permutation{}
	var seen [alphabet.Size]bool
	for i, v := range values {
		if v < 0 || v >= alphabet.Size {
			return nil, fmt.Errorf("%w: value %d at position %d out of range", ErrNotBijection, v, i)
		}
		if seen[v] {
			return nil, fmt.Errorf("%w: value %d repeated at position %d", ErrNotBijection, v, i)
		}
		seen[v] = true
		p.table[i] = v
		p.inverse[v] = i
	}
	return p, nil
}

// FromWiring builds a Permutation from a 26-letter wiring string such as
// "EKMFLGDQVZNTOWYHXUSPAIBRCJ".
func FromWiring(letters string) (*Permutation, error) {
	if len(letters) != alphabet.Size {
		return nil, fmt.Errorf("%w: wiring %q has %d letters", ErrLength, letters, len(letters))
	}
	values := make([]int, alphabet.Size)
	for i := 0; i < len(letters); i++ {
		idx, ok := alphabet.Index(letters[i])
		if !ok {
			return nil, fmt.Errorf("%w: wiring %q has non-letter %q", ErrNotBijection, letters, letters[i])
		}
		values[i] = idx
	}
	return New(values)
}

// Identity returns the permutation that maps every index to itself.
func Identity() *Permutation {
	p := &Permutation{}
	for i := range p.table {
		p.table[i] = i
		p.inverse[i] = i
	}
	return p
}

// Forward returns the value at position i of the rotated sequence.
func (p *Permutation) Forward(i int) int {
	return p.table[alphabet.Mod(i+p.offset)]
}

// Backward returns the position of the rotated sequence holding value i.
// Backward(Forward(i)) == i for every i.
func (p *Permutation) Backward(i int) int {
	return alphabet.Mod(p.inverse[alphabet.Mod(i)] - p.offset)
}

// Rotate shifts the sequence left by one: the head moves to the tail.
func (p *Permutation) Rotate() {
	p.offset = alphabet.Mod(p.offset + 1)
}

// Offset reports how many rotations have been applied, modulo 26.
func (p *Permutation) Offset() int { return p.offset }

// Values returns a copy of the rotated sequence.
func (p *Permutation) Values() []int {
	out := make([]int, alphabet.Size)
	for i := range out {
		out[i] = p.Forward(i)
	}
	return out
}

// String renders the rotated sequence as letters.
func (p *Permutation) String() string {
	b := make([]byte, alphabet.Size)
	for i := range b {
		b[i] = alphabet.Letter(p.Forward(i))
	}
	return string(b)
}

// FixedPoints lists every index the permutation maps to itself.
func (p *Permutation) FixedPoints() []int {
	var out []int
	for i := 0; i < alphabet.Size; i++ {
		if p.Forward(i) == i {
			out = append(out, i)
		}
	}
	return out
}

// IsInvolution reports whether applying the permutation twice is the identity.
func (p *Permutation) IsInvolution() bool {
	for i := 0; i < alphabet.Size; i++ {
		if p.Forward(p.Forward(i)) != i {
			return false
		}
	}
	return true
}
