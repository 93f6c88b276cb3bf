// Package plugboard implements the optional letter-pair swap applied before
// and after the rotor stack.
package plugboard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/varalys/maschine/internal/alphabet"
)

// MaxPairs is the largest number of disjoint pairs 26 letters allow.
const MaxPairs = alphabet.Size / 2

var (
	ErrMalformedPair = errors.New("plugboard pair must be exactly two letters")
	ErrSelfPair      = errors.New("plugboard pair connects a letter to itself")
	ErrOverlap       = errors.New("plugboard letter is already connected")
	ErrTooManyPairs  = errors.New("plugboard accepts at most 13 pairs")
)

// Plugboard is an involution that swaps each configured pair and leaves
// every other letter alone.
type Plugboard struct {
	wiring [alphabet.Size]int
	pairs  int
}

// New validates pairs such as "AB" or "qw" and builds the plugboard. Every
// letter may appear in at most one pair.
func New(pairs []string) (*Plugboard, error) {
	if len(pairs) > MaxPairs {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyPairs, len(pairs))
	}
	p := &Plugboard{}
	for i := range p.wiring {
		p.wiring[i] = i
	}
	var used [alphabet.Size]bool
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, pair)
		}
		a, okA := alphabet.Index(pair[0])
		b, okB := alphabet.Index(pair[1])
		if !okA || !okB {
			return nil, fmt.Errorf("%w: %q", ErrMalformedPair, pair)
		}
		if a == b {
			return nil, fmt.Errorf("%w: %q", ErrSelfPair, pair)
		}
		for _, idx := range []int{a, b} {
			if used[idx] {
				return nil, fmt.Errorf("%w: %c in %q", ErrOverlap, alphabet.Letter(idx), pair)
			}
			used[idx] = true
		}
		p.wiring[a] = b
		p.wiring[b] = a
		p.pairs++
	}
	return p, nil
}

// Parse builds a plugboard from the comma-separated form "AB,CD,EF".
// Empty entries are ignored.
func Parse(spec string) (*Plugboard, error) {
	return New(Split(spec))
}

// Split breaks a comma-separated pair list into its non-empty entries.
func Split(spec string) []string {
	var out []string
	for _, part := range strings.Split(spec, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Apply returns the partner of i, or i when it is not connected.
func (p *Plugboard) Apply(i int) int {
	if p == nil {
		return i
	}
	return p.wiring[i]
}

// Len returns the number of connected pairs.
func (p *Plugboard) Len() int {
	if p == nil {
		return 0
	}
	return p.pairs
}

// Pairs returns the connections in canonical form: uppercase, lower letter
// first, sorted.
func (p *Plugboard) Pairs() []string {
	if p == nil {
		return nil
	}
	out := make([]string, 0, p.pairs)
	for i, j := range p.wiring {
		if i < j {
			out = append(out, string([]byte{alphabet.Letter(i), alphabet.Letter(j)}))
		}
	}
	sort.Strings(out)
	return out
}

func (p *Plugboard) String() string {
	return strings.Join(p.Pairs(), " ")
}
