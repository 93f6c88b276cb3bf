package rotor

import (
	"fmt"

	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/permutation"
)

// Reflector is the fixed wheel that sends the signal back through the
// rotors. It never steps and has no ring setting.
type Reflector struct {
	typ    ReflectorType
	wiring *permutation.Permutation
}

// NewReflector builds the catalogued reflector r, verifying that its wiring
// pairs every letter with a different one.
func NewReflector(r ReflectorType) (*Reflector, error) {
	letters, ok := reflectorWirings[r]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReflector, byte(r))
	}
	w, err := permutation.FromWiring(letters)
	if err != nil {
		return nil, fmt.Errorf("reflector %s: %w", r, err)
	}
	if fp := w.FixedPoints(); len(fp) > 0 {
		return nil, fmt.Errorf("reflector %s: %w: %c", r, ErrReflectorFixedPoint, alphabet.Letter(fp[0]))
	}
	if !w.IsInvolution() {
		return nil, fmt.Errorf("reflector %s: %w", r, ErrReflectorNotPaired)
	}
	return &Reflector{typ: r, wiring: w}, nil
}

// Reflect maps index i to its partner.
func (r *Reflector) Reflect(i int) int { return r.wiring.Forward(i) }

// Type returns the reflector's catalogue code.
func (r *Reflector) Type() ReflectorType { return r.typ }

func (r *Reflector) String() string { return r.typ.String() }
