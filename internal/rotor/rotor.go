package rotor

import (
	"errors"
	"fmt"

	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/permutation"
)

// ErrRingSetting is returned for ring settings outside [1, 26].
var ErrRingSetting = errors.New("ring setting must be between 1 and 26")

// Revolution is the number of steps after which a rotor signals a carry to
// its neighbour.
const Revolution = alphabet.Size

// Rotor is a stepping wiring permutation. It is not safe for concurrent use.
type Rotor struct {
	typ      Type
	ring     int
	wiring   *permutation.Permutation
	count    int
	steps    int
	turnover bool
}

// New builds a rotor of type t and aligns it to ring, which is 1-based:
// ring 1 leaves the wiring at rest, ring n rotates it n-1 times.
func New(t Type, ring int) (*Rotor, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	if ring < 1 || ring > alphabet.Size {
		return nil, fmt.Errorf("%w: got %d", ErrRingSetting, ring)
	}
	w, err := permutation.FromWiring(t.Wiring())
	if err != nil {
		return nil, fmt.Errorf("rotor %s: %w", t, err)
	}
	for i := 1; i < ring; i++ {
		w.Rotate()
	}
	return &Rotor{typ: t, ring: ring, wiring: w}, nil
}

// Step advances the rotor by one position. After a full revolution the step
// count wraps to zero and the turnover flag is raised until ResetTurnover.
// The carry fires on the 26th step; a counter that had to exceed 26 would
// carry on the 27th and drift one position per revolution.
func (r *Rotor) Step() {
	r.wiring.Rotate()
	r.steps++
	r.count++
	if r.count >= Revolution {
		r.count = 0
		r.turnover = true
	}
}

// Turnover reports whether a carry is pending.
func (r *Rotor) Turnover() bool { return r.turnover }

// ResetTurnover clears a pending carry once the caller has propagated it.
func (r *Rotor) ResetTurnover() { r.turnover = false }

// Forward passes index i through the wiring on the return path.
func (r *Rotor) Forward(i int) int { return r.wiring.Forward(i) }

// Backward passes index i through the wiring on the outbound path.
func (r *Rotor) Backward(i int) int { return r.wiring.Backward(i) }

// Type returns the catalogue entry the rotor was built from.
func (r *Rotor) Type() Type { return r.typ }

// RingSetting returns the 1-based ring setting.
func (r *Rotor) RingSetting() int { return r.ring }

// StepCount returns the steps taken since the last carry.
func (r *Rotor) StepCount() int { return r.count }

// Steps returns the total number of steps since construction.
func (r *Rotor) Steps() int { return r.steps }

// Window returns the letter for the rotor's current rotation.
func (r *Rotor) Window() byte { return alphabet.Letter(r.wiring.Offset()) }

func (r *Rotor) String() string { return r.typ.String() }

// Describe renders the rotor with its ring setting and step count,
// e.g. "II ring 3 (+5 steps)".
func (r *Rotor) Describe() string {
	return fmt.Sprintf("%s ring %d (+%d steps)", r.typ, r.ring, r.steps)
}
