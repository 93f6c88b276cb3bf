package machine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/plugboard"
	"github.com/varalys/maschine/internal/rotor"
)

// Rotors is the number of rotating wheels.
const Rotors = 3

var (
	ErrMissingRotor     = errors.New("machine needs three rotors")
	ErrMissingReflector = errors.New("machine needs a reflector")
)

// Machine holds the rotor stack in configured order. Rotor 0 is the entry
// rotor: the signal reaches it first and it steps on every key press.
type Machine struct {
	rotors    [Rotors]*rotor.Rotor
	reflector *rotor.Reflector
	plugboard *plugboard.Plugboard
}

// New assembles a machine. A nil plugboard means none is installed.
func New(rotors [Rotors]*rotor.Rotor, reflector *rotor.Reflector, pb *plugboard.Plugboard) (*Machine, error) {
	for i, r := range rotors {
		if r == nil {
			return nil, fmt.Errorf("%w: rotor %d is nil", ErrMissingRotor, i)
		}
	}
	if reflector == nil {
		return nil, ErrMissingReflector
	}
	return &Machine{rotors: rotors, reflector: reflector, plugboard: pb}, nil
}

// Translate normalizes message, enciphers every letter in order and returns
// the result in groups of four. Encryption and decryption are the same
// operation when started from the same settings.
func (m *Machine) Translate(message string) string {
	input := alphabet.Normalize(message)
	out := make([]byte, len(input))
	for i := 0; i < len(input); i++ {
		out[i], _ = m.Press(input[i])
	}
	return alphabet.Group(string(out), alphabet.GroupSize)
}

// Press handles a single key. It steps the rotors and returns the lit
// letter, or false without stepping when c is not a letter.
func (m *Machine) Press(c byte) (byte, bool) {
	idx, ok := alphabet.Index(c)
	if !ok {
		return 0, false
	}
	m.step()
	return alphabet.Letter(m.encode(idx)), true
}

// step advances rotor 0 and carries turnovers into rotors 1 and 2.
// Rotor 2 has no neighbour, so its carry is dropped.
func (m *Machine) step() {
	m.rotors[0].Step()
	if m.rotors[0].Turnover() {
		m.rotors[1].Step()
		m.rotors[0].ResetTurnover()
	}
	if m.rotors[1].Turnover() {
		m.rotors[2].Step()
		m.rotors[1].ResetTurnover()
	}
	m.rotors[2].ResetTurnover()
}

func (m *Machine) encode(idx int) int {
	idx = m.plugboard.Apply(idx)
	for _, r := range m.rotors {
		idx = r.Backward(idx)
	}
	idx = m.reflector.Reflect(idx)
	for i := Rotors - 1; i >= 0; i-- {
		idx = m.rotors[i].Forward(idx)
	}
	return m.plugboard.Apply(idx)
}

// Rotor returns the rotor at position i in configured order.
func (m *Machine) Rotor(i int) *rotor.Rotor { return m.rotors[i] }

// Reflector returns the installed reflector.
func (m *Machine) Reflector() *rotor.Reflector { return m.reflector }

// Plugboard returns the installed plugboard, or nil.
func (m *Machine) Plugboard() *plugboard.Plugboard { return m.plugboard }

// Windows returns the current window letter of each rotor in configured order.
func (m *Machine) Windows() string {
	b := make([]byte, Rotors)
	for i, r := range m.rotors {
		b[i] = r.Window()
	}
	return string(b)
}

func (m *Machine) String() string {
	names := make([]string, Rotors)
	for i, r := range m.rotors {
		names[i] = r.String()
	}
	s := "Rotors: " + strings.Join(names, " ") + ", Reflector: " + m.reflector.String()
	if m.plugboard.Len() > 0 {
		s += ", Plugboard: " + m.plugboard.String()
	}
	return s
}
