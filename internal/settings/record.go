package settings

import (
	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/machine"
	"github.com/varalys/maschine/internal/types"
)

// Describe returns the output description of s.
func (s Settings) Describe() types.Machine {
	m := types.Machine{
		Reflector:   s.Reflector.String(),
		Fingerprint: s.Fingerprint(),
	}
	for i := range s.Rotors {
		m.Rotors = append(m.Rotors, s.Rotors[i].String())
		m.Rings = append(m.Rings, s.Rings[i])
	}
	if len(s.Plugboard) > 0 {
		m.Plugboard = append([]string(nil), s.Plugboard...)
	}
	return m
}

// Record translates message on a fresh machine and describes the result.
// source names where the message came from and may be empty.
func (r Resolution) Record(source, message string) (types.Translation, error) {
	m, err := r.Settings.Build()
	if err != nil {
		return types.Translation{}, err
	}
	out := m.Translate(message)
	input := alphabet.Normalize(message)
	tr := types.Translation{
		Source:  source,
		Input:   input,
		Output:  out,
		Letters: len(input),
		Machine: r.Settings.Describe(),
	}
	for i := 0; i < machine.Rotors; i++ {
		tr.State = append(tr.State, m.Rotor(i).Describe())
	}
	for _, is := range r.Issues {
		tr.Issues = append(tr.Issues, is.Error())
	}
	return tr, nil
}
