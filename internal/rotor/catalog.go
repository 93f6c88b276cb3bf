package rotor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/varalys/maschine/internal/permutation"
)

// Type selects one of the catalogued rotors. Values are 1-indexed (I = 1).
type Type int

const (
	I Type = iota + 1
	II
	III
	IV
	V
)

// Count is the number of catalogued rotor types.
const Count = 5

var (
	ErrUnknownType         = errors.New("unknown rotor type")
	ErrUnknownReflector    = errors.New("unknown reflector")
	ErrReflectorFixedPoint = errors.New("reflector maps a letter to itself")
	ErrReflectorNotPaired  = errors.New("reflector is not an involution")
)

type spec struct {
	name   string
	wiring string
	notch  byte // historical turnover letter; informational only
}

// Stored 0-indexed; Type(n) lives at rotorSpecs[n-1].
var rotorSpecs = [Count]spec{
	{name: "I", wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notch: 'Q'},
	{name: "II", wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notch: 'E'},
	{name: "III", wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notch: 'V'},
	{name: "IV", wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", notch: 'J'},
	{name: "V", wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", notch: 'Z'},
}

// Types lists every catalogued rotor type in order.
func Types() []Type {
	out := make([]Type, Count)
	for i := range out {
		out[i] = Type(i + 1)
	}
	return out
}

// Valid reports whether t names a catalogued rotor.
func (t Type) Valid() bool { return t >= I && t <= V }

func (t Type) String() string {
	if !t.Valid() {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return rotorSpecs[t-1].name
}

// Wiring returns the catalogued wiring letters for t.
func (t Type) Wiring() string {
	if !t.Valid() {
		return ""
	}
	return rotorSpecs[t-1].wiring
}

// Notch returns the historical turnover letter of t. Stepping in this
// machine counts steps instead; the letter is kept for listings.
func (t Type) Notch() byte {
	if !t.Valid() {
		return 0
	}
	return rotorSpecs[t-1].notch
}

// ParseType accepts "1".."5" or the roman numerals "I".."V" in any case.
func ParseType(token string) (Type, error) {
	token = strings.TrimSpace(token)
	if n, err := strconv.Atoi(token); err == nil {
		if t := Type(n); t.Valid() {
			return t, nil
		}
		return 0, fmt.Errorf("%w: %d", ErrUnknownType, n)
	}
	up := strings.ToUpper(token)
	for i, s := range rotorSpecs {
		if s.name == up {
			return Type(i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, token)
}

// ReflectorType selects a catalogued reflector by its letter code.
type ReflectorType byte

const (
	ReflectorB ReflectorType = 'B'
	ReflectorC ReflectorType = 'C'
)

var reflectorWirings = map[ReflectorType]string{
	ReflectorB: "YRUHQSLDPXNGOKMIEBFZCWVJAT",
	ReflectorC: "FVPJIAOYEDRZXWGCTKUQSBNMHL",
}

// ReflectorTypes lists the catalogued reflectors in order.
func ReflectorTypes() []ReflectorType {
	return []ReflectorType{ReflectorB, ReflectorC}
}

func (r ReflectorType) String() string { return string(rune(r)) }

// Wiring returns the catalogued wiring letters for r.
func (r ReflectorType) Wiring() string { return reflectorWirings[r] }

// ParseReflector accepts a single letter code, "b" or "c", in any case.
func ParseReflector(code string) (ReflectorType, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 1 {
		if _, ok := reflectorWirings[ReflectorType(code[0])]; ok {
			return ReflectorType(code[0]), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReflector, code)
}

// ValidateCatalog checks that every rotor table is a bijection and every
// reflector an involution without fixed points.
func ValidateCatalog() error {
	for _, t := range Types() {
		if _, err := permutation.FromWiring(t.Wiring()); err != nil {
			return fmt.Errorf("rotor %s: %w", t, err)
		}
	}
	for _, r := range ReflectorTypes() {
		if _, err := NewReflector(r); err != nil {
			return err
		}
	}
	return nil
}
