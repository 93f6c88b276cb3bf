package core

import (
	"github.com/varalys/maschine/internal/machine"
	"github.com/varalys/maschine/internal/rotor"
	"github.com/varalys/maschine/internal/settings"
	"github.com/varalys/maschine/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Raw         = settings.Raw
	Settings    = settings.Settings
	Resolution  = settings.Resolution
	Issue       = settings.Issue
	Machine     = machine.Machine
	Translation = types.Translation
)

// Issue kinds reported by Resolve.
var (
	ErrInvalidRotorSelection = settings.ErrInvalidRotorSelection
	ErrInvalidRingPosition   = settings.ErrInvalidRingPosition
	ErrInvalidReflectorCode  = settings.ErrInvalidReflectorCode
	ErrInvalidPlugboardSpec  = settings.ErrInvalidPlugboardSpec
)

// Resolve validates user tokens, substituting defaults where needed.
func Resolve(raw Raw) Resolution { return settings.Resolve(raw) }

// DefaultSettings returns rotors I, II, III at ring 1 with reflector B.
func DefaultSettings() Settings { return settings.Default() }

// New builds a fresh machine. A Machine is not safe for concurrent use.
func New(s Settings) (*Machine, error) { return s.Build() }

// Translate runs message through a fresh machine built from res.
func Translate(res Resolution, message string) (Translation, error) {
	return res.Record("", message)
}

// ValidateCatalog checks the built-in rotor and reflector tables.
func ValidateCatalog() error { return rotor.ValidateCatalog() }
