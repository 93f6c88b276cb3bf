package settings

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/machine"
	"github.com/varalys/maschine/internal/plugboard"
	"github.com/varalys/maschine/internal/rotor"
)

// Issue kinds. Every Issue matches exactly one of these with errors.Is.
var (
	ErrInvalidRotorSelection = errors.New("invalid rotor selection")
	ErrInvalidRingPosition   = errors.New("invalid ring position")
	ErrInvalidReflectorCode  = errors.New("invalid reflector code")
	ErrInvalidPlugboardSpec  = errors.New("invalid plugboard specification")
)

var (
	errRotorCount     = errors.New("expected three rotors")
	errDuplicateRotor = errors.New("rotor selected twice")
	errRingCount      = errors.New("expected three ring settings")
	errNotANumber     = errors.New("not a number")
)

// Raw holds configuration tokens as typed by a user, e.g. "1,2,3", "1,1,1",
// "b" and "AB,CD". Empty tokens select the defaults without an issue.
type Raw struct {
	Rotors    string
	Rings     string
	Reflector string
	Plugboard string
}

// Settings is a validated machine configuration.
type Settings struct {
	Rotors    [machine.Rotors]rotor.Type
	Rings     [machine.Rotors]int
	Reflector rotor.ReflectorType
	// Plugboard holds canonical pairs; nil means no plugboard.
	Plugboard []string
}

// Default returns rotors I, II, III at ring 1 with reflector B and no plugboard.
func Default() Settings {
	return Settings{
		Rotors:    [machine.Rotors]rotor.Type{rotor.I, rotor.II, rotor.III},
		Rings:     [machine.Rotors]int{1, 1, 1},
		Reflector: rotor.ReflectorB,
	}
}

// Issue records a substitution made while resolving Raw tokens.
type Issue struct {
	Kind  error
	Field string
	Value string
	Err   error
}

func (i Issue) Error() string {
	if i.Err == nil {
		return fmt.Sprintf("%s %q: %v", i.Field, i.Value, i.Kind)
	}
	return fmt.Sprintf("%s %q: %v: %v", i.Field, i.Value, i.Kind, i.Err)
}

// Unwrap exposes both the issue kind and its cause to errors.Is.
func (i Issue) Unwrap() []error {
	if i.Err == nil {
		return []error{i.Kind}
	}
	return []error{i.Kind, i.Err}
}

// Resolution is the outcome of Resolve: usable settings plus any
// substitutions that were needed to get them.
type Resolution struct {
	Settings Settings
	Issues   []Issue
}

// Err joins all issues, or returns nil when there are none.
func (r Resolution) Err() error {
	if len(r.Issues) == 0 {
		return nil
	}
	errs := make([]error, len(r.Issues))
	for i, is := range r.Issues {
		errs[i] = is
	}
	return errors.Join(errs...)
}

// Log reports every issue at warn level.
func (r Resolution) Log(logger *slog.Logger) {
	for _, is := range r.Issues {
		attrs := []any{"kind", is.Kind.Error(), "field", is.Field, "value", is.Value}
		if is.Err != nil {
			attrs = append(attrs, "err", is.Err)
		}
		logger.Warn("configuration fallback applied", attrs...)
	}
}

// Resolve validates raw tokens, substituting defaults for anything invalid:
// rotors fall back to I,II,III, each bad ring to 1, the reflector to B and a
// bad plugboard to none.
func Resolve(raw Raw) Resolution {
	res := Resolution{Settings: Default()}
	res.resolveRotors(raw.Rotors)
	res.resolveRings(raw.Rings)
	res.resolveReflector(raw.Reflector)
	res.resolvePlugboard(raw.Plugboard)
	return res
}

func (r *Resolution) add(kind error, field, value string, err error) {
	r.Issues = append(r.Issues, Issue{Kind: kind, Field: field, Value: value, Err: err})
}

func (r *Resolution) resolveRotors(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	parts := strings.Split(token, ",")
	if len(parts) != machine.Rotors {
		r.add(ErrInvalidRotorSelection, "rotors", token, fmt.Errorf("%w: got %d", errRotorCount, len(parts)))
		return
	}
	var sel [machine.Rotors]rotor.Type
	for i, p := range parts {
		t, err := rotor.ParseType(p)
		if err != nil {
			r.add(ErrInvalidRotorSelection, "rotors", token, err)
			return
		}
		for j := 0; j < i; j++ {
			if sel[j] == t {
				r.add(ErrInvalidRotorSelection, "rotors", token, fmt.Errorf("%w: %s", errDuplicateRotor, t))
				return
			}
		}
		sel[i] = t
	}
	r.Settings.Rotors = sel
}

func (r *Resolution) resolveRings(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	parts := strings.Split(token, ",")
	if len(parts) != machine.Rotors {
		r.add(ErrInvalidRingPosition, "rings", token, fmt.Errorf("%w: got %d", errRingCount, len(parts)))
	}
	for i := 0; i < machine.Rotors && i < len(parts); i++ {
		p := strings.TrimSpace(parts[i])
		n, err := strconv.Atoi(p)
		if err != nil {
			r.add(ErrInvalidRingPosition, "rings", p, errNotANumber)
			continue
		}
		if n < 1 || n > alphabet.Size {
			r.add(ErrInvalidRingPosition, "rings", p, rotor.ErrRingSetting)
			continue
		}
		r.Settings.Rings[i] = n
	}
}

func (r *Resolution) resolveReflector(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	t, err := rotor.ParseReflector(token)
	if err != nil {
		r.add(ErrInvalidReflectorCode, "reflector", token, err)
		return
	}
	r.Settings.Reflector = t
}

func (r *Resolution) resolvePlugboard(token string) {
	if strings.TrimSpace(token) == "" {
		return
	}
	pb, err := plugboard.Parse(token)
	if err != nil {
		r.add(ErrInvalidPlugboardSpec, "plugboard", token, err)
		return
	}
	if pb.Len() > 0 {
		r.Settings.Plugboard = pb.Pairs()
	}
}

// Build assembles a fresh machine at its starting position.
func (s Settings) Build() (*machine.Machine, error) {
	var rotors [machine.Rotors]*rotor.Rotor
	for i := range rotors {
		r, err := rotor.New(s.Rotors[i], s.Rings[i])
		if err != nil {
			return nil, fmt.Errorf("rotor %d: %w", i+1, err)
		}
		for j := 0; j < i; j++ {
			if s.Rotors[j] == s.Rotors[i] {
				return nil, fmt.Errorf("rotor %d: %w: %s", i+1, errDuplicateRotor, s.Rotors[i])
			}
		}
		rotors[i] = r
	}
	refl, err := rotor.NewReflector(s.Reflector)
	if err != nil {
		return nil, err
	}
	var pb *plugboard.Plugboard
	if len(s.Plugboard) > 0 {
		if pb, err = plugboard.New(s.Plugboard); err != nil {
			return nil, err
		}
	}
	return machine.New(rotors, refl, pb)
}

// Translate builds a fresh machine and translates message with it.
func (s Settings) Translate(message string) (string, error) {
	m, err := s.Build()
	if err != nil {
		return "", err
	}
	return m.Translate(message), nil
}

// Canonical renders the settings as a stable single line, e.g.
// "rotors=I,II,III rings=1,1,1 reflector=B plugboard=AB,CD".
func (s Settings) Canonical() string {
	names := make([]string, len(s.Rotors))
	rings := make([]string, len(s.Rings))
	for i := range s.Rotors {
		names[i] = s.Rotors[i].String()
		rings[i] = strconv.Itoa(s.Rings[i])
	}
	pairs := "none"
	if len(s.Plugboard) > 0 {
		pairs = strings.Join(s.Plugboard, ",")
	}
	return fmt.Sprintf("rotors=%s rings=%s reflector=%s plugboard=%s",
		strings.Join(names, ","), strings.Join(rings, ","), s.Reflector, pairs)
}

// Fingerprint hashes the canonical settings so two operators can confirm
// they hold the same key sheet without reading it out.
func (s Settings) Fingerprint() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(s.Canonical()))
}
