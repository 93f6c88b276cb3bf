package machine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varalys/maschine/internal/alphabet"
	"github.com/varalys/maschine/internal/plugboard"
	"github.com/varalys/maschine/internal/rotor"
)

type setup struct {
	types     [Rotors]rotor.Type
	rings     [Rotors]int
	reflector rotor.ReflectorType
	pairs     []string
}

var defaultSetup = setup{
	types:     [Rotors]rotor.Type{rotor.I, rotor.II, rotor.III},
	rings:     [Rotors]int{1, 1, 1},
	reflector: rotor.ReflectorB,
}

func build(t testing.TB, s setup) *Machine {
	t.Helper()
	var rotors [Rotors]*rotor.Rotor
	for i := range rotors {
		r, err := rotor.New(s.types[i], s.rings[i])
		require.NoError(t, err)
		rotors[i] = r
	}
	refl, err := rotor.NewReflector(s.reflector)
	require.NoError(t, err)
	var pb *plugboard.Plugboard
	if s.pairs != nil {
		pb, err = plugboard.New(s.pairs)
		require.NoError(t, err)
	}
	m, err := New(rotors, refl, pb)
	require.NoError(t, err)
	return m
}

func TestTranslate_KnownAnswers(t *testing.T) {
	tests := []struct {
		name  string
		setup setup
		in    string
		want  string
	}{
		{
			name:  "rest position",
			setup: defaultSetup,
			in:    "AAAA",
			want:  "BVNW",
		},
		{
			name:  "nine letters",
			setup: defaultSetup,
			in:    "ABCDEFGHI",
			want:  "BLBC CQNJ Z",
		},
		{
			name:  "normalized input",
			setup: defaultSetup,
			in:    "Hello, World! 123",
			want:  "GGEX BRUL MJ",
		},
		{
			name: "reflector C with plugboard and rings",
			setup: setup{
				types:     [Rotors]rotor.Type{rotor.II, rotor.IV, rotor.V},
				rings:     [Rotors]int{5, 12, 20},
				reflector: rotor.ReflectorC,
				pairs:     []string{"AB", "CD", "XZ"},
			},
			in:   "attack at dawn",
			want: "JQDU RUBH ICZR",
		},
		{
			name: "long message",
			setup: setup{
				types:     [Rotors]rotor.Type{rotor.III, rotor.I, rotor.II},
				rings:     [Rotors]int{26, 1, 13},
				reflector: rotor.ReflectorB,
				pairs:     []string{"QW"},
			},
			in:   "The quick brown fox jumps over the lazy dog",
			want: "RVQS PVSU VISB LBKL XYXN ZATB BCCG RGCQ LHE",
		},
		{
			name:  "carry into second rotor",
			setup: defaultSetup,
			in:    strings.Repeat("A", 26),
			want:  "BVNW KNDV UHKR LDJL HOXD VJCW SB",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := build(t, tt.setup)
			got := m.Translate(tt.in)
			assert.Equal(t, tt.want, got)

			back := build(t, tt.setup).Translate(alphabet.Ungroup(got))
			assert.Equal(t, alphabet.Normalize(tt.in), alphabet.Ungroup(back))
		})
	}
}

func TestTranslate_EmptyAndSymbolsOnly(t *testing.T) {
	m := build(t, defaultSetup)
	assert.Equal(t, "", m.Translate(""))
	assert.Equal(t, "", m.Translate("123 !?"))
	assert.Equal(t, 0, m.Rotor(0).Steps(), "non-letters must not step the rotors")
}

func TestTranslate_GroupingShape(t *testing.T) {
	out := build(t, defaultSetup).Translate("ABCDEFGHI")
	groups := strings.Split(out, " ")
	require.Len(t, groups, 3)
	assert.Len(t, groups[0], 4)
	assert.Len(t, groups[1], 4)
	assert.Len(t, groups[2], 1)
	assert.NotContains(t, out, "  ")
	assert.False(t, strings.HasPrefix(out, " ") || strings.HasSuffix(out, " "))
}

func TestTranslate_NoLetterEncryptsToItself(t *testing.T) {
	m := build(t, defaultSetup)
	for i := 0; i < 2000; i++ {
		c := alphabet.Letter(i % alphabet.Size)
		out, ok := m.Press(c)
		require.True(t, ok)
		require.NotEqual(t, c, out, "press %d", i)
	}
}

func TestTranslate_StepsBeforeEncoding(t *testing.T) {
	m := build(t, defaultSetup)
	_, ok := m.Press('A')
	require.True(t, ok)
	assert.Equal(t, 1, m.Rotor(0).Steps())
	assert.Equal(t, "BAA", m.Windows())

	_, ok = m.Press('-')
	assert.False(t, ok)
	assert.Equal(t, 1, m.Rotor(0).Steps())
}

func TestStep_OdometerCarry(t *testing.T) {
	m := build(t, defaultSetup)
	for i := 0; i < 25; i++ {
		m.step()
	}
	assert.Equal(t, 0, m.Rotor(1).Steps())

	m.step()
	assert.Equal(t, 26, m.Rotor(0).Steps())
	assert.Equal(t, 1, m.Rotor(1).Steps())
	assert.Equal(t, 0, m.Rotor(2).Steps())
	assert.False(t, m.Rotor(0).Turnover())

	for i := 26; i < 26*26-1; i++ {
		m.step()
	}
	assert.Equal(t, 25, m.Rotor(1).Steps())
	assert.Equal(t, 0, m.Rotor(2).Steps())

	m.step()
	assert.Equal(t, 26*26, m.Rotor(0).Steps())
	assert.Equal(t, 26, m.Rotor(1).Steps())
	assert.Equal(t, 1, m.Rotor(2).Steps())
	assert.False(t, m.Rotor(1).Turnover())
	assert.Equal(t, "AAB", m.Windows())
}

func TestStep_ThirdRotorCarryIsDropped(t *testing.T) {
	m := build(t, defaultSetup)
	for i := 0; i < 26*26*26; i++ {
		m.step()
	}
	assert.Equal(t, 26, m.Rotor(2).Steps())
	assert.False(t, m.Rotor(2).Turnover())
	assert.Equal(t, "AAA", m.Windows())
}

func TestNew_Validation(t *testing.T) {
	r, err := rotor.New(rotor.I, 1)
	require.NoError(t, err)
	refl, err := rotor.NewReflector(rotor.ReflectorB)
	require.NoError(t, err)

	_, err = New([Rotors]*rotor.Rotor{r, r, nil}, refl, nil)
	assert.ErrorIs(t, err, ErrMissingRotor)
	_, err = New([Rotors]*rotor.Rotor{r, r, r}, nil, nil)
	assert.ErrorIs(t, err, ErrMissingReflector)
}

func TestMachine_String(t *testing.T) {
	assert.Equal(t, "Rotors: I II III, Reflector: B", build(t, defaultSetup).String())

	s := defaultSetup
	s.pairs = []string{"ZA", "cd"}
	m := build(t, s)
	assert.Equal(t, "Rotors: I II III, Reflector: B, Plugboard: AZ CD", m.String())
	assert.Equal(t, 2, m.Plugboard().Len())
	assert.Equal(t, rotor.ReflectorB, m.Reflector().Type())
}

func TestTranslate_InvolutionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)

	configs := gen.Struct(reflect.TypeOf(config{}), map[string]gopter.Gen{
		"Order":     gen.IntRange(0, 59),
		"Rings":     gen.SliceOfN(3, gen.IntRange(1, 26)),
		"Reflector": gen.Bool(),
		"Pairs":     gen.IntRange(0, 13),
	})

	properties.Property("translate(translate(M)) == M from fresh machines", prop.ForAll(
		func(c config, msg string) bool {
			s := c.setup()
			plain := alphabet.Normalize(msg)
			cipher := build(t, s).Translate(plain)
			back := build(t, s).Translate(alphabet.Ungroup(cipher))
			return alphabet.Ungroup(back) == plain
		},
		configs,
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

// config is a generator-friendly description of a machine setup.
type config struct {
	Order     int
	Rings     []int
	Reflector bool
	Pairs     int
}

// orders lists every arrangement of three distinct rotors out of five.
var orders = func() [][Rotors]rotor.Type {
	var out [][Rotors]rotor.Type
	for a := rotor.I; a <= rotor.V; a++ {
		for b := rotor.I; b <= rotor.V; b++ {
			for c := rotor.I; c <= rotor.V; c++ {
				if a != b && b != c && a != c {
					out = append(out, [Rotors]rotor.Type{a, b, c})
				}
			}
		}
	}
	return out
}()

func (c config) setup() setup {
	o := c.Order % len(orders)
	if o < 0 {
		o += len(orders)
	}
	s := setup{types: orders[o], reflector: rotor.ReflectorB}
	for i := range s.rings {
		s.rings[i] = 1
		if i < len(c.Rings) && c.Rings[i] >= 1 && c.Rings[i] <= 26 {
			s.rings[i] = c.Rings[i]
		}
	}
	if c.Reflector {
		s.reflector = rotor.ReflectorC
	}
	pairs := []string{"AM", "BN", "CO", "DP", "EQ", "FR", "GS", "HT", "IU", "JV", "KW", "LX", "YZ"}
	if c.Pairs > 0 && c.Pairs <= len(pairs) {
		s.pairs = pairs[:c.Pairs]
	}
	return s
}

func BenchmarkTranslate(b *testing.B) {
	msg := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 30)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = build(b, defaultSetup).Translate(msg)
	}
}
