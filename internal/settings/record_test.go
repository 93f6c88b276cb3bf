package settings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	res := Resolve(Raw{Plugboard: "AA"})
	tr, err := res.Record("note.txt", "Hello, World! 123")
	require.NoError(t, err)

	assert.Equal(t, "note.txt", tr.Source)
	assert.Equal(t, "HELLOWORLD", tr.Input)
	assert.Equal(t, "GGEX BRUL MJ", tr.Output)
	assert.Equal(t, 10, tr.Letters)
	assert.Equal(t, []string{"I", "II", "III"}, tr.Machine.Rotors)
	assert.Equal(t, []int{1, 1, 1}, tr.Machine.Rings)
	assert.Equal(t, "B", tr.Machine.Reflector)
	assert.Empty(t, tr.Machine.Plugboard)
	assert.Equal(t, res.Settings.Fingerprint(), tr.Machine.Fingerprint)
	assert.Equal(t, []string{"I ring 1 (+10 steps)", "II ring 1 (+0 steps)", "III ring 1 (+0 steps)"}, tr.State)
	require.Len(t, tr.Issues, 1)
	assert.Contains(t, tr.Issues[0], "invalid plugboard specification")
}

func TestRecord_StateAfterCarry(t *testing.T) {
	res := Resolve(Raw{Rotors: "3,1,2", Rings: "26,1,13"})
	tr, err := res.Record("", strings.Repeat("A", 27))
	require.NoError(t, err)
	assert.Equal(t, []string{"III ring 26 (+27 steps)", "I ring 1 (+1 steps)", "II ring 13 (+0 steps)"}, tr.State)
}
