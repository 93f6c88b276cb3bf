package alphabet

import "strings"

// Size is the number of symbols in the alphabet.
const Size = 26

// Letters is the alphabet in index order.
const Letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GroupSize is the number of letters per output block.
const GroupSize = 4

// Index returns the 0-based index of an ASCII letter in either case.
func Index(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	}
	return 0, false
}

// Letter returns the uppercase letter for index i. i must be in [0, Size).
func Letter(i int) byte {
	return Letters[i]
}

// Mod reduces i into [0, Size), also for negative values.
func Mod(i int) int {
	i %= Size
	if i < 0 {
		i += Size
	}
	return i
}

// Normalize drops every character that is not an ASCII letter and
// uppercases the rest.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if idx, ok := Index(s[i]); ok {
			b.WriteByte(Letter(idx))
		}
	}
	return b.String()
}

// Group inserts a single space after every n characters of s. It never
// emits a leading or trailing separator. n <= 0 returns s unchanged.
func Group(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/n)
	for i := 0; i < len(s); i++ {
		if i > 0 && i%n == 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// Ungroup removes the spaces inserted by Group.
func Ungroup(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
