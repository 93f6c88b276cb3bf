// Package lampboard is an interactive terminal front end: every key typed
// steps the rotors and lights the enciphered letter, like the lamp panel of
// the physical machine.
package lampboard
