// Package machine is the cipher engine: three stepping rotors, a reflector
// and an optional plugboard wired into a reversible signal path.
//
// Each key press first steps the rotors like an odometer, then routes the
// letter through plugboard, rotors, reflector, rotors again and plugboard.
// Because the path is a conjugated reflector, the same settings that
// encrypt a message also decrypt it.
//
// A Machine mutates on every key press and is not safe for concurrent use.
// Build one per message.
package machine
