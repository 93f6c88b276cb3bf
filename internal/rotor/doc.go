// Package rotor provides the catalogued rotor and reflector wheels.
//
// Rotors step like an odometer digit: every step rotates the wiring by one
// position, and after a full revolution the rotor raises a turnover flag for
// the machine to carry into the next rotor. Reflectors never move.
package rotor
