// Package settings turns user-supplied tokens into a machine configuration.
//
// Resolution is best effort: an invalid rotor selection, ring setting,
// reflector code or plugboard specification is replaced by a documented
// default and recorded as an Issue, so the engine itself only ever sees
// valid values. Callers decide whether issues are warnings or fatal.
package settings
