// Package core provides a small, stable facade over maschine's internal
// engine for external integrations. It re-exports a narrow API surface so
// other programs can depend on a stable import path without reaching into
// internal packages.
//
// Example:
//
//	res := core.Resolve(core.Raw{Rotors: "2,4,5", Rings: "5,12,20", Reflector: "c"})
//	tr, err := core.Translate(res, "attack at dawn")
//	if err != nil { /* handle */ }
//	_ = core.MarshalTranslations(os.Stdout, []core.Translation{tr})
package core
