// Package alphabet holds the fixed 26-letter alphabet shared by every wiring
// table. All cipher math works on 0-based indices; letters only appear at the
// input/output boundary, so conversions here are plain array lookups.
package alphabet
