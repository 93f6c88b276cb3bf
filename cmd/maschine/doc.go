// Package maschine provides the command-line interface for the maschine
// rotor cipher. It configures subcommands (translate, run, lampboard, rotors,
// config), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/maschine/cmd/maschine"
//	func main() { maschine.Execute() }
package maschine
