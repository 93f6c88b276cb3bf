package main

import "github.com/varalys/maschine/cmd/maschine"

func main() { maschine.Execute() }
