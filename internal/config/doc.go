// Package config loads maschine configuration from local and global YAML
// files. It is internal; CLI code maps flags and files into machine settings
// with CLI > local > global precedence.
package config
