// Package types holds the output records shared by the report, core and CLI
// packages.
package types
