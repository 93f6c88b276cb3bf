// Package report renders translations for people (plain text, tables) and
// for pipelines (JSON).
package report
