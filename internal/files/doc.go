// Package files translates batches of message files selected by glob.
package files
