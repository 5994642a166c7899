// Package ui renders run summaries in terminal (rich), text (plain) or JSON
// format.
package ui
