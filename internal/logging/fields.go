// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldConfig = "config"

	// Formatting fields.
	FieldWidth   = "width"
	FieldMargin  = "margin"
	FieldTables  = "tables"
	FieldStacked = "stacked"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
