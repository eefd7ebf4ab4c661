package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldPaths  = "paths"
	FieldFiles  = "files"
	FieldFrom   = "from"
	FieldTo     = "to"
	FieldFlavor = "flavor"

	// Renumbering fields.
	FieldChanges = "changes"
	FieldForced  = "forced"
	FieldWrite   = "write"
	FieldBackup  = "backup"

	// Highlight fields.
	FieldElapsed = "elapsed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
