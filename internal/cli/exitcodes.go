package cli

import (
	"errors"
	"io/fs"

	"github.com/moondown/moondown/pkg/config"
)

// ErrDifferencesFound signals that a dry run found lists needing renumbering.
// It carries no message for the user; it only selects the exit code.
var ErrDifferencesFound = errors.New("differences found")

// Exit codes for moondown.
const (
	// ExitSuccess indicates successful execution with nothing to change.
	ExitSuccess = 0

	// ExitDifferences indicates a dry run found files needing renumbering.
	ExitDifferences = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFor maps an error returned by command execution to an exit code.
func ExitCodeFor(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDifferencesFound):
		return ExitDifferences
	case errors.Is(err, config.ErrInvalid):
		return ExitConfigError
	case errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
