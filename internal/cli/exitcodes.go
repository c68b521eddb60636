package cli

import "errors"

// Exit codes for mdreflow, following sysexits conventions.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a generic failure.
	ExitFailure = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors used to select exit codes at the main boundary.
var (
	ErrConfig = errors.New("configuration error")
	ErrIO     = errors.New("io error")
)

// ExitCode maps an error returned by command execution to a process exit
// code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitFailure
	}
}
