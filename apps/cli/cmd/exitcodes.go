package cmd

import "errors"

// Exit codes for envfile CLI
const (
	// ExitSuccess indicates the .env file was written
	ExitSuccess = 0

	// ExitFailure indicates a failure while reading or writing files
	ExitFailure = 1

	// ExitInvalidInput indicates the target directory is missing or not a directory
	ExitInvalidInput = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries the exit code of a failure that was already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	return ExitUsageError
}
