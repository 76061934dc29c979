package ecomload

import (
	"errors"
	"strings"
)

// Sentinel errors for the failure classes of a load run.
// Callers distinguish them with errors.Is().
//
// Example usage:
//
//	_, err := svc.Run(ctx, cfg)
//	if errors.Is(err, ecomload.ErrMissingFile) {
//	    // a required CSV was absent
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingDirectory indicates the configured source directory does not exist.
	ErrMissingDirectory = errors.New("data directory not found")

	// ErrMissingFile indicates a required CSV file is absent from the source directory.
	ErrMissingFile = errors.New("missing required CSV file")

	// ErrLoadFailed indicates a CSV could not be parsed or its rows could not be written.
	ErrLoadFailed = errors.New("load failed")
)

// usageErrorPatterns are fragments of the messages cobra/pflag produce for bad invocations.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrMissingDirectory):
		return ExitMissingDirectory
	case errors.Is(err, ErrMissingFile):
		return ExitMissingFile
	case errors.Is(err, ErrLoadFailed):
		return ExitLoadFailed
	}

	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
