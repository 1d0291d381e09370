package fir

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	result, err := searcher.Search(req)
//	if errors.Is(err, fir.ErrRootNotFound) {
//	    // Handle missing search root
//	}
var (
	// ErrUserInput is the parent of every error caused by bad caller input.
	// Such errors are reported before any traversal starts.
	ErrUserInput = errors.New("invalid input")

	// ErrEmptyTarget indicates the search target has no name.
	ErrEmptyTarget error = &inputError{msg: "search target is empty"}

	// ErrRootNotFound indicates the search root does not exist or is not a directory.
	ErrRootNotFound error = &inputError{msg: "search root not found"}

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// inputError is a sentinel that also matches ErrUserInput.
type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

func (e *inputError) Is(target error) bool {
	return target == ErrUserInput
}

// OutcomeKind discriminates the result of a search for callers that prefer
// a tagged value over error inspection.
type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "Success"
	OutcomeRootNotFound OutcomeKind = "RootNotFound"
	OutcomeEmptyTarget  OutcomeKind = "EmptyTarget"
	OutcomeFailed       OutcomeKind = "Failed"
)

// Outcome classifies the error returned by Searcher.Search.
func Outcome(err error) OutcomeKind {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrRootNotFound):
		return OutcomeRootNotFound
	case errors.Is(err, ErrEmptyTarget):
		return OutcomeEmptyTarget
	default:
		return OutcomeFailed
	}
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	case errors.Is(err, ErrEmptyTarget):
		return ExitEmptyTarget
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"missing required argument",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
