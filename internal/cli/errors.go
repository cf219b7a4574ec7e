package cli

import (
	"errors"
	"fmt"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

var errNotInteger = errors.New("not a base-10 integer")

// UsageError means the program was not invoked with exactly one argument.
type UsageError struct {
	Program string
	Err     error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <number>", e.Program)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ParseError means the argument is not a base-10 integer. Input is the
// argument exactly as it was received.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Invalid argument '%s', expected a number.", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
