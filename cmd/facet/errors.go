package main

import (
	"errors"
	"fmt"
)

var (
	errCancelled   = errors.New("selection cancelled")
	errNoTerminal  = errors.New("stdin is not a terminal")
	errSourceUsage = errors.New("exactly one of <file> or --git is required")
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
