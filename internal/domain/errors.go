package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Size errors
	ErrMsgInvalidSize = "invalid size descriptor"

	// Ranking errors
	ErrMsgEmptyInput = "no pizzas to compare"

	// Budget errors
	ErrMsgFreeItem = "item is free, affordable quantity is unbounded"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidSize is returned when a size descriptor cannot be parsed into
	// one or two positive dimensions.
	ErrInvalidSize = errors.New(ErrMsgInvalidSize)

	// ErrEmptyInput is returned by ranking and reporting when given no items.
	ErrEmptyInput = errors.New(ErrMsgEmptyInput)

	ErrFreeItem = errors.New(ErrMsgFreeItem)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
