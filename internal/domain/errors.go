package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Table errors
	ErrMsgInvalidTable    = "invalid option table"
	ErrMsgDuplicateOption = "duplicate option name"
	ErrMsgInvalidOdds     = "invalid odds"

	// Upgrade errors
	ErrMsgUnknownCategory   = "unknown category"
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgMaxLevel          = "category is at max level"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidTable    = errors.New(ErrMsgInvalidTable)
	ErrDuplicateOption = errors.New(ErrMsgDuplicateOption)
	ErrInvalidOdds     = errors.New(ErrMsgInvalidOdds)

	ErrUnknownCategory   = errors.New(ErrMsgUnknownCategory)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrMaxLevel          = errors.New(ErrMsgMaxLevel)

	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
