package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog errors
	ErrMsgDataLoad       = "catalog data load failed"
	ErrMsgDuplicateID    = "duplicate identifier"
	ErrMsgInvalidItemRef = "invalid item reference"
	ErrMsgInvalidConfig  = "invalid configuration"

	// Lookup errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgRecipeNotFound = "recipe not found"

	// Persistence errors
	ErrMsgPersistence  = "persistence failure"
	ErrMsgSaveNotFound = "save not found"
	ErrMsgCorruptSave  = "corrupt save payload"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidHandle = "unknown instance handle"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrDataLoad is fatal at startup: the catalog is malformed or inconsistent
	ErrDataLoad       = errors.New(ErrMsgDataLoad)
	ErrDuplicateID    = errors.New(ErrMsgDuplicateID)
	ErrInvalidItemRef = errors.New(ErrMsgInvalidItemRef)
	ErrInvalidConfig  = errors.New(ErrMsgInvalidConfig)

	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// ErrPersistence wraps any storage I/O failure
	ErrPersistence  = errors.New(ErrMsgPersistence)
	ErrSaveNotFound = errors.New(ErrMsgSaveNotFound)
	ErrCorruptSave  = errors.New(ErrMsgCorruptSave)

	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidHandle = errors.New(ErrMsgInvalidHandle)
)
