package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidName    = errors.New("invalid player name")

	// Stage errors
	ErrUnknownStage    = errors.New("unknown stage")
	ErrStagesNotLoaded = errors.New("stage definitions not loaded")

	// Completion errors
	ErrIncomplete         = errors.New("not all stages are complete")
	ErrCompletionNotFound = errors.New("completion not found")

	// Config errors
	ErrConfigNotSet  = errors.New("game config not set")
	ErrInvalidConfig = errors.New("invalid game config")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
)
