package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrParseIncomplete = errors.New("could not understand this recipe")
	ErrOutOfRange      = errors.New("step index out of range")
	ErrNotFound        = errors.New("not found")
	ErrNoRecipe        = errors.New("no recipe loaded")
	ErrNoMoreSteps     = errors.New("no more steps in recipe")
	ErrNotStarted      = errors.New("cooking has not started")
	ErrAtFirstStep     = errors.New("already at the first step")
)
