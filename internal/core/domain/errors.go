package domain

import "go.trai.ch/zerr"

var (
	// ErrFeatureDBParse is returned when the feature database file cannot be parsed.
	ErrFeatureDBParse = zerr.New("failed to parse feature database")

	// ErrFeatureDBEmpty is returned when an operation needs features but the store holds none.
	ErrFeatureDBEmpty = zerr.New("feature database is empty")

	// ErrRecipeNotFound is returned when the recipe file is missing from the recipe directory.
	ErrRecipeNotFound = zerr.New("recipe file not found")

	// ErrUnknownGenerator is returned when a recipe names a generator that is not registered.
	ErrUnknownGenerator = zerr.New("unknown generator")

	// ErrLockfileMismatch is returned when the lockfile digest does not match the recipe.
	ErrLockfileMismatch = zerr.New("lockfile does not match recipe")
)
