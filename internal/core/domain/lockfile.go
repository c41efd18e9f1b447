package domain

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile is a reproducible snapshot of a generated recipe: the content
// digest of the recipe and the requirements in the exact order they were
// read from the data file.
type Lockfile struct {
	// Version is the lockfile format version, kept for future schema migrations.
	Version int `yaml:"version"`

	// Digest is the xxhash64 digest of the recipe's canonical rendering.
	Digest string `yaml:"digest"`

	// Requirements preserves data-file order.
	Requirements []string `yaml:"requirements"`
}
