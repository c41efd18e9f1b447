package recipe

import (
	"os"
	"path/filepath"

	"go.arvo.ch/waymark/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// LockFilename is the lockfile name.
const LockFilename = "waymark.lock"

// WriteLockfile writes the lockfile for the recipe into outDir.
func WriteLockfile(r *domain.Recipe, outDir string) error {
	lock := domain.Lockfile{
		Version:      domain.LockfileVersion,
		Digest:       Digest(r),
		Requirements: r.RequirementStrings(),
	}

	data, err := yaml.Marshal(&lock)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}
	return writeArtifact(outDir, LockFilename, data)
}

// ReadLockfile reads the lockfile from dir.
func ReadLockfile(dir string) (*domain.Lockfile, error) {
	path := filepath.Join(dir, LockFilename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	var lock domain.Lockfile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lockfile")
	}
	return &lock, nil
}

// VerifyLockfile checks that the lockfile in dir matches the recipe's
// current digest. Returns ErrLockfileMismatch with both digests attached
// when they differ.
func VerifyLockfile(r *domain.Recipe, dir string) error {
	lock, err := ReadLockfile(dir)
	if err != nil {
		return err
	}

	current := Digest(r)
	if lock.Digest != current {
		err := zerr.With(domain.ErrLockfileMismatch, "locked_digest", lock.Digest)
		return zerr.With(err, "current_digest", current)
	}
	return nil
}
