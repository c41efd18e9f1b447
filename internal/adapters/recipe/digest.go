package recipe

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.arvo.ch/waymark/internal/core/domain"
)

// Digest computes the xxhash64 digest of a recipe's canonical rendering.
// The rendering fixes the settings order, sorts option keys, and keeps
// requirements in declared order, so the digest is stable across runs and
// across YAML formatting differences.
func Digest(r *domain.Recipe) string {
	h := xxhash.New()

	_, _ = h.WriteString("package_type:" + r.PackageType + ";")

	values := r.Settings.Values()
	for i, key := range domain.SettingsKeys {
		_, _ = h.WriteString(key + ":" + values[i] + ";")
	}

	keys := make([]string, 0, len(r.Options))
	for key := range r.Options {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		_, _ = h.WriteString(key + ":" + strconv.FormatBool(r.Options[key]) + ";")
	}

	for _, req := range r.Requirements {
		_, _ = h.WriteString("require:" + string(req) + ";")
	}

	return fmt.Sprintf("%016x", h.Sum64())
}
