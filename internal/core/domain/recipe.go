package domain

// Settings is the build settings tuple. The values are free-form strings
// consumed by external tooling; waymark forwards them verbatim and enforces
// no invariant on them.
type Settings struct {
	OS        string `yaml:"os" json:"os"`
	Compiler  string `yaml:"compiler" json:"compiler"`
	BuildType string `yaml:"build_type" json:"build_type"`
	Arch      string `yaml:"arch" json:"arch"`
}

// SettingsKeys is the declared order of the settings tuple. Generators
// iterate in this order so emitted artifacts are stable.
var SettingsKeys = []string{"os", "compiler", "build_type", "arch"}

// Values returns the settings values in SettingsKeys order.
func (s Settings) Values() []string {
	return []string{s.OS, s.Compiler, s.BuildType, s.Arch}
}

// Requirement is a dependency specifier such as "grpc/1.72.0". It is opaque
// to waymark: requirements are read from the data file and forwarded to the
// generated artifacts with no parsing beyond identity.
type Requirement string

// Recipe is the declarative build recipe: the settings tuple, the
// per-dependency boolean option flags, and the ordered requirements list
// sourced from the recipe data file.
type Recipe struct {
	// PackageType declares what the recipe builds (e.g. "application").
	PackageType string

	// Settings is forwarded to the generators unchanged.
	Settings Settings

	// Generators lists the artifact generators to run (e.g. "deps", "toolchain").
	Generators []string

	// Options maps "<dependency>/*:<flag>" keys to boolean feature flags.
	// Keys are unique strings; no other consistency is enforced.
	Options map[string]bool

	// Requirements preserves the order of the data file.
	Requirements []Requirement
}

// RequirementStrings returns the requirements as plain strings, in declared
// order.
func (r *Recipe) RequirementStrings() []string {
	out := make([]string, len(r.Requirements))
	for i, req := range r.Requirements {
		out[i] = string(req)
	}
	return out
}
