package recipe

import (
	"os"
	"path/filepath"
	"strings"

	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DepsArtifactFilename is the dependency-declaration file emitted by the
// deps generator, consumed by a separate build-file generator.
const DepsArtifactFilename = "waymark_deps.yaml"

// ToolchainArtifactFilename is the environment file emitted by the
// toolchain generator.
const ToolchainArtifactFilename = "toolchain.env"

// depsArtifact is the on-disk shape of the dependency declaration.
// Settings, options, and requirements are the recipe's values, verbatim.
type depsArtifact struct {
	Settings     domain.Settings `yaml:"settings"`
	Options      map[string]bool `yaml:"options"`
	Requirements []string        `yaml:"requirements"`
}

// DepsGenerator emits the dependency-declaration artifact and the lockfile.
type DepsGenerator struct{}

// NewDepsGenerator creates a new DepsGenerator.
func NewDepsGenerator() *DepsGenerator {
	return &DepsGenerator{}
}

var _ ports.ArtifactGenerator = (*DepsGenerator)(nil)

// Name implements ports.ArtifactGenerator.
func (g *DepsGenerator) Name() string { return "deps" }

// Generate writes waymark_deps.yaml and waymark.lock into outDir. The
// artifact carries exactly the declared settings, option keys, and
// requirement order; nothing is added, dropped, or rewritten.
func (g *DepsGenerator) Generate(r *domain.Recipe, outDir string) error {
	artifact := depsArtifact{
		Settings:     r.Settings,
		Options:      r.Options,
		Requirements: r.RequirementStrings(),
	}

	data, err := yaml.Marshal(&artifact)
	if err != nil {
		return zerr.Wrap(err, "failed to marshal dependency declaration")
	}

	if err := writeArtifact(outDir, DepsArtifactFilename, data); err != nil {
		return err
	}

	return WriteLockfile(r, outDir)
}

// ToolchainGenerator emits the toolchain environment file from the settings
// tuple. User preset emission is switched off, matching the recipe's single
// generator override.
type ToolchainGenerator struct{}

// NewToolchainGenerator creates a new ToolchainGenerator.
func NewToolchainGenerator() *ToolchainGenerator {
	return &ToolchainGenerator{}
}

var _ ports.ArtifactGenerator = (*ToolchainGenerator)(nil)

// Name implements ports.ArtifactGenerator.
func (g *ToolchainGenerator) Name() string { return "toolchain" }

// Generate writes toolchain.env into outDir as KEY=VALUE lines, one per
// settings key, values verbatim.
func (g *ToolchainGenerator) Generate(r *domain.Recipe, outDir string) error {
	var b strings.Builder
	values := r.Settings.Values()
	for i, key := range domain.SettingsKeys {
		b.WriteString("WAYMARK_" + strings.ToUpper(key) + "=" + values[i] + "\n")
	}
	b.WriteString("WAYMARK_USER_PRESETS=off\n")

	return writeArtifact(outDir, ToolchainArtifactFilename, []byte(b.String()))
}

// Registry holds the known generators, keyed by recipe generator name.
type Registry struct {
	generators map[string]ports.ArtifactGenerator
}

// NewRegistry creates a Registry with the given generators.
func NewRegistry(gens ...ports.ArtifactGenerator) *Registry {
	m := make(map[string]ports.ArtifactGenerator, len(gens))
	for _, g := range gens {
		m[g.Name()] = g
	}
	return &Registry{generators: m}
}

// Run executes every generator the recipe names, in recipe order.
func (reg *Registry) Run(r *domain.Recipe, outDir string) error {
	for _, name := range r.Generators {
		g, ok := reg.generators[name]
		if !ok {
			return zerr.With(domain.ErrUnknownGenerator, "generator", name)
		}
		if err := g.Generate(r, outDir); err != nil {
			return zerr.With(zerr.Wrap(err, "generator failed"), "generator", name)
		}
	}
	return nil
}

func writeArtifact(outDir, filename string, data []byte) error {
	if err := os.MkdirAll(outDir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create artifact directory")
	}

	path := filepath.Join(outDir, filename)
	//nolint:gosec // Artifacts are world-readable build outputs
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	return nil
}
