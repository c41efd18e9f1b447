package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arvo.ch/waymark/cmd/waymark/commands"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/adapters/logger"
	"go.arvo.ch/waymark/internal/adapters/recipe"
	"go.arvo.ch/waymark/internal/adapters/telemetry"
	"go.arvo.ch/waymark/internal/app"
	"go.arvo.ch/waymark/internal/build"
	"go.arvo.ch/waymark/internal/core/domain"
)

const recipeContent = `
package_type: application
settings:
  os: Linux
  compiler: gcc
  build_type: Release
  arch: x86_64
generators: [deps, toolchain]
options:
  "grpc/*:fPIC": true
  "grpc/*:shared": false
`

const dataContent = `
requirements:
  - grpc/1.72.0
  - spdlog/1.15.3
`

func newCLI(t *testing.T) *commands.CLI {
	t.Helper()
	log := logger.NewWithOutput(io.Discard)
	registry := recipe.NewRegistry(recipe.NewDepsGenerator(), recipe.NewToolchainGenerator())
	opener := featuredb.NewOpener(log)
	a := app.New(recipe.NewLoader(log), registry, opener, log)
	return commands.New(app.NewComponents(a, log, telemetry.NewNoOpTracer(), opener))
}

func writeRecipeDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, recipe.RecipeFilename), []byte(recipeContent), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, recipe.DataFilename), []byte(dataContent), 0o600))
	return dir
}

func TestDepsGen(t *testing.T) {
	cli := newCLI(t)
	dir := writeRecipeDir(t)
	outDir := t.TempDir()

	cli.SetArgs([]string{"deps", "gen", "--dir", dir, "--out", outDir})
	require.NoError(t, cli.Execute(context.Background()))

	for _, name := range []string{recipe.DepsArtifactFilename, recipe.ToolchainArtifactFilename, recipe.LockFilename} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s to be written", name)
	}
}

func TestDepsGen_MissingRecipe(t *testing.T) {
	cli := newCLI(t)

	cli.SetArgs([]string{"deps", "gen", "--dir", t.TempDir(), "--out", t.TempDir()})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecipeNotFound))
}

func TestDepsVerify(t *testing.T) {
	cli := newCLI(t)
	dir := writeRecipeDir(t)
	outDir := t.TempDir()

	cli.SetArgs([]string{"deps", "gen", "--dir", dir, "--out", outDir})
	require.NoError(t, cli.Execute(context.Background()))

	cli.SetArgs([]string{"deps", "verify", "--dir", dir, "--out", outDir})
	require.NoError(t, cli.Execute(context.Background()))
}

func TestDepsVerify_Drift(t *testing.T) {
	cli := newCLI(t)
	dir := writeRecipeDir(t)
	outDir := t.TempDir()

	cli.SetArgs([]string{"deps", "gen", "--dir", dir, "--out", outDir})
	require.NoError(t, cli.Execute(context.Background()))

	// Drop a requirement so the digest no longer matches the lockfile.
	data := "requirements:\n  - grpc/1.72.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, recipe.DataFilename), []byte(data), 0o600))

	cli.SetArgs([]string{"deps", "verify", "--dir", dir, "--out", outDir})
	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLockfileMismatch))
}

func TestVersion(t *testing.T) {
	cli := newCLI(t)

	var buf bytes.Buffer
	cli.SetOut(&buf)
	cli.SetArgs([]string{"--version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
