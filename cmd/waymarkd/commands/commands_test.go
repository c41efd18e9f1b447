package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arvo.ch/waymark/cmd/waymarkd/commands"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/adapters/logger"
	"go.arvo.ch/waymark/internal/adapters/recipe"
	"go.arvo.ch/waymark/internal/adapters/telemetry"
	"go.arvo.ch/waymark/internal/app"
	"go.arvo.ch/waymark/internal/build"
)

func newCLI(t *testing.T) *commands.CLI {
	t.Helper()
	log := logger.NewWithOutput(io.Discard)
	registry := recipe.NewRegistry(recipe.NewDepsGenerator(), recipe.NewToolchainGenerator())
	opener := featuredb.NewOpener(log)
	a := app.New(recipe.NewLoader(log), registry, opener, log)
	return commands.New(app.NewComponents(a, log, telemetry.NewNoOpTracer(), opener))
}

func TestServe_StopsOnCancel(t *testing.T) {
	cli := newCLI(t)

	dbPath := filepath.Join(t.TempDir(), "db.json")
	db := `[{"location": {"latitude": 1, "longitude": 2}, "name": "somewhere"}]`
	require.NoError(t, os.WriteFile(dbPath, []byte(db), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cli.SetArgs([]string{"serve", "--db", dbPath, "--listen", "localhost:0", "--recipe-dir", t.TempDir()})
	assert.NoError(t, cli.Execute(ctx))
}

func TestServe_MissingDB(t *testing.T) {
	cli := newCLI(t)

	cli.SetArgs([]string{"serve", "--db", filepath.Join(t.TempDir(), "missing.json"), "--listen", "localhost:0"})
	assert.Error(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	cli := newCLI(t)

	var buf bytes.Buffer
	cli.SetOut(&buf)
	cli.SetArgs([]string{"--version"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), build.Version)
}
