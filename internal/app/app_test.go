package app_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.arvo.ch/waymark/internal/adapters/featuredb"
	"go.arvo.ch/waymark/internal/adapters/logger"
	"go.arvo.ch/waymark/internal/adapters/recipe"
	"go.arvo.ch/waymark/internal/app"
	"go.arvo.ch/waymark/internal/core/domain"
	"go.arvo.ch/waymark/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testRecipe() *domain.Recipe {
	return &domain.Recipe{
		PackageType: "application",
		Settings: domain.Settings{
			OS:        "Linux",
			Compiler:  "gcc",
			BuildType: "Release",
			Arch:      "x86_64",
		},
		Generators: []string{"deps", "toolchain"},
		Options: map[string]bool{
			"grpc/*:fPIC":   true,
			"grpc/*:shared": false,
		},
		Requirements: []domain.Requirement{"grpc/1.72.0", "protobuf/6.30.1"},
	}
}

func newApp(t *testing.T, loader *mocks.MockRecipeLoader) *app.App {
	t.Helper()
	log := logger.NewWithOutput(io.Discard)
	registry := recipe.NewRegistry(recipe.NewDepsGenerator(), recipe.NewToolchainGenerator())
	return app.New(loader, registry, featuredb.NewOpener(log), log)
}

func TestApp_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	outDir := t.TempDir()
	mockLoader.EXPECT().Load(".").Return(testRecipe(), nil)

	rec, err := a.Generate(".", outDir)
	require.NoError(t, err)
	assert.Equal(t, "application", rec.PackageType)

	for _, name := range []string{recipe.DepsArtifactFilename, recipe.ToolchainArtifactFilename, recipe.LockFilename} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, "expected %s to be written", name)
	}
}

func TestApp_Generate_LoaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	mockLoader.EXPECT().Load(".").Return(nil, domain.ErrRecipeNotFound)

	_, err := a.Generate(".", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrRecipeNotFound))
}

func TestApp_Generate_UnknownGenerator(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	rec := testRecipe()
	rec.Generators = []string{"cmake"}
	mockLoader.EXPECT().Load(".").Return(rec, nil)

	_, err := a.Generate(".", t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownGenerator))
}

func TestApp_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	outDir := t.TempDir()
	mockLoader.EXPECT().Load(".").Return(testRecipe(), nil).Times(2)

	_, err := a.Generate(".", outDir)
	require.NoError(t, err)

	require.NoError(t, a.Verify(".", outDir))
}

func TestApp_Verify_Drift(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	outDir := t.TempDir()
	mockLoader.EXPECT().Load(".").Return(testRecipe(), nil)

	_, err := a.Generate(".", outDir)
	require.NoError(t, err)

	drifted := testRecipe()
	drifted.Requirements = append(drifted.Requirements, "zlib/1.3.1")
	mockLoader.EXPECT().Load(".").Return(drifted, nil)

	err = a.Verify(".", outDir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLockfileMismatch))
}

func TestApp_Serve_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	dbPath := filepath.Join(t.TempDir(), "db.json")
	db := `[{"location": {"latitude": 1, "longitude": 2}, "name": "somewhere"}]`
	require.NoError(t, os.WriteFile(dbPath, []byte(db), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Serve(ctx, app.ServeOptions{DBPath: dbPath, Addr: "localhost:0"})
	assert.NoError(t, err)
}

func TestApp_Serve_MissingDB(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLoader := mocks.NewMockRecipeLoader(ctrl)
	a := newApp(t, mockLoader)

	err := a.Serve(context.Background(), app.ServeOptions{
		DBPath: filepath.Join(t.TempDir(), "missing.json"),
		Addr:   "localhost:0",
	})
	require.Error(t, err)
}
