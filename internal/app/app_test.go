package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/socialgridgo/internal/config"
)

// stubLoader satisfies config.Loader without touching the file system.
type stubLoader struct {
	title     string
	outputDir string
	err       error
}

func (s *stubLoader) Load(ctx context.Context, path string) (*config.Model, error) {
	if s.err != nil {
		return nil, s.err
	}
	// A fresh model per call, since NewApp mutates the result.
	return &config.Model{Title: s.title, OutputDir: s.outputDir}, nil
}

func defaultStub() *stubLoader {
	return &stubLoader{title: config.DefaultTitle, outputDir: config.DefaultOutputDir}
}

func TestNewConfig(t *testing.T) {
	t.Run("requires a dataset path", func(t *testing.T) {
		_, err := NewConfig(Config{})

		require.Error(t, err)
		assert.Equal(t, "DatasetPath is a required configuration field and cannot be empty", err.Error())
	})

	t.Run("keeps every provided field", func(t *testing.T) {
		cfg, err := NewConfig(Config{
			DatasetPath: "people.json",
			SitePath:    "site.hcl",
			OutputDir:   "public",
			LogFormat:   "json",
			LogLevel:    "debug",
		})

		require.NoError(t, err)
		assert.Equal(t, "people.json", cfg.DatasetPath)
		assert.Equal(t, "site.hcl", cfg.SitePath)
		assert.Equal(t, "public", cfg.OutputDir)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestNewAppPanicsOnLoaderFailure(t *testing.T) {
	loader := &stubLoader{err: errors.New("boom")}

	require.PanicsWithError(t, "failed to load site configuration: boom", func() {
		NewApp(io.Discard, &Config{DatasetPath: "people.json"}, loader)
	})
}

func TestNewAppOutputDirPrecedence(t *testing.T) {
	t.Run("site file setting applies when no flag is given", func(t *testing.T) {
		loader := &stubLoader{title: "Custom", outputDir: "from-site"}

		a := NewApp(io.Discard, &Config{DatasetPath: "people.json"}, loader)

		assert.Equal(t, "from-site", a.Site().OutputDir)
		assert.Equal(t, "Custom", a.Site().Title)
	})

	t.Run("the command line wins over the site file", func(t *testing.T) {
		loader := &stubLoader{title: "Custom", outputDir: "from-site"}

		a := NewApp(io.Discard, &Config{DatasetPath: "people.json", OutputDir: "from-flag"}, loader)

		assert.Equal(t, "from-flag", a.Site().OutputDir)
	})
}

func TestRun(t *testing.T) {
	// One valid record is all the pipeline needs.
	tinyDataset := "[\n{\n\"id_str\" : \"1\"\n,\"name\" : \"Ann\"\n\t}\n]\n"

	t.Run("renders a single dataset into the output directory", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "people.json")
		require.NoError(t, os.WriteFile(path, []byte(tinyDataset), 0o644))
		outDir := filepath.Join(dir, "site")

		cfg := &Config{DatasetPath: path, OutputDir: outDir}
		a := NewApp(io.Discard, cfg, defaultStub())

		require.NoError(t, a.Run(context.Background(), cfg))

		require.FileExists(t, filepath.Join(outDir, "index.html"))
		require.FileExists(t, filepath.Join(outDir, "user1.html"))
	})

	t.Run("fails when the directory holds no datasets", func(t *testing.T) {
		cfg := &Config{DatasetPath: t.TempDir()}
		a := NewApp(io.Discard, cfg, defaultStub())

		err := a.Run(context.Background(), cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no .json dataset files found")
	})

	t.Run("fails when the dataset path does not exist", func(t *testing.T) {
		cfg := &Config{DatasetPath: filepath.Join(t.TempDir(), "nope.json")}
		a := NewApp(io.Discard, cfg, defaultStub())

		err := a.Run(context.Background(), cfg)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to resolve dataset path")
	})

	t.Run("a malformed dataset stops the run before any page is written", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "people.json")
		require.NoError(t, os.WriteFile(path, []byte("not a dataset"), 0o644))
		outDir := filepath.Join(dir, "site")

		cfg := &Config{DatasetPath: path, OutputDir: outDir}
		a := NewApp(io.Discard, cfg, defaultStub())

		err := a.Run(context.Background(), cfg)

		require.Error(t, err)
		assert.NoFileExists(t, filepath.Join(outDir, "index.html"))
	})
}
