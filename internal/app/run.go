package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/socialgridgo/internal/ctxlog"
	"github.com/vk/socialgridgo/internal/dataset"
	"github.com/vk/socialgridgo/internal/fsutil"
	"github.com/vk/socialgridgo/internal/graph"
	"github.com/vk/socialgridgo/internal/render"
)

// Run executes the main application logic based on the provided configuration.
// Each resolved dataset goes through the full pipeline in order; the first
// failure stops the run, so a reported error means no site was announced for
// that dataset.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.ResolveDatasets(appConfig.DatasetPath, ".json")
	if err != nil {
		return fmt.Errorf("failed to resolve dataset path %s: %w", appConfig.DatasetPath, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no .json dataset files found in %s", appConfig.DatasetPath)
	}
	a.logger.Debug("Datasets resolved.", "count", len(files))

	a.logger.Info("🚀 Starting site generation...", "datasets", len(files))
	for _, file := range files {
		outDir := a.site.OutputDir
		if len(files) > 1 {
			// Several datasets share one run, so each gets its own
			// subdirectory named after the file stem.
			outDir = filepath.Join(outDir, datasetStem(file))
		}
		if err := a.renderDataset(ctx, file, outDir); err != nil {
			return err
		}
		a.logger.Info("Site generated.", "dataset", file, "output_dir", outDir)
	}
	a.logger.Info("🏁 Site generation finished.")

	a.logger.Debug("App.Run method finished.")
	return nil
}

// renderDataset runs one dataset through the pipeline: parse the records,
// build the relationship matrix, write the pages.
func (a *App) renderDataset(ctx context.Context, path, outDir string) error {
	col, err := dataset.LoadFile(ctx, path)
	if err != nil {
		return err
	}

	m, err := graph.Build(ctx, col)
	if err != nil {
		return fmt.Errorf("failed to build relationship matrix for %s: %w", path, err)
	}

	if err := render.NewWriter(outDir, a.site.Title).WriteSite(ctx, col, m); err != nil {
		return fmt.Errorf("failed to render site for %s: %w", path, err)
	}
	return nil
}

// datasetStem returns the dataset file name without its extension.
func datasetStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
