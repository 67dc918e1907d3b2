package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/socialgridgo/internal/app"
	"github.com/vk/socialgridgo/internal/hclcfg"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	LogOutput string
	Err       error
	App       *app.App
	OutputDir string
}

// RunSiteTest provides a standardized harness for running the full generation
// pipeline inside a throwaway directory, using a default background context.
func RunSiteTest(t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()
	return RunSiteTestWithContext(context.Background(), t, files, cfg)
}

// RunSiteTestWithContext provides a standardized harness for running the full
// generation pipeline with a specific context provided by the caller.
func RunSiteTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg *app.Config) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir, err := os.MkdirTemp("", ".tmp-integration-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	// 2. Write all dataset and site files to the temporary directory.
	//    The test provides relative paths (e.g., "data/people.json"), which
	//    naturally creates the subdirectory structure within the root tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 3. Rebase all relative paths onto the temporary directory. The output
	//    directory is always forced under tmpDir, so tests never write into
	//    the working tree even when a site file names somewhere else.
	resolved := app.Config{LogLevel: "debug", LogFormat: "text"}
	if cfg != nil {
		resolved = *cfg
	}
	if resolved.DatasetPath == "" {
		resolved.DatasetPath = "people.json"
	}
	resolved.DatasetPath = rebase(tmpDir, resolved.DatasetPath)
	if resolved.SitePath != "" {
		resolved.SitePath = rebase(tmpDir, resolved.SitePath)
	}
	if resolved.OutputDir == "" {
		resolved.OutputDir = "site"
	}
	resolved.OutputDir = rebase(tmpDir, resolved.OutputDir)
	if resolved.LogLevel == "" {
		resolved.LogLevel = "debug"
	}
	if resolved.LogFormat == "" {
		resolved.LogFormat = "text"
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				if os.Getenv("SGGO_TEST_LOGS") == "true" {
					t.Logf("--- HARNESS RECOVERED PANIC ---\n%q", fmt.Sprintf("%v", r))
				}
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, &resolved, hclcfg.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			App:       nil,
			OutputDir: resolved.OutputDir,
		}
	}

	runErr := testApp.Run(ctx, &resolved)

	if os.Getenv("SGGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
		OutputDir: resolved.OutputDir,
	}
}

// rebase joins a relative path onto the harness root, leaving absolute paths
// untouched.
func rebase(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
