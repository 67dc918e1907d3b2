package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSiteGenerated checks that a harness run succeeded and produced an
// index page. It abstracts the output layout, keeping tests resilient to
// where the harness roots the site.
func AssertSiteGenerated(t *testing.T, result *HarnessResult) {
	t.Helper()

	require.NoError(t, result.Err, "expected the generation run to succeed; logs:\n%s", result.LogOutput)
	require.FileExists(t, filepath.Join(result.OutputDir, "index.html"))
}

// ReadPage returns the contents of one generated page, failing the test when
// the page was never written.
func ReadPage(t *testing.T, result *HarnessResult, name string) string {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join(result.OutputDir, name))
	require.NoError(t, err, "expected page %s to exist; logs:\n%s", name, result.LogOutput)
	return string(raw)
}

// AssertNoSiteOutput checks that a failed run left nothing behind: either the
// output directory was never created, or it holds no pages.
func AssertNoSiteOutput(t *testing.T, result *HarnessResult) {
	t.Helper()

	entries, err := os.ReadDir(result.OutputDir)
	if os.IsNotExist(err) {
		return
	}
	require.NoError(t, err)
	require.Empty(t, entries, "expected no generated pages; logs:\n%s", result.LogOutput)
}
