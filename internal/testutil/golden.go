package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// GoldenHelper manages golden file comparisons for tests. Golden files live
// under testdata/golden relative to the test package. Run tests with
// UPDATE_GOLDEN=1 to rewrite them.
type GoldenHelper struct {
	t   *testing.T
	dir string
}

// NewGoldenHelper creates a GoldenHelper rooted at testdata/golden.
func NewGoldenHelper(t *testing.T) *GoldenHelper {
	t.Helper()
	return &GoldenHelper{
		t:   t,
		dir: filepath.Join("testdata", "golden"),
	}
}

func (g *GoldenHelper) update() bool {
	return os.Getenv("UPDATE_GOLDEN") != ""
}

func (g *GoldenHelper) path(name string) string {
	return filepath.Join(g.dir, name)
}

// AssertGolden compares actual against the named golden file.
func (g *GoldenHelper) AssertGolden(name string, actual []byte) {
	g.t.Helper()

	goldenPath := g.path(name)

	if g.update() {
		require.NoError(g.t, os.MkdirAll(g.dir, 0755))
		require.NoError(g.t, os.WriteFile(goldenPath, actual, 0644))
		g.t.Logf("updated golden file %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	require.NoError(g.t, err, "failed to read golden file %s (run with UPDATE_GOLDEN=1 to create it)", goldenPath)
	require.Equal(g.t, string(expected), string(actual), "content does not match golden file %s", goldenPath)
}

// AssertGoldenString compares a string against the named golden file.
func (g *GoldenHelper) AssertGoldenString(name string, actual string) {
	g.t.Helper()
	g.AssertGolden(name, []byte(actual))
}

// AssertGoldenJSON marshals v with indentation and compares against the
// named golden file.
func (g *GoldenHelper) AssertGoldenJSON(name string, v any) {
	g.t.Helper()

	data, err := json.MarshalIndent(v, "", "  ")
	require.NoError(g.t, err)
	g.AssertGolden(name, append(data, '\n'))
}
