package keyfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadFixture reads a .keyfile file and its .expected.json file.
func loadFixture(t *testing.T, name string) (string, map[string]map[string]string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "valid", name+".keyfile"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join("testdata", "valid", name+".expected.json"))
	require.NoError(t, err)

	var expected map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &expected))
	return string(data), expected
}

func fixtureNames(t *testing.T, dir string) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", dir, "*.keyfile"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = strings.TrimSuffix(filepath.Base(p), ".keyfile")
	}
	return names
}

func TestValidFixtures(t *testing.T) {
	t.Parallel()

	for _, name := range fixtureNames(t, "valid") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			input, expected := loadFixture(t, name)

			doc, err := ParseString(input)
			require.NoError(t, err)
			assert.Equal(t, expected, doc.Map())

			again, err := ParseString(Render(doc))
			require.NoError(t, err)
			assert.Equal(t, expected, again.Map(), "round trip")
		})
	}
}

func TestInvalidFixtures(t *testing.T) {
	t.Parallel()

	for _, name := range fixtureNames(t, "invalid") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			data, err := os.ReadFile(filepath.Join("testdata", "invalid", name+".keyfile"))
			require.NoError(t, err)

			_, err = Parse(data)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Positive(t, perr.Line)
		})
	}
}
