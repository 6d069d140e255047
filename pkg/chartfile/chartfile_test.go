// pkg/chartfile/chartfile_test.go
package chartfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chart.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_ValidDocument(t *testing.T) {
	path := writeFile(t, `{
		"version": "1.2.0",
		"lastUpdated": "2026-08-01",
		"sizes": [
			{"name": "S", "chest_min": 80, "chest_max": 90, "waist_min": 65, "waist_max": 75},
			{"name": "M", "chest_min": 90, "chest_max": 100, "waist_min": 75, "waist_max": 85}
		]
	}`)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", doc.Version)
	require.Len(t, doc.Sizes, 2)
	assert.Equal(t, "M", doc.Sizes[1].Name)
	assert.Equal(t, 90.0, doc.Sizes[1].ChestMin)
}

func TestLoad_MissingBoundFails(t *testing.T) {
	path := writeFile(t, `{
		"version": "1.0.0",
		"sizes": [
			{"name": "S", "chest_min": 80, "chest_max": 90, "waist_min": 65}
		]
	}`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MalformedJSONFails(t *testing.T) {
	path := writeFile(t, `{"sizes": [`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	doc := &Document{
		Version:     "2.0.0",
		LastUpdated: "2026-08-30",
		Sizes: []SizeEntry{
			{Name: "L", ChestMin: 100, ChestMax: 110, WaistMin: 85, WaistMax: 95},
		},
	}

	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}
