package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := `categories:
  - Umwelt
  - Verkehr
cities:
  - Berlin
  - Leipzig
`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	catalog, err := LoadCatalog(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Umwelt", "Verkehr"}, catalog.Categories)
	assert.Equal(t, []string{"Berlin", "Leipzig"}, catalog.Cities)
}

func TestLoadCatalog_MissingFileUsesDefaults(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.NoError(t, err)
	assert.NotEmpty(t, catalog.Categories)
	assert.NotEmpty(t, catalog.Cities)
}

func TestLoadCatalog_PartialFileFallsBackPerSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("categories:\n  - Umwelt\n"), 0o644))

	catalog, err := LoadCatalog(path)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Umwelt"}, catalog.Categories)
	assert.Equal(t, defaultCatalog.Cities, catalog.Cities)
}

func TestLoadCatalog_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("categories: [unclosed"), 0o644))

	_, err := LoadCatalog(path)
	assert.Error(t, err)
}
