package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Catalog holds the petition categories and the city list offered by the
// wizard. Loaded once at startup from CatalogPath.
type Catalog struct {
	Categories []string `yaml:"categories"`
	Cities     []string `yaml:"cities"`
}

var defaultCatalog = Catalog{
	Categories: []string{
		"Umwelt", "Bildung", "Gesundheit", "Soziales", "Politik",
		"Tierschutz", "Verkehr", "Wirtschaft", "Kultur", "Sonstiges",
	},
	Cities: []string{"Berlin", "Hamburg", "München", "Köln", "Frankfurt am Main"},
}

func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultCatalog, nil
		}
		return Catalog{}, err
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, err
	}
	if len(catalog.Categories) == 0 {
		catalog.Categories = defaultCatalog.Categories
	}
	if len(catalog.Cities) == 0 {
		catalog.Cities = defaultCatalog.Cities
	}
	return catalog, nil
}
