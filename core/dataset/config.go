package dataset

import (
	"path/filepath"
	"strings"
)

// Config describes where a dataset lives and how it is checked.
type Config struct {
	// Dir is the resources directory holding the JSON files and the images.
	Dir string `mapstructure:"dir" default:"resources/portugal" validate:"required"`
	// Items is the items JSON file name, relative to Dir.
	Items string `mapstructure:"items" default:"portugal.json" validate:"required"`
	// Titles is the titles JSON file name, relative to Dir.
	Titles string `mapstructure:"titles" default:"portugal_en.json" validate:"required"`
	// ImageExt is the extension of the image files cross-checked against the data.
	ImageExt string `mapstructure:"image_ext" default:".png" validate:"required,startswith=."`
	// Quick enables per-item warnings while the dataset is verified.
	Quick bool `mapstructure:"quick" default:"true"`
}

// ItemsPath returns the location of the items file.
func (c Config) ItemsPath() string {
	return filepath.Join(c.Dir, c.Items)
}

// TitlesPath returns the location of the titles file.
func (c Config) TitlesPath() string {
	return filepath.Join(c.Dir, c.Titles)
}

// IsJSONFile checks that both data files carry a .json extension.
func (c Config) IsJSONFile() bool {
	return strings.EqualFold(filepath.Ext(c.Items), ".json") && strings.EqualFold(filepath.Ext(c.Titles), ".json")
}
