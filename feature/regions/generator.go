package regions

import (
	"iter"
	"path/filepath"
	"strings"

	"region-cards/core/loader"
	"region-cards/core/storage"

	"go.uber.org/zap"
)

// Generator turns a resources directory into normalized region records.
type Generator struct {
	client storage.Client
	logger *zap.Logger
}

// NewGenerator creates a new generator reading through client.
func NewGenerator(client storage.Client, logger *zap.Logger) *Generator {
	return &Generator{
		client: client,
		logger: logger,
	}
}

// Normalize resolves one raw item against the title table.
// Missing images and unknown regions are never errors: the first sets
// ImageFileMissing, the second drops the region. With verbose set, both are
// logged as warnings.
func (g *Generator) Normalize(resourcesDir string, item RawItem, titles TitleTable, verbose bool) NormalizedItem {
	imageFile := SourceImagePath(resourcesDir, item.Image)

	missing := !g.client.Exists(imageFile)
	if missing && verbose {
		g.logger.Warn("Image file does not exist", zap.String("image", imageFile))
	}

	regions := make([]Region, 0, len(item.Regions))
	for _, rc := range item.Regions {
		title, ok := titles.Lookup(rc.Key)
		if !ok {
			if verbose {
				g.logger.Warn("Title not found", zap.String("region", rc.Key), zap.String("image", imageFile))
			}
			continue
		}
		regions = append(regions, Region{
			Key:   rc.Key,
			Title: title,
			Color: rc.Color,
		})
	}

	return NormalizedItem{
		SourceImage:      imageFile,
		Regions:          regions,
		ImageFileMissing: missing,
	}
}

// Generate loads the titles and items files from resourcesDir and returns a
// lazy sequence with one normalized record per item, in file order.
// Both files are read before Generate returns, so a missing or malformed file
// is reported here and nothing is yielded.
func (g *Generator) Generate(resourcesDir, itemsFile, titlesFile string, verbose bool) (iter.Seq[NormalizedItem], error) {
	var titles TitleTable
	if err := loader.LoadJSON(g.client, filepath.Join(resourcesDir, titlesFile), &titles); err != nil {
		return nil, err
	}

	var items []RawItem
	if err := loader.LoadJSON(g.client, filepath.Join(resourcesDir, itemsFile), &items); err != nil {
		return nil, err
	}

	g.logger.Debug("Dataset loaded",
		zap.String("dir", resourcesDir),
		zap.Int("items", len(items)),
		zap.Int("titles", titles.Len()),
	)

	return func(yield func(NormalizedItem) bool) {
		for _, item := range items {
			if !yield(g.Normalize(resourcesDir, item, titles, verbose)) {
				return
			}
		}
	}, nil
}

// SourceImagePath joins the resources directory and an image name with a
// single separator. The image name is not sanitized.
func SourceImagePath(resourcesDir, image string) string {
	if resourcesDir == "" {
		return image
	}
	return strings.TrimSuffix(resourcesDir, "/") + "/" + image
}
