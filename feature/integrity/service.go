package integrity

import (
	"fmt"
	"time"

	"region-cards/core/dataset"
	"region-cards/core/storage"
	"region-cards/feature/integrity/checks"
	"region-cards/feature/regions"

	"go.uber.org/zap"
)

// Report contains the results of a dataset verification pass.
type Report struct {
	Dir           string              `json:"dir"`
	TotalItems    int                 `json:"total_items"`
	MissingImages []string            `json:"missing_images"`
	Images        *checks.ImageReport `json:"images"`
	Valid         bool                `json:"valid"`
	GeneratedAt   string              `json:"generated_at"`
	ExecutionTime string              `json:"execution_time"`
}

// Service handles dataset verification and processing.
type Service struct {
	client    storage.Client
	generator *regions.Generator
	logger    *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, logger *zap.Logger) *Service {
	return &Service{
		client:    client,
		generator: regions.NewGenerator(client, logger),
		logger:    logger,
	}
}

// CheckDataFiles returns the paths of the dataset's items/titles files that are missing.
func (s *Service) CheckDataFiles(cfg dataset.Config) ([]string, error) {
	return checks.CheckDataFiles(s.client, cfg.ItemsPath(), cfg.TitlesPath())
}

// CheckImages cross-checks the dataset directory against referenced image basenames.
func (s *Service) CheckImages(cfg dataset.Config, referenced []string) (*checks.ImageReport, error) {
	return checks.CrossCheck(s.client, s.logger, cfg.Dir, cfg.ImageExt, referenced)
}

// Verify runs the quick verification pass over a dataset.
// Every record is generated (with per-item warnings when cfg.Quick is set),
// then the referenced images are cross-checked against the directory.
// A missing or malformed data file aborts the pass with an error; data-quality
// issues only mark the report invalid.
func (s *Service) Verify(cfg dataset.Config) (*Report, error) {
	startTime := time.Now()

	seq, err := s.generator.Generate(cfg.Dir, cfg.Items, cfg.Titles, cfg.Quick)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	report := &Report{
		Dir:           cfg.Dir,
		MissingImages: []string{},
		Valid:         true,
	}

	var referenced []string
	for item := range seq {
		report.TotalItems++
		if item.ImageFileMissing {
			report.MissingImages = append(report.MissingImages, item.SourceImage)
			report.Valid = false
		}
		// an item without an image name has nothing to cross-check
		if name := item.ImageName(); name != "" {
			referenced = append(referenced, name)
		}
	}

	images, err := s.CheckImages(cfg, referenced)
	if err != nil {
		return nil, err
	}
	report.Images = images
	if !images.Valid {
		report.Valid = false
	}

	report.GeneratedAt = time.Now().Format(time.RFC3339)
	report.ExecutionTime = time.Since(startTime).String()

	return report, nil
}

// Process streams the dataset's normalized records to fn without per-item warnings.
// It stops at the first error returned by fn and reports how many records were handled.
func (s *Service) Process(cfg dataset.Config, fn func(regions.NormalizedItem) error) (int, error) {
	seq, err := s.generator.Generate(cfg.Dir, cfg.Items, cfg.Titles, false)
	if err != nil {
		return 0, fmt.Errorf("failed to load dataset: %w", err)
	}

	processed := 0
	for item := range seq {
		s.logger.Info("Processing image", zap.String("image", item.SourceImage), zap.Int("regions", len(item.Regions)))
		if err := fn(item); err != nil {
			return processed, fmt.Errorf("failed to process %s: %w", item.SourceImage, err)
		}
		processed++
	}

	return processed, nil
}
