package integrity

import (
	"errors"
	"testing"

	"region-cards/core/dataset"
	"region-cards/core/loader"
	"region-cards/core/storage"
	"region-cards/feature/regions"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const (
	testTitles = `{"lisbon": "Lisbon", "porto": "Porto", "faro": "Faro"}`
	testItems  = `[
		{"image": "a.png", "regions": {"lisbon": "#FF0000"}},
		{"image": "b.png", "regions": {"porto": "#00FF00", "faro": "#0000FF"}}
	]`
)

func setupDataset(t *testing.T, files map[string]string) storage.Client {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("res", 0o755))
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, "res/"+name, []byte(content), 0o644))
	}
	return storage.NewFromFs(fs)
}

func testConfig() dataset.Config {
	return dataset.Config{
		Dir:      "res",
		Items:    "items.json",
		Titles:   "titles.json",
		ImageExt: ".png",
		Quick:    true,
	}
}

func TestService_Verify(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		client := setupDataset(t, map[string]string{
			"items.json":  testItems,
			"titles.json": testTitles,
			"a.png":       "x",
			"b.png":       "x",
		})
		svc := NewService(client, zap.NewNop())

		report, err := svc.Verify(testConfig())
		require.NoError(t, err)

		assert.True(t, report.Valid)
		assert.Equal(t, 2, report.TotalItems)
		assert.Empty(t, report.MissingImages)
		assert.True(t, report.Images.Valid)
		assert.NotEmpty(t, report.GeneratedAt)
	})

	t.Run("MissingAndStray", func(t *testing.T) {
		client := setupDataset(t, map[string]string{
			"items.json":  testItems,
			"titles.json": testTitles,
			"a.png":       "x",
			"z.png":       "x",
		})
		core, logs := observer.New(zapcore.InfoLevel)
		svc := NewService(client, zap.New(core))

		report, err := svc.Verify(testConfig())
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.Equal(t, []string{"res/b.png"}, report.MissingImages)
		assert.Equal(t, []string{"z.png"}, report.Images.Stray)
		assert.Equal(t, []string{"b.png"}, report.Images.Missing)

		assert.Equal(t, 1, logs.FilterMessage("Image file does not exist").Len())
		assert.Equal(t, 1, logs.FilterMessage("Image file in directory but not referenced by data").Len())
	})

	t.Run("QuietWithoutQuick", func(t *testing.T) {
		client := setupDataset(t, map[string]string{
			"items.json":  testItems,
			"titles.json": testTitles,
			"a.png":       "x",
		})
		core, logs := observer.New(zapcore.InfoLevel)
		svc := NewService(client, zap.New(core))

		cfg := testConfig()
		cfg.Quick = false
		report, err := svc.Verify(cfg)
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.Zero(t, logs.FilterMessage("Image file does not exist").Len())
	})

	t.Run("ItemWithoutImage", func(t *testing.T) {
		client := setupDataset(t, map[string]string{
			"items.json":  `[{"regions": {"lisbon": "#FF0000"}}, {"image": "a.png", "regions": {}}]`,
			"titles.json": testTitles,
			"a.png":       "x",
		})
		svc := NewService(client, zap.NewNop())

		report, err := svc.Verify(testConfig())
		require.NoError(t, err)

		assert.False(t, report.Valid)
		assert.Equal(t, []string{"res/"}, report.MissingImages)
		assert.Empty(t, report.Images.Missing)
		assert.Empty(t, report.Images.Stray)
		assert.True(t, report.Images.Valid)
	})

	t.Run("MissingItemsFile", func(t *testing.T) {
		client := setupDataset(t, map[string]string{"titles.json": testTitles})
		svc := NewService(client, zap.NewNop())

		report, err := svc.Verify(testConfig())
		assert.Nil(t, report)

		var missing *loader.MissingFileError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, "res/items.json", missing.Path)
	})
}

func TestService_CheckDataFiles(t *testing.T) {
	client := setupDataset(t, map[string]string{"items.json": testItems})
	svc := NewService(client, zap.NewNop())

	missing, err := svc.CheckDataFiles(testConfig())
	require.NoError(t, err)
	assert.Equal(t, []string{"res/titles.json"}, missing)
}

func TestService_Process(t *testing.T) {
	client := setupDataset(t, map[string]string{
		"items.json":  testItems,
		"titles.json": testTitles,
	})

	t.Run("AllRecords", func(t *testing.T) {
		svc := NewService(client, zap.NewNop())

		var got []regions.NormalizedItem
		n, err := svc.Process(testConfig(), func(item regions.NormalizedItem) error {
			got = append(got, item)
			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, 2, n)
		require.Len(t, got, 2)
		assert.Equal(t, "res/a.png", got[0].SourceImage)
		assert.Len(t, got[1].Regions, 2)
	})

	t.Run("StopsOnError", func(t *testing.T) {
		svc := NewService(client, zap.NewNop())

		calls := 0
		n, err := svc.Process(testConfig(), func(item regions.NormalizedItem) error {
			calls++
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, n)
		assert.Equal(t, 1, calls)
	})

	t.Run("NoWarnings", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		svc := NewService(client, zap.New(core))

		_, err := svc.Process(testConfig(), func(regions.NormalizedItem) error { return nil })
		require.NoError(t, err)

		assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
		assert.Equal(t, 2, logs.FilterMessage("Processing image").Len())
	})
}
