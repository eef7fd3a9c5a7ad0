package config

import (
	"os"
	"path/filepath"
	"testing"

	"costmap/server/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cities.json")

	require.NoError(t, SaveDataset(path, SupportedCities[:2]))

	cities, err := LoadDataset(path)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, SupportedCities[1], cities[1])
}

func TestLoadDataset_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadDataset(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read dataset file")

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0644))
	_, err = LoadDataset(broken)
	assert.ErrorContains(t, err, "failed to parse dataset")
}

func TestLoadDataset_RejectsNonSlugIDs(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "Uppercase", id: "Mumbai"},
		{name: "Space", id: "new delhi"},
		{name: "Trailing dash", id: "pune-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			city := SupportedCities[0]
			city.ID = tt.id
			path := filepath.Join(t.TempDir(), "cities.json")
			require.NoError(t, SaveDataset(path, []models.CityRecord{city}))

			_, err := LoadDataset(path)
			assert.ErrorIs(t, err, ErrInvalidCityID)
		})
	}
}

func TestResolveDataset(t *testing.T) {
	cities, err := ResolveDataset(nil)
	require.NoError(t, err)
	assert.Len(t, cities, len(SupportedCities))

	path := filepath.Join(t.TempDir(), "one.json")
	require.NoError(t, SaveDataset(path, SupportedCities[:1]))

	cfg := &Config{}
	cfg.Dataset.Path = path
	cities, err = ResolveDataset(cfg)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "mumbai", cities[0].ID)
}
