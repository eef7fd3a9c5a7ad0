package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"costmap/server/internal/models"
)

// ErrInvalidCityID is returned for dataset ids that are not lowercase slugs
var ErrInvalidCityID = errors.New("city id must be a lowercase slug")

// datasetFile is the on-disk shape of a city table
type datasetFile struct {
	Cities []models.CityRecord `json:"cities"`
}

// LoadDataset reads a city table from a JSON file. Only the id format is
// checked here; building a store validates the rest.
func LoadDataset(path string) ([]models.CityRecord, error) {
	// Get absolute path to dataset file
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	var dataset datasetFile
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}

	for _, city := range dataset.Cities {
		if city.ID != NormalizeCity(city.ID) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCityID, city.ID)
		}
	}

	return dataset.Cities, nil
}

// SaveDataset writes a city table to a JSON file
func SaveDataset(path string, cities []models.CityRecord) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	// Marshal dataset with pretty printing
	data, err := json.MarshalIndent(datasetFile{Cities: cities}, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal dataset: %w", err)
	}

	if err := os.WriteFile(absPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}

	return nil
}

// ResolveDataset returns the table configured by cfg: the file at
// Dataset.Path when set, the built-in table otherwise.
func ResolveDataset(cfg *Config) ([]models.CityRecord, error) {
	if cfg == nil || cfg.Dataset.Path == "" {
		return SupportedCities, nil
	}
	return LoadDataset(cfg.Dataset.Path)
}
