package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	m "htmlreport.dev/pkg/htmlreport/internal/model"
)

// DescriptionStore loads group docs and test descriptions.
type DescriptionStore interface {
	LoadDescriptions(path m.Path) (m.Descriptions, error)
}

// YAMLDescriptionStore reads descriptions from a YAML file of the form
//
//	groups:
//	  example.com/shop.TestCart: Cart behaviour.
//	tests:
//	  TestCart/empty: Empty cart totals zero.
type YAMLDescriptionStore struct{}

// NewYAMLDescriptionStore constructs a YAMLDescriptionStore.
func NewYAMLDescriptionStore() *YAMLDescriptionStore {
	return &YAMLDescriptionStore{}
}

// LoadDescriptions parses path. An empty path yields empty descriptions.
func (s *YAMLDescriptionStore) LoadDescriptions(path m.Path) (m.Descriptions, error) {
	if path == "" {
		return m.Descriptions{}, nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("descriptions file not found", "path", path)
		}

		return m.Descriptions{}, fmt.Errorf("read descriptions: %w", err)
	}

	var desc m.Descriptions
	if err := yaml.Unmarshal(data, &desc); err != nil {
		slog.Error("failed to parse descriptions", "path", path, "error", err)
		return m.Descriptions{}, fmt.Errorf("parse descriptions %s: %w", path, err)
	}

	slog.Debug("loaded descriptions", "path", path, "groups", len(desc.Groups), "tests", len(desc.Tests))

	return desc, nil
}
