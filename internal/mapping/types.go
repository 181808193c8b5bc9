package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// HeaderMapping binds a workbook header to a schedule field key
type HeaderMapping struct {
	Header     string  `json:"header"`
	FieldKey   string  `json:"field_key"`
	Confidence float64 `json:"confidence"`
	IsIgnored  bool    `json:"is_ignored"`
}

// MappingConfig holds all header mappings
type MappingConfig struct {
	Mappings []HeaderMapping `json:"mappings"`
}

// Overrides returns header -> field key for every non-ignored mapping
func (mc *MappingConfig) Overrides() map[string]string {
	overrides := make(map[string]string, len(mc.Mappings))
	for _, m := range mc.Mappings {
		if !m.IsIgnored && m.FieldKey != "" {
			overrides[m.Header] = m.FieldKey
		}
	}
	return overrides
}

// Merge adds mappings, replacing any existing entry for the same header
func (mc *MappingConfig) Merge(mappings []HeaderMapping) {
	index := make(map[string]int, len(mc.Mappings))
	for i, m := range mc.Mappings {
		index[m.Header] = i
	}
	for _, m := range mappings {
		if i, ok := index[m.Header]; ok {
			mc.Mappings[i] = m
			continue
		}
		index[m.Header] = len(mc.Mappings)
		mc.Mappings = append(mc.Mappings, m)
	}
}

// SaveToFile saves the mapping configuration to a JSON file
func (mc *MappingConfig) SaveToFile(path string) error {
	data, err := json.MarshalIndent(mc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create mapping directory: %v", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads mapping configuration from a JSON file
func LoadFromFile(path string) (*MappingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config MappingConfig
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mapping file %s: %v", path, err)
	}

	return &config, nil
}

// LoadOverrides returns the overrides stored at path, or none if the file is absent
func LoadOverrides(path string) (map[string]string, error) {
	config, err := LoadFromFile(path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return config.Overrides(), nil
}
