package config

import (
	"fmt"
	"os"
	"path/filepath"
	"scheduleSheet/internal/logger"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Output OutputConfig `toml:"output"`
	Style  StyleConfig  `toml:"style"`
	UI     UIConfig     `toml:"ui"`
	AI     AIConfig     `toml:"ai"`
}

type OutputConfig struct {
	Path            string `toml:"path"`
	SheetTitle      string `toml:"sheet_title"`
	OutputDirectory string `toml:"output_directory"`
}

type StyleConfig struct {
	HeaderFill      string  `toml:"header_fill"`
	HeaderFontColor string  `toml:"header_font_color"`
	HeaderFontSize  float64 `toml:"header_font_size"`
	HeaderRowHeight float64 `toml:"header_row_height"`
	DataRowHeight   float64 `toml:"data_row_height"`
	DateFormat      string  `toml:"date_format"`
}

type UIConfig struct {
	RowsPerPage int `toml:"rows_per_page"`
}

type AIConfig struct {
	Model         string  `toml:"model"`
	Temperature   float32 `toml:"temperature"`
	MinConfidence float64 `toml:"min_confidence"`
}

// Default returns the configuration that reproduces the example workbook
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Path:            "resource/範例_藍圖之對應時程環境規劃.xlsx",
			SheetTitle:      "時程規劃",
			OutputDirectory: "data/output",
		},
		Style: StyleConfig{
			HeaderFill:      "4472C4",
			HeaderFontColor: "FFFFFF",
			HeaderFontSize:  12,
			HeaderRowHeight: 25,
			DataRowHeight:   20,
			DateFormat:      "yyyy-mm-dd",
		},
		UI: UIConfig{
			RowsPerPage: 10,
		},
		AI: AIConfig{
			Model:         "gemini-2.0-flash-exp",
			Temperature:   0.1,
			MinConfidence: 0.8,
		},
	}
}

// LoadConfig loads configuration from the specified config file path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configDir := filepath.Dir(configPath)
		if err := os.MkdirAll(configDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %v", err)
		}

		defaultConfig := Default()
		err = SaveConfig(configPath, defaultConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to create default config: %v", err)
		}

		logger.Info("Created default config file", "path", configPath)
		return defaultConfig, nil
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file %s: %v", configPath, err)
	}

	config.applyDefaults()

	logger.Info("Loaded configuration", "path", configPath)
	return &config, nil
}

func (c *Config) applyDefaults() {
	d := Default()

	if c.Output.Path == "" {
		c.Output.Path = d.Output.Path
	}
	if c.Output.SheetTitle == "" {
		c.Output.SheetTitle = d.Output.SheetTitle
	}
	if c.Output.OutputDirectory == "" {
		c.Output.OutputDirectory = d.Output.OutputDirectory
	}
	if c.Style.HeaderFill == "" {
		c.Style.HeaderFill = d.Style.HeaderFill
	}
	if c.Style.HeaderFontColor == "" {
		c.Style.HeaderFontColor = d.Style.HeaderFontColor
	}
	if c.Style.HeaderFontSize == 0 {
		c.Style.HeaderFontSize = d.Style.HeaderFontSize
	}
	if c.Style.HeaderRowHeight == 0 {
		c.Style.HeaderRowHeight = d.Style.HeaderRowHeight
	}
	if c.Style.DataRowHeight == 0 {
		c.Style.DataRowHeight = d.Style.DataRowHeight
	}
	if c.Style.DateFormat == "" {
		c.Style.DateFormat = d.Style.DateFormat
	}
	if c.UI.RowsPerPage == 0 {
		c.UI.RowsPerPage = d.UI.RowsPerPage
	}
	if c.AI.Model == "" {
		c.AI.Model = d.AI.Model
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = d.AI.Temperature
	}
	if c.AI.MinConfidence == 0 {
		c.AI.MinConfidence = d.AI.MinConfidence
	}
}

// SaveConfig saves configuration to the specified config file path
func SaveConfig(configPath string, config *Config) error {
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	err = encoder.Encode(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %v", err)
	}

	logger.Info("Saved configuration", "path", configPath)
	return nil
}
