package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"scheduleSheet/internal/config"
	"scheduleSheet/internal/excel"
	"scheduleSheet/internal/logger"
	"scheduleSheet/internal/mapping"
	"scheduleSheet/internal/preview"
	"scheduleSheet/internal/schedule"
)

func main() {
	os.Exit(run())
}

// run dispatches the subcommand and returns the process exit code
func run() int {
	if len(os.Args) < 2 {
		printUsage()
		return 0
	}

	command := os.Args[1]

	logFile, err := logger.Setup("logs", slog.LevelInfo)
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		return 1
	}
	defer logFile.Close()

	cfg, err := config.LoadConfig("configs/config.toml")
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		fmt.Printf("Error loading config: %v\n", err)
		return 1
	}

	switch command {
	case "generate":
		outputPath := cfg.Output.Path
		if len(os.Args) >= 3 {
			outputPath = os.Args[2]
		}
		return runGenerate(cfg, outputPath)
	case "inspect":
		if len(os.Args) < 3 {
			fmt.Println("Error: inspect command requires a file or directory path")
			fmt.Println("Usage: schedsheet inspect <path>")
			return 1
		}
		return runInspect(cfg, os.Args[2])
	case "preview":
		if len(os.Args) < 3 {
			fmt.Println("Error: preview command requires a file path")
			fmt.Println("Usage: schedsheet preview <file>")
			return 1
		}
		return runPreview(cfg, os.Args[2])
	case "suggest-headers":
		if len(os.Args) < 3 {
			fmt.Println("Error: suggest-headers command requires a file path")
			fmt.Println("Usage: schedsheet suggest-headers <file>")
			return 1
		}
		return runSuggestHeaders(cfg, os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Println("SchedSheet - Environment Schedule Workbook Tool")
	fmt.Println("\nUsage:")
	fmt.Println("  schedsheet generate [output_file]     - Write the example schedule workbook")
	fmt.Println("  schedsheet inspect <file|directory>   - Summarise schedule workbooks")
	fmt.Println("  schedsheet preview <file>             - Browse a schedule workbook interactively")
	fmt.Println("  schedsheet suggest-headers <file>     - Ask Gemini to map unrecognised headers")
}

func mappingFilePath(cfg *config.Config) string {
	return filepath.Join(cfg.Output.OutputDirectory, "header_mapping.json")
}

func styleFromConfig(cfg *config.Config) excel.Style {
	return excel.Style{
		HeaderFill:      cfg.Style.HeaderFill,
		HeaderFontColor: cfg.Style.HeaderFontColor,
		HeaderFontSize:  cfg.Style.HeaderFontSize,
		HeaderRowHeight: cfg.Style.HeaderRowHeight,
		DataRowHeight:   cfg.Style.DataRowHeight,
		DateFormat:      cfg.Style.DateFormat,
	}
}

func runGenerate(cfg *config.Config, outputPath string) int {
	logger.Info("Starting generate operation", "output", outputPath)

	table := schedule.ExampleTable()
	table.Title = cfg.Output.SheetTitle

	err := excel.GenerateFile(outputPath, table, styleFromConfig(cfg))
	if err != nil {
		logger.Error("Generate operation failed", "error", err)
		fmt.Printf("Error generating workbook: %v\n", err)
		return 1
	}

	fmt.Printf("✓ Schedule workbook written: %s\n", outputPath)
	fmt.Printf("✓ %d records\n", len(table.Records))
	return 0
}

func loadOverrides(cfg *config.Config) map[string]string {
	overrides, err := mapping.LoadOverrides(mappingFilePath(cfg))
	if err != nil {
		logger.Warn("Ignoring unreadable header mapping file", "error", err)
		return map[string]string{}
	}
	return overrides
}

func runInspect(cfg *config.Config, path string) int {
	logger.Info("Starting inspect operation", "path", path)

	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return 1
	}

	fields := schedule.Fields()
	overrides := loadOverrides(cfg)

	var results []*excel.ReadResult
	if info.IsDir() {
		results, err = excel.ReadSchedulesInDirectory(path, fields, overrides)
	} else {
		var result *excel.ReadResult
		result, err = excel.ReadSchedule(path, fields, overrides)
		results = append(results, result)
	}
	if err != nil {
		logger.Error("Inspect operation failed", "error", err)
		fmt.Printf("Error reading schedule: %v\n", err)
		return 1
	}

	if len(results) == 0 {
		fmt.Printf("No schedule workbooks found in: %s\n", path)
		return 0
	}

	for _, result := range results {
		fmt.Println(preview.RenderSummary(result))
	}
	return 0
}

func runPreview(cfg *config.Config, path string) int {
	logger.Info("Starting preview operation", "path", path)

	fields := schedule.Fields()
	result, err := excel.ReadSchedule(path, fields, loadOverrides(cfg))
	if err != nil {
		logger.Error("Preview operation failed", "error", err)
		fmt.Printf("Error reading schedule: %v\n", err)
		return 1
	}

	uiConfig := preview.UIConfig{
		RowsPerPage: cfg.UI.RowsPerPage,
	}

	err = preview.Run(result.Sheet, fields, result.Records, uiConfig)
	if err != nil {
		logger.Error("Preview TUI failed", "error", err)
		fmt.Printf("Error running preview: %v\n", err)
		return 1
	}
	return 0
}

func runSuggestHeaders(cfg *config.Config, path string) int {
	logger.Info("Starting suggest-headers operation", "path", path)

	fields := schedule.Fields()
	overrides := loadOverrides(cfg)

	// A sheet with no recognisable rows still reports its headers
	result, err := excel.ReadSchedule(path, fields, overrides)
	if result == nil {
		logger.Error("Failed to read schedule headers", "error", err)
		fmt.Printf("Error reading schedule: %v\n", err)
		return 1
	}

	if len(result.Unmatched) == 0 {
		fmt.Println("✓ Every header already maps to a schedule field")
		return 0
	}

	fmt.Printf("Unrecognised headers (%d):\n", len(result.Unmatched))
	for _, h := range result.Unmatched {
		fmt.Printf("   - %s\n", h)
	}

	ctx := context.Background()
	mapper, err := mapping.NewAIMapper(ctx, mapping.GetGeminiAPIKey(), fields, mapping.AIOptions{
		Model:         cfg.AI.Model,
		Temperature:   cfg.AI.Temperature,
		MinConfidence: cfg.AI.MinConfidence,
	})
	if err != nil {
		fmt.Printf("Error initialising Gemini: %v\n", err)
		return 1
	}
	defer mapper.Close()

	suggestions, err := mapper.SuggestMappings(ctx, result.Unmatched)
	if err != nil {
		logger.Error("AI header mapping failed", "error", err)
		fmt.Printf("Error requesting header mappings: %v\n", err)
		return 1
	}

	if len(suggestions) == 0 {
		fmt.Println("No confident mappings suggested")
		return 0
	}

	mappingPath := mappingFilePath(cfg)
	mappingConfig, err := mapping.LoadFromFile(mappingPath)
	if err != nil {
		mappingConfig = &mapping.MappingConfig{}
	}
	mappingConfig.Merge(suggestions)

	if err := mappingConfig.SaveToFile(mappingPath); err != nil {
		logger.Error("Failed to save header mappings", "error", err)
		fmt.Printf("Error saving header mappings: %v\n", err)
		return 1
	}

	for _, s := range suggestions {
		fmt.Printf("✓ '%s' → %s (%.2f confidence)\n", s.Header, s.FieldKey, s.Confidence)
	}
	fmt.Printf("✓ Header mappings saved to: %s\n", mappingPath)
	return 0
}
