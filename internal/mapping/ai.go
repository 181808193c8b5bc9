package mapping

import (
	"context"
	"fmt"
	"os"
	"scheduleSheet/internal/logger"
	"scheduleSheet/internal/schedule"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const noMatch = "NO_MATCH"

// AIOptions tunes the Gemini request
type AIOptions struct {
	Model         string
	Temperature   float32
	MinConfidence float64
	Timeout       time.Duration
}

// AIMapper asks Gemini which schedule field an unknown header belongs to
type AIMapper struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	fields  []schedule.Field
	options AIOptions
}

// NewAIMapper creates a new AI mapper instance
func NewAIMapper(ctx context.Context, apiKey string, fields []schedule.Field, opts AIOptions) (*AIMapper, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	logger.Info("Initializing AI mapper with Gemini API", "model", opts.Model)

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error("Failed to create Gemini client", "error", err)
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}

	model := client.GenerativeModel(opts.Model)
	model.SetTemperature(opts.Temperature)

	return &AIMapper{
		client:  client,
		model:   model,
		fields:  fields,
		options: opts,
	}, nil
}

// Close cleans up the AI mapper resources
func (ai *AIMapper) Close() error {
	if ai.client != nil {
		return ai.client.Close()
	}
	return nil
}

// SuggestMappings returns confident header mappings for headers
func (ai *AIMapper) SuggestMappings(ctx context.Context, headers []string) ([]HeaderMapping, error) {
	if len(headers) == 0 {
		return nil, nil
	}

	prompt := ai.buildMappingPrompt(headers)
	logger.Debug("AI prompt", "length", len(prompt), "headers", len(headers))

	ctx, cancel := context.WithTimeout(ctx, ai.options.Timeout)
	defer cancel()

	start := time.Now()
	resp, err := ai.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Error("Gemini API request failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("failed to generate AI response: %v", err)
	}
	logger.Info("Received response from Gemini API", "duration", time.Since(start))

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	logger.Debug("AI response", "content", text)

	return ai.parseMappingResponse(text), nil
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response generated from AI")
	}

	var b strings.Builder
	for i, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		} else {
			logger.Warn("Non-text part in response", "index", i, "type", fmt.Sprintf("%T", part))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no response generated from AI")
	}
	return b.String(), nil
}

// buildMappingPrompt creates a prompt for the AI to map headers onto field keys
func (ai *AIMapper) buildMappingPrompt(headers []string) string {
	var b strings.Builder

	b.WriteString(`You are mapping spreadsheet headers of an environment schedule (migration and parallel-test planning) onto a fixed set of fields.

TASK: Map each header to the most appropriate field key, or "NO_MATCH" if uncertain.

HEADERS:
`)
	for _, h := range headers {
		fmt.Fprintf(&b, "- %s\n", h)
	}

	b.WriteString("\nFIELDS (key: canonical header):\n")
	for _, f := range ai.fields {
		kind := "text"
		if f.Kind == schedule.KindDate {
			kind = "date"
		}
		fmt.Fprintf(&b, "- %s: %s (%s)\n", f.Key, f.Header, kind)
	}

	b.WriteString(`
INSTRUCTIONS:
1. Only suggest mappings you are confident about (>80% certainty)
2. Consider semantic meaning, not just text similarity
3. Map each header to AT MOST ONE field key

OUTPUT FORMAT (one line per header, nothing else):
Header|FieldKey|Confidence

EXAMPLES:
Env Name|environment|0.95
預計開始|startDate|0.90
Owner|NO_MATCH|0.00
`)
	return b.String()
}

// parseMappingResponse keeps well-formed lines naming a known field above the confidence threshold
func (ai *AIMapper) parseMappingResponse(response string) []HeaderMapping {
	var mappings []HeaderMapping
	skipped := 0

	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		line = strings.Trim(strings.TrimSpace(line), "`")
		if line == "" || strings.HasPrefix(line, "Header|") {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) != 3 {
			skipped++
			continue
		}

		header := strings.TrimSpace(parts[0])
		key := strings.TrimSpace(parts[1])

		var confidence float64
		if _, err := fmt.Sscanf(strings.TrimSpace(parts[2]), "%f", &confidence); err != nil {
			confidence = 0
		}

		if key == noMatch || confidence < ai.options.MinConfidence {
			skipped++
			continue
		}
		if _, ok := schedule.FieldByKey(ai.fields, key); !ok {
			logger.Warn("AI suggested unknown field", "header", header, "field", key)
			skipped++
			continue
		}

		mappings = append(mappings, HeaderMapping{
			Header:     header,
			FieldKey:   key,
			Confidence: confidence,
		})
	}

	logger.Info("Parsed AI mappings", "accepted", len(mappings), "skipped", skipped)
	return mappings
}

// GetGeminiAPIKey gets the API key from environment variable
func GetGeminiAPIKey() string {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY environment variable not set")
	}
	return apiKey
}
