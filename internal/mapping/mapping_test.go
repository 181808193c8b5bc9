package mapping

import (
	"context"
	"path/filepath"
	"testing"

	"scheduleSheet/internal/schedule"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapper() *AIMapper {
	return &AIMapper{
		fields:  schedule.Fields(),
		options: AIOptions{MinConfidence: 0.8},
	}
}

func TestBuildMappingPromptListsHeadersAndFields(t *testing.T) {
	prompt := testMapper().buildMappingPrompt([]string{"Owner", "預計開始"})

	assert.Contains(t, prompt, "- Owner\n")
	assert.Contains(t, prompt, "- 預計開始\n")
	assert.Contains(t, prompt, "- startDate: 驗證起日 (date)\n")
	assert.Contains(t, prompt, "- remark: 備注說明 (text)\n")
}

func TestParseMappingResponse(t *testing.T) {
	response := "```\nHeader|FieldKey|Confidence\n" +
		"預計開始|startDate|0.93\n" +
		"Owner|NO_MATCH|0.00\n" +
		"負責窗口|remark|0.55\n" +
		"上線日|goLiveDate|0.99\n" +
		"broken line\n" +
		"檔名|intermediateFile|0.9\n```"

	mappings := testMapper().parseMappingResponse(response)
	assert.Equal(t, []HeaderMapping{
		{Header: "預計開始", FieldKey: schedule.FieldStartDate, Confidence: 0.93},
		{Header: "檔名", FieldKey: schedule.FieldIntermediateFile, Confidence: 0.9},
	}, mappings)
}

func TestResponseText(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	text, err := responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("a|task|"), genai.Text("0.9")}},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "a|task|0.9", text)
}

func TestSuggestMappingsWithoutHeaders(t *testing.T) {
	mappings, err := testMapper().SuggestMappings(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, mappings)
}

func TestNewAIMapperRequiresKey(t *testing.T) {
	_, err := NewAIMapper(context.Background(), "", schedule.Fields(), AIOptions{})
	assert.Error(t, err)
}

func TestMappingConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output", "header_mapping.json")

	overrides, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Empty(t, overrides)

	config := &MappingConfig{}
	config.Merge([]HeaderMapping{
		{Header: "Owner", FieldKey: schedule.FieldRemark, Confidence: 0.85},
		{Header: "Notes", IsIgnored: true},
	})
	config.Merge([]HeaderMapping{
		{Header: "Owner", FieldKey: schedule.FieldTask, Confidence: 0.9},
	})
	require.Len(t, config.Mappings, 2)
	require.NoError(t, config.SaveToFile(path))

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)

	overrides, err = LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Owner": schedule.FieldTask}, overrides)
}
