package agents

import (
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/adk/model"
)

type stubLLM struct{ name string }

func (s stubLLM) Name() string { return s.name }

func (s stubLLM) GenerateContent(context.Context, *model.LLMRequest, bool) iter.Seq2[*model.LLMResponse, error] {
	return func(func(*model.LLMResponse, error) bool) {}
}

func TestNewSteps(t *testing.T) {
	steps, err := NewSteps(Config{Model: stubLLM{"gemini-test"}})
	require.NoError(t, err)

	got := []string{
		steps.ResumeParser.Name(),
		steps.JobParser.Name(),
		steps.ResumeAnalyst.Name(),
		steps.JobAnalyst.Name(),
		steps.CompanyResearcher.Name(),
		steps.ResumeWriter.Name(),
	}
	assert.Equal(t, StepNames, got)
}

func TestNewSteps_RequiresModel(t *testing.T) {
	_, err := NewSteps(Config{})
	assert.ErrorContains(t, err, "no default model")
}

func TestConfigModelFor(t *testing.T) {
	def := stubLLM{"default"}
	pro := stubLLM{"pro"}
	cfg := Config{Model: def, Models: map[string]model.LLM{ResumeWriterName: pro, JobAnalystName: nil}}

	assert.Equal(t, pro, cfg.modelFor(ResumeWriterName))
	assert.Equal(t, def, cfg.modelFor(JobAnalystName))
	assert.Equal(t, def, cfg.modelFor(CompanyResearcherName))
}

func TestCheckModelOverrides(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[string]string
		wantErr   string
	}{
		{"none", nil, ""},
		{"llm steps", map[string]string{CompanyResearcherName: "gemini-2.5-pro", ResumeWriterName: "gemini-2.5-pro"}, ""},
		{"typo", map[string]string{"resume_writter": "gemini-2.5-pro"}, `unknown step "resume_writter"`},
		{"parser", map[string]string{JobParserName: "gemini-2.5-pro"}, "does not use a model"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckModelOverrides(tt.overrides)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewGeminiConfig_RejectsUnknownStep(t *testing.T) {
	_, err := NewGeminiConfig(context.Background(), "key", "gemini-2.5-flash", map[string]string{"writer": "gemini-2.5-pro"}, true)
	assert.ErrorContains(t, err, `unknown step "writer"`)
}

func TestConfigSearchTools(t *testing.T) {
	assert.Empty(t, Config{}.searchTools())
	assert.Len(t, Config{Search: true}.searchTools(), 1)
}

func TestPromptsReferencePublishedKeys(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		keys   []string
	}{
		{"resume analysis", resumeAnalysisPrompt(), []string{KeyResumeText}},
		{"job analysis", jobAnalysisPrompt(), []string{KeyJobText}},
		{"company research", companyResearchPrompt(true), []string{KeyJobAnalysis}},
		{"rewrite", rewritePrompt(), []string{KeyResumeAnalysis, KeyJobAnalysis, KeyCompanyProfile, KeyResumeText}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range tt.keys {
				assert.Contains(t, tt.prompt, "{"+key+"}")
			}
		})
	}
}

func TestCompanyResearchPromptMentionsSearchOnlyWhenEnabled(t *testing.T) {
	assert.Contains(t, companyResearchPrompt(true), "google_search")
	assert.NotContains(t, companyResearchPrompt(false), "google_search")
}
