package agents

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"google.golang.org/adk/model"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/genai"
)

// NewGeminiConfig creates the Gemini models for a run: the default one and one
// per distinct override. Models with the same name are shared.
func NewGeminiConfig(ctx context.Context, apiKey, defaultModel string, overrides map[string]string, search bool) (Config, error) {
	if err := CheckModelOverrides(overrides); err != nil {
		return Config{}, err
	}

	cache := map[string]model.LLM{}
	get := func(name string) (model.LLM, error) {
		if m, ok := cache[name]; ok {
			return m, nil
		}
		m, err := gemini.NewModel(ctx, name, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create model %s: %w", name, err)
		}
		cache[name] = m
		return m, nil
	}

	def, err := get(defaultModel)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Model: def, Models: map[string]model.LLM{}, Search: search}
	for step, name := range overrides {
		if name == "" || name == defaultModel {
			continue
		}
		m, err := get(name)
		if err != nil {
			return Config{}, err
		}
		cfg.Models[step] = m
	}
	return cfg, nil
}

// CheckModelOverrides rejects overrides keyed by anything but a step that
// calls a model.
func CheckModelOverrides(overrides map[string]string) error {
	for step := range overrides {
		if isParser(step) {
			return fmt.Errorf("models: step %s does not use a model", step)
		}
		if !slices.Contains(StepNames, step) {
			modelSteps := slices.DeleteFunc(slices.Clone(StepNames), isParser)
			return fmt.Errorf("models: unknown step %q (want one of %s)", step, strings.Join(modelSteps, ", "))
		}
	}
	return nil
}

func isParser(step string) bool {
	return step == ResumeParserName || step == JobParserName
}
