package agents

import (
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model"
	"google.golang.org/adk/tool"
	"google.golang.org/adk/tool/geminitool"
)

// Config selects the models and tools the LLM steps use.
type Config struct {
	// Model is used by every step without an override.
	Model model.LLM
	// Models overrides the model per step name.
	Models map[string]model.LLM
	// Search enables Google Search for the research and rewrite steps.
	Search bool
}

func (c Config) modelFor(step string) model.LLM {
	if m, ok := c.Models[step]; ok && m != nil {
		return m
	}
	return c.Model
}

func (c Config) searchTools() []tool.Tool {
	if !c.Search {
		return nil
	}
	return []tool.Tool{geminitool.GoogleSearch{}}
}

// Steps holds one instance of every pipeline step. An agent can belong to a
// single parent, so every pipeline needs its own Steps.
type Steps struct {
	ResumeParser      agent.Agent
	JobParser         agent.Agent
	ResumeAnalyst     agent.Agent
	JobAnalyst        agent.Agent
	CompanyResearcher agent.Agent
	ResumeWriter      agent.Agent
}

// NewSteps creates all six pipeline steps.
func NewSteps(cfg Config) (*Steps, error) {
	if cfg.Model == nil {
		return nil, fmt.Errorf("no default model configured")
	}

	var (
		s   Steps
		err error
	)
	if s.ResumeParser, err = NewResumeParser(); err != nil {
		return nil, err
	}
	if s.JobParser, err = NewJobParser(); err != nil {
		return nil, err
	}
	if s.ResumeAnalyst, err = NewResumeAnalyst(cfg); err != nil {
		return nil, err
	}
	if s.JobAnalyst, err = NewJobAnalyst(cfg); err != nil {
		return nil, err
	}
	if s.CompanyResearcher, err = NewCompanyResearcher(cfg); err != nil {
		return nil, err
	}
	if s.ResumeWriter, err = NewResumeWriter(cfg); err != nil {
		return nil, err
	}
	return &s, nil
}

// NewResumeAnalyst analyses the extracted résumé text.
func NewResumeAnalyst(cfg Config) (agent.Agent, error) {
	return newLLMStep(llmagent.Config{
		Name:        ResumeAnalystName,
		Description: "Analyses the candidate's résumé in full detail",
		Model:       cfg.modelFor(ResumeAnalystName),
		Instruction: resumeAnalysisPrompt(),
		OutputKey:   KeyResumeAnalysis,
	})
}

// NewJobAnalyst analyses the extracted job description.
func NewJobAnalyst(cfg Config) (agent.Agent, error) {
	return newLLMStep(llmagent.Config{
		Name:        JobAnalystName,
		Description: "Extracts requirements, keywords and the employer from the job description",
		Model:       cfg.modelFor(JobAnalystName),
		Instruction: jobAnalysisPrompt(),
		OutputKey:   KeyJobAnalysis,
	})
}

// NewCompanyResearcher profiles the employer named in the job analysis.
func NewCompanyResearcher(cfg Config) (agent.Agent, error) {
	return newLLMStep(llmagent.Config{
		Name:        CompanyResearcherName,
		Description: "Researches the hiring company's vision, culture and goals",
		Model:       cfg.modelFor(CompanyResearcherName),
		Instruction: companyResearchPrompt(cfg.Search),
		Tools:       cfg.searchTools(),
		OutputKey:   KeyCompanyProfile,
	})
}

// NewResumeWriter is the terminal step: it rewrites the résumé from
// everything the earlier steps published.
func NewResumeWriter(cfg Config) (agent.Agent, error) {
	return newLLMStep(llmagent.Config{
		Name:        ResumeWriterName,
		Description: "Rewrites the full résumé for the target role",
		Model:       cfg.modelFor(ResumeWriterName),
		Instruction: rewritePrompt(),
		Tools:       cfg.searchTools(),
		OutputKey:   KeyFormattedCV,
	})
}

func newLLMStep(cfg llmagent.Config) (agent.Agent, error) {
	a, err := llmagent.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %s: %w", cfg.Name, err)
	}
	return a, nil
}
