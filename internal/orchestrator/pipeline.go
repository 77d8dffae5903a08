// Package orchestrator wires the pipeline steps into a single agent graph,
// runs it and picks the terminal step's answer out of the event stream.
package orchestrator

import (
	"fmt"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/workflowagents/parallelagent"
	"google.golang.org/adk/agent/workflowagents/sequentialagent"

	"github.com/muhammadolammi/resumeformatter/internal/agents"
)

const (
	PipelineName    = "resume_pipeline"
	AnalysisName    = "analysis"
	ResumeChainName = "resume_chain"
	JobChainName    = "job_chain"
)

// NewPipeline composes the steps as
//
//	[ analysis(resume_chain, job_chain), company_researcher, resume_writer ]
//
// where each chain is a parser followed by its analyst. With parallel set the
// two chains run side by side, otherwise one after the other.
func NewPipeline(steps *agents.Steps, parallel bool) (agent.Agent, error) {
	resumeChain, err := sequential(ResumeChainName, "Extracts and analyses the résumé",
		steps.ResumeParser, steps.ResumeAnalyst)
	if err != nil {
		return nil, err
	}
	jobChain, err := sequential(JobChainName, "Extracts and analyses the job description",
		steps.JobParser, steps.JobAnalyst)
	if err != nil {
		return nil, err
	}

	var analysis agent.Agent
	if parallel {
		analysis, err = parallelagent.New(parallelagent.Config{
			AgentConfig: agent.Config{
				Name:        AnalysisName,
				Description: "Runs the résumé and job description chains concurrently",
				SubAgents:   []agent.Agent{resumeChain, jobChain},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create agent %s: %w", AnalysisName, err)
		}
	} else {
		analysis, err = sequential(AnalysisName, "Runs the résumé and job description chains in turn",
			resumeChain, jobChain)
		if err != nil {
			return nil, err
		}
	}

	return sequential(PipelineName, "Rewrites a résumé for a job description",
		analysis, steps.CompanyResearcher, steps.ResumeWriter)
}

func sequential(name, description string, subAgents ...agent.Agent) (agent.Agent, error) {
	a, err := sequentialagent.New(sequentialagent.Config{
		AgentConfig: agent.Config{
			Name:        name,
			Description: description,
			SubAgents:   subAgents,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %s: %w", name, err)
	}
	return a, nil
}
