// Package agents builds the steps of the résumé pipeline. Each step publishes
// one keyed value into the session state that later steps read.
package agents

// Session state keys.
const (
	KeyResumePath     = "resume_path"
	KeyJobPath        = "job_path"
	KeyResumeText     = "resume_text"
	KeyJobText        = "job_text"
	KeyResumeAnalysis = "resume_analysis"
	KeyJobAnalysis    = "job_analysis"
	KeyCompanyProfile = "company_profile"
	KeyFormattedCV    = "formatted_resume"
)

// Step names. Per-step model overrides are keyed by these.
const (
	ResumeParserName      = "resume_parser"
	JobParserName         = "job_parser"
	ResumeAnalystName     = "resume_analyst"
	JobAnalystName        = "job_analyst"
	CompanyResearcherName = "company_researcher"
	ResumeWriterName      = "resume_writer"
)

// StepNames lists every step in pipeline order. Parsers are listed too;
// they never call a model.
var StepNames = []string{
	ResumeParserName,
	JobParserName,
	ResumeAnalystName,
	JobAnalystName,
	CompanyResearcherName,
	ResumeWriterName,
}
