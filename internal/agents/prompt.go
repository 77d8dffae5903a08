package agents

func resumeAnalysisPrompt() string {
	return `You are a résumé comprehension assistant.

Read the COMPLETE résumé text below and produce an exhaustive analysis covering every section:
1. The candidate's profile: name, contact details, summary or objective.
2. Every technical and soft skill mentioned.
3. All work experience: every position with its responsibilities and achievements.
4. The full educational background: degrees, institutions, dates.
5. Publications and research, listing every item.
6. Certifications, licenses and awards.
7. Recurring keywords and competencies.
8. The professional context of the candidate's background.
9. Strengths and areas of expertise.

Capture everything. Do not summarize away details: the rewriting step depends on a complete picture.
If the résumé text is blank, say so and stop.

Résumé text:
{resume_text}
`
}

func jobAnalysisPrompt() string {
	return `You are a job description comprehension assistant.

Using the job description below:
1. Identify the hiring company by name.
2. List the key requirements and responsibilities of the role.
3. Extract required skills, qualifications and experience levels.
4. Determine the critical keywords and competencies an applicant tracking system would look for.
5. Describe the context and seniority of the role.

Start your answer with a line of the form "Company: <name>" (use "Company: unknown" if it is not stated).
If the job description is blank, say so and stop.

Job description:
{job_text}
`
}

func companyResearchPrompt(search bool) string {
	lookup := "From what you know about the company,"
	if search {
		lookup = "Use the google_search tool to look the company up and,"
	}
	return `You are a company research assistant.

The analysis of the job description below names the hiring company on its first line.
` + lookup + ` describe:
1. The company's vision, mission and core values.
2. Its core business and industry focus.
3. Its work culture and organizational goals.
4. What sets it apart from its competitors.

Keep the profile factual and concise; it is used to adjust the tone of a résumé.
If the company is unknown, describe the kind of employer the posting suggests instead.

Job description analysis:
{job_analysis}
`
}

func rewritePrompt() string {
	return `You are a résumé rewriting assistant.

Produce a COMPLETE, FULL-LENGTH rewritten résumé that maximizes its applicant tracking system (ATS) score for the target role.

Context from the previous steps:
1. Résumé analysis: the candidate's full profile, skills, experience, education and publications.
{resume_analysis}

2. Job description analysis: the requirements and key qualifications of the role.
{job_analysis}

3. Company profile: the employer's vision, culture and goals.
{company_profile}

4. Original résumé text, for reference.
{resume_text}

Rules:
- Keep EVERY section of the original résumé: summary, skills, experience, education, publications, certifications, awards and anything else.
- Never omit or shorten a section. The result must be at least as long as the original.
- Align the content with the job requirements while keeping all original information.
- Work the keywords of the job description naturally into every section, without keyword stuffing.
- Emphasize the experience and skills that match the role.
- Adjust tone and emphasis to the company culture.
- Every claim must come from the original résumé.

Layout:
- Section headers in CAPS, each on its own line.
- A blank line between sections.
- Bullet points ("- ") for lists.
- No tables, columns or other complex formatting.
- Plain text that converts cleanly to Markdown or HTML.

Output only the complete rewritten résumé.
`
}
