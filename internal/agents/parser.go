package agents

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/muhammadolammi/resumeformatter/internal/documents"
)

// Loader extracts the text of a document.
type Loader func(path string) (string, error)

// NewResumeParser reads the résumé named by resume_path and publishes its
// text as resume_text. It never calls a model.
func NewResumeParser() (agent.Agent, error) {
	return NewParser(ResumeParserName, "Extracts the résumé text", KeyResumePath, KeyResumeText, documents.Load)
}

// NewJobParser reads the job description named by job_path and publishes its
// text as job_text.
func NewJobParser() (agent.Agent, error) {
	return NewParser(JobParserName, "Extracts the job description text", KeyJobPath, KeyJobText, documents.Load)
}

// NewParser builds a step that loads the document whose path is stored under
// pathKey and publishes its text under textKey.
func NewParser(name, description, pathKey, textKey string, load Loader) (agent.Agent, error) {
	a, err := agent.New(agent.Config{
		Name:        name,
		Description: description,
		Run: func(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
			return func(yield func(*session.Event, error) bool) {
				path, err := stateString(ctx.Session().State(), pathKey)
				if err != nil {
					yield(nil, fmt.Errorf("%s: %w", name, err))
					return
				}

				text, err := load(path)
				if err != nil {
					yield(nil, fmt.Errorf("%s: %w", name, err))
					return
				}
				if strings.TrimSpace(text) == "" {
					yield(nil, fmt.Errorf("%s: %s: %w", name, path, documents.ErrEmptyDocument))
					return
				}

				// Steps later in a parallel branch read the text before the
				// runner applies the event's delta.
				if err := ctx.Session().State().Set(textKey, text); err != nil {
					yield(nil, fmt.Errorf("%s: failed to store %s: %w", name, textKey, err))
					return
				}

				event := session.NewEvent(ctx.InvocationID())
				event.Author = name
				event.Branch = ctx.Branch()
				event.Content = genai.NewContentFromText(
					fmt.Sprintf("Extracted %d characters from %s.", utf8.RuneCountInString(text), filepath.Base(path)),
					genai.RoleModel,
				)
				event.Actions.StateDelta = map[string]any{textKey: text}
				yield(event, nil)
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %s: %w", name, err)
	}
	return a, nil
}

func stateString(state session.State, key string) (string, error) {
	v, err := state.Get(key)
	if err != nil {
		return "", fmt.Errorf("missing %s in session state: %w", key, err)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s in session state is not a path: %v", key, v)
	}
	return s, nil
}
