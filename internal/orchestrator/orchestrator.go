package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"

	"github.com/muhammadolammi/resumeformatter/internal/agents"
)

// Options configures an Orchestrator.
type Options struct {
	AppName  string
	UserID   string
	Parallel bool
	Logger   *slog.Logger
	// Observe, when set, sees every event of every run.
	Observe func(*session.Event)
}

// Orchestrator runs the résumé pipeline. One Orchestrator can serve
// concurrent runs; each run gets its own session.
type Orchestrator struct {
	runner   *runner.Runner
	sessions session.Service
	appName  string
	userID   string
	terminal string
	observe  func(*session.Event)
	logger   *slog.Logger
}

// New builds the pipeline from cfg and a runner backed by in-memory sessions.
func New(cfg agents.Config, opts Options) (*Orchestrator, error) {
	steps, err := agents.NewSteps(cfg)
	if err != nil {
		return nil, err
	}
	root, err := NewPipeline(steps, opts.Parallel)
	if err != nil {
		return nil, err
	}

	sessions := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        opts.AppName,
		Agent:          root,
		SessionService: sessions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		runner:   r,
		sessions: sessions,
		appName:  opts.AppName,
		userID:   opts.UserID,
		terminal: agents.ResumeWriterName,
		observe:  opts.Observe,
		logger:   logger,
	}, nil
}

// FormatResume rewrites the résumé at resumePath for the job description at
// jobPath and returns the terminal step's text. Both files must exist; that
// is checked before any step runs.
func (o *Orchestrator) FormatResume(ctx context.Context, resumePath, jobPath string) (string, error) {
	resumeAbs, err := inputPath("CV", resumePath)
	if err != nil {
		return "", err
	}
	jobAbs, err := inputPath("JD", jobPath)
	if err != nil {
		return "", err
	}

	created, err := o.sessions.Create(ctx, &session.CreateRequest{
		AppName:   o.appName,
		UserID:    o.userID,
		SessionID: uuid.NewString(),
		State: map[string]any{
			agents.KeyResumePath: resumeAbs,
			agents.KeyJobPath:    jobAbs,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	sess := created.Session
	defer func() {
		err := o.sessions.Delete(context.WithoutCancel(ctx), &session.DeleteRequest{
			AppName:   sess.AppName(),
			UserID:    sess.UserID(),
			SessionID: sess.ID(),
		})
		if err != nil {
			o.logger.Warn("failed to delete session", "session_id", sess.ID(), "error", err)
		}
	}()

	o.logger.Debug("pipeline started", "session_id", sess.ID(), "cv", resumeAbs, "jd", jobAbs)

	query := genai.NewContentFromText(fmt.Sprintf("CV at %s ; JD at %s", resumeAbs, jobAbs), genai.RoleUser)
	events := o.runner.Run(ctx, sess.UserID(), sess.ID(), query, agent.RunConfig{})

	result, err := Collect(events, o.terminal, o.observe)
	if err != nil {
		return "", err
	}
	o.logger.Debug("pipeline finished", "session_id", sess.ID(), "chars", len(result))
	return result, nil
}

// inputPath resolves path and checks it names an existing regular file.
func inputPath(what, path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid %s path %s: %w", what, path, err)
	}
	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%s file not found: %s: %w", what, path, err)
	}
	if err != nil {
		return "", fmt.Errorf("cannot access %s file %s: %w", what, path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s path is a directory: %s", what, path)
	}
	return abs, nil
}

// LogProgress returns an observer that logs each step's output as it arrives.
func LogProgress(logger *slog.Logger) func(*session.Event) {
	return func(event *session.Event) {
		if event.Partial {
			return
		}
		text := EventText(event)
		if text == "" {
			return
		}
		logger.Info("step output", "step", event.Author, "preview", preview(text, 120))
		logger.Debug("step output full", "step", event.Author, "text", text)
	}
}

func preview(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
