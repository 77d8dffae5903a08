// Package worker formats résumés queued as jobs: documents come from object
// storage, results go back to it and job status is tracked in Postgres and
// broadcast on the message bus.
package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/muhammadolammi/resumeformatter/internal/database"
	"github.com/muhammadolammi/resumeformatter/internal/documents"
	"github.com/muhammadolammi/resumeformatter/internal/formatter"
	"github.com/muhammadolammi/resumeformatter/internal/storage"
)

// Job statuses.
const (
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// ErrBadMessage marks queue messages that cannot be decoded into a job.
var ErrBadMessage = errors.New("invalid job message")

// Message is the body of a queued job.
type Message struct {
	ID uuid.UUID `json:"id"`
}

// ObjectStore holds input documents and formatted outputs.
type ObjectStore interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key, contentType string, body []byte) error
}

// JobStore persists job records.
type JobStore interface {
	GetFormatJob(ctx context.Context, id uuid.UUID) (database.FormatJob, error)
	UpdateFormatJobStatus(ctx context.Context, arg database.UpdateFormatJobStatusParams) error
	CompleteFormatJob(ctx context.Context, arg database.CompleteFormatJobParams) error
	FailFormatJob(ctx context.Context, arg database.FailFormatJobParams) error
}

// ResumeFormatter runs the pipeline on two local files.
type ResumeFormatter interface {
	FormatResume(ctx context.Context, resumePath, jobPath string) (string, error)
}

// Processor handles one job at a time; it is safe to share between workers.
type Processor struct {
	Store     ObjectStore
	Jobs      JobStore
	Publisher Publisher
	Formatter ResumeFormatter
	Logger    *slog.Logger

	// Attempts and Backoff control retries of storage and database calls.
	Attempts int
	Backoff  time.Duration
}

// Handle decodes a queue message and processes the job it names.
func (p *Processor) Handle(ctx context.Context, body []byte) error {
	var msg Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("%w: error unmarshalling message body: %v", ErrBadMessage, err)
	}
	if msg.ID == uuid.Nil {
		return fmt.Errorf("%w: no job id", ErrBadMessage)
	}
	return p.Process(ctx, msg.ID)
}

// Process formats one job and records the outcome. The returned error is
// the reason the job failed, after its failed status has been recorded.
func (p *Processor) Process(ctx context.Context, id uuid.UUID) error {
	job, err := retry(ctx, p.Logger, "load job", p.attempts(), p.Backoff, func() (database.FormatJob, error) {
		return p.Jobs.GetFormatJob(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("error getting job %s: %w", id, err)
	}

	p.setStatus(ctx, id, StatusProcessing, "formatting started")

	outputKey, err := p.run(ctx, job)
	if err != nil {
		p.Logger.Error("job failed", "job_id", id, "error", err)
		// a shutdown cancels ctx mid-job; the failure must still be stored
		detached := context.WithoutCancel(ctx)
		if dbErr := p.Jobs.FailFormatJob(detached, database.FailFormatJobParams{Error: err.Error(), ID: id}); dbErr != nil {
			p.Logger.Error("failed to record job failure", "job_id", id, "error", dbErr)
		}
		p.publish(detached, id, StatusFailed, "formatting failed: "+err.Error(), "")
		return err
	}

	_, err = retry(ctx, p.Logger, "complete job", p.attempts(), p.Backoff, func() (any, error) {
		return nil, p.Jobs.CompleteFormatJob(ctx, database.CompleteFormatJobParams{OutputKey: outputKey, ID: id})
	})
	if err != nil {
		return fmt.Errorf("failed to save job result: %w", err)
	}
	p.publish(ctx, id, StatusCompleted, "formatting completed", outputKey)
	p.Logger.Info("job completed", "job_id", id, "output_key", outputKey)
	return nil
}

func (p *Processor) run(ctx context.Context, job database.FormatJob) (string, error) {
	format, err := formatter.ParseFormat(job.Format)
	if err != nil {
		return "", err
	}

	dir, err := os.MkdirTemp("", "resumeformatter-"+job.ID.String())
	if err != nil {
		return "", fmt.Errorf("failed to create work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	resumePath := filepath.Join(dir, "resume"+extension(job.ResumeKey, job.ResumeMime))
	jobPath := filepath.Join(dir, "job_description"+extension(job.JobDescriptionKey, job.JobDescriptionMime))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return p.fetch(gctx, job.ResumeKey, resumePath) })
	g.Go(func() error { return p.fetch(gctx, job.JobDescriptionKey, jobPath) })
	if err := g.Wait(); err != nil {
		return "", err
	}

	text, err := p.Formatter.FormatResume(ctx, resumePath, jobPath)
	if err != nil {
		return "", err
	}

	rendered, err := formatter.Render(text, format)
	if err != nil {
		return "", err
	}

	key := storage.OutputKey(job.ID.String(), format.Extension())
	_, err = retry(ctx, p.Logger, "upload "+key, p.attempts(), p.Backoff, func() (any, error) {
		return nil, p.Store.Upload(ctx, key, format.ContentType(), []byte(rendered))
	})
	if err != nil {
		return "", err
	}
	return key, nil
}

// fetch downloads key into path.
func (p *Processor) fetch(ctx context.Context, key, path string) error {
	data, err := retry(ctx, p.Logger, "download "+key, p.attempts(), p.Backoff, func() ([]byte, error) {
		return p.Store.Download(ctx, key)
	})
	if err != nil {
		return fmt.Errorf("file download error: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (p *Processor) setStatus(ctx context.Context, id uuid.UUID, status, message string) {
	if err := p.Jobs.UpdateFormatJobStatus(ctx, database.UpdateFormatJobStatusParams{Status: status, ID: id}); err != nil {
		p.Logger.Error("failed to update job status", "job_id", id, "status", status, "error", err)
	}
	p.publish(ctx, id, status, message, "")
}

func (p *Processor) publish(ctx context.Context, id uuid.UUID, status, message, outputKey string) {
	if p.Publisher == nil {
		return
	}
	err := p.Publisher.Publish(ctx, StatusUpdate{
		JobID:     id,
		Status:    status,
		Message:   message,
		OutputKey: outputKey,
		Timestamp: time.Now(),
	})
	if err != nil {
		p.Logger.Warn("failed to publish update", "job_id", id, "status", status, "error", err)
	}
}

func (p *Processor) attempts() int {
	if p.Attempts < 1 {
		return 1
	}
	return p.Attempts
}

// extension picks the local file extension for a stored document: the key's
// own extension when it has one, otherwise the one implied by its MIME type.
func extension(key, mime string) string {
	if ext := filepath.Ext(key); ext != "" {
		return ext
	}
	return documents.ExtensionFor(mime)
}
