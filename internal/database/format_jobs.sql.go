package database

import (
	"context"

	"github.com/google/uuid"
)

const getFormatJob = `-- name: GetFormatJob :one
SELECT id, user_id, resume_key, resume_mime, job_description_key, job_description_mime, format, status, output_key, error, created_at, updated_at FROM format_jobs WHERE id=$1
`

func (q *Queries) GetFormatJob(ctx context.Context, id uuid.UUID) (FormatJob, error) {
	row := q.db.QueryRowContext(ctx, getFormatJob, id)
	var i FormatJob
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.ResumeKey,
		&i.ResumeMime,
		&i.JobDescriptionKey,
		&i.JobDescriptionMime,
		&i.Format,
		&i.Status,
		&i.OutputKey,
		&i.Error,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const updateFormatJobStatus = `-- name: UpdateFormatJobStatus :exec
UPDATE format_jobs
SET status=$1, updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type UpdateFormatJobStatusParams struct {
	Status string
	ID     uuid.UUID
}

func (q *Queries) UpdateFormatJobStatus(ctx context.Context, arg UpdateFormatJobStatusParams) error {
	_, err := q.db.ExecContext(ctx, updateFormatJobStatus, arg.Status, arg.ID)
	return err
}

const completeFormatJob = `-- name: CompleteFormatJob :exec
UPDATE format_jobs
SET status='completed', output_key=$1, error=NULL, updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type CompleteFormatJobParams struct {
	OutputKey string
	ID        uuid.UUID
}

func (q *Queries) CompleteFormatJob(ctx context.Context, arg CompleteFormatJobParams) error {
	_, err := q.db.ExecContext(ctx, completeFormatJob, arg.OutputKey, arg.ID)
	return err
}

const failFormatJob = `-- name: FailFormatJob :exec
UPDATE format_jobs
SET status='failed', error=$1, updated_at=CURRENT_TIMESTAMP
WHERE id=$2
`

type FailFormatJobParams struct {
	Error string
	ID    uuid.UUID
}

func (q *Queries) FailFormatJob(ctx context.Context, arg FailFormatJobParams) error {
	_, err := q.db.ExecContext(ctx, failFormatJob, arg.Error, arg.ID)
	return err
}
