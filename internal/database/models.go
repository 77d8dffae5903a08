package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type FormatJob struct {
	ID                 uuid.UUID
	UserID             string
	ResumeKey          string
	ResumeMime         string
	JobDescriptionKey  string
	JobDescriptionMime string
	Format             string
	Status             string
	OutputKey          sql.NullString
	Error              sql.NullString
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
