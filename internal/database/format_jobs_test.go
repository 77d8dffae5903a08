package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type execCall struct {
	query string
	args  []interface{}
}

// recordingDB records ExecContext calls; the query methods are unused here.
type recordingDB struct {
	calls []execCall
	err   error
}

type rowsAffected int64

func (r rowsAffected) LastInsertId() (int64, error) { return 0, errors.New("unsupported") }
func (r rowsAffected) RowsAffected() (int64, error) { return int64(r), nil }

func (d *recordingDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	d.calls = append(d.calls, execCall{query: query, args: args})
	if d.err != nil {
		return nil, d.err
	}
	return rowsAffected(1), nil
}

func (d *recordingDB) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errors.New("unsupported")
}

func (d *recordingDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("unsupported")
}

func (d *recordingDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestFormatJobQueries(t *testing.T) {
	db := &recordingDB{}
	q := New(db)
	ctx := context.Background()
	id := uuid.New()

	require.NoError(t, q.UpdateFormatJobStatus(ctx, UpdateFormatJobStatusParams{Status: "processing", ID: id}))
	require.NoError(t, q.CompleteFormatJob(ctx, CompleteFormatJobParams{OutputKey: "outputs/x.md", ID: id}))
	require.NoError(t, q.FailFormatJob(ctx, FailFormatJobParams{Error: "boom", ID: id}))

	require.Len(t, db.calls, 3)
	assert.True(t, strings.Contains(db.calls[0].query, "UpdateFormatJobStatus"))
	assert.Equal(t, []interface{}{"processing", id}, db.calls[0].args)
	assert.Contains(t, db.calls[1].query, "status='completed'")
	assert.Equal(t, []interface{}{"outputs/x.md", id}, db.calls[1].args)
	assert.Contains(t, db.calls[2].query, "status='failed'")
	assert.Equal(t, []interface{}{"boom", id}, db.calls[2].args)
}

func TestFormatJobQueries_PropagatesErrors(t *testing.T) {
	db := &recordingDB{err: errors.New("connection refused")}
	err := New(db).UpdateFormatJobStatus(context.Background(), UpdateFormatJobStatusParams{Status: "failed", ID: uuid.New()})
	assert.EqualError(t, err, "connection refused")
}
