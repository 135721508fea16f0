package database

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rmorlok/syncstore/internal/apctx"
)

type JobConfigType string

const (
	JobConfigTypeSync            JobConfigType = "sync"
	JobConfigTypeResetConnection JobConfigType = "reset_connection"
	JobConfigTypeRefresh         JobConfigType = "refresh"
	JobConfigTypeClear           JobConfigType = "clear"
)

func IsValidJobConfigType[T string | JobConfigType](t T) bool {
	switch JobConfigType(t) {
	case JobConfigTypeSync,
		JobConfigTypeResetConnection,
		JobConfigTypeRefresh,
		JobConfigTypeClear:
		return true
	default:
		return false
	}
}

type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusRunning    JobStatus = "running"
	JobStatusIncomplete JobStatus = "incomplete"
	JobStatusFailed     JobStatus = "failed"
	JobStatusSucceeded  JobStatus = "succeeded"
	JobStatusCancelled  JobStatus = "cancelled"
)

func IsValidJobStatus[T string | JobStatus](status T) bool {
	switch JobStatus(status) {
	case JobStatusPending,
		JobStatusRunning,
		JobStatusIncomplete,
		JobStatusFailed,
		JobStatusSucceeded,
		JobStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether a job in this status will not change again.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusFailed, JobStatusSucceeded, JobStatusCancelled:
		return true
	default:
		return false
	}
}

const JobsTable = "jobs"

// Job is one run against a scope. For connection jobs the scope is the connection id.
type Job struct {
	Id         int64
	ConfigType JobConfigType
	Scope      string
	Status     JobStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (j *Job) cols() []string {
	return []string{
		"id",
		"config_type",
		"scope",
		"status",
		"created_at",
		"updated_at",
	}
}

func (j *Job) fields() []any {
	return []any{
		&j.Id,
		&j.ConfigType,
		&j.Scope,
		&j.Status,
		&j.CreatedAt,
		&j.UpdatedAt,
	}
}

// CreateJob inserts a job and populates its generated id. CreatedAt is taken from the job if set so that history
// can be backfilled; otherwise the context clock is used.
func (s *service) CreateJob(ctx context.Context, j *Job) error {
	if j == nil {
		return errors.New("job is required")
	}

	if !IsValidJobConfigType(j.ConfigType) {
		return errors.Wrapf(ErrInvalidArgument, "invalid job config type '%s'", j.ConfigType)
	}

	if !IsValidJobStatus(j.Status) {
		return errors.Wrapf(ErrInvalidArgument, "invalid job status '%s'", j.Status)
	}

	if j.Scope == "" {
		return errors.Wrap(ErrInvalidArgument, "job scope is required")
	}

	cpy := *j
	now := apctx.NowUTC(ctx)
	if cpy.CreatedAt.IsZero() {
		cpy.CreatedAt = now
	}
	cpy.CreatedAt = cpy.CreatedAt.UTC()
	cpy.UpdatedAt = now

	err := s.sq.
		Insert(JobsTable).
		Columns("config_type", "scope", "status", "created_at", "updated_at").
		Values(cpy.ConfigType, cpy.Scope, cpy.Status, cpy.CreatedAt, cpy.UpdatedAt).
		Suffix("RETURNING id").
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(&cpy.Id)
	if err != nil {
		return errors.Wrap(err, "failed to create job")
	}

	*j = cpy
	return nil
}

// CreateSyncJob records a sync job for a connection.
func (s *service) CreateSyncJob(ctx context.Context, connectionId uuid.UUID, status JobStatus) (*Job, error) {
	j := &Job{
		ConfigType: JobConfigTypeSync,
		Scope:      connectionId.String(),
		Status:     status,
	}

	if err := s.CreateJob(ctx, j); err != nil {
		return nil, err
	}

	return j, nil
}

func (s *service) GetJob(ctx context.Context, id int64) (*Job, error) {
	var result Job
	err := s.sq.
		Select(result.cols()...).
		From(JobsTable).
		Where(sq.Eq{"id": id}).
		RunWith(s.db).
		QueryRowContext(ctx).
		Scan(result.fields()...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to get job")
	}

	return &result, nil
}

// SetJobStatus moves a job to a new status. Jobs in a terminal status cannot be changed.
func (s *service) SetJobStatus(ctx context.Context, id int64, status JobStatus) error {
	if !IsValidJobStatus(status) {
		return errors.Wrapf(ErrInvalidArgument, "invalid job status '%s'", status)
	}

	return s.transaction(ctx, func(tx *sql.Tx) error {
		var current JobStatus
		err := s.sq.
			Select("status").
			From(JobsTable).
			Where(sq.Eq{"id": id}).
			RunWith(tx).
			QueryRowContext(ctx).
			Scan(&current)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return err
		}

		if current.IsTerminal() {
			return errors.Wrapf(ErrInvalidArgument, "job %d is already %s", id, current)
		}

		result, err := s.sq.
			Update(JobsTable).
			Set("status", status).
			Set("updated_at", apctx.NowUTC(ctx)).
			Where(sq.Eq{"id": id}).
			RunWith(tx).
			ExecContext(ctx)
		if err != nil {
			return err
		}

		return checkAffected(result, "job")
	})
}
