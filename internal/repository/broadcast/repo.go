package broadcast

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/EdilKulzhabay/tochkaLi-sub001/internal/model"
)

var (
	ErrJobNotFound = errors.New("broadcast job not found")
	ErrNoJobsFound = errors.New("no broadcast jobs found")

	ErrStatusConflict = errors.New("broadcast job is in another state")
)

// Repository provides methods to interact with the broadcast_jobs table.
//
// A job row doubles as the dispatch checkpoint: cursor is the index of the
// next recipient, so a job interrupted by a crash can be resumed.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new broadcast job repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateJob inserts a new broadcast job and returns its ID.
func (r *Repository) CreateJob(ctx context.Context, job model.Job) (uuid.UUID, error) {
	query := `
		INSERT INTO broadcast_jobs (
		    payload, recipients, status, send_at
		) VALUES ($1, $2, $3, $4)
		RETURNING id;
    `

	payload, err := json.Marshal(job.Payload)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	recipients, err := json.Marshal(job.Recipients)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal recipients: %w", err)
	}

	err = r.db.QueryRowContext(ctx, query, payload, recipients, job.Status, job.SendAt).Scan(&job.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create broadcast job: %w", err)
	}

	return job.ID, nil
}

// GetJob retrieves a job with its recipients and progress.
func (r *Repository) GetJob(ctx context.Context, id uuid.UUID) (model.Job, error) {
	query := `
		SELECT id, payload, recipients, status, cursor, success, failed, failures, send_at, created_at, updated_at
		FROM broadcast_jobs
		WHERE id = $1;
    `

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Job{}, ErrJobNotFound
		}

		return model.Job{}, fmt.Errorf("failed to get broadcast job: %w", err)
	}

	return job, nil
}

// GetJobStatus retrieves the status of a job by its ID.
func (r *Repository) GetJobStatus(ctx context.Context, id uuid.UUID) (string, error) {
	query := `
		SELECT status
		FROM broadcast_jobs
		WHERE id = $1;
    `

	var status string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrJobNotFound
		}

		return "", fmt.Errorf("failed to get broadcast job status: %w", err)
	}

	return status, nil
}

// GetAllJobs retrieves all jobs ordered by creation time, newest first.
func (r *Repository) GetAllJobs(ctx context.Context) ([]model.Job, error) {
	query := `
		SELECT id, payload, recipients, status, cursor, success, failed, failures, send_at, created_at, updated_at
		FROM broadcast_jobs
		ORDER BY created_at DESC;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all broadcast jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan broadcast job: %w", err)
		}

		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate broadcast jobs: %w", err)
	}

	if len(jobs) == 0 {
		return nil, ErrNoJobsFound
	}

	return jobs, nil
}

// RequeueUnfinishedJobs moves running jobs back to pending and returns the IDs
// of every pending job. It is called once at start-up, before any worker runs:
// such jobs lost their queue message or were cut short by a crash.
func (r *Repository) RequeueUnfinishedJobs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		UPDATE broadcast_jobs
		SET status = 'pending', updated_at = NOW()
		WHERE status IN ('pending', 'running')
		RETURNING id;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to requeue unfinished broadcast jobs: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan broadcast job id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate broadcast jobs: %w", err)
	}

	return ids, nil
}

// TransitionStatus sets the job status to `to` only if it currently is one of `from`.
// It returns ErrJobNotFound for an unknown job and ErrStatusConflict when the
// job is in another state.
func (r *Repository) TransitionStatus(ctx context.Context, id uuid.UUID, to string, from ...string) error {
	query := `
		UPDATE broadcast_jobs
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = ANY($3);
    `

	res, err := r.db.ExecContext(ctx, query, to, id, pq.Array(from))
	if err != nil {
		return fmt.Errorf("failed to transition broadcast job: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows > 0 {
		return nil
	}

	var exists bool
	err = r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM broadcast_jobs WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check broadcast job: %w", err)
	}

	if !exists {
		return ErrJobNotFound
	}

	return ErrStatusConflict
}

// UpdateStatus updates the status of a job by its ID.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE broadcast_jobs
		SET status = $1, updated_at = NOW()
		WHERE id = $2;
    `

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update broadcast job: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

// SaveProgress stores the checkpoint written after a recipient was processed.
// A non-nil failure is appended to the job's failure list.
func (r *Repository) SaveProgress(ctx context.Context, id uuid.UUID, cursor, success, failed int, failure *model.Result) error {
	query := `
		UPDATE broadcast_jobs
		SET cursor = $1, success = $2, failed = $3, failures = failures || $4::jsonb, updated_at = NOW()
		WHERE id = $5;
    `

	appended := []model.Result{}
	if failure != nil {
		appended = append(appended, *failure)
	}

	failures, err := json.Marshal(appended)
	if err != nil {
		return fmt.Errorf("failed to marshal failures: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, cursor, success, failed, failures, id)
	if err != nil {
		return fmt.Errorf("failed to save broadcast progress: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrJobNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (model.Job, error) {
	var (
		job                           model.Job
		payload, recipients, failures []byte
	)

	err := s.Scan(
		&job.ID, &payload, &recipients, &job.Status, &job.Cursor, &job.Success, &job.Failed,
		&failures, &job.SendAt, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return model.Job{}, err
	}

	if err := json.Unmarshal(payload, &job.Payload); err != nil {
		return model.Job{}, fmt.Errorf("unmarshal payload: %w", err)
	}

	if err := json.Unmarshal(recipients, &job.Recipients); err != nil {
		return model.Job{}, fmt.Errorf("unmarshal recipients: %w", err)
	}

	if len(failures) > 0 {
		if err := json.Unmarshal(failures, &job.Failures); err != nil {
			return model.Job{}, fmt.Errorf("unmarshal failures: %w", err)
		}
	}

	return job, nil
}
