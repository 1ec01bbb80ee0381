package applicationinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/application"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresApplicationRepository implements application.Repository using PostgreSQL
type PostgresApplicationRepository struct {
	db *sqlx.DB
}

func NewPostgresApplicationRepository(db *sqlx.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

type applicationModel struct {
	ID            string       `db:"id"`
	UserID        string       `db:"user_id"`
	ResumeID      string       `db:"resume_id"`
	JobOpeningID  string       `db:"job_opening_id"`
	Status        string       `db:"status"`
	CoverLetter   string       `db:"cover_letter"`
	Score         int          `db:"score"`
	Feedback      string       `db:"feedback"`
	InterviewDate sql.NullTime `db:"interview_date"`
	Result        string       `db:"result"`
	AppliedAt     time.Time    `db:"applied_at"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

func (m *applicationModel) toEntity() *application.Application {
	a := &application.Application{
		ID:           kernel.ApplicationID(m.ID),
		UserID:       kernel.UserID(m.UserID),
		ResumeID:     kernel.ResumeID(m.ResumeID),
		JobOpeningID: kernel.JobOpeningID(m.JobOpeningID),
		Status:       application.Status(m.Status),
		CoverLetter:  m.CoverLetter,
		Score:        m.Score,
		Feedback:     m.Feedback,
		Result:       m.Result,
		AppliedAt:    m.AppliedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.InterviewDate.Valid {
		d := m.InterviewDate.Time
		a.InterviewDate = &d
	}
	return a
}

func fromEntity(a *application.Application) *applicationModel {
	m := &applicationModel{
		ID:           string(a.ID),
		UserID:       string(a.UserID),
		ResumeID:     string(a.ResumeID),
		JobOpeningID: string(a.JobOpeningID),
		Status:       string(a.Status),
		CoverLetter:  a.CoverLetter,
		Score:        a.Score,
		Feedback:     a.Feedback,
		Result:       a.Result,
		AppliedAt:    a.AppliedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if a.InterviewDate != nil {
		m.InterviewDate = sql.NullTime{Time: *a.InterviewDate, Valid: true}
	}
	return m
}

const applicationColumns = `id, user_id, resume_id, job_opening_id, status, cover_letter,
	score, feedback, interview_date, result, applied_at, created_at, updated_at`

// Create inserts a new application
func (r *PostgresApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	query := `
		INSERT INTO applications (` + applicationColumns + `)
		VALUES (:id, :user_id, :resume_id, :job_opening_id, :status, :cover_letter,
			:score, :feedback, :interview_date, :result, :applied_at, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(a)); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation on (user_id, job_opening_id)
				return application.ErrAlreadyApplied()
			case "23503": // foreign_key_violation
				return application.ErrInvalidInput("resume or job does not exist")
			}
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by ID
func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id kernel.ApplicationID) (*application.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`

	var model applicationModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, application.ErrApplicationNotFound()
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return model.toEntity(), nil
}

// ListByUser retrieves a student's applications, newest first
func (r *PostgresApplicationRepository) ListByUser(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[application.Application], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applications WHERE user_id = $1`, string(userID)); err != nil {
		return kernel.Paginated[application.Application]{}, fmt.Errorf("failed to count applications: %w", err)
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications
		WHERE user_id = $1
		ORDER BY applied_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []applicationModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID), opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[application.Application]{}, fmt.Errorf("failed to list applications: %w", err)
	}

	items := make([]application.Application, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toEntity())
	}

	return kernel.Paginated[application.Application]{
		Items: items,
		Page:  kernel.NewPage(opts, total),
		Empty: len(items) == 0,
	}, nil
}

// ExistsForJob checks whether the student already applied to the job
func (r *PostgresApplicationRepository) ExistsForJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobOpeningID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE user_id = $1 AND job_opening_id = $2)`
	if err := r.db.GetContext(ctx, &exists, query, string(userID), string(jobID)); err != nil {
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}
	return exists, nil
}

// Update replaces an application's mutable fields
func (r *PostgresApplicationRepository) Update(ctx context.Context, id kernel.ApplicationID, a *application.Application) error {
	model := fromEntity(a)
	model.ID = string(id)

	query := `
		UPDATE applications SET
			status = :status,
			cover_letter = :cover_letter,
			score = :score,
			feedback = :feedback,
			interview_date = :interview_date,
			result = :result,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}
	return nil
}

// Delete removes an application
func (r *PostgresApplicationRepository) Delete(ctx context.Context, id kernel.ApplicationID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applications WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return application.ErrApplicationNotFound()
	}
	return nil
}
