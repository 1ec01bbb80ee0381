package feedbackinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/feedback"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresFeedbackRepository implements feedback.Repository using PostgreSQL.
// Per-section ratings are stored as a jsonb column; the flat string lists use
// text arrays.
type PostgresFeedbackRepository struct {
	db *sqlx.DB
}

func NewPostgresFeedbackRepository(db *sqlx.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

type feedbackModel struct {
	ID                  string          `db:"id"`
	ResumeID            string          `db:"resume_id"`
	StudentID           string          `db:"student_id"`
	ProfessorID         string          `db:"professor_id"`
	OverallRating       int             `db:"overall_rating"`
	Comments            string          `db:"comments"`
	Suggestions         pq.StringArray  `db:"suggestions"`
	Strengths           pq.StringArray  `db:"strengths"`
	AreasForImprovement pq.StringArray  `db:"areas_for_improvement"`
	Sections            json.RawMessage `db:"sections"`
	Status              string          `db:"status"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (m *feedbackModel) toEntity() (*feedback.Feedback, error) {
	var sections []feedback.SectionFeedback
	if len(m.Sections) > 0 {
		if err := json.Unmarshal(m.Sections, &sections); err != nil {
			return nil, fmt.Errorf("failed to decode feedback sections: %w", err)
		}
	}

	return &feedback.Feedback{
		ID:                  kernel.FeedbackID(m.ID),
		ResumeID:            kernel.ResumeID(m.ResumeID),
		StudentID:           kernel.UserID(m.StudentID),
		ProfessorID:         kernel.UserID(m.ProfessorID),
		OverallRating:       m.OverallRating,
		Comments:            m.Comments,
		Suggestions:         []string(m.Suggestions),
		Strengths:           []string(m.Strengths),
		AreasForImprovement: []string(m.AreasForImprovement),
		Sections:            sections,
		Status:              feedback.Status(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

func fromEntity(f *feedback.Feedback) (*feedbackModel, error) {
	sections, err := json.Marshal(f.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to encode feedback sections: %w", err)
	}

	return &feedbackModel{
		ID:                  string(f.ID),
		ResumeID:            string(f.ResumeID),
		StudentID:           string(f.StudentID),
		ProfessorID:         string(f.ProfessorID),
		OverallRating:       f.OverallRating,
		Comments:            f.Comments,
		Suggestions:         pq.StringArray(f.Suggestions),
		Strengths:           pq.StringArray(f.Strengths),
		AreasForImprovement: pq.StringArray(f.AreasForImprovement),
		Sections:            sections,
		Status:              string(f.Status),
		CreatedAt:           f.CreatedAt,
		UpdatedAt:           f.UpdatedAt,
	}, nil
}

const feedbackColumns = `id, resume_id, student_id, professor_id, overall_rating, comments,
	suggestions, strengths, areas_for_improvement, sections, status, created_at, updated_at`

// Create inserts a new feedback record
func (r *PostgresFeedbackRepository) Create(ctx context.Context, f *feedback.Feedback) error {
	model, err := fromEntity(f)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO feedback (` + feedbackColumns + `)
		VALUES (:id, :resume_id, :student_id, :professor_id, :overall_rating, :comments,
			:suggestions, :strengths, :areas_for_improvement, :sections, :status, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" { // foreign_key_violation
			return feedback.ErrInvalidInput("resume or student does not exist")
		}
		return fmt.Errorf("failed to create feedback: %w", err)
	}
	return nil
}

// GetByID retrieves a feedback record by ID
func (r *PostgresFeedbackRepository) GetByID(ctx context.Context, id kernel.FeedbackID) (*feedback.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`

	var model feedbackModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, feedback.ErrFeedbackNotFound()
		}
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	return model.toEntity()
}

// ListByResume retrieves all feedback for one resume, newest first
func (r *PostgresFeedbackRepository) ListByResume(ctx context.Context, resumeID kernel.ResumeID) ([]feedback.Feedback, error) {
	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback
		WHERE resume_id = $1
		ORDER BY created_at DESC
	`

	var models []feedbackModel
	if err := r.db.SelectContext(ctx, &models, query, string(resumeID)); err != nil {
		return nil, fmt.Errorf("failed to list feedback by resume: %w", err)
	}

	items := make([]feedback.Feedback, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, *entity)
	}
	return items, nil
}

// ListByStudent retrieves all feedback addressed to one student, newest first
func (r *PostgresFeedbackRepository) ListByStudent(ctx context.Context, studentID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[feedback.Feedback], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM feedback WHERE student_id = $1`, string(studentID)); err != nil {
		return kernel.Paginated[feedback.Feedback]{}, fmt.Errorf("failed to count feedback: %w", err)
	}

	query := `
		SELECT ` + feedbackColumns + `
		FROM feedback
		WHERE student_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []feedbackModel
	if err := r.db.SelectContext(ctx, &models, query, string(studentID), opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[feedback.Feedback]{}, fmt.Errorf("failed to list feedback by student: %w", err)
	}

	items := make([]feedback.Feedback, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return kernel.Paginated[feedback.Feedback]{}, err
		}
		items = append(items, *entity)
	}

	return kernel.Paginated[feedback.Feedback]{
		Items: items,
		Page:  kernel.NewPage(opts, total),
		Empty: len(items) == 0,
	}, nil
}

// Update replaces a feedback record's mutable fields
func (r *PostgresFeedbackRepository) Update(ctx context.Context, id kernel.FeedbackID, f *feedback.Feedback) error {
	model, err := fromEntity(f)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE feedback SET
			overall_rating = :overall_rating,
			comments = :comments,
			suggestions = :suggestions,
			strengths = :strengths,
			areas_for_improvement = :areas_for_improvement,
			sections = :sections,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return feedback.ErrFeedbackNotFound()
	}
	return nil
}

// Delete removes a feedback record
func (r *PostgresFeedbackRepository) Delete(ctx context.Context, id kernel.FeedbackID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM feedback WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return feedback.ErrFeedbackNotFound()
	}
	return nil
}
