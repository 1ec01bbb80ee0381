package resumeinfra

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/resume"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresResumeRepository implements resume.Repository using PostgreSQL.
// The structured content is stored as a single jsonb column.
type PostgresResumeRepository struct {
	db *sqlx.DB
}

func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

type resumeModel struct {
	ID         string          `db:"id"`
	UserID     string          `db:"user_id"`
	TemplateID sql.NullString  `db:"template_id"`
	Title      string          `db:"title"`
	Content    json.RawMessage `db:"content"`
	ATSScore   int             `db:"ats_score"`
	Published  bool            `db:"published"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func (m *resumeModel) toEntity() (*resume.Resume, error) {
	var content resume.Content
	if len(m.Content) > 0 {
		if err := json.Unmarshal(m.Content, &content); err != nil {
			return nil, fmt.Errorf("failed to decode resume content: %w", err)
		}
	}

	r := &resume.Resume{
		ID:        kernel.ResumeID(m.ID),
		UserID:    kernel.UserID(m.UserID),
		Title:     m.Title,
		Content:   content,
		ATSScore:  m.ATSScore,
		Published: m.Published,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.TemplateID.Valid {
		r.TemplateID = kernel.TemplateID(m.TemplateID.String)
	}
	return r, nil
}

func fromEntity(r *resume.Resume) (*resumeModel, error) {
	content, err := json.Marshal(r.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume content: %w", err)
	}

	m := &resumeModel{
		ID:        string(r.ID),
		UserID:    string(r.UserID),
		Title:     r.Title,
		Content:   content,
		ATSScore:  r.ATSScore,
		Published: r.Published,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if !r.TemplateID.IsEmpty() {
		m.TemplateID = sql.NullString{String: string(r.TemplateID), Valid: true}
	}
	return m, nil
}

// Create inserts a new resume
func (r *PostgresResumeRepository) Create(ctx context.Context, entity *resume.Resume) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO resumes (id, user_id, template_id, title, content, ats_score, published, created_at, updated_at)
		VALUES (:id, :user_id, :template_id, :title, :content, :ats_score, :published, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, model); err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}
	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	query := `
		SELECT id, user_id, template_id, title, content, ats_score, published, created_at, updated_at
		FROM resumes WHERE id = $1
	`

	var model resumeModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, resume.ErrResumeNotFound()
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	return model.toEntity()
}

// ListByUser retrieves a student's resumes, newest first
func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[resume.Resume], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, string(userID)); err != nil {
		return kernel.Paginated[resume.Resume]{}, fmt.Errorf("failed to count resumes: %w", err)
	}

	query := `
		SELECT id, user_id, template_id, title, content, ats_score, published, created_at, updated_at
		FROM resumes
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []resumeModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID), opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[resume.Resume]{}, fmt.Errorf("failed to list resumes: %w", err)
	}

	items := make([]resume.Resume, 0, len(models))
	for i := range models {
		entity, err := models[i].toEntity()
		if err != nil {
			return kernel.Paginated[resume.Resume]{}, err
		}
		items = append(items, *entity)
	}

	return kernel.Paginated[resume.Resume]{
		Items: items,
		Page:  kernel.NewPage(opts, total),
		Empty: len(items) == 0,
	}, nil
}

// Update replaces a resume's mutable fields
func (r *PostgresResumeRepository) Update(ctx context.Context, id kernel.ResumeID, entity *resume.Resume) error {
	model, err := fromEntity(entity)
	if err != nil {
		return err
	}
	model.ID = string(id)

	query := `
		UPDATE resumes SET
			title = :title,
			content = :content,
			ats_score = :ats_score,
			published = :published,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update resume: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound()
	}
	return nil
}

// Delete removes a resume
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete resume: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return resume.ErrResumeNotFound()
	}
	return nil
}
