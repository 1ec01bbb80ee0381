package templateinfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/template"
	"github.com/Abraxas-365/eduresume/pkg/blobx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresTemplateRepository implements template.Repository using PostgreSQL
type PostgresTemplateRepository struct {
	db *sqlx.DB
}

func NewPostgresTemplateRepository(db *sqlx.DB) *PostgresTemplateRepository {
	return &PostgresTemplateRepository{db: db}
}

type templateModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ProfessorID string    `db:"professor_id"`
	PDFObjectID string    `db:"pdf_object_id"`
	Pages       int       `db:"pages"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (m *templateModel) toEntity() *template.Template {
	return &template.Template{
		ID:          kernel.TemplateID(m.ID),
		Name:        m.Name,
		Description: m.Description,
		ProfessorID: kernel.UserID(m.ProfessorID),
		PDFObjectID: blobx.ObjectID(m.PDFObjectID),
		Pages:       m.Pages,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromEntity(t *template.Template) *templateModel {
	return &templateModel{
		ID:          string(t.ID),
		Name:        t.Name,
		Description: t.Description,
		ProfessorID: string(t.ProfessorID),
		PDFObjectID: string(t.PDFObjectID),
		Pages:       t.Pages,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// Create inserts the metadata row for an already-uploaded template PDF
func (r *PostgresTemplateRepository) Create(ctx context.Context, t *template.Template) error {
	query := `
		INSERT INTO templates (id, name, description, professor_id, pdf_object_id, pages, created_at, updated_at)
		VALUES (:id, :name, :description, :professor_id, :pdf_object_id, :pages, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(t)); err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}

	return nil
}

// GetByID retrieves a template by ID
func (r *PostgresTemplateRepository) GetByID(ctx context.Context, id kernel.TemplateID) (*template.Template, error) {
	query := `
		SELECT id, name, description, professor_id, pdf_object_id, pages, created_at, updated_at
		FROM templates WHERE id = $1
	`

	var model templateModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, template.ErrTemplateNotFound()
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}

	return model.toEntity(), nil
}

// List retrieves all templates, newest first
func (r *PostgresTemplateRepository) List(ctx context.Context, opts kernel.PaginationOptions) (kernel.Paginated[template.Template], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM templates`); err != nil {
		return kernel.Paginated[template.Template]{}, fmt.Errorf("failed to count templates: %w", err)
	}

	query := `
		SELECT id, name, description, professor_id, pdf_object_id, pages, created_at, updated_at
		FROM templates
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var models []templateModel
	if err := r.db.SelectContext(ctx, &models, query, opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[template.Template]{}, fmt.Errorf("failed to list templates: %w", err)
	}

	return paginate(models, opts, total), nil
}

// ListByProfessor retrieves templates owned by the given professor, newest first
func (r *PostgresTemplateRepository) ListByProfessor(ctx context.Context, professorID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[template.Template], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM templates WHERE professor_id = $1`, string(professorID)); err != nil {
		return kernel.Paginated[template.Template]{}, fmt.Errorf("failed to count templates: %w", err)
	}

	query := `
		SELECT id, name, description, professor_id, pdf_object_id, pages, created_at, updated_at
		FROM templates
		WHERE professor_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []templateModel
	if err := r.db.SelectContext(ctx, &models, query, string(professorID), opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[template.Template]{}, fmt.Errorf("failed to list templates by professor: %w", err)
	}

	return paginate(models, opts, total), nil
}

// Delete removes a template metadata row
func (r *PostgresTemplateRepository) Delete(ctx context.Context, id kernel.TemplateID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM templates WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return template.ErrTemplateNotFound()
	}

	return nil
}

func paginate(models []templateModel, opts kernel.PaginationOptions, total int) kernel.Paginated[template.Template] {
	items := make([]template.Template, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toEntity())
	}

	return kernel.Paginated[template.Template]{
		Items: items,
		Page:  kernel.NewPage(opts, total),
		Empty: len(items) == 0,
	}
}
