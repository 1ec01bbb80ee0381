package jobopeninginfra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/jobopening"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresJobOpeningRepository implements jobopening.Repository using PostgreSQL
type PostgresJobOpeningRepository struct {
	db *sqlx.DB
}

func NewPostgresJobOpeningRepository(db *sqlx.DB) *PostgresJobOpeningRepository {
	return &PostgresJobOpeningRepository{db: db}
}

type jobOpeningModel struct {
	ID                  string          `db:"id"`
	Title               string          `db:"title"`
	Company             string          `db:"company"`
	Description         string          `db:"description"`
	Requirements        pq.StringArray  `db:"requirements"`
	Responsibilities    pq.StringArray  `db:"responsibilities"`
	Location            string          `db:"location"`
	JobType             string          `db:"job_type"`
	SalaryMin           sql.NullFloat64 `db:"salary_min"`
	SalaryMax           sql.NullFloat64 `db:"salary_max"`
	SalaryCurrency      sql.NullString  `db:"salary_currency"`
	RequiredSkills      pq.StringArray  `db:"required_skills"`
	ApplicationDeadline sql.NullTime    `db:"application_deadline"`
	Status              string          `db:"status"`
	Link                string          `db:"link"`
	PostedAt            time.Time       `db:"posted_at"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
}

func (m *jobOpeningModel) toEntity() *jobopening.JobOpening {
	j := &jobopening.JobOpening{
		ID:               kernel.JobOpeningID(m.ID),
		Title:            m.Title,
		Company:          m.Company,
		Description:      m.Description,
		Requirements:     []string(m.Requirements),
		Responsibilities: []string(m.Responsibilities),
		Location:         m.Location,
		JobType:          jobopening.JobType(m.JobType),
		RequiredSkills:   []string(m.RequiredSkills),
		Status:           jobopening.Status(m.Status),
		Link:             m.Link,
		PostedAt:         m.PostedAt,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
	if m.SalaryMin.Valid {
		j.SalaryRange.Min = m.SalaryMin.Float64
	}
	if m.SalaryMax.Valid {
		j.SalaryRange.Max = m.SalaryMax.Float64
	}
	if m.SalaryCurrency.Valid {
		j.SalaryRange.Currency = m.SalaryCurrency.String
	}
	if m.ApplicationDeadline.Valid {
		deadline := m.ApplicationDeadline.Time
		j.ApplicationDeadline = &deadline
	}
	return j
}

func fromEntity(j *jobopening.JobOpening) *jobOpeningModel {
	m := &jobOpeningModel{
		ID:               string(j.ID),
		Title:            j.Title,
		Company:          j.Company,
		Description:      j.Description,
		Requirements:     pq.StringArray(j.Requirements),
		Responsibilities: pq.StringArray(j.Responsibilities),
		Location:         j.Location,
		JobType:          string(j.JobType),
		RequiredSkills:   pq.StringArray(j.RequiredSkills),
		Status:           string(j.Status),
		Link:             j.Link,
		PostedAt:         j.PostedAt,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
	if j.SalaryRange.Min != 0 || j.SalaryRange.Max != 0 {
		m.SalaryMin = sql.NullFloat64{Float64: j.SalaryRange.Min, Valid: true}
		m.SalaryMax = sql.NullFloat64{Float64: j.SalaryRange.Max, Valid: true}
	}
	if j.SalaryRange.Currency != "" {
		m.SalaryCurrency = sql.NullString{String: j.SalaryRange.Currency, Valid: true}
	}
	if j.ApplicationDeadline != nil {
		m.ApplicationDeadline = sql.NullTime{Time: *j.ApplicationDeadline, Valid: true}
	}
	return m
}

const jobColumns = `id, title, company, description, requirements, responsibilities, location,
	job_type, salary_min, salary_max, salary_currency, required_skills,
	application_deadline, status, link, posted_at, created_at, updated_at`

// Create inserts a new job opening
func (r *PostgresJobOpeningRepository) Create(ctx context.Context, j *jobopening.JobOpening) error {
	query := `
		INSERT INTO job_openings (` + jobColumns + `)
		VALUES (:id, :title, :company, :description, :requirements, :responsibilities, :location,
			:job_type, :salary_min, :salary_max, :salary_currency, :required_skills,
			:application_deadline, :status, :link, :posted_at, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(j)); err != nil {
		return fmt.Errorf("failed to create job opening: %w", err)
	}
	return nil
}

// GetByID retrieves a job opening by ID
func (r *PostgresJobOpeningRepository) GetByID(ctx context.Context, id kernel.JobOpeningID) (*jobopening.JobOpening, error) {
	query := `SELECT ` + jobColumns + ` FROM job_openings WHERE id = $1`

	var model jobOpeningModel
	if err := r.db.GetContext(ctx, &model, query, string(id)); err != nil {
		if err == sql.ErrNoRows {
			return nil, jobopening.ErrJobNotFound()
		}
		return nil, fmt.Errorf("failed to get job opening: %w", err)
	}
	return model.toEntity(), nil
}

// ListByStatus retrieves job openings with the given status, newest first
func (r *PostgresJobOpeningRepository) ListByStatus(ctx context.Context, status jobopening.Status, opts kernel.PaginationOptions) (kernel.Paginated[jobopening.JobOpening], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM job_openings WHERE status = $1`, string(status)); err != nil {
		return kernel.Paginated[jobopening.JobOpening]{}, fmt.Errorf("failed to count job openings: %w", err)
	}

	query := `
		SELECT ` + jobColumns + `
		FROM job_openings
		WHERE status = $1
		ORDER BY posted_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []jobOpeningModel
	if err := r.db.SelectContext(ctx, &models, query, string(status), opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[jobopening.JobOpening]{}, fmt.Errorf("failed to list job openings: %w", err)
	}

	items := make([]jobopening.JobOpening, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toEntity())
	}

	return kernel.Paginated[jobopening.JobOpening]{
		Items: items,
		Page:  kernel.NewPage(opts, total),
		Empty: len(items) == 0,
	}, nil
}

// Update replaces a job opening's mutable fields
func (r *PostgresJobOpeningRepository) Update(ctx context.Context, id kernel.JobOpeningID, j *jobopening.JobOpening) error {
	model := fromEntity(j)
	model.ID = string(id)

	query := `
		UPDATE job_openings SET
			title = :title,
			company = :company,
			description = :description,
			requirements = :requirements,
			responsibilities = :responsibilities,
			location = :location,
			job_type = :job_type,
			salary_min = :salary_min,
			salary_max = :salary_max,
			salary_currency = :salary_currency,
			required_skills = :required_skills,
			application_deadline = :application_deadline,
			status = :status,
			link = :link,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		return fmt.Errorf("failed to update job opening: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return jobopening.ErrJobNotFound()
	}
	return nil
}

// Delete removes a job opening
func (r *PostgresJobOpeningRepository) Delete(ctx context.Context, id kernel.JobOpeningID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_openings WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("failed to delete job opening: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return jobopening.ErrJobNotFound()
	}
	return nil
}
