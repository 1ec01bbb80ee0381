package descriptioninfra

import (
	"context"
	"fmt"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/description"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// PostgresDescriptionRepository implements description.Repository using
// PostgreSQL. The table is append-only.
type PostgresDescriptionRepository struct {
	db *sqlx.DB
}

func NewPostgresDescriptionRepository(db *sqlx.DB) *PostgresDescriptionRepository {
	return &PostgresDescriptionRepository{db: db}
}

type descriptionModel struct {
	ID            string         `db:"id"`
	UserID        string         `db:"user_id"`
	Kind          string         `db:"kind"`
	InputBrief    string         `db:"input_brief"`
	InputPoints   pq.StringArray `db:"input_points"`
	InputContext  string         `db:"input_context"`
	GeneratedText string         `db:"generated_text"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (m *descriptionModel) toEntity() *description.Description {
	return &description.Description{
		ID:     kernel.DescriptionID(m.ID),
		UserID: kernel.UserID(m.UserID),
		Kind:   description.Kind(m.Kind),
		Input: description.Input{
			Brief:   m.InputBrief,
			Points:  []string(m.InputPoints),
			Context: m.InputContext,
		},
		GeneratedText: m.GeneratedText,
		CreatedAt:     m.CreatedAt,
	}
}

func fromEntity(d *description.Description) *descriptionModel {
	return &descriptionModel{
		ID:            string(d.ID),
		UserID:        string(d.UserID),
		Kind:          string(d.Kind),
		InputBrief:    d.Input.Brief,
		InputPoints:   pq.StringArray(d.Input.Points),
		InputContext:  d.Input.Context,
		GeneratedText: d.GeneratedText,
		CreatedAt:     d.CreatedAt,
	}
}

// Create inserts a generation record
func (r *PostgresDescriptionRepository) Create(ctx context.Context, d *description.Description) error {
	query := `
		INSERT INTO descriptions (id, user_id, kind, input_brief, input_points, input_context, generated_text, created_at)
		VALUES (:id, :user_id, :kind, :input_brief, :input_points, :input_context, :generated_text, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, fromEntity(d)); err != nil {
		return fmt.Errorf("failed to create description: %w", err)
	}
	return nil
}

// ListByUser retrieves a user's generation history, newest first
func (r *PostgresDescriptionRepository) ListByUser(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[description.Description], error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM descriptions WHERE user_id = $1`, string(userID)); err != nil {
		return kernel.Paginated[description.Description]{}, fmt.Errorf("failed to count descriptions: %w", err)
	}

	query := `
		SELECT id, user_id, kind, input_brief, input_points, input_context, generated_text, created_at
		FROM descriptions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var models []descriptionModel
	if err := r.db.SelectContext(ctx, &models, query, string(userID), opts.PageSize, opts.Offset()); err != nil {
		return kernel.Paginated[description.Description]{}, fmt.Errorf("failed to list descriptions: %w", err)
	}

	items := make([]description.Description, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toEntity())
	}

	return kernel.Paginated[description.Description]{
		Items: items,
		Page:  kernel.NewPage(opts, total),
		Empty: len(items) == 0,
	}, nil
}
