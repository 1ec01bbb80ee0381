package description

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Repository defines the interface for description persistence. Records are
// append-only; there is no update.
type Repository interface {
	Create(ctx context.Context, d *Description) error
	ListByUser(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[Description], error)
}

// TextGenerator is the upstream AI adapter.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
