package resume

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Repository defines the interface for resume persistence
type Repository interface {
	Create(ctx context.Context, r *Resume) error
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)
	ListByUser(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[Resume], error)
	Update(ctx context.Context, id kernel.ResumeID, r *Resume) error
	Delete(ctx context.Context, id kernel.ResumeID) error
}
