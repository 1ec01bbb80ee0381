package application

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Repository defines the interface for application persistence
type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id kernel.ApplicationID) (*Application, error)
	ListByUser(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[Application], error)
	ExistsForJob(ctx context.Context, userID kernel.UserID, jobID kernel.JobOpeningID) (bool, error)
	Update(ctx context.Context, id kernel.ApplicationID, a *Application) error
	Delete(ctx context.Context, id kernel.ApplicationID) error
}
