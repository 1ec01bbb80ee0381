package jobopening

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Repository defines the interface for job opening persistence
type Repository interface {
	Create(ctx context.Context, j *JobOpening) error
	GetByID(ctx context.Context, id kernel.JobOpeningID) (*JobOpening, error)
	ListByStatus(ctx context.Context, status Status, opts kernel.PaginationOptions) (kernel.Paginated[JobOpening], error)
	Update(ctx context.Context, id kernel.JobOpeningID, j *JobOpening) error
	Delete(ctx context.Context, id kernel.JobOpeningID) error
}
