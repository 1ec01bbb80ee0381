package template

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Repository defines the interface for template metadata persistence
type Repository interface {
	Create(ctx context.Context, t *Template) error
	GetByID(ctx context.Context, id kernel.TemplateID) (*Template, error)
	List(ctx context.Context, opts kernel.PaginationOptions) (kernel.Paginated[Template], error)
	ListByProfessor(ctx context.Context, professorID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[Template], error)
	Delete(ctx context.Context, id kernel.TemplateID) error
}
