package feedback

import (
	"context"

	"github.com/Abraxas-365/eduresume/pkg/kernel"
)

// Repository defines the interface for feedback persistence
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	GetByID(ctx context.Context, id kernel.FeedbackID) (*Feedback, error)
	ListByResume(ctx context.Context, resumeID kernel.ResumeID) ([]Feedback, error)
	ListByStudent(ctx context.Context, studentID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[Feedback], error)
	Update(ctx context.Context, id kernel.FeedbackID, f *Feedback) error
	Delete(ctx context.Context, id kernel.FeedbackID) error
}
