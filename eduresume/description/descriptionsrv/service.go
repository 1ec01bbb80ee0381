package descriptionsrv

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/eduresume/eduresume/description"
	"github.com/Abraxas-365/eduresume/internal/ai/era"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/Abraxas-365/eduresume/pkg/logx"
	"github.com/google/uuid"
)

// Service generates resume bullet points through the AI adapter and keeps an
// append-only history of every generation.
type Service struct {
	repo      description.Repository
	generator description.TextGenerator
}

func NewService(repo description.Repository, generator description.TextGenerator) *Service {
	return &Service{
		repo:      repo,
		generator: generator,
	}
}

// Generate builds the prompt, calls the upstream model, and records the
// exchange. The stored record is immutable.
func (s *Service) Generate(ctx context.Context, userID kernel.UserID, req *description.GenerateRequest) (*description.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	prompt := description.BuildPrompt(req)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, era.ErrUnauthorized) {
			return nil, description.ErrUpstreamAuth(err)
		}
		logx.Errorf("description generation failed for user %s: %v", userID, err)
		return nil, description.ErrUpstreamFailure(err)
	}

	d := &description.Description{
		ID:     kernel.DescriptionID(uuid.New().String()),
		UserID: userID,
		Kind:   req.Type,
		Input: description.Input{
			Brief:   req.Brief,
			Points:  req.Points,
			Context: req.Context,
		},
		GeneratedText: text,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}

	return &description.GenerateResponse{
		DescriptionID: d.ID,
		GeneratedText: d.GeneratedText,
		Type:          d.Kind,
	}, nil
}

// History returns the caller's past generations, newest first.
func (s *Service) History(ctx context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[description.Description], error) {
	return s.repo.ListByUser(ctx, userID, opts)
}
