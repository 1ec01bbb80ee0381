package descriptionsrv

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/Abraxas-365/eduresume/eduresume/description"
	"github.com/Abraxas-365/eduresume/internal/ai/era"
	"github.com/Abraxas-365/eduresume/pkg/errx"
	"github.com/Abraxas-365/eduresume/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDescriptionRepo struct {
	mu      sync.Mutex
	records []description.Description
}

func (r *memDescriptionRepo) Create(_ context.Context, d *description.Description) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *d)
	return nil
}

func (r *memDescriptionRepo) ListByUser(_ context.Context, userID kernel.UserID, opts kernel.PaginationOptions) (kernel.Paginated[description.Description], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	items := make([]description.Description, 0)
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			items = append(items, r.records[i])
		}
	}
	return kernel.Paginated[description.Description]{
		Items: items,
		Page:  kernel.NewPage(opts, len(items)),
		Empty: len(items) == 0,
	}, nil
}

type stubGenerator struct {
	lastPrompt string
	output     string
	err        error
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.lastPrompt = prompt
	if g.err != nil {
		return "", g.err
	}
	return g.output, nil
}

func TestGeneratePersistsRecord(t *testing.T) {
	repo := &memDescriptionRepo{}
	gen := &stubGenerator{output: "Engineered a resume builder used by 200 students."}
	svc := NewService(repo, gen)

	resp, err := svc.Generate(context.Background(), "student-1", &description.GenerateRequest{
		Type:  description.KindProject,
		Brief: "Built a resume builder",
	})
	require.NoError(t, err)

	assert.False(t, resp.DescriptionID.IsEmpty())
	assert.Equal(t, gen.output, resp.GeneratedText)
	assert.Contains(t, gen.lastPrompt, "Brief: Built a resume builder")

	history, err := svc.History(context.Background(), "student-1", kernel.NewPaginationOptions(1, 10))
	require.NoError(t, err)
	require.Len(t, history.Items, 1)
	assert.Equal(t, "Built a resume builder", history.Items[0].Input.Brief)
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	svc := NewService(&memDescriptionRepo{}, &stubGenerator{})

	_, err := svc.Generate(context.Background(), "student-1", &description.GenerateRequest{
		Type: description.KindJob,
	})
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, description.CodeInvalidInput))
}

func TestGenerateMapsUpstreamAuthFailure(t *testing.T) {
	repo := &memDescriptionRepo{}
	gen := &stubGenerator{err: fmt.Errorf("%w: status 401", era.ErrUnauthorized)}
	svc := NewService(repo, gen)

	_, err := svc.Generate(context.Background(), "student-1", &description.GenerateRequest{
		Type:  description.KindJob,
		Brief: "x",
	})
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, description.CodeUpstreamAuth))
	assert.Empty(t, repo.records, "failed generations must not be recorded")
}

func TestGenerateMapsOtherUpstreamFailures(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rate limited")}
	svc := NewService(&memDescriptionRepo{}, gen)

	_, err := svc.Generate(context.Background(), "student-1", &description.GenerateRequest{
		Type:   description.KindProject,
		Points: []string{"x"},
	})
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, description.CodeUpstreamFailure))
}
