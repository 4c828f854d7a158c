package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ListLeadsUseCase é o read principal do dashboard: scan ordenado por ID +
// filtro composto + paginação por cursor.
type ListLeadsUseCase struct {
	Leads entity.LeadRepository
}

func NewListLeadsUseCase(leads entity.LeadRepository) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

type ListLeadsInput struct {
	Text     string
	Status   string
	Cursor   string
	PageSize int
}

func (uc *ListLeadsUseCase) Execute(ctx context.Context, ownerID string, input ListLeadsInput) (*LeadPage, error) {
	filter, err := CompileLeadFilter(input.Text, input.Status)
	if err != nil {
		return nil, err
	}

	size := clampPageSize(input.PageSize)

	afterID := ""
	if input.Cursor != "" {
		afterID, err = decodeCursor(input.Cursor)
		if err != nil {
			return nil, err
		}
	}

	// Busca size+1: a linha extra só diz "tem próxima página" e é descartada.
	rows, err := uc.Leads.List(ctx, ownerID, entity.ListLeadsQuery{
		Filter:  filter,
		AfterID: afterID,
		Limit:   size + 1,
	})
	if err != nil {
		return nil, storeError(err, "lead listing")
	}

	page := pageFromRows(rows, size)
	return &page, nil
}
