package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Leads entity.LeadRepository
}

func NewUpdateLeadStatusUseCase(leads entity.LeadRepository) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Leads: leads}
}

type UpdateLeadInput struct {
	Status          *string `json:"status"`
	LastContactDate *string `json:"lastContactDate"`
}

// Execute é idempotente: repetir o mesmo status é um no-op bem sucedido,
// não um erro.
func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, ownerID, id string, input UpdateLeadInput) (*entity.Lead, error) {
	fields := entity.LeadUpdate{}

	if input.Status != nil {
		if !entity.IsLeadStatus(*input.Status) {
			return nil, NewValidationError("status",
				"must be one of pending, contacted, responded, converted")
		}
		fields.Status = input.Status
	}

	if input.LastContactDate != nil {
		t, err := parseDate(*input.LastContactDate)
		if err != nil {
			return nil, NewValidationError("lastContactDate",
				"must be a date (YYYY-MM-DD) or RFC3339 timestamp")
		}
		fields.LastContactDate = &t
	}

	lead, err := uc.Leads.Update(ctx, ownerID, id, fields)
	if err != nil {
		return nil, storeError(err, "lead")
	}
	return lead, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
