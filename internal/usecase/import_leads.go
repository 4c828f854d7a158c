package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// EnqueueLeadImportsUseCase é o lado produtor do pipeline de import: cada
// linha vira uma mensagem durável na fila. O insert em si acontece no worker.
type EnqueueLeadImportsUseCase struct {
	Queue QueueProducerInterface
}

func NewEnqueueLeadImportsUseCase(producer QueueProducerInterface) *EnqueueLeadImportsUseCase {
	return &EnqueueLeadImportsUseCase{Queue: producer}
}

type ImportRow struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Company    string  `json:"company"`
	CampaignID *string `json:"campaignId"`
}

type EnqueueResult struct {
	Accepted int `json:"accepted"`
	Rejected int `json:"rejected"`
}

func (uc *EnqueueLeadImportsUseCase) Execute(ctx context.Context, ownerID string, rows []ImportRow) (*EnqueueResult, error) {
	if len(rows) == 0 {
		return nil, NewValidationError("rows", "at least one row is required")
	}

	result := &EnqueueResult{}
	for _, row := range rows {
		// Linha sem email não tem chave de upsert; rejeita já no enqueue.
		if strings.TrimSpace(row.Email) == "" {
			result.Rejected++
			continue
		}
		payload := queue.ImportPayload{
			OwnerID:    ownerID,
			Name:       strings.TrimSpace(row.Name),
			Email:      strings.TrimSpace(row.Email),
			Company:    strings.TrimSpace(row.Company),
			CampaignID: row.CampaignID,
		}
		if err := uc.Queue.PublishImport(ctx, payload); err != nil {
			return nil, &TechnicalError{
				Code:    CodeStore,
				Message: "failed to enqueue import row: " + err.Error(),
			}
		}
		result.Accepted++
	}
	return result, nil
}

// ImportLeadUseCase é o lado consumidor: valida o payload e faz upsert por
// (owner, email). Reprocessar a mesma mensagem é inofensivo.
type ImportLeadUseCase struct {
	Leads entity.LeadRepository
}

func NewImportLeadUseCase(leads entity.LeadRepository) *ImportLeadUseCase {
	return &ImportLeadUseCase{Leads: leads}
}

func (uc *ImportLeadUseCase) ImportLead(ctx context.Context, payload queue.ImportPayload) error {
	if payload.OwnerID == "" {
		return NewValidationError("ownerId", "is required")
	}
	if _, err := mail.ParseAddress(payload.Email); err != nil {
		return NewValidationError("email", "is invalid")
	}

	lead := &entity.Lead{
		ID:         uuid.New().String(),
		Name:       payload.Name,
		Email:      payload.Email,
		Company:    payload.Company,
		Status:     entity.LeadStatusPending,
		CampaignID: payload.CampaignID,
		OwnerID:    payload.OwnerID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uc.Leads.UpsertByEmail(ctx, lead); err != nil {
		return storeError(err, "lead import")
	}
	return nil
}
