package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type CreateLeadUseCase struct {
	Leads     entity.LeadRepository
	Campaigns entity.CampaignRepository
}

func NewCreateLeadUseCase(leads entity.LeadRepository, campaigns entity.CampaignRepository) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads, Campaigns: campaigns}
}

type CreateLeadInput struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Company    string  `json:"company"`
	Status     string  `json:"status"`
	CampaignID *string `json:"campaignId"`
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, ownerID string, input CreateLeadInput) (*entity.Lead, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, NewValidationError("email", "is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, NewValidationError("email", "is invalid")
	}

	status := input.Status
	if status == "" {
		status = entity.LeadStatusPending
	}
	if !entity.IsLeadStatus(status) {
		return nil, NewValidationError("status",
			"must be one of pending, contacted, responded, converted")
	}

	// Referência de campanha, se presente, tem que existir (e ser do owner).
	if input.CampaignID != nil {
		if _, err := uc.Campaigns.FindByID(ctx, ownerID, *input.CampaignID); err != nil {
			if IsDomainError(storeError(err, "campaign")) {
				return nil, NewValidationError("campaignId", "campaign does not exist")
			}
			return nil, storeError(err, "campaign")
		}
	}

	lead := &entity.Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      input.Email,
		Company:    strings.TrimSpace(input.Company),
		Status:     status,
		CampaignID: input.CampaignID,
		OwnerID:    ownerID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, storeError(err, "lead create")
	}
	return lead, nil
}
