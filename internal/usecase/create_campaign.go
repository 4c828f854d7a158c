package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type CreateCampaignUseCase struct {
	Campaigns entity.CampaignRepository
}

func NewCreateCampaignUseCase(campaigns entity.CampaignRepository) *CreateCampaignUseCase {
	return &CreateCampaignUseCase{Campaigns: campaigns}
}

type CreateCampaignInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

func (uc *CreateCampaignUseCase) Execute(ctx context.Context, ownerID string, input CreateCampaignInput) (*entity.CampaignWithStats, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "campaign name is required")
	}
	if len(name) > 200 {
		return nil, NewValidationError("name", "must not exceed 200 characters")
	}

	status := input.Status
	if status == "" {
		status = entity.CampaignStatusDraft
	}
	if !entity.IsCampaignStatus(status) {
		return nil, NewValidationError("status",
			"must be one of draft, active, paused, completed")
	}

	campaign := &entity.Campaign{
		ID:        uuid.New().String(),
		Name:      name,
		Status:    status,
		OwnerID:   ownerID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Unicidade de (name, owner) é garantida pelo store; duplicata vira CONFLICT.
	if err := uc.Campaigns.Create(ctx, campaign); err != nil {
		return nil, storeError(err, "campaign create")
	}

	// Campanha recém-criada não tem lead nenhum: counts derivados são zero.
	return &entity.CampaignWithStats{Campaign: *campaign}, nil
}
