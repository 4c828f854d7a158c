package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type UpdateCampaignUseCase struct {
	Campaigns  entity.CampaignRepository
	Aggregator *CampaignStatsAggregator
}

func NewUpdateCampaignUseCase(campaigns entity.CampaignRepository, agg *CampaignStatsAggregator) *UpdateCampaignUseCase {
	return &UpdateCampaignUseCase{Campaigns: campaigns, Aggregator: agg}
}

type UpdateCampaignInput struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

// Execute aplica só os campos presentes no input (partial update).
func (uc *UpdateCampaignUseCase) Execute(ctx context.Context, ownerID, id string, input UpdateCampaignInput) (*entity.CampaignWithStats, error) {
	fields := entity.CampaignUpdate{}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, NewValidationError("name", "campaign name is required")
		}
		fields.Name = &name
	}
	if input.Status != nil {
		if !entity.IsCampaignStatus(*input.Status) {
			return nil, NewValidationError("status",
				"must be one of draft, active, paused, completed")
		}
		fields.Status = input.Status
	}

	campaign, err := uc.Campaigns.Update(ctx, ownerID, id, fields)
	if err != nil {
		return nil, storeError(err, "campaign")
	}

	stats, err := uc.Aggregator.Stats(ctx, ownerID, campaign.ID)
	if err != nil {
		return nil, err
	}

	return &entity.CampaignWithStats{Campaign: *campaign, CampaignStats: stats}, nil
}
