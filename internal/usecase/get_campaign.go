package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type GetCampaignUseCase struct {
	Campaigns  entity.CampaignRepository
	Aggregator *CampaignStatsAggregator
}

func NewGetCampaignUseCase(campaigns entity.CampaignRepository, agg *CampaignStatsAggregator) *GetCampaignUseCase {
	return &GetCampaignUseCase{Campaigns: campaigns, Aggregator: agg}
}

func (uc *GetCampaignUseCase) Execute(ctx context.Context, ownerID, id string) (*entity.CampaignWithStats, error) {
	campaign, err := uc.Campaigns.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, storeError(err, "campaign")
	}

	stats, err := uc.Aggregator.Stats(ctx, ownerID, campaign.ID)
	if err != nil {
		return nil, err
	}

	return &entity.CampaignWithStats{Campaign: *campaign, CampaignStats: stats}, nil
}
