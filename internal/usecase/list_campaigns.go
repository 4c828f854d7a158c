package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type ListCampaignsUseCase struct {
	Campaigns  entity.CampaignRepository
	Aggregator *CampaignStatsAggregator
}

func NewListCampaignsUseCase(campaigns entity.CampaignRepository, agg *CampaignStatsAggregator) *ListCampaignsUseCase {
	return &ListCampaignsUseCase{Campaigns: campaigns, Aggregator: agg}
}

type ListCampaignsInput struct {
	Status string
	Sort   string
	Order  string
}

func (uc *ListCampaignsUseCase) Execute(ctx context.Context, ownerID string, input ListCampaignsInput) ([]entity.CampaignWithStats, error) {
	status := input.Status
	if status == "all" {
		status = ""
	}
	if status != "" && !entity.IsCampaignStatus(status) {
		return nil, NewValidationError("status",
			"must be one of draft, active, paused, completed")
	}

	// Sort é whitelist: qualquer outra coisa cai no default em vez de
	// chegar perto de uma query.
	sort := input.Sort
	if sort != "name" && sort != "createdAt" {
		sort = "createdAt"
	}
	order := input.Order
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	campaigns, err := uc.Campaigns.ListByOwner(ctx, ownerID, entity.ListCampaignsQuery{
		Status: status,
		Sort:   sort,
		Order:  order,
	})
	if err != nil {
		return nil, storeError(err, "campaign listing")
	}

	// Um único round trip agrega todas; falha parcial derruba o batch inteiro.
	return uc.Aggregator.WithStats(ctx, ownerID, campaigns)
}
