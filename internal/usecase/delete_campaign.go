package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// DeleteCampaignUseCase é a ação de danger zone do dashboard. O delete
// CASCATEIA para os leads da campanha: o repositório faz os dois deletes na
// mesma transação, então ou tudo some ou nada some (nunca lead órfão).
type DeleteCampaignUseCase struct {
	Campaigns entity.CampaignRepository
}

func NewDeleteCampaignUseCase(campaigns entity.CampaignRepository) *DeleteCampaignUseCase {
	return &DeleteCampaignUseCase{Campaigns: campaigns}
}

func (uc *DeleteCampaignUseCase) Execute(ctx context.Context, ownerID, id string) error {
	if err := uc.Campaigns.Delete(ctx, ownerID, id); err != nil {
		return storeError(err, "campaign")
	}
	return nil
}
