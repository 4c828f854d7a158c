package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// ListCampaignLeadsUseCase: mesma semântica de filtro do listing global, mas
// escopado a uma campanha e sem paginação: o volume é limitado ao tamanho da
// campanha, então a resposta inteira é aceitável.
type ListCampaignLeadsUseCase struct {
	Leads     entity.LeadRepository
	Campaigns entity.CampaignRepository
}

func NewListCampaignLeadsUseCase(leads entity.LeadRepository, campaigns entity.CampaignRepository) *ListCampaignLeadsUseCase {
	return &ListCampaignLeadsUseCase{Leads: leads, Campaigns: campaigns}
}

func (uc *ListCampaignLeadsUseCase) Execute(ctx context.Context, ownerID, campaignID, text, status string) ([]entity.Lead, error) {
	filter, err := CompileLeadFilter(text, status)
	if err != nil {
		return nil, err
	}

	if _, err := uc.Campaigns.FindByID(ctx, ownerID, campaignID); err != nil {
		return nil, storeError(err, "campaign")
	}

	leads, err := uc.Leads.ListByCampaign(ctx, ownerID, campaignID, filter)
	if err != nil {
		return nil, storeError(err, "campaign leads")
	}
	if leads == nil {
		leads = []entity.Lead{}
	}
	return leads, nil
}
