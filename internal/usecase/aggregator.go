package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// CampaignStatsAggregator computes the derived counts on every read, straight
// from the live lead collection. No cache: we trade latency for counts that
// always reflect the latest writes. Under concurrent lead updates a read may
// land between two writes: aggregates are eventually consistent, and that is
// a documented property, not a bug to fix here.
type CampaignStatsAggregator struct {
	Leads entity.LeadRepository
}

func NewCampaignStatsAggregator(leads entity.LeadRepository) *CampaignStatsAggregator {
	return &CampaignStatsAggregator{Leads: leads}
}

// Stats returns {leadCount, successCount} for one campaign. Zero leads is a
// valid answer, not an error.
func (a *CampaignStatsAggregator) Stats(ctx context.Context, ownerID, campaignID string) (entity.CampaignStats, error) {
	stats, err := a.Leads.StatsByCampaign(ctx, ownerID, []string{campaignID})
	if err != nil {
		return entity.CampaignStats{}, storeError(err, "campaign stats")
	}
	return stats[campaignID], nil
}

// WithStats decorates a batch of campaigns in a single repository round trip.
// A partial aggregation failure fails the whole batch: we never return
// silently half-aggregated results.
func (a *CampaignStatsAggregator) WithStats(ctx context.Context, ownerID string, campaigns []entity.Campaign) ([]entity.CampaignWithStats, error) {
	out := make([]entity.CampaignWithStats, 0, len(campaigns))
	if len(campaigns) == 0 {
		return out, nil
	}

	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		ids = append(ids, c.ID)
	}

	stats, err := a.Leads.StatsByCampaign(ctx, ownerID, ids)
	if err != nil {
		return nil, storeError(err, "campaign stats")
	}

	for _, c := range campaigns {
		out = append(out, entity.CampaignWithStats{
			Campaign:      c,
			CampaignStats: stats[c.ID], // zero value when the campaign has no leads
		})
	}
	return out, nil
}
