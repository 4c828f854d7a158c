package worker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// O GROUP BY só devolve status com pelo menos um lead; a varredura tem que
// zerar explicitamente os demais pra o gauge não congelar.
func TestFullFunnelResetsMissingStatuses(t *testing.T) {
	counts := fullFunnel(map[string]float64{
		entity.LeadStatusPending:   12,
		entity.LeadStatusConverted: 3,
	})

	assert.Equal(t, map[string]float64{
		entity.LeadStatusPending:   12,
		entity.LeadStatusContacted: 0,
		entity.LeadStatusResponded: 0,
		entity.LeadStatusConverted: 3,
	}, counts)
}

func TestFullFunnelEmptySweepZeroesEverything(t *testing.T) {
	counts := fullFunnel(map[string]float64{})

	assert.Len(t, counts, len(entity.LeadStatuses))
	for status, count := range counts {
		assert.Zerof(t, count, "status %s", status)
	}
}
