package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// memLeadStore é um record store de verdade (ordenado, indexável), em
// memória, para os testes de propriedade do paginador. Ele reusa o
// LeadFilter.Matches como predicado: o mesmo contrato que o Postgres
// compila para WHERE.
type memLeadStore struct {
	mu    sync.Mutex
	leads map[string]entity.Lead
}

func newMemLeadStore() *memLeadStore {
	return &memLeadStore{leads: make(map[string]entity.Lead)}
}

func (s *memLeadStore) add(lead entity.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leads[lead.ID] = lead
}

func (s *memLeadStore) sorted(ownerID string) []entity.Lead {
	var out []entity.Lead
	for _, l := range s.leads {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *memLeadStore) List(_ context.Context, ownerID string, q entity.ListLeadsQuery) ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Lead
	for _, l := range s.sorted(ownerID) {
		if q.AfterID != "" && l.ID <= q.AfterID {
			continue
		}
		if !q.Filter.Matches(l) {
			continue
		}
		out = append(out, l)
		if len(out) == q.Limit {
			break
		}
	}
	return out, nil
}

func (s *memLeadStore) ListByCampaign(_ context.Context, ownerID, campaignID string, f entity.LeadFilter) ([]entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Lead
	for _, l := range s.sorted(ownerID) {
		if l.CampaignID == nil || *l.CampaignID != campaignID {
			continue
		}
		if f.Matches(l) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memLeadStore) FindByID(_ context.Context, ownerID, id string) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok || l.OwnerID != ownerID {
		return nil, entity.ErrNotFound
	}
	return &l, nil
}

func (s *memLeadStore) Create(_ context.Context, lead *entity.Lead) error {
	s.add(*lead)
	return nil
}

func (s *memLeadStore) Update(_ context.Context, ownerID, id string, fields entity.LeadUpdate) (*entity.Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.leads[id]
	if !ok || l.OwnerID != ownerID {
		return nil, entity.ErrNotFound
	}
	if fields.Status != nil {
		l.Status = *fields.Status
	}
	if fields.LastContactDate != nil {
		l.LastContactDate = fields.LastContactDate
	}
	l.UpdatedAt = time.Now()
	s.leads[id] = l
	return &l, nil
}

func (s *memLeadStore) UpsertByEmail(_ context.Context, lead *entity.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.leads {
		if l.OwnerID == lead.OwnerID && l.Email == lead.Email {
			if lead.Name != "" {
				l.Name = lead.Name
			}
			if lead.Company != "" {
				l.Company = lead.Company
			}
			if lead.CampaignID != nil {
				l.CampaignID = lead.CampaignID
			}
			s.leads[id] = l
			*lead = l
			return nil
		}
	}
	s.leads[lead.ID] = *lead
	return nil
}

func (s *memLeadStore) StatsByCampaign(_ context.Context, ownerID string, campaignIDs []string) (map[string]entity.CampaignStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wanted := make(map[string]bool, len(campaignIDs))
	for _, id := range campaignIDs {
		wanted[id] = true
	}

	stats := make(map[string]entity.CampaignStats)
	for _, l := range s.leads {
		if l.OwnerID != ownerID || l.CampaignID == nil || !wanted[*l.CampaignID] {
			continue
		}
		s := stats[*l.CampaignID]
		s.LeadCount++
		if l.Status == entity.LeadStatusConverted {
			s.SuccessCount++
		}
		stats[*l.CampaignID] = s
	}
	return stats, nil
}

// seedLeads gera n leads com IDs zero-padded (ordenação lexicográfica estável).
func seedLeads(store *memLeadStore, ownerID string, n int) []entity.Lead {
	leads := make([]entity.Lead, 0, n)
	for i := 1; i <= n; i++ {
		lead := entity.Lead{
			ID:      fmt.Sprintf("lead-%05d", i),
			Name:    fmt.Sprintf("Lead %d", i),
			Email:   fmt.Sprintf("lead%d@example.com", i),
			Status:  entity.LeadStatusPending,
			OwnerID: ownerID,
		}
		store.add(lead)
		leads = append(leads, lead)
	}
	return leads
}
