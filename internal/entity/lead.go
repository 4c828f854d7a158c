package entity

import (
	"context"
	"strings"
	"time"
)

// Status de lead segue o funil do dashboard: pending -> contacted -> responded -> converted
const (
	LeadStatusPending   = "pending"
	LeadStatusContacted = "contacted"
	LeadStatusResponded = "responded"
	LeadStatusConverted = "converted"
)

// LeadStatuses lista o funil completo, na ordem dos estágios.
var LeadStatuses = []string{
	LeadStatusPending, LeadStatusContacted, LeadStatusResponded, LeadStatusConverted,
}

func IsLeadStatus(s string) bool {
	switch s {
	case LeadStatusPending, LeadStatusContacted, LeadStatusResponded, LeadStatusConverted:
		return true
	}
	return false
}

// CampaignRef is the campaign summary embedded on lead reads.
type CampaignRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Lead struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	Company         string       `json:"company,omitempty"`
	Status          string       `json:"status"`
	LastContactDate *time.Time   `json:"lastContactDate,omitempty"`
	CampaignID      *string      `json:"campaignId,omitempty"`
	Campaign        *CampaignRef `json:"campaign,omitempty"`
	OwnerID         string       `json:"-"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
}

// LeadFilter is the compiled search predicate: free text OR'd over
// name/email/company, AND'd with an exact status match. Zero value matches
// everything.
type LeadFilter struct {
	Text   string // already lowercased by the compiler
	Status string // empty = any
}

func (f LeadFilter) Matches(l Lead) bool {
	if f.Text != "" {
		hit := strings.Contains(strings.ToLower(l.Name), f.Text) ||
			strings.Contains(strings.ToLower(l.Email), f.Text) ||
			strings.Contains(strings.ToLower(l.Company), f.Text)
		if !hit {
			return false
		}
	}
	if f.Status != "" && l.Status != f.Status {
		return false
	}
	return true
}

// ListLeadsQuery is one page worth of ordered scan: leads with ID strictly
// greater than AfterID, ascending, at most Limit rows.
type ListLeadsQuery struct {
	Filter  LeadFilter
	AfterID string
	Limit   int
}

// LeadUpdate carries the partial fields of a lead update. Nil = untouched.
type LeadUpdate struct {
	Status          *string
	LastContactDate *time.Time
}

// CampaignStats são contagens derivadas, calculadas no read (nunca
// armazenadas) para não dessincronizar com writes concorrentes.
type CampaignStats struct {
	LeadCount    int `json:"leadCount"`
	SuccessCount int `json:"successCount"`
}

type LeadRepository interface {
	List(ctx context.Context, ownerID string, q ListLeadsQuery) ([]Lead, error)
	ListByCampaign(ctx context.Context, ownerID, campaignID string, f LeadFilter) ([]Lead, error)
	FindByID(ctx context.Context, ownerID, id string) (*Lead, error)
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, ownerID, id string, fields LeadUpdate) (*Lead, error)
	UpsertByEmail(ctx context.Context, lead *Lead) error

	// StatsByCampaign aggregates every requested campaign in one round trip.
	// Campaigns with zero leads are simply absent from the result map.
	StatsByCampaign(ctx context.Context, ownerID string, campaignIDs []string) (map[string]CampaignStats, error)
}
