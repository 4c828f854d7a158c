package entity

import (
	"context"
	"time"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

func IsCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	OwnerID   string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CampaignWithStats is what campaign reads return: the record plus the
// derived counts from the live lead collection.
type CampaignWithStats struct {
	Campaign
	CampaignStats
}

// CampaignUpdate carries the partial fields of a campaign update. Nil = untouched.
type CampaignUpdate struct {
	Name   *string
	Status *string
}

// ListCampaignsQuery: status empty = all; Sort/Order already validated
// upstream ("createdAt"|"name", "asc"|"desc").
type ListCampaignsQuery struct {
	Status string
	Sort   string
	Order  string
}

type CampaignRepository interface {
	Create(ctx context.Context, c *Campaign) error
	FindByID(ctx context.Context, ownerID, id string) (*Campaign, error)
	ListByOwner(ctx context.Context, ownerID string, q ListCampaignsQuery) ([]Campaign, error)
	Update(ctx context.Context, ownerID, id string, fields CampaignUpdate) (*Campaign, error)

	// Delete removes the campaign AND its leads atomically (cascade).
	Delete(ctx context.Context, ownerID, id string) error
}
