package usecase

import (
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// CompileLeadFilter turns the raw query params into a predicate.
//
// Empty text = no text constraint. Non-empty text matches name OR email OR
// company, case-insensitive substring. Status "" or "any" = no status
// constraint; anything else must be a real lead status: an unknown value is
// rejected here instead of silently matching nothing.
func CompileLeadFilter(text, status string) (entity.LeadFilter, error) {
	f := entity.LeadFilter{
		Text: strings.ToLower(strings.TrimSpace(text)),
	}

	status = strings.TrimSpace(status)
	if status != "" && status != "any" && status != "all" {
		if !entity.IsLeadStatus(status) {
			return entity.LeadFilter{}, NewValidationError("status",
				"must be one of pending, contacted, responded, converted")
		}
		f.Status = status
	}

	return f, nil
}
