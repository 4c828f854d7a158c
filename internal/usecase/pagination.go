package usecase

import (
	"encoding/base64"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

const (
	DefaultPageSize = 20
	MinPageSize     = 1
	MaxPageSize     = 100
)

// clampPageSize: input inválido ou ausente é clampado, nunca erro.
func clampPageSize(n int) int {
	if n <= 0 {
		return DefaultPageSize
	}
	if n < MinPageSize {
		return MinPageSize
	}
	if n > MaxPageSize {
		return MaxPageSize
	}
	return n
}

// Cursors are opaque to callers: base64 of the last-seen lead ID. The ID is
// immutable and totally ordered, so a held cursor never shifts, duplicates
// or skips rows past it as inserts land. The cursor deliberately does NOT
// encode the filter; changing filters mid-pagination is undefined behavior.
func encodeCursor(id string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(id))
}

func decodeCursor(cursor string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil || len(raw) == 0 {
		// Cursor podre não reseta para a página 1: é erro do caller.
		return "", NewValidationError("cursor", "malformed pagination cursor")
	}
	return string(raw), nil
}

type LeadPage struct {
	Items      []entity.Lead `json:"items"`
	NextCursor *string       `json:"nextCursor"`
}

// pageFromRows applies the fetch-one-extra rule: rows were queried with
// size+1; if the extra row came back it is dropped and the cursor points at
// the last row KEPT, so the dropped row opens the next page.
func pageFromRows(rows []entity.Lead, size int) LeadPage {
	page := LeadPage{Items: rows}
	if len(rows) > size {
		page.Items = rows[:size]
		cursor := encodeCursor(page.Items[size-1].ID)
		page.NextCursor = &cursor
	}
	if page.Items == nil {
		page.Items = []entity.Lead{}
	}
	return page
}
