package entity

import "errors"

// Sentinelas do repositório. A camada de usecase traduz para o taxonomy
// de erro exposto ao caller (NOT_FOUND, CONFLICT, ...).
var (
	ErrNotFound           = errors.New("record not found")
	ErrCampaignNameTaken  = errors.New("campaign name already taken for this owner")
	ErrEmailAlreadyExists = errors.New("email already registered")
)
