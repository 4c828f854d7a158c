package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

type EmailService interface {
	SendWelcome(to, name string) error
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

type QueueProducerInterface interface {
	PublishImport(ctx context.Context, payload queue.ImportPayload) error
}
