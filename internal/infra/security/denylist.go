package security

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisDenylist guarda jtis de sessões encerradas até o token expirar
// sozinho. JWT não tem revogação nativa; sem isso, logout seria cosmético.
type RedisDenylist struct {
	Client *redis.Client
}

// NewRedisClient aceita URL redis:// ou host:port puro.
func NewRedisClient(addr string) (*redis.Client, error) {
	if strings.HasPrefix(addr, "redis://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		return redis.NewClient(opt), nil
	}
	return redis.NewClient(&redis.Options{Addr: addr}), nil
}

func NewRedisDenylist(client *redis.Client) *RedisDenylist {
	return &RedisDenylist{Client: client}
}

func denyKey(jti string) string {
	return "session:revoked:" + jti
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// Token já expirado não precisa entrar na lista.
		return nil
	}
	return d.Client.Set(ctx, denyKey(jti), "1", ttl).Err()
}

func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := d.Client.Exists(ctx, denyKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
