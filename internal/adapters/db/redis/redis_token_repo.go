package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisTokenRepo keeps revoked jti values until the token they belong to
// would have expired anyway.
type RedisTokenRepo struct {
	client *redis.Client
}

func NewRedisTokenRepo(client *redis.Client) *RedisTokenRepo {
	return &RedisTokenRepo{
		client: client,
	}
}

func (r *RedisTokenRepo) Revoke(ctx context.Context, jti string, exp time.Time) error {
	return r.client.Set(ctx, "r:"+jti, 1, safeTTL(exp)).Err()
}

func (r *RedisTokenRepo) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, "r:"+jti).Result()
	if err != nil {
		// fail closed: treat as revoked and surface the error
		return true, err
	}
	return n > 0, nil
}

func (r *RedisTokenRepo) RevokeAccess(ctx context.Context, jti string, exp time.Time) error {
	return r.client.Set(ctx, "a:"+jti, 1, safeTTL(exp)).Err()
}

func (r *RedisTokenRepo) IsAccessRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, "a:"+jti).Result()
	if err != nil {
		return true, err
	}
	return n > 0, nil
}

// safeTTL guards against a non-positive TTL, which redis would reject.
func safeTTL(exp time.Time) time.Duration {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return time.Minute
	}
	return ttl
}
