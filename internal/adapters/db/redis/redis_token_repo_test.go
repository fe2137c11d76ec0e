package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
)

func newRepo(t *testing.T) *RedisTokenRepo {
	mr := miniredis.RunT(t)
	t.Cleanup(mr.Close)

	client := redisv9.NewClient(&redisv9.Options{
		Addr: mr.Addr(),
	})
	return NewRedisTokenRepo(client)
}

func TestRedisTokenRepo_FreshJtiNotRevoked(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	revoked, err := repo.IsRevoked(ctx, "jti1")
	if err != nil {
		t.Fatalf("IsRevoked err: %v", err)
	}
	if revoked {
		t.Fatal("unknown jti should NOT be revoked")
	}
}

func TestRedisTokenRepo_RevokeAndIsRevoked(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := time.Now().Add(1 * time.Minute)
	if err := repo.Revoke(ctx, "jti2", exp); err != nil {
		t.Fatalf("Revoke: %v", err)
	}

	revoked, err := repo.IsRevoked(ctx, "jti2")
	if err != nil {
		t.Fatalf("IsRevoked err: %v", err)
	}
	if !revoked {
		t.Fatal("token should be marked revoked")
	}
}

func TestRedisTokenRepo_RevokeAccessAndIsAccessRevoked(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	exp := time.Now().Add(1 * time.Minute)
	if err := repo.RevokeAccess(ctx, "jti3", exp); err != nil {
		t.Fatalf("RevokeAccess: %v", err)
	}

	revoked, err := repo.IsAccessRevoked(ctx, "jti3")
	if err != nil {
		t.Fatalf("IsAccessRevoked err: %v", err)
	}
	if !revoked {
		t.Fatal("access token should be marked revoked")
	}

	// the two denylists use separate keyspaces
	other, err := repo.IsRevoked(ctx, "jti3")
	if err != nil {
		t.Fatalf("IsRevoked err: %v", err)
	}
	if other {
		t.Fatal("refresh denylist must not see access revocations")
	}
}

func TestRedisTokenRepo_PastExpiryStillWritable(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	if err := repo.Revoke(ctx, "jti4", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("Revoke with past expiry: %v", err)
	}
	revoked, err := repo.IsRevoked(ctx, "jti4")
	if err != nil || !revoked {
		t.Fatalf("expected revoked, got %v %v", revoked, err)
	}
}
