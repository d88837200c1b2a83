package redis

import (
	"context"
	"testing"

	"github.com/campusboard/result-api/internal/infrastructure/config"
)

func TestConnect_Unreachable(t *testing.T) {
	client, err := Connect(context.Background(), config.RedisConfig{
		Addr: "127.0.0.1:1",
		DB:   0,
	})
	if err == nil {
		t.Fatalf("expected error for unreachable address")
	}
	if client != nil {
		t.Fatalf("expected nil client on failure")
	}
}
