package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"item-stats-service/internal/platform/config"
)

func TestConfigurePool(t *testing.T) {
	// sql.Open does not dial, so no server is needed here.
	db, err := sql.Open("postgres", "host=127.0.0.1 port=1 sslmode=disable")
	if err != nil {
		t.Fatalf("sql.Open error: %v", err)
	}
	defer db.Close()

	configurePool(db, config.ServerConfig{MaxOpenConns: 7, MaxIdleConns: 3, ConnMaxLifetime: time.Minute})

	if got := db.Stats().MaxOpenConnections; got != 7 {
		t.Fatalf("expected max open conns 7, got %d", got)
	}
}

func TestOpen_PingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := config.ServerConfig{
		PostgresDSN:  "host=127.0.0.1 port=1 sslmode=disable connect_timeout=1",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	db, err := Open(ctx, cfg)
	if err == nil {
		_ = db.Close()
		t.Fatalf("expected ping error for unreachable server")
	}
}
