package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"aidbridge/internal/config"
)

type Repositories struct {
	KV      KV
	Session SessionRepository
}

// NewRepositories picks the KV backend from config. db may be nil unless
// the postgres backend is selected; rdb may be nil, which disables refresh
// sessions (and the redis backend).
func NewRepositories(db *sqlx.DB, rdb *redis.Client, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{}

	switch cfg.StoreBackend {
	case "postgres":
		if db == nil {
			return nil, fmt.Errorf("store backend postgres requires a database connection")
		}
		kv, err := NewPostgresKV(db)
		if err != nil {
			return nil, err
		}
		repos.KV = kv
	case "redis":
		if rdb == nil {
			return nil, fmt.Errorf("store backend redis requires a redis connection")
		}
		repos.KV = NewRedisKV(rdb)
	case "memory":
		repos.KV = NewMemoryKV()
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	if rdb != nil {
		repos.Session = NewSessionRepository(rdb)
	}

	return repos, nil
}
