package repository

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
	"github.com/sysu-ecnc-dev/mueen/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
	rdb    *redis.Client
}

func NewRepository(cfg *config.Config, dbpool *sql.DB, rdb *redis.Client) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
		rdb:    rdb,
	}
}
