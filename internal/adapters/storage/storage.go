// Package storage arma el animals.Repository según la configuración.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"animal-tracker/internal/adapters/storage/memory"
	pg "animal-tracker/internal/adapters/storage/postgres"
	"animal-tracker/internal/adapters/storage/rediscache"
	"animal-tracker/internal/adapters/storage/sqlite"
	"animal-tracker/internal/domain/animals"
	"animal-tracker/internal/platform/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Storage es el repo listo para usar más lo que hay que cerrar al apagar.
type Storage struct {
	Repo animals.Repository

	db    *sql.DB
	redis *redis.Client
}

func (s *Storage) Close() error {
	var first error
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			first = err
		}
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Open abre el driver configurado, asegura el schema y, si hay REDIS_ADDR,
// envuelve el repo con el cache del listado.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Storage, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Storage{}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		s.Repo = memory.NewAnimalRepo()

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		s.db = db
		s.Repo = sqlite.NewAnimalsRepo(db)

	case config.DriverPostgres:
		db, err := pg.Open(cfg.Storage.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("postgres: ensure schema: %w", err)
		}
		s.db = db
		s.Repo = pg.NewAnimalsRepo(db)

	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Storage.Driver)
	}

	log.Info("storage ready", zap.String("driver", cfg.Storage.Driver))

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := client.Ping(ctx).Err(); err != nil {
			// Sin cache se puede seguir; el storage es la fuente de verdad.
			log.Warn("redis unavailable, list cache disabled", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			_ = client.Close()
		} else {
			s.redis = client
			s.Repo = rediscache.New(s.Repo, client, rediscache.Options{TTL: cfg.Redis.TTL}, log)
			log.Info("list cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}

	return s, nil
}
