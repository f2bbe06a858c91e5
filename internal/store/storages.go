package store

import (
	"context"

	"github.com/society360/backend/internal/config"
	"github.com/society360/backend/internal/logger"
)

// Storages bundles every repository behind a single injection point.
type Storages struct {
	UserRepository         UserRepository
	NotificationRepository NotificationRepository
}

// NewStorages opens the database connection and wires all repositories
// to it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, *DB, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, nil, err
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		NotificationRepository: NewNotificationRepository(db, logger),
	}, db, nil
}
