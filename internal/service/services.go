package service

import (
	"github.com/society360/backend/internal/config"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
)

type Services struct {
	AuthService         AuthService
	ResidentService     ResidentService
	NotificationService NotificationService
	DashboardService    DashboardService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		ResidentService:     NewResidentService(storages.UserRepository, cfg.App, logger),
		NotificationService: NewNotificationService(storages.NotificationRepository, storages.UserRepository, logger),
		DashboardService:    NewDashboardService(storages.UserRepository, logger),
	}
}
