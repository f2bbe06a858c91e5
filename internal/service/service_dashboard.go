package service

import (
	"context"

	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/models"
)

// recentResidentsLimit caps the dashboard's recent-residents listing.
const recentResidentsLimit = 10

// dashboardService produces read-only projections over the identity
// store for the admin dashboard.
type dashboardService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewDashboardService constructs a DashboardService wired to the given
// UserRepository.
func NewDashboardService(userRepository store.UserRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// Stats aggregates resident counts, the per-floor distribution, and the
// ten most recently created residents.
func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	log := logger.FromContext(ctx)

	total, err := s.userRepository.CountResidents(ctx)
	if err != nil {
		log.Err(err).Msg("counting residents failed")
		return nil, err
	}

	active, err := s.userRepository.CountActiveResidents(ctx)
	if err != nil {
		log.Err(err).Msg("counting active residents failed")
		return nil, err
	}

	floors, err := s.userRepository.FloorCounts(ctx)
	if err != nil {
		log.Err(err).Msg("aggregating floor counts failed")
		return nil, err
	}

	recent, err := s.userRepository.RecentResidents(ctx, recentResidentsLimit)
	if err != nil {
		log.Err(err).Msg("listing recent residents failed")
		return nil, err
	}

	return &models.DashboardStats{
		TotalResidents:  total,
		ActiveResidents: active,
		FloorStats:      floors,
		RecentResidents: recent,
	}, nil
}
