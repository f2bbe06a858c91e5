package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/internal/config"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/models"
	"golang.org/x/crypto/bcrypt"
)

// minPasswordLength is the minimal accepted resident password length.
const minPasswordLength = 6

// residentService is the concrete implementation of ResidentService.
// Resident accounts are created, mutated, and removed exclusively by
// administrators; resident self-service editing does not exist.
type residentService struct {
	userRepository store.UserRepository
	bcryptCost     int
	logger         *logger.Logger
}

// NewResidentService constructs a ResidentService wired to the given
// UserRepository. A zero bcrypt cost selects the library default.
func NewResidentService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) ResidentService {
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &residentService{
		userRepository: userRepository,
		bcryptCost:     cost,
		logger:         logger,
	}
}

// CreateResident validates and persists a new resident account.
//
// The submitted plaintext password is retained alongside the bcrypt hash
// for admin display — a deliberate product requirement. The plaintext
// copy never leaves the server except through the admin listing view.
//
// Returns the created resident or:
//   - ErrInvalidDataProvided on missing required fields, a short
//     password, or a violated vehicle invariant.
//   - store.ErrUsernameTaken / store.ErrEmailTaken /
//     store.ErrRoomOccupied on uniqueness conflicts.
func (s *residentService) CreateResident(ctx context.Context, admin models.Principal, req models.CreateResidentRequest) (*models.Resident, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.RoomNumber = strings.TrimSpace(req.RoomNumber)

	if req.Username == "" || req.Password == "" || req.FullName == "" || req.Email == "" ||
		req.Phone == "" || req.RoomNumber == "" || req.Floor == nil || req.EmergencyContact == nil {
		log.Error().Str("username", req.Username).Msg("missing required resident fields")
		return nil, ErrInvalidDataProvided
	}

	if len(req.Password) < minPasswordLength {
		return nil, ErrInvalidDataProvided
	}

	contact := *req.EmergencyContact
	if contact.Name == "" || contact.Phone == "" || contact.Relationship == "" {
		return nil, ErrInvalidDataProvided
	}

	vehicle, err := normalizeVehicleDetails(req.VehicleDetails)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("password hashing failed: %w", err)
	}

	resident := models.Resident{
		ID:               utils.NewID(),
		Username:         req.Username,
		PasswordHash:     string(hash),
		PlainPassword:    req.Password,
		FullName:         req.FullName,
		Email:            req.Email,
		Phone:            req.Phone,
		ImageURL:         req.ImageURL,
		RoomNumber:       req.RoomNumber,
		Floor:            *req.Floor,
		DateOfJoining:    time.Now(),
		EmergencyContact: contact,
		VehicleDetails:   vehicle,
		IsActive:         true,
		CreatedBy:        admin.PrincipalID(),
	}

	saved, err := s.userRepository.CreateResident(ctx, resident)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("resident creation ended with error")
		return nil, err
	}

	return &saved, nil
}

// ListResidents returns every resident in the admin-facing projection,
// which includes the retained plaintext password and the creator's
// username. This is the single code path that exposes the plaintext
// copy.
func (s *residentService) ListResidents(ctx context.Context) ([]models.ResidentAdminView, error) {
	residents, err := s.userRepository.ListResidents(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]models.ResidentAdminView, 0, len(residents))
	for _, resident := range residents {
		views = append(views, resident.AdminView())
	}

	return views, nil
}

// GetResident returns a single resident record.
//
// Returns store.ErrUserNotFound if the ID matches nothing and
// ErrNotAResident if it matches an administrator.
func (s *residentService) GetResident(ctx context.Context, id uuid.UUID) (*models.Resident, error) {
	principal, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resident, ok := principal.(models.Resident)
	if !ok {
		return nil, ErrNotAResident
	}

	return &resident, nil
}

// UpdateResident applies a partial update to an existing resident.
// Username, password, and role are immutable through this path.
func (s *residentService) UpdateResident(ctx context.Context, id uuid.UUID, req models.UpdateResidentRequest) (*models.Resident, error) {
	log := logger.FromContext(ctx)

	update := store.ResidentUpdate{
		FullName:         trimmed(req.FullName),
		Phone:            trimmed(req.Phone),
		ImageURL:         req.ImageURL,
		RoomNumber:       trimmed(req.RoomNumber),
		Floor:            req.Floor,
		EmergencyContact: req.EmergencyContact,
		IsActive:         req.IsActive,
	}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email == "" {
			return nil, ErrInvalidDataProvided
		}
		update.Email = &email
	}

	if req.EmergencyContact != nil {
		contact := *req.EmergencyContact
		if contact.Name == "" || contact.Phone == "" || contact.Relationship == "" {
			return nil, ErrInvalidDataProvided
		}
	}

	if req.VehicleDetails != nil {
		vehicle, err := normalizeVehicleDetails(req.VehicleDetails)
		if err != nil {
			return nil, err
		}
		update.VehicleDetails = &vehicle
	}

	saved, err := s.userRepository.UpdateResident(ctx, id, update)
	if err != nil {
		log.Err(err).Str("resident_id", id.String()).Msg("resident update ended with error")
		return nil, err
	}

	return &saved, nil
}

// DeleteResident permanently removes the resident record. The freed room
// number becomes available for new residents immediately.
func (s *residentService) DeleteResident(ctx context.Context, id uuid.UUID) error {
	// reject admin IDs with the dedicated error instead of the generic
	// not-found produced by the role-scoped DELETE
	principal, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, ok := principal.(models.Resident); !ok {
		return ErrNotAResident
	}

	return s.userRepository.DeleteResident(ctx, id)
}

// normalizeVehicleDetails enforces the vehicle invariant: with
// HasVehicle set, all four descriptive fields must be non-empty; without
// it, they are cleared. Vehicle numbers are stored uppercase.
func normalizeVehicleDetails(vehicle *models.VehicleDetails) (models.VehicleDetails, error) {
	if vehicle == nil || !vehicle.HasVehicle {
		return models.VehicleDetails{HasVehicle: false}, nil
	}

	normalized := models.VehicleDetails{
		HasVehicle:    true,
		VehicleType:   strings.TrimSpace(vehicle.VehicleType),
		VehicleNumber: strings.ToUpper(strings.TrimSpace(vehicle.VehicleNumber)),
		VehicleBrand:  strings.TrimSpace(vehicle.VehicleBrand),
		VehicleColor:  strings.TrimSpace(vehicle.VehicleColor),
	}

	if normalized.VehicleType == "" || normalized.VehicleNumber == "" ||
		normalized.VehicleBrand == "" || normalized.VehicleColor == "" {
		return models.VehicleDetails{}, ErrInvalidDataProvided
	}

	return normalized, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
