package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/models"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It manages both principal kinds against the shared "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAdmin persists a new administrator account and returns it with
// server-assigned timestamps.
//
// Error handling:
//   - unique_violation on the username index → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateAdmin(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createAdmin, admin.ID, admin.Username, admin.PasswordHash)
	if err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateAdmin").Msg("error: admin insert failed")
		return models.Admin{}, mapUserConstraintError(err)
	}

	return admin, nil
}

// CreateResident persists a new resident account and returns the fully
// populated [models.Resident] with server-assigned fields.
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - unique_violation → [ErrUsernameTaken] / [ErrEmailTaken] /
//     [ErrRoomOccupied] depending on the violated constraint.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateResident(ctx context.Context, resident models.Resident) (models.Resident, error) {
	log := logger.FromContext(ctx)

	var imageURL sql.NullString
	if resident.ImageURL != nil && *resident.ImageURL != "" {
		imageURL = sql.NullString{String: *resident.ImageURL, Valid: true}
	}

	row := r.db.QueryRowContext(ctx, createResident,
		resident.ID,
		resident.Username,
		resident.PasswordHash,
		resident.PlainPassword,
		resident.FullName,
		resident.Email,
		resident.Phone,
		imageURL,
		resident.RoomNumber,
		resident.Floor,
		resident.DateOfJoining,
		resident.EmergencyContact.Name,
		resident.EmergencyContact.Phone,
		resident.EmergencyContact.Relationship,
		resident.VehicleDetails.HasVehicle,
		nullIfEmpty(resident.VehicleDetails.VehicleType),
		nullIfEmpty(resident.VehicleDetails.VehicleNumber),
		nullIfEmpty(resident.VehicleDetails.VehicleBrand),
		nullIfEmpty(resident.VehicleDetails.VehicleColor),
		resident.IsActive,
		resident.CreatedBy,
	)

	var saved userRow
	if err := row.Scan(saved.scanTargets()...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateResident").Msg("error: resident insert failed")
		return models.Resident{}, mapUserConstraintError(err)
	}

	return saved.toResident(), nil
}

// FindByUsername retrieves the principal whose username matches exactly.
//
// Error handling:
//   - sql.ErrNoRows → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindByUsername(ctx context.Context, username string) (models.Principal, error) {
	return r.findOne(ctx, findUserByUsername, username)
}

// FindByID retrieves the principal with the given identifier.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (models.Principal, error) {
	return r.findOne(ctx, findUserByID, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.Principal, error) {
	log := logger.FromContext(ctx)

	var found userRow
	row := r.db.QueryRowContext(ctx, query, arg)
	if err := row.Scan(found.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: user lookup failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found.toPrincipal()
}

// ListResidents returns every resident record, newest first, with the
// creator's username joined in.
func (r *userRepository) ListResidents(ctx context.Context) ([]models.Resident, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listResidents)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListResidents").Msg("error: residents query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	residents := make([]models.Resident, 0)
	for rows.Next() {
		var current userRow
		targets := append(current.scanTargets(), &current.CreatedByUsername)
		if err := rows.Scan(targets...); err != nil {
			log.Err(err).Str("func", "*userRepository.ListResidents").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		residents = append(residents, current.toResident())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return residents, nil
}

// UpdateResident applies a partial update to the resident with the given
// ID and returns the updated record.
//
// The SET clause is built dynamically with squirrel from the non-nil
// fields of update. Vehicle details are written as a block: disabling
// HasVehicle clears all four descriptive columns.
//
// Error handling:
//   - No fields to change → [ErrNothingToUpdate].
//   - sql.ErrNoRows → [ErrUserNotFound].
//   - unique_violation → [ErrEmailTaken] / [ErrRoomOccupied].
func (r *userRepository) UpdateResident(ctx context.Context, id uuid.UUID, update ResidentUpdate) (models.Resident, error) {
	log := logger.FromContext(ctx)

	builder := psql.Update("users").Set("updated_at", sq.Expr("NOW()"))

	changed := false
	if update.FullName != nil {
		builder = builder.Set("full_name", *update.FullName)
		changed = true
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
		changed = true
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
		changed = true
	}
	if update.ImageURL != nil {
		builder = builder.Set("image_url", nullIfEmpty(*update.ImageURL))
		changed = true
	}
	if update.RoomNumber != nil {
		builder = builder.Set("room_number", *update.RoomNumber)
		changed = true
	}
	if update.Floor != nil {
		builder = builder.Set("floor", *update.Floor)
		changed = true
	}
	if update.EmergencyContact != nil {
		builder = builder.
			Set("emergency_name", update.EmergencyContact.Name).
			Set("emergency_phone", update.EmergencyContact.Phone).
			Set("emergency_relationship", update.EmergencyContact.Relationship)
		changed = true
	}
	if update.VehicleDetails != nil {
		vehicle := update.VehicleDetails
		builder = builder.
			Set("has_vehicle", vehicle.HasVehicle).
			Set("vehicle_type", nullIfEmpty(vehicle.VehicleType)).
			Set("vehicle_number", nullIfEmpty(vehicle.VehicleNumber)).
			Set("vehicle_brand", nullIfEmpty(vehicle.VehicleBrand)).
			Set("vehicle_color", nullIfEmpty(vehicle.VehicleColor))
		changed = true
	}
	if update.IsActive != nil {
		builder = builder.Set("is_active", *update.IsActive)
		changed = true
	}

	if !changed {
		return models.Resident{}, ErrNothingToUpdate
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "role": string(models.RoleResident)}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return models.Resident{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved userRow
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(saved.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resident{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateResident").Msg("error: resident update failed")
		return models.Resident{}, mapUserConstraintError(err)
	}

	return saved.toResident(), nil
}

// DeleteResident removes the resident record permanently. Notifications
// addressed to the resident are removed by the cascading foreign key.
func (r *userRepository) DeleteResident(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteResident, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteResident").Msg("error: resident delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// SummariesByIDs resolves identity summaries for the given principal IDs
// in a single query.
func (r *userRepository) SummariesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	summaries := make(map[uuid.UUID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	query, args, err := psql.
		Select("id", "username", "COALESCE(full_name, '')", "COALESCE(room_number, '')").
		From("users").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SummariesByIDs").Msg("error: summaries query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var summary models.UserSummary
		if err := rows.Scan(&summary.ID, &summary.Username, &summary.FullName, &summary.RoomNumber); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summaries[summary.ID] = summary
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summaries, nil
}

// AdminExists reports whether at least one administrator account exists.
func (r *userRepository) AdminExists(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx, adminExists).Scan(&exists); err != nil {
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return exists, nil
}

// CountResidents returns the total number of resident accounts.
func (r *userRepository) CountResidents(ctx context.Context) (int, error) {
	return r.count(ctx, countResidents)
}

// CountActiveResidents returns the number of residents with is_active set.
func (r *userRepository) CountActiveResidents(ctx context.Context) (int, error) {
	return r.count(ctx, countActiveResidents)
}

func (r *userRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return total, nil
}

// FloorCounts groups residents by floor, ordered by floor ascending.
func (r *userRepository) FloorCounts(ctx context.Context) ([]models.FloorCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, floorCounts)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FloorCounts").Msg("error: floor counts query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	counts := make([]models.FloorCount, 0)
	for rows.Next() {
		var count models.FloorCount
		if err := rows.Scan(&count.Floor, &count.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, count)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

// RecentResidents returns the most recently created residents, newest
// first, capped at limit.
func (r *userRepository) RecentResidents(ctx context.Context, limit int) ([]models.ResidentBrief, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, recentResidents, limit)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RecentResidents").Msg("error: recent residents query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	briefs := make([]models.ResidentBrief, 0, limit)
	for rows.Next() {
		var brief models.ResidentBrief
		if err := rows.Scan(&brief.ID, &brief.FullName, &brief.RoomNumber, &brief.Floor, &brief.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		briefs = append(briefs, brief)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return briefs, nil
}

// mapUserConstraintError classifies a users-table write failure into the
// matching sentinel based on the violated unique constraint.
func mapUserConstraintError(err error) error {
	if postgresError(err) != pgerrcode.UniqueViolation {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	switch postgresConstraint(err) {
	case "users_username_key":
		return ErrUsernameTaken
	case "users_email_key":
		return ErrEmailTaken
	case "users_room_active_key":
		return ErrRoomOccupied
	default:
		return fmt.Errorf("unexpected DB error: %w", err)
	}
}
