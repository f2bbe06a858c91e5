package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/society360/backend/models"
)

// userRow mirrors one row of the users table. Resident-only columns are
// nullable because admin rows leave them empty; toPrincipal converts the
// row into the concrete principal type selected by the role column.
type userRow struct {
	ID            uuid.UUID
	Username      string
	PasswordHash  string
	PlainPassword sql.NullString
	Role          string

	FullName sql.NullString
	Email    sql.NullString
	Phone    sql.NullString
	ImageURL sql.NullString

	RoomNumber    sql.NullString
	Floor         sql.NullInt64
	DateOfJoining sql.NullTime

	EmergencyName         sql.NullString
	EmergencyPhone        sql.NullString
	EmergencyRelationship sql.NullString

	HasVehicle    bool
	VehicleType   sql.NullString
	VehicleNumber sql.NullString
	VehicleBrand  sql.NullString
	VehicleColor  sql.NullString

	IsActive  bool
	CreatedBy uuid.NullUUID

	CreatedAt time.Time
	UpdatedAt time.Time

	// CreatedByUsername is populated only by the listing query that joins
	// the creator account.
	CreatedByUsername string
}

// scanTargets returns scan destinations in the canonical userColumns order.
func (u *userRow) scanTargets() []any {
	return []any{
		&u.ID, &u.Username, &u.PasswordHash, &u.PlainPassword, &u.Role,
		&u.FullName, &u.Email, &u.Phone, &u.ImageURL,
		&u.RoomNumber, &u.Floor, &u.DateOfJoining,
		&u.EmergencyName, &u.EmergencyPhone, &u.EmergencyRelationship,
		&u.HasVehicle, &u.VehicleType, &u.VehicleNumber, &u.VehicleBrand, &u.VehicleColor,
		&u.IsActive, &u.CreatedBy,
		&u.CreatedAt, &u.UpdatedAt,
	}
}

// toPrincipal converts the row into either a models.Admin or a
// models.Resident according to the role column.
func (u *userRow) toPrincipal() (models.Principal, error) {
	switch models.Role(u.Role) {
	case models.RoleAdmin:
		return models.Admin{
			ID:           u.ID,
			Username:     u.Username,
			PasswordHash: u.PasswordHash,
			CreatedAt:    u.CreatedAt,
			UpdatedAt:    u.UpdatedAt,
		}, nil
	case models.RoleResident:
		return u.toResident(), nil
	default:
		return nil, fmt.Errorf("unknown role %q for user %s", u.Role, u.ID)
	}
}

func (u *userRow) toResident() models.Resident {
	resident := models.Resident{
		ID:            u.ID,
		Username:      u.Username,
		PasswordHash:  u.PasswordHash,
		PlainPassword: u.PlainPassword.String,
		FullName:      u.FullName.String,
		Email:         u.Email.String,
		Phone:         u.Phone.String,
		RoomNumber:    u.RoomNumber.String,
		Floor:         int(u.Floor.Int64),
		DateOfJoining: u.DateOfJoining.Time,
		EmergencyContact: models.EmergencyContact{
			Name:         u.EmergencyName.String,
			Phone:        u.EmergencyPhone.String,
			Relationship: u.EmergencyRelationship.String,
		},
		VehicleDetails: models.VehicleDetails{
			HasVehicle:    u.HasVehicle,
			VehicleType:   u.VehicleType.String,
			VehicleNumber: u.VehicleNumber.String,
			VehicleBrand:  u.VehicleBrand.String,
			VehicleColor:  u.VehicleColor.String,
		},
		IsActive:          u.IsActive,
		CreatedBy:         u.CreatedBy.UUID,
		CreatedByUsername: u.CreatedByUsername,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}

	if u.ImageURL.Valid {
		imageURL := u.ImageURL.String
		resident.ImageURL = &imageURL
	}

	return resident
}

// nullIfEmpty converts an empty string into a SQL NULL.
func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
