package models

import (
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two kinds of principals known to the system.
// It is fixed at creation time and never changes afterwards.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleResident Role = "resident"
)

// Principal is the common contract of every authenticated account.
// Admin and Resident are the only two implementations; role-specific
// required fields live on the concrete structs, so a value of either
// type is structurally valid for its role.
type Principal interface {
	// PrincipalID returns the server-generated unique identifier.
	PrincipalID() uuid.UUID

	// PrincipalRole returns the role the account was created with.
	PrincipalRole() Role

	// PrincipalUsername returns the unique login name.
	PrincipalUsername() string
}

// Admin is the administrator ("watchman") account. Admins create and
// manage residents and send notifications; they carry no residential
// profile of their own.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (a Admin) PrincipalID() uuid.UUID    { return a.ID }
func (a Admin) PrincipalRole() Role       { return RoleAdmin }
func (a Admin) PrincipalUsername() string { return a.Username }

// EmergencyContact holds the person to reach when a resident cannot be.
// All three fields are required at resident creation.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// VehicleDetails describes a resident's registered vehicle. When
// HasVehicle is true the four descriptive fields must all be non-empty;
// when false they are cleared and ignored.
type VehicleDetails struct {
	HasVehicle    bool   `json:"hasVehicle"`
	VehicleType   string `json:"vehicleType,omitempty"`
	VehicleNumber string `json:"vehicleNumber,omitempty"`
	VehicleBrand  string `json:"vehicleBrand,omitempty"`
	VehicleColor  string `json:"vehicleColor,omitempty"`
}

// Resident is a society resident account, always created by an admin.
//
// PlainPassword is a recoverable copy of the password captured at
// creation time for administrative display. It is excluded from the
// standard JSON serialization on purpose; the only way it leaves the
// server is through [Resident.AdminView].
type Resident struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`

	PlainPassword string `json:"-"`

	FullName string  `json:"fullName"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	ImageURL *string `json:"imageUrl"`

	RoomNumber    string    `json:"roomNumber"`
	Floor         int       `json:"floor"`
	DateOfJoining time.Time `json:"dateOfJoining"`

	EmergencyContact EmergencyContact `json:"emergencyContact"`
	VehicleDetails   VehicleDetails   `json:"vehicleDetails"`

	IsActive bool `json:"isActive"`

	// CreatedBy references the admin account that created this resident.
	CreatedBy uuid.UUID `json:"createdBy"`

	// CreatedByUsername is filled by a read-side join against the
	// identity store; it is never persisted on the resident row.
	CreatedByUsername string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r Resident) PrincipalID() uuid.UUID    { return r.ID }
func (r Resident) PrincipalRole() Role       { return RoleResident }
func (r Resident) PrincipalUsername() string { return r.Username }

// ResidentAdminView is the admin-facing projection of a resident record.
// It is the single serialization path that exposes the retained plaintext
// password; every other view of a resident omits it.
type ResidentAdminView struct {
	Resident
	Password      string       `json:"password"`
	CreatedByInfo *UserSummary `json:"createdByInfo,omitempty"`
}

// AdminView returns the admin-only projection of the resident,
// including the plaintext password retained at creation time.
func (r Resident) AdminView() ResidentAdminView {
	view := ResidentAdminView{Resident: r, Password: r.PlainPassword}
	if r.CreatedByUsername != "" {
		view.CreatedByInfo = &UserSummary{ID: r.CreatedBy, Username: r.CreatedByUsername}
	}
	return view
}

// UserSummary is a lightweight identity projection attached to records
// that reference a principal (notification sender/recipient, resident
// creator). It is built by a read-side join and never stored.
type UserSummary struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"fullName,omitempty"`
	RoomNumber string    `json:"roomNumber,omitempty"`
}

// ResidentBrief is the compact listing used by the dashboard's
// recent-residents projection.
type ResidentBrief struct {
	ID         uuid.UUID `json:"id"`
	FullName   string    `json:"fullName"`
	RoomNumber string    `json:"roomNumber"`
	Floor      int       `json:"floor"`
	CreatedAt  time.Time `json:"createdAt"`
}

// FloorCount is one bucket of the per-floor resident aggregation.
type FloorCount struct {
	Floor int `json:"floor"`
	Count int `json:"count"`
}

// TableName returns the name of the database table backing both
// principal kinds.
func (a Admin) TableName() string {
	return "users"
}

func (r Resident) TableName() string {
	return "users"
}
