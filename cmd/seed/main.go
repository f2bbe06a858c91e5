// Command seed bootstraps the database with the default admin account
// and, optionally, a set of demo residents.
//
// It shares the server's configuration surface: the database DSN and the
// rest of the settings come from the same env vars, flags, and JSON file.
// Safe to run repeatedly; an existing admin is never overwritten.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/society360/backend/internal/config"
	"github.com/society360/backend/internal/logger"
	"github.com/society360/backend/internal/store"
	"github.com/society360/backend/internal/utils"
	"github.com/society360/backend/migrations"
	"github.com/society360/backend/models"
)

const (
	defaultAdminUsername = "watchman"
	defaultAdminPassword = "watchman123"

	demoResidentPassword = "password123"
)

func main() {
	sample := flag.Bool("sample", false, "also insert the demo residents")

	log := logger.NewLogger("society360-seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, db, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer db.Close()

	if err := migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	admin, err := ensureAdmin(ctx, storages.UserRepository, cfg.App)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin")
	}

	if *sample {
		if err := seedResidents(ctx, storages.UserRepository, cfg.App, admin); err != nil {
			log.Fatal().Err(err).Msg("error seeding residents")
		}
	}

	fmt.Println("Database seeded successfully.")
	os.Exit(0)
}

// ensureAdmin creates the default admin account unless one already
// exists, in which case the existing account is returned untouched.
func ensureAdmin(ctx context.Context, users store.UserRepository, cfg config.App) (models.Admin, error) {
	exists, err := users.AdminExists(ctx)
	if err != nil {
		return models.Admin{}, err
	}

	if exists {
		fmt.Println("Admin user already exists, skipping.")
		principal, err := users.FindByUsername(ctx, defaultAdminUsername)
		if err != nil {
			return models.Admin{}, err
		}
		admin, ok := principal.(models.Admin)
		if !ok {
			return models.Admin{}, fmt.Errorf("account %q is not an admin", defaultAdminUsername)
		}
		return admin, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), cfg.BcryptCost)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		ID:           utils.NewID(),
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
	}

	saved, err := users.CreateAdmin(ctx, admin)
	if err != nil {
		return models.Admin{}, err
	}

	// Only a freshly created admin is guaranteed to carry the default
	// password; an existing one may have been changed.
	fmt.Printf("Default admin %q created.\n", defaultAdminUsername)
	fmt.Printf("Admin credentials: %s / %s\n", defaultAdminUsername, defaultAdminPassword)
	return saved, nil
}

func seedResidents(ctx context.Context, users store.UserRepository, cfg config.App, admin models.Admin) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoResidentPassword), cfg.BcryptCost)
	if err != nil {
		return err
	}

	for _, r := range demoResidents() {
		r.ID = utils.NewID()
		r.PasswordHash = string(hash)
		r.PlainPassword = demoResidentPassword
		r.IsActive = true
		r.DateOfJoining = time.Now().UTC()
		r.CreatedBy = admin.ID

		saved, err := users.CreateResident(ctx, r)
		if err != nil {
			return fmt.Errorf("creating resident %q: %w", r.Username, err)
		}

		fmt.Printf("Created resident: %s (%s), room %s\n", saved.FullName, saved.Username, saved.RoomNumber)
	}

	return nil
}

func demoResidents() []models.Resident {
	return []models.Resident{
		{
			Username:   "john_doe",
			FullName:   "John Doe",
			Email:      "john.doe@email.com",
			Phone:      "+1234567890",
			RoomNumber: "101",
			Floor:      1,
			EmergencyContact: models.EmergencyContact{
				Name:         "Mary Doe",
				Phone:        "+1234567891",
				Relationship: "Mother",
			},
			VehicleDetails: models.VehicleDetails{
				HasVehicle:    true,
				VehicleType:   "bike",
				VehicleNumber: "MH01AB1234",
				VehicleBrand:  "Honda",
				VehicleColor:  "Red",
			},
		},
		{
			Username:   "jane_smith",
			FullName:   "Jane Smith",
			Email:      "jane.smith@email.com",
			Phone:      "+1234567892",
			RoomNumber: "102",
			Floor:      1,
			EmergencyContact: models.EmergencyContact{
				Name:         "Robert Smith",
				Phone:        "+1234567893",
				Relationship: "Father",
			},
		},
		{
			Username:   "mike_wilson",
			FullName:   "Mike Wilson",
			Email:      "mike.wilson@email.com",
			Phone:      "+1234567894",
			RoomNumber: "201",
			Floor:      2,
			EmergencyContact: models.EmergencyContact{
				Name:         "Sarah Wilson",
				Phone:        "+1234567895",
				Relationship: "Sister",
			},
			VehicleDetails: models.VehicleDetails{
				HasVehicle:    true,
				VehicleType:   "car",
				VehicleNumber: "MH02CD5678",
				VehicleBrand:  "Maruti",
				VehicleColor:  "White",
			},
		},
		{
			Username:   "emily_brown",
			FullName:   "Emily Brown",
			Email:      "emily.brown@email.com",
			Phone:      "+1234567896",
			RoomNumber: "202",
			Floor:      2,
			EmergencyContact: models.EmergencyContact{
				Name:         "David Brown",
				Phone:        "+1234567897",
				Relationship: "Father",
			},
			VehicleDetails: models.VehicleDetails{
				HasVehicle:    true,
				VehicleType:   "scooter",
				VehicleNumber: "MH03EF9012",
				VehicleBrand:  "Activa",
				VehicleColor:  "Blue",
			},
		},
		{
			Username:   "alex_johnson",
			FullName:   "Alex Johnson",
			Email:      "alex.johnson@email.com",
			Phone:      "+1234567898",
			RoomNumber: "301",
			Floor:      3,
			EmergencyContact: models.EmergencyContact{
				Name:         "Lisa Johnson",
				Phone:        "+1234567899",
				Relationship: "Mother",
			},
		},
	}
}
