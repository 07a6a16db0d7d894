package postgres

import (
	"context"
	"fmt"

	domainDevice "facility-hub/internal/domain/device"
	domainLocation "facility-hub/internal/domain/location"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/logger"
	"facility-hub/pkg/utils"

	"go.uber.org/zap"
)

// SeedIfEmpty populates demo locations, devices and the initial superuser
// when the corresponding tables are empty. Safe to call on every startup.
func SeedIfEmpty(ctx context.Context, db *DB, adminEmail, adminPassword string) error {
	locationRepo := NewLocationRepository(db)
	deviceRepo := NewDeviceRepository(db)
	userRepo := NewUserRepository(db)

	locationCount, err := locationRepo.Count(ctx)
	if err != nil {
		return err
	}
	if locationCount == 0 {
		sites := []struct {
			loc     domainLocation.Location
			devices []domainDevice.Device
		}{
			{
				loc: domainLocation.Location{Name: "Dubai", Country: "UAE", Lat: 25.2048, Lon: 55.2708},
				devices: []domainDevice.Device{
					{Name: "Dubai Light A", Type: "light"},
					{Name: "Dubai Light B", Type: "light"},
					{Name: "Dubai Pump 1", Type: "pump"},
					{Name: "Dubai Pump 2", Type: "pump"},
					{Name: "Dubai Pump 3", Type: "pump"},
				},
			},
			{
				loc: domainLocation.Location{Name: "Kollam", Country: "India", Lat: 8.8932, Lon: 76.6141},
				devices: []domainDevice.Device{
					{Name: "Kollam Light A", Type: "light"},
					{Name: "Kollam Light B", Type: "light"},
					{Name: "Kollam Pump 1", Type: "pump"},
					{Name: "Kollam Pump 2", Type: "pump"},
					{Name: "Kollam Pump 3", Type: "pump"},
				},
			},
		}

		for _, site := range sites {
			loc := site.loc
			if err := locationRepo.Create(ctx, &loc); err != nil {
				return fmt.Errorf("failed to seed location %s: %w", loc.Name, err)
			}
			for _, dev := range site.devices {
				dev.LocationID = loc.ID
				if err := deviceRepo.Create(ctx, &dev); err != nil {
					return fmt.Errorf("failed to seed device %s: %w", dev.Name, err)
				}
			}
		}

		logger.Info("Seeded demo locations and devices")
	}

	userCount, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := utils.HashPassword(adminPassword)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		admin := &domainUser.User{
			Name:         "Super Admin",
			Email:        adminEmail,
			PasswordHash: hash,
			IsSuperuser:  true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		logger.Info("Seeded superuser account", zap.String("email", adminEmail))
	}

	return nil
}
