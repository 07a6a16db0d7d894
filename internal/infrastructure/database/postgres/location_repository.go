package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainLocation "facility-hub/internal/domain/location"
	"facility-hub/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// LocationRepository implements domain location.Repository
type LocationRepository struct {
	db *DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *DB) domainLocation.Repository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) Create(ctx context.Context, loc *domainLocation.Location) error {
	loc.CreatedAt = time.Now()
	loc.UpdatedAt = time.Now()

	dbModel := &models.LocationModel{
		Name:      loc.Name,
		Country:   loc.Country,
		Lat:       loc.Lat,
		Lon:       loc.Lon,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}

	loc.ID = dbModel.ID

	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, locationID int64) (*domainLocation.Location, error) {
	var dbModel models.LocationModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", locationID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainLocation.ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location: %w", err)
	}

	return toLocationEntity(&dbModel, 0), nil
}

// locationRow carries one location joined with its device count.
type locationRow struct {
	models.LocationModel
	DeviceCount int
}

func (r *LocationRepository) GetAll(ctx context.Context, onlyID *int64) ([]*domainLocation.Location, error) {
	query := r.db.DB.WithContext(ctx).
		Model(&models.LocationModel{}).
		Select("locations.*, count(devices.id) as device_count").
		Joins("LEFT JOIN devices ON devices.location_id = locations.id").
		Group("locations.id").
		Order("locations.id")

	if onlyID != nil {
		query = query.Where("locations.id = ?", *onlyID)
	}

	var rows []locationRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	locations := make([]*domainLocation.Location, 0, len(rows))
	for i := range rows {
		locations = append(locations, toLocationEntity(&rows[i].LocationModel, rows[i].DeviceCount))
	}

	return locations, nil
}

func (r *LocationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.DB.WithContext(ctx).Model(&models.LocationModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

func toLocationEntity(m *models.LocationModel, deviceCount int) *domainLocation.Location {
	return &domainLocation.Location{
		ID:          m.ID,
		Name:        m.Name,
		Country:     m.Country,
		Lat:         m.Lat,
		Lon:         m.Lon,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeviceCount: deviceCount,
	}
}
