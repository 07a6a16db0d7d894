package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainDevice "facility-hub/internal/domain/device"
	"facility-hub/internal/infrastructure/database/postgres/models"

	"gorm.io/gorm"
)

// DeviceRepository implements domain device.Repository
type DeviceRepository struct {
	db *DB
}

// NewDeviceRepository creates a new device repository
func NewDeviceRepository(db *DB) domainDevice.Repository {
	return &DeviceRepository{db: db}
}

func (r *DeviceRepository) Create(ctx context.Context, d *domainDevice.Device) error {
	d.CreatedAt = time.Now()
	d.UpdatedAt = time.Now()

	dbModel := toDeviceModel(d)
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to create device: %w", err)
	}

	d.ID = dbModel.ID

	return nil
}

func (r *DeviceRepository) GetByID(ctx context.Context, deviceID int64) (*domainDevice.Device, error) {
	var dbModel models.DeviceModel
	err := r.db.DB.WithContext(ctx).
		Where("id = ?", deviceID).
		First(&dbModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainDevice.ErrDeviceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return toDeviceEntity(&dbModel), nil
}

func (r *DeviceRepository) List(ctx context.Context, locationID *int64) ([]*domainDevice.Device, error) {
	query := r.db.DB.WithContext(ctx).Order("id")
	if locationID != nil {
		query = query.Where("location_id = ?", *locationID)
	}

	var dbModels []models.DeviceModel
	if err := query.Find(&dbModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*domainDevice.Device, 0, len(dbModels))
	for i := range dbModels {
		devices = append(devices, toDeviceEntity(&dbModels[i]))
	}

	return devices, nil
}

func (r *DeviceRepository) SetState(ctx context.Context, deviceID int64, on bool) error {
	result := r.db.DB.WithContext(ctx).
		Model(&models.DeviceModel{}).
		Where("id = ?", deviceID).
		Updates(map[string]interface{}{
			"is_on":      on,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update device state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domainDevice.ErrDeviceNotFound
	}

	return nil
}

func (r *DeviceRepository) AppendLog(ctx context.Context, log *domainDevice.Log) error {
	dbModel := &models.DeviceLogModel{
		DeviceID:    log.DeviceID,
		Action:      string(log.Action),
		ActorUserID: log.ActorUserID,
		Timestamp:   log.Timestamp,
		Note:        log.Note,
	}
	if err := r.db.DB.WithContext(ctx).Create(dbModel).Error; err != nil {
		return fmt.Errorf("failed to append device log: %w", err)
	}

	log.ID = dbModel.ID

	return nil
}

func toDeviceModel(d *domainDevice.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:         d.ID,
		Name:       d.Name,
		Type:       d.Type,
		IsOn:       d.IsOn,
		LocationID: d.LocationID,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toDeviceEntity(m *models.DeviceModel) *domainDevice.Device {
	return &domainDevice.Device{
		ID:         m.ID,
		Name:       m.Name,
		Type:       m.Type,
		IsOn:       m.IsOn,
		LocationID: m.LocationID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
