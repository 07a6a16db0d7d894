package device

import (
	"context"
	"strings"
	"time"

	domainDevice "facility-hub/internal/domain/device"
	domainLocation "facility-hub/internal/domain/location"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/logger"
	appErrors "facility-hub/pkg/errors"
	"facility-hub/pkg/utils"

	"go.uber.org/zap"
)

// Service implements device use cases. Toggling publishes the command to the
// device first and commits the new state only if delivery succeeds.
type Service struct {
	deviceRepo   domainDevice.Repository
	locationRepo domainLocation.Repository
	commander    domainDevice.Commander
}

// NewService creates a new device service
func NewService(
	deviceRepo domainDevice.Repository,
	locationRepo domainLocation.Repository,
	commander domainDevice.Commander,
) *Service {
	return &Service{
		deviceRepo:   deviceRepo,
		locationRepo: locationRepo,
		commander:    commander,
	}
}

// Create stores a new device at a location.
func (s *Service) Create(ctx context.Context, req *CreateDeviceRequest) (*DeviceResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Missing fields", err)
	}

	if _, err := s.locationRepo.GetByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	dev := &domainDevice.Device{
		Name:       strings.TrimSpace(req.Name),
		Type:       strings.TrimSpace(req.Type),
		LocationID: req.LocationID,
	}
	if err := s.deviceRepo.Create(ctx, dev); err != nil {
		return nil, err
	}

	logger.Info("Device created",
		zap.Int64("device_id", dev.ID),
		zap.String("name", dev.Name),
		zap.String("type", dev.Type),
		zap.String("event", "device_created"),
	)

	return ToDeviceResponse(dev), nil
}

// ListFor returns the devices visible to the actor. Superusers see every
// device; local users only their location's.
func (s *Service) ListFor(ctx context.Context, actor *domainUser.User) ([]*DeviceResponse, error) {
	var locationID *int64
	if !actor.IsSuperuser {
		if actor.LocationID == nil {
			return []*DeviceResponse{}, nil
		}
		locationID = actor.LocationID
	}

	devices, err := s.deviceRepo.List(ctx, locationID)
	if err != nil {
		return nil, err
	}

	out := make([]*DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, ToDeviceResponse(d))
	}

	return out, nil
}

// Toggle flips the device's state on behalf of the actor. Local users may
// only control devices at their own location. The IoT command goes out
// before the state is persisted; a failed send leaves the stored state
// untouched.
func (s *Service) Toggle(ctx context.Context, actor *domainUser.User, deviceID int64) (*ToggleResponse, error) {
	dev, err := s.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}

	if !actor.IsSuperuser {
		if actor.LocationID == nil || *actor.LocationID != dev.LocationID {
			return nil, domainDevice.ErrForbidden
		}
	}

	target := !dev.IsOn
	note, err := s.commander.SendState(ctx, dev, target)
	if err != nil {
		logger.Error("Device command failed",
			zap.Int64("device_id", dev.ID),
			zap.Bool("target_state", target),
			zap.Error(err),
		)
		return nil, err
	}

	if err := s.deviceRepo.SetState(ctx, dev.ID, target); err != nil {
		return nil, err
	}

	if err := s.deviceRepo.AppendLog(ctx, &domainDevice.Log{
		DeviceID:    dev.ID,
		Action:      domainDevice.ActionFor(target),
		ActorUserID: actor.ID,
		Timestamp:   time.Now(),
		Note:        note,
	}); err != nil {
		// State change already committed; the missing audit row is logged
		// rather than rolled back.
		logger.Error("Failed to record device log",
			zap.Int64("device_id", dev.ID),
			zap.Error(err),
		)
	}

	logger.Info("Device toggled",
		zap.Int64("device_id", dev.ID),
		zap.Bool("is_on", target),
		zap.Int64("actor_user_id", actor.ID),
		zap.String("event", "device_toggled"),
	)

	return &ToggleResponse{DeviceID: dev.ID, IsOn: target}, nil
}
