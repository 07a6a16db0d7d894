package location

import (
	"context"
	"strings"

	domainLocation "facility-hub/internal/domain/location"
	domainUser "facility-hub/internal/domain/user"
	"facility-hub/internal/logger"
	appErrors "facility-hub/pkg/errors"
	"facility-hub/pkg/utils"

	"go.uber.org/zap"
)

// Service implements location use cases.
type Service struct {
	locationRepo domainLocation.Repository
}

// NewService creates a new location service
func NewService(locationRepo domainLocation.Repository) *Service {
	return &Service{locationRepo: locationRepo}
}

// Create stores a new location.
func (s *Service) Create(ctx context.Context, req *CreateLocationRequest) (*LocationResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Missing fields", err)
	}

	loc := &domainLocation.Location{
		Name:    strings.TrimSpace(req.Name),
		Country: strings.TrimSpace(req.Country),
		Lat:     req.Lat,
		Lon:     req.Lon,
	}
	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}

	logger.Info("Location created",
		zap.Int64("location_id", loc.ID),
		zap.String("name", loc.Name),
		zap.String("event", "location_created"),
	)

	return ToLocationResponse(loc), nil
}

// ListFor returns the locations visible to the given user: everything for
// superusers, the anchored location for local users, nothing for unanchored
// local users.
func (s *Service) ListFor(ctx context.Context, actor *domainUser.User) ([]*LocationResponse, error) {
	var onlyID *int64
	if !actor.IsSuperuser {
		if actor.LocationID == nil {
			return []*LocationResponse{}, nil
		}
		onlyID = actor.LocationID
	}

	locations, err := s.locationRepo.GetAll(ctx, onlyID)
	if err != nil {
		return nil, err
	}

	out := make([]*LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, ToLocationResponse(l))
	}

	return out, nil
}
