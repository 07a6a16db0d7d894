package location

import "context"

// Repository defines the interface for location repository operations
type Repository interface {
	Create(ctx context.Context, loc *Location) error
	GetByID(ctx context.Context, locationID int64) (*Location, error)
	// GetAll returns every location with DeviceCount populated. A non-nil
	// onlyID restricts the result to that single location.
	GetAll(ctx context.Context, onlyID *int64) ([]*Location, error)
	Count(ctx context.Context) (int64, error)
}
