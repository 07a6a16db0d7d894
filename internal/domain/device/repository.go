package device

import "context"

// Repository defines the interface for device repository operations
type Repository interface {
	Create(ctx context.Context, d *Device) error
	GetByID(ctx context.Context, deviceID int64) (*Device, error)
	// List returns devices, optionally restricted to one location.
	List(ctx context.Context, locationID *int64) ([]*Device, error)
	SetState(ctx context.Context, deviceID int64, on bool) error
	AppendLog(ctx context.Context, log *Log) error
}

// Commander delivers on/off commands to physical devices. The toggle flow
// publishes the command before committing the new state.
type Commander interface {
	SendState(ctx context.Context, d *Device, on bool) (note string, err error)
}
