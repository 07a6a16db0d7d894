package location

import "time"

// Location represents a facility site that hosts devices and anchors users.
type Location struct {
	ID        int64
	Name      string
	Country   string
	Lat       float64
	Lon       float64
	CreatedAt time.Time
	UpdatedAt time.Time

	// DeviceCount is populated by listing queries; it is not a stored column.
	DeviceCount int
}
