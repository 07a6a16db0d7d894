package location

import domainLocation "facility-hub/internal/domain/location"

type CreateLocationRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=120"`
	Country string  `json:"country" validate:"required,min=2,max=120"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lon     float64 `json:"lon" validate:"min=-180,max=180"`
}

type LocationResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DeviceCount int     `json:"device_count"`
}

func ToLocationResponse(l *domainLocation.Location) *LocationResponse {
	return &LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Country:     l.Country,
		Lat:         l.Lat,
		Lon:         l.Lon,
		DeviceCount: l.DeviceCount,
	}
}
