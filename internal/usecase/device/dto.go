package device

import domainDevice "facility-hub/internal/domain/device"

type CreateDeviceRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=120"`
	Type       string `json:"type" validate:"required,min=2,max=50"`
	LocationID int64  `json:"location_id" validate:"required"`
}

type DeviceResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	IsOn       bool   `json:"is_on"`
	LocationID int64  `json:"location_id"`
}

type ToggleResponse struct {
	DeviceID int64 `json:"device_id"`
	IsOn     bool  `json:"is_on"`
}

func ToDeviceResponse(d *domainDevice.Device) *DeviceResponse {
	return &DeviceResponse{
		ID:         d.ID,
		Name:       d.Name,
		Type:       d.Type,
		IsOn:       d.IsOn,
		LocationID: d.LocationID,
	}
}
