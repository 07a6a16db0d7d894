package device

import "time"

// Device represents a controllable device (light, pump, ...) at a location.
type Device struct {
	ID         int64
	Name       string
	Type       string
	IsOn       bool
	LocationID int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Action is a recorded device state change.
type Action string

const (
	ActionOn  Action = "on"
	ActionOff Action = "off"
)

// ActionFor returns the action that moves a device into the target state.
func ActionFor(on bool) Action {
	if on {
		return ActionOn
	}
	return ActionOff
}

// Log is an audit entry for a device state change.
type Log struct {
	ID          int64
	DeviceID    int64
	Action      Action
	ActorUserID int64
	Timestamp   time.Time
	Note        string
}
