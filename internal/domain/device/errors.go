package device

import "errors"

var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrCommandFailed  = errors.New("device command failed")
	ErrForbidden      = errors.New("device belongs to another location")
)
