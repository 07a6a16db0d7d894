package location

import "errors"

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrMissingFields    = errors.New("missing fields")
)
