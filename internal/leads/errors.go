package leads

import "errors"

var (
	ErrInvalidID     = errors.New("Invalid lead ID")
	ErrNotFound      = errors.New("Lead not found")
	ErrInvalidStatus = errors.New("Status must be one of: pending, contacted, completed")
)
