package properties

import "errors"

var (
	ErrInvalidID     = errors.New("Invalid property ID")
	ErrNotFound      = errors.New("Property not found")
	ErrEmptyUpdate   = errors.New("No data to update")
	ErrInvalidStatus = errors.New("Status must be one of: active, draft, sold")
	ErrNegativePrice = errors.New("price_usd must be non-negative")
	ErrNegativeSize  = errors.New("size_sqm must be non-negative")
)
