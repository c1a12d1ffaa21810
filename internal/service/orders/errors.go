package orders

import (
	"errors"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("order belongs to another user")
)
