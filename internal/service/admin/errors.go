package admin

import (
	"errors"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrInUse         = errors.New("resource is referenced by other records")
	ErrBadReference  = errors.New("referenced resource does not exist")
)
