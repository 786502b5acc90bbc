package profiles

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotOwner        = errors.New("profile belongs to another account")
)
