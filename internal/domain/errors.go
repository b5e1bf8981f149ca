package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrSlotTaken         = errors.New("slot already taken")
	ErrProfessionalInUse = errors.New("professional has appointments")
	ErrServiceInUse      = errors.New("service has appointments")
	ErrStorageDisabled   = errors.New("file storage is not configured")
)
