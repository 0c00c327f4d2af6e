package models

import "errors"

var (
	ErrEntityNotFound  = errors.New("entity not found")
	ErrAlreadySpawned  = errors.New("entity already spawned")
	ErrInvalidEntity   = errors.New("invalid entity")
	ErrMissingCollider = errors.New("entity has no collider")
)
