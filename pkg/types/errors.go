package types

import "errors"

var (
	ErrTruckNotFound  = errors.New("truck not found")
	ErrObjectNotFound = errors.New("object not found")
)
