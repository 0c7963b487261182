package buffer

import "errors"

var (
	ErrAllocation    = errors.New("buffer: allocation failed")
	ErrInvalidHandle = errors.New("buffer: invalid handle")
	ErrReleased      = errors.New("buffer: released")
	ErrNegativeSize  = errors.New("buffer: negative size")
)
