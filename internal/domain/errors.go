package domain

import "errors"

// ErrInvalidInput marks data rejected by validation before any write.
var ErrInvalidInput = errors.New("invalid input")
