package requests

import "errors"

var (
	ErrInvalidFloor     = errors.New("invalid floor")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrInvalidBounds    = errors.New("invalid building bounds")
)
