package common

import "errors"

// ErrInvalidRect is returned for rectangles with a non-positive side.
var ErrInvalidRect = errors.New("invalid rect")
