package world

import "errors"

// ErrInvalidLayout is returned when a layout cannot be turned into a World.
var ErrInvalidLayout = errors.New("invalid layout")
