package model

import "github.com/pkg/errors"

var (
	// ErrOutOfRange is returned when an (x, y) coordinate falls outside the board
	ErrOutOfRange = errors.New("coordinate out of range")
	// ErrIndexOutOfRange is returned when a linear cell index falls outside the board
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidDimensions is returned by NewBoard for a non-positive width or height
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

func outOfRange(op string, x, y, width, height int) error {
	return errors.Wrapf(ErrOutOfRange, "[%s] (%d, %d) outside %dx%d board", op, x, y, width, height)
}

func indexOutOfRange(op string, index, length int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "[%s] index %d outside [0, %d)", op, index, length)
}
