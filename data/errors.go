package data

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds = errors.New("index out of bounds")
	ErrNotFound    = errors.New("value not found")
)

func outOfBounds(index int) error {
	return fmt.Errorf("%w: %d", ErrOutOfBounds, index)
}

func notFound(value any) error {
	return fmt.Errorf("%w: %v", ErrNotFound, value)
}
