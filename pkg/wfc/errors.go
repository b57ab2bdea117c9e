package wfc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSize       = errors.New("wfc: invalid grid size")
	ErrInvalidOptions    = errors.New("wfc: invalid options")
	ErrEmptyTileset      = errors.New("wfc: tileset is empty")
	ErrExhausted         = errors.New("wfc: attempt budget exhausted without a solution")
	ErrPinsUnsatisfiable = errors.New("wfc: pinned cells contradict each other")
	ErrUnsolved          = errors.New("wfc: grid is not fully resolved")
	ErrIncompatible      = errors.New("wfc: adjacent tiles are incompatible")
)

// ExhaustedError is returned when every attempt ended in a contradiction.
type ExhaustedError struct {
	Attempts int

	// LastContradiction is the linear index of the cell that emptied during
	// the final attempt, for diagnostics.
	LastContradiction int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("wfc: no solution after %d attempts (last contradiction at cell %d)", e.Attempts, e.LastContradiction)
}

// Is makes errors.Is(err, ErrExhausted) match
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrExhausted
}
