// SPDX-License-Identifier: MIT

package ratiotable

import (
	"errors"
	"fmt"
)

// Sentinel errors for ratio table operations.
var (
	// ErrOutOfRange indicates a coordinate outside the F×R grid.
	ErrOutOfRange = errors.New("ratiotable: coordinate out of range")

	// ErrInvalidRatio indicates a goal ratio that is not a positive finite number.
	ErrInvalidRatio = errors.New("ratiotable: gear ratio must be positive")

	// ErrNoMatch indicates no combination has a ratio at or below the goal.
	ErrNoMatch = errors.New("ratiotable: no combination at or below goal ratio")

	// ErrEmptyCogs indicates the cog set has no front or no rear cogs.
	ErrEmptyCogs = errors.New("ratiotable: cog set is empty")
)

// Coord identifies one front/rear combination by cog index.
// F indexes the front cogs, R the rear cogs.
type Coord struct {
	F, R int
}

// String renders the coordinate as "(f,r)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.F, c.R)
}
