// SPDX-License-Identifier: MIT

package ratiotable

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/gearshift/cogs"
)

// Table is a row-major grid of gear ratios: one row per front cog, one
// column per rear cog. It is immutable once built.
type Table struct {
	f, r int       // front and rear cog counts
	data []float64 // flat backing storage, length == f*r
	cogs cogs.Set
}

// New builds the ratio table for cs.
// Returns ErrEmptyCogs for the zero cogs.Set.
// Complexity: O(F×R) time and memory.
func New(cs cogs.Set) (*Table, error) {
	if cs.Empty() {
		return nil, ErrEmptyCogs
	}
	front, rear := cs.Front(), cs.Rear()
	t := &Table{
		f:    len(front),
		r:    len(rear),
		data: make([]float64, len(front)*len(rear)),
		cogs: cs,
	}
	for fi, ft := range front {
		for ri, rt := range rear {
			t.data[fi*t.r+ri] = float64(ft) / float64(rt)
		}
	}

	return t, nil
}

// Dims returns the number of front and rear cogs.
func (t *Table) Dims() (f, r int) {
	return t.f, t.r
}

// Cogs returns the cog set the table was built from.
func (t *Table) Cogs() cogs.Set {
	return t.cogs
}

// InBounds reports whether c addresses a cell of the table.
// Complexity: O(1).
func (t *Table) InBounds(c Coord) bool {
	return c.F >= 0 && c.F < t.f && c.R >= 0 && c.R < t.r
}

// Diameter is the largest number of single-axis unit shifts between any
// two cells: (F-1) + (R-1).
func (t *Table) Diameter() int {
	return (t.f - 1) + (t.r - 1)
}

// At returns the ratio at c, or ErrOutOfRange wrapped with the coordinate.
// Complexity: O(1).
func (t *Table) At(c Coord) (float64, error) {
	if !t.InBounds(c) {
		return 0, fmt.Errorf("At%v: %w", c, ErrOutOfRange)
	}

	return t.at(c), nil
}

// at reads the cell without bounds checking; callers guarantee InBounds.
func (t *Table) at(c Coord) float64 {
	return t.data[c.F*t.r+c.R]
}

// Teeth returns the front and rear tooth counts of the combination at c.
func (t *Table) Teeth(c Coord) (front, rear int, err error) {
	if !t.InBounds(c) {
		return 0, 0, fmt.Errorf("Teeth%v: %w", c, ErrOutOfRange)
	}
	front, _ = t.cogs.FrontAt(c.F)
	rear, _ = t.cogs.RearAt(c.R)

	return front, rear, nil
}

// Locate maps a tooth pair to its coordinate.
// ok is false when either count is not part of the cog set.
func (t *Table) Locate(front, rear int) (c Coord, ok bool) {
	fi, okF := t.cogs.FrontIndex(front)
	ri, okR := t.cogs.RearIndex(rear)
	if !okF || !okR {
		return Coord{}, false
	}

	return Coord{F: fi, R: ri}, true
}

// Each calls fn for every cell, front index ascending then rear index
// ascending. Iteration stops early when fn returns false.
func (t *Table) Each(fn func(c Coord, ratio float64) bool) {
	for f := 0; f < t.f; f++ {
		for r := 0; r < t.r; r++ {
			c := Coord{F: f, R: r}
			if !fn(c, t.at(c)) {
				return
			}
		}
	}
}

// String dumps the grid one front cog per line, for debugging.
func (t *Table) String() string {
	var sb strings.Builder
	for f := 0; f < t.f; f++ {
		sb.WriteString("[")
		for r := 0; r < t.r; r++ {
			fmt.Fprintf(&sb, "%.4f", t.at(Coord{F: f, R: r}))
			if r < t.r-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// CheckRatio returns ErrInvalidRatio unless goal is a positive finite number.
// NaN fails the goal > 0 comparison.
func CheckRatio(goal float64) error {
	if goal > 0 && !math.IsInf(goal, 1) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrInvalidRatio, goal)
}
