// SPDX-License-Identifier: MIT

package ratiotable

import "fmt"

// candidate is the best cell seen so far during a Closest scan.
type candidate struct {
	coord Coord
	delta float64 // goal - ratio, never negative
}

// Closest returns the coordinate whose ratio is the largest value not
// exceeding goal, i.e. the cell minimising goal-ratio subject to
// goal-ratio >= 0.
//
// Cells are scanned front index ascending, then rear index ascending, and a
// candidate is only replaced by a strictly smaller delta, so the first of
// several equal ratios wins.
//
// Returns ErrInvalidRatio when goal is not a positive finite number, and
// ErrNoMatch when every ratio in the table exceeds goal.
// Complexity: O(F×R).
func (t *Table) Closest(goal float64) (Coord, error) {
	if err := CheckRatio(goal); err != nil {
		return Coord{}, err
	}

	var best *candidate
	t.Each(func(c Coord, ratio float64) bool {
		delta := goal - ratio
		if delta < 0 {
			return true
		}
		if best == nil || delta < best.delta {
			best = &candidate{coord: c, delta: delta}
		}
		return true
	})
	if best == nil {
		return Coord{}, fmt.Errorf("%w: %v", ErrNoMatch, goal)
	}

	return best.coord, nil
}
