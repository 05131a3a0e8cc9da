// SPDX-License-Identifier: MIT

package shiftseq

import "github.com/katalvlaran/gearshift/ratiotable"

// Next returns the combination one shift from cur toward goal.
// moved is false when cur already equals goal.
//
// When both axes still have distance to cover only one may shift. The
// ratio after a rear-only shift is compared with the ratio after a
// front-only shift; the front shift wins only if its ratio is strictly
// smaller.
//
// cur and goal must lie inside t.
// Complexity: O(1).
func Next(t *ratiotable.Table, cur, goal ratiotable.Coord) (next ratiotable.Coord, moved bool) {
	nf := stepToward(cur.F, goal.F)
	nr := stepToward(cur.R, goal.R)
	frontMoves := nf != cur.F
	rearMoves := nr != cur.R

	switch {
	case frontMoves && rearMoves:
		rearRatio, _ := t.At(ratiotable.Coord{F: cur.F, R: nr})
		frontRatio, _ := t.At(ratiotable.Coord{F: nf, R: cur.R})
		if frontRatio < rearRatio {
			return ratiotable.Coord{F: nf, R: cur.R}, true
		}
		return ratiotable.Coord{F: cur.F, R: nr}, true
	case frontMoves:
		return ratiotable.Coord{F: nf, R: cur.R}, true
	case rearMoves:
		return ratiotable.Coord{F: cur.F, R: nr}, true
	default:
		return cur, false
	}
}

// stepToward moves v one unit toward target, or not at all when equal.
func stepToward(v, target int) int {
	switch {
	case v < target:
		return v + 1
	case v > target:
		return v - 1
	default:
		return v
	}
}
