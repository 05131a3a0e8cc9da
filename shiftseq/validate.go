// SPDX-License-Identifier: MIT

package shiftseq

import (
	"fmt"

	"github.com/katalvlaran/gearshift/ratiotable"
)

// Validate checks that seq is a well-formed shift chain over t:
//
//   - every coordinate lies inside t;
//   - consecutive entries differ by one unit on exactly one axis;
//   - no coordinate appears twice.
//
// An empty Sequence is valid. A single-entry Sequence is not, since a plan
// either needs no shifts (empty) or at least one.
// Returns ErrNilTable or ErrBadSequence wrapped with the failing position.
func Validate(t *ratiotable.Table, seq Sequence) error {
	if t == nil {
		return ErrNilTable
	}
	if len(seq) == 0 {
		return nil
	}
	if len(seq) == 1 {
		return fmt.Errorf("%w: lone entry %v", ErrBadSequence, seq[0])
	}

	seen := make(map[ratiotable.Coord]int, len(seq))
	for i, c := range seq {
		if !t.InBounds(c) {
			return fmt.Errorf("%w: entry %d %v out of range", ErrBadSequence, i+1, c)
		}
		if j, dup := seen[c]; dup {
			return fmt.Errorf("%w: entry %d revisits %v from entry %d", ErrBadSequence, i+1, c, j+1)
		}
		seen[c] = i
		if i > 0 && manhattan(seq[i-1], c) != 1 {
			return fmt.Errorf("%w: %v→%v is not a single shift", ErrBadSequence, seq[i-1], c)
		}
	}

	return nil
}
