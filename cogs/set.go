// SPDX-License-Identifier: MIT

package cogs

import "fmt"

// Set is an immutable pair of ordered tooth-count sequences.
// The zero value is an empty set; use New or Default.
type Set struct {
	front []int
	rear  []int
}

// Default tooth counts.
var (
	defaultFront = []int{38, 30}
	defaultRear  = []int{28, 23, 19, 16}
)

// New validates front and rear and returns a Set holding copies of both.
// Returns ErrEmptySide, ErrNonPositiveTeeth or ErrDuplicateTeeth, wrapped
// with the offending side and position.
// Complexity: O(F + R).
func New(front, rear []int) (Set, error) {
	if err := validateSide("front", front); err != nil {
		return Set{}, err
	}
	if err := validateSide("rear", rear); err != nil {
		return Set{}, err
	}

	return Set{front: clone(front), rear: clone(rear)}, nil
}

// Default returns the reference drivetrain: front [38 30], rear [28 23 19 16].
func Default() Set {
	return Set{front: clone(defaultFront), rear: clone(defaultRear)}
}

// validateSide checks a single side for emptiness, sign and duplicates.
func validateSide(side string, teeth []int) error {
	if len(teeth) == 0 {
		return fmt.Errorf("%s: %w", side, ErrEmptySide)
	}
	seen := make(map[int]int, len(teeth))
	for i, t := range teeth {
		if t <= 0 {
			return fmt.Errorf("%s[%d]=%d: %w", side, i, t, ErrNonPositiveTeeth)
		}
		if j, dup := seen[t]; dup {
			return fmt.Errorf("%s[%d] and %s[%d]=%d: %w", side, j, side, i, t, ErrDuplicateTeeth)
		}
		seen[t] = i
	}

	return nil
}

// Dims returns the number of front and rear cogs.
// Complexity: O(1).
func (s Set) Dims() (f, r int) {
	return len(s.front), len(s.rear)
}

// Front returns a copy of the front tooth counts.
func (s Set) Front() []int { return clone(s.front) }

// Rear returns a copy of the rear tooth counts.
func (s Set) Rear() []int { return clone(s.rear) }

// FrontAt returns the tooth count of front cog i.
// ok is false when i is out of range.
func (s Set) FrontAt(i int) (teeth int, ok bool) {
	if i < 0 || i >= len(s.front) {
		return 0, false
	}
	return s.front[i], true
}

// RearAt returns the tooth count of rear cog i.
// ok is false when i is out of range.
func (s Set) RearAt(i int) (teeth int, ok bool) {
	if i < 0 || i >= len(s.rear) {
		return 0, false
	}
	return s.rear[i], true
}

// FrontIndex returns the index of the front cog with the given tooth count.
// Complexity: O(F).
func (s Set) FrontIndex(teeth int) (int, bool) {
	return indexOf(s.front, teeth)
}

// RearIndex returns the index of the rear cog with the given tooth count.
// Complexity: O(R).
func (s Set) RearIndex(teeth int) (int, bool) {
	return indexOf(s.rear, teeth)
}

// Empty reports whether the set has no cogs (the zero value).
func (s Set) Empty() bool {
	return len(s.front) == 0 || len(s.rear) == 0
}

// String renders the set as "front=[..] rear=[..]".
func (s Set) String() string {
	return fmt.Sprintf("front=%v rear=%v", s.front, s.rear)
}

func indexOf(teeth []int, t int) (int, bool) {
	for i, v := range teeth {
		if v == t {
			return i, true
		}
	}
	return -1, false
}

func clone(xs []int) []int {
	out := make([]int, len(xs))
	copy(out, xs)
	return out
}
