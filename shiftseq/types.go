// SPDX-License-Identifier: MIT

package shiftseq

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gearshift/ratiotable"
)

// Sentinel errors for shift planning.
var (
	// ErrInvalidRatio indicates a target ratio that is zero, negative or not finite.
	ErrInvalidRatio = ratiotable.ErrInvalidRatio

	// ErrNoMatch indicates every achievable ratio exceeds the target.
	ErrNoMatch = ratiotable.ErrNoMatch

	// ErrInvalidOrigin indicates an origin that is not part of the cog set.
	ErrInvalidOrigin = errors.New("shiftseq: origin not in cog set")

	// ErrNilTable is returned when a nil *ratiotable.Table is supplied.
	ErrNilTable = errors.New("shiftseq: ratio table is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("shiftseq: invalid option supplied")

	// ErrShiftLimit indicates planning exceeded the allowed number of shifts.
	ErrShiftLimit = errors.New("shiftseq: shift limit exceeded")

	// ErrBadSequence indicates a sequence that is not a chain of single shifts.
	ErrBadSequence = errors.New("shiftseq: invalid shift sequence")
)

// Sequence is an ordered list of combinations from origin to goal.
// An empty Sequence means no shifting is needed.
type Sequence []ratiotable.Coord

// Shifts returns the number of shifts in the sequence: len-1, or 0 when empty.
func (s Sequence) Shifts() int {
	if len(s) == 0 {
		return 0
	}
	return len(s) - 1
}

// Origin returns the first combination; ok is false for an empty sequence.
func (s Sequence) Origin() (c ratiotable.Coord, ok bool) {
	if len(s) == 0 {
		return ratiotable.Coord{}, false
	}
	return s[0], true
}

// Goal returns the last combination; ok is false for an empty sequence.
func (s Sequence) Goal() (c ratiotable.Coord, ok bool) {
	if len(s) == 0 {
		return ratiotable.Coord{}, false
	}
	return s[len(s)-1], true
}

// Step is one entry of a Sequence resolved against its ratio table.
type Step struct {
	Index int // 1-based position in the sequence
	ratiotable.Coord
	Front int     // front tooth count
	Rear  int     // rear tooth count
	Ratio float64 // Front / Rear
}

// Steps resolves every coordinate to tooth counts and ratio.
// Returns ErrOutOfRange (from ratiotable) if a coordinate is outside t.
func (s Sequence) Steps(t *ratiotable.Table) ([]Step, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	steps := make([]Step, 0, len(s))
	for i, c := range s {
		front, rear, err := t.Teeth(c)
		if err != nil {
			return nil, fmt.Errorf("shiftseq: step %d: %w", i+1, err)
		}
		ratio, _ := t.At(c)
		steps = append(steps, Step{
			Index: i + 1,
			Coord: c,
			Front: front,
			Rear:  rear,
			Ratio: ratio,
		})
	}

	return steps, nil
}

// Option configures a Planner via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by NewPlanner.
type Option func(*Options)

// Options holds the resolved planner settings.
type Options struct {
	// OnShift is called after each shift with its 1-based number and the
	// combinations it moved between.
	OnShift func(n int, from, to ratiotable.Coord)

	// MaxShifts, if > 0, caps the number of shifts in one plan.
	// 0 means the grid diameter (F-1)+(R-1).
	MaxShifts int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a no-op OnShift hook and no extra cap.
func DefaultOptions() Options {
	return Options{
		OnShift:   func(int, ratiotable.Coord, ratiotable.Coord) {},
		MaxShifts: 0,
	}
}

// WithOnShift registers a callback run after every shift.
func WithOnShift(fn func(n int, from, to ratiotable.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnShift = fn
		}
	}
}

// WithMaxShifts caps the number of shifts a plan may contain.
//
//	n > 0:  plans needing more than n shifts fail with ErrShiftLimit
//	n == 0: cap at the grid diameter
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxShifts(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxShifts cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxShifts = n
	}
}
