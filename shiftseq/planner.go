// SPDX-License-Identifier: MIT

package shiftseq

import (
	"fmt"

	"github.com/katalvlaran/gearshift/cogs"
	"github.com/katalvlaran/gearshift/ratiotable"
)

// Planner computes shift sequences over one ratio table.
// It holds no per-call state and is safe for concurrent use.
type Planner struct {
	table *ratiotable.Table
	opts  Options
}

// NewPlanner binds a Planner to t, applying any number of Options.
// Returns ErrNilTable for a nil table and ErrOptionViolation for bad options.
func NewPlanner(t *ratiotable.Table, opts ...Option) (*Planner, error) {
	if t == nil {
		return nil, ErrNilTable
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Planner{table: t, opts: o}, nil
}

// Table returns the ratio table the planner walks.
func (p *Planner) Table() *ratiotable.Table {
	return p.table
}

// Goal returns the combination a plan toward target ends at.
// Same contract as ratiotable.Table.Closest.
func (p *Planner) Goal(target float64) (ratiotable.Coord, error) {
	return p.table.Closest(target)
}

// Plan returns the shift sequence from origin to the combination closest
// to target.
//
// Validation order:
//  1. target must be a positive finite ratio (ErrInvalidRatio).
//  2. origin must lie inside the table (ErrInvalidOrigin).
//  3. some combination must not exceed target (ErrNoMatch).
//
// An empty Sequence is returned when origin already is the goal.
func (p *Planner) Plan(origin ratiotable.Coord, target float64) (Sequence, error) {
	if err := ratiotable.CheckRatio(target); err != nil {
		return nil, err
	}
	if !p.table.InBounds(origin) {
		return nil, fmt.Errorf("%w: coordinate %v", ErrInvalidOrigin, origin)
	}
	goal, err := p.table.Closest(target)
	if err != nil {
		return nil, err
	}

	return p.walk(origin, goal)
}

// PlanTeeth is Plan with the origin given as front and rear tooth counts.
// Counts missing from the cog set fail with ErrInvalidOrigin.
func (p *Planner) PlanTeeth(front, rear int, target float64) (Sequence, error) {
	if err := ratiotable.CheckRatio(target); err != nil {
		return nil, err
	}
	origin, ok := p.table.Locate(front, rear)
	if !ok {
		return nil, fmt.Errorf("%w: front %d rear %d", ErrInvalidOrigin, front, rear)
	}

	return p.Plan(origin, target)
}

// walk applies Next from origin until goal. The shift count is known up
// front (one unit of distance per shift), so the limit is enforced before
// any step is taken.
func (p *Planner) walk(origin, goal ratiotable.Coord) (Sequence, error) {
	if origin == goal {
		return Sequence{}, nil
	}

	limit := p.table.Diameter()
	if p.opts.MaxShifts > 0 && p.opts.MaxShifts < limit {
		limit = p.opts.MaxShifts
	}
	need := manhattan(origin, goal)
	if need > limit {
		return nil, fmt.Errorf("%w: %v→%v needs %d shifts, limit %d", ErrShiftLimit, origin, goal, need, limit)
	}

	seq := make(Sequence, 1, need+1)
	seq[0] = origin
	cur := origin
	for cur != goal {
		next, moved := Next(p.table, cur, goal)
		if !moved || seq.Shifts() >= need {
			return nil, fmt.Errorf("%w: stalled at %v", ErrShiftLimit, cur)
		}
		seq = append(seq, next)
		p.opts.OnShift(seq.Shifts(), cur, next)
		cur = next
	}

	return seq, nil
}

// manhattan is the number of unit shifts between a and b.
func manhattan(a, b ratiotable.Coord) int {
	return abs(a.F-b.F) + abs(a.R-b.R)
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FindClosest builds the ratio table for cs and returns the combination
// closest to target without exceeding it.
func FindClosest(cs cogs.Set, target float64) (ratiotable.Coord, error) {
	t, err := ratiotable.New(cs)
	if err != nil {
		return ratiotable.Coord{}, err
	}
	return t.Closest(target)
}

// PlanShifts builds the ratio table for cs and plans the shifts from the
// front/rear tooth pair toward target.
func PlanShifts(cs cogs.Set, front, rear int, target float64) (Sequence, error) {
	t, err := ratiotable.New(cs)
	if err != nil {
		return nil, err
	}
	p, err := NewPlanner(t)
	if err != nil {
		return nil, err
	}
	return p.PlanTeeth(front, rear, target)
}
