// SPDX-License-Identifier: MIT

// Package shiftseq plans the gear shifts that carry a drivetrain from its
// current combination to the one best matching a requested ratio.
//
// 🚲 What is a shift sequence?
//
//	The ratio table is a grid: rows are front cogs, columns are rear cogs.
//	A shift moves exactly one axis by exactly one cog. A Sequence lists the
//	origin, every intermediate combination and the goal, so no adjacent
//	combination is ever skipped.
//
// ⚙️ Step rule (Next):
//  1. Per axis, step one cog toward the goal, or stay if already there.
//  2. If only one axis moves, take it.
//  3. If both would move, compare the ratio after a rear-only shift with
//     the ratio after a front-only shift. The front shift is taken only
//     when its ratio is strictly smaller; equal ratios shift the rear.
//  4. If neither moves, the goal is reached.
//
// The goal is the combination returned by ratiotable.Table.Closest: the
// largest ratio that does not exceed the target.
//
// Guarantees:
//
//   - Plan returns an empty Sequence when the origin already is the goal.
//   - Consecutive entries differ by one unit on exactly one axis.
//   - Coordinates are never revisited.
//   - A Sequence holds at most (F-1)+(R-1) shifts.
//
// Usage:
//
//	p, _ := shiftseq.NewPlanner(table)
//	seq, err := p.PlanTeeth(38, 28, 1.9)
//	steps, _ := seq.Steps(table)
//
// Complexity: Plan is O(F×R) for the goal search plus O(F+R) steps.
package shiftseq
