// SPDX-License-Identifier: MIT

// Package ratiotable precomputes every gear ratio a cog set can produce and
// finds the combination closest to a requested ratio.
//
// What:
//
//   - Table is a dense F×R grid, Table[f][r] = front[f] / rear[r].
//   - Coord addresses a cell by cog index, not by tooth count.
//   - Closest picks the largest achievable ratio that does not exceed a goal.
//
// Enumeration order:
//
//	Every scan visits front index ascending, then rear index ascending.
//	Closest keeps the first cell found among equal candidates, so results
//	never depend on container iteration order.
//
// Complexity:
//
//   - New:     O(F×R) time and memory.
//   - At:      O(1).
//   - Closest: O(F×R).
//
// Errors:
//
//   - ErrOutOfRange: coordinate outside the grid.
//   - ErrInvalidRatio: goal ratio is zero, negative, NaN or infinite.
//   - ErrNoMatch: every achievable ratio exceeds the goal.
//   - ErrEmptyCogs: table requested for an empty cog set.
//
// A Table is never mutated after New and may be shared between goroutines.
package ratiotable
