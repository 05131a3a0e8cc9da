// Package gearshift plans gear changes over a discrete drivetrain: given the
// cogs a bike (or any two-stage transmission) carries, it finds the
// combination closest to a requested ratio and the shift-by-shift route to
// reach it without skipping adjacent combinations.
//
// 🚲 What is in the box?
//
//	• cogs/       : validated front/rear tooth counts, YAML loading
//	• ratiotable/ : dense F×R table of ratios, closest-ratio search
//	• shiftseq/   : single-shift step rule and sequence planner
//
// ✨ Properties
//
//   - Deterministic – fixed scan order (front, then rear) and explicit tie rules
//   - Immutable     – tables and planners never change after construction
//   - Shareable     – safe for concurrent readers, no locks needed
//   - Small         – pure Go, no cgo
//
// Quick ASCII example (front 38/30, rear 28/23/19/16):
//
//	      28      23      19      16
//	38  1.3571  1.6522  2.0000  2.3750
//	30  1.0714  1.3043  1.5789  1.8750
//
//	38×28 → 1.9:  (0,0) → (1,0) → (1,1) → (1,2) → (1,3)
//
// See examples/ for a full report program.
//
//	go get github.com/katalvlaran/gearshift
package gearshift
