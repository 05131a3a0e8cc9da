// SPDX-License-Identifier: MIT

// Package cogs describes the tooth counts a drivetrain can combine.
//
// What:
//
//   - Set holds two ordered sequences of positive tooth counts: the front
//     chainrings and the rear sprockets.
//   - Sets are validated once by New and are immutable afterwards.
//   - A Set can be decoded from (and encoded to) a small YAML document:
//
//     front: [38, 30]
//     rear:  [28, 23, 19, 16]
//
// Why:
//
//   - The ratio table and the shift planner both take the Set explicitly,
//     so there is no process-wide gearing configuration.
//
// Errors:
//
//   - ErrEmptySide: front or rear has no cogs.
//   - ErrNonPositiveTeeth: a tooth count is zero or negative.
//   - ErrDuplicateTeeth: the same tooth count appears twice on one side.
//   - ErrDecode: a YAML document could not be decoded.
package cogs
