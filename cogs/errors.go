// SPDX-License-Identifier: MIT

package cogs

import "errors"

// Sentinel errors for cog set construction and decoding.
var (
	// ErrEmptySide indicates the front or rear side has no cogs.
	ErrEmptySide = errors.New("cogs: front and rear must each have at least one cog")

	// ErrNonPositiveTeeth indicates a tooth count of zero or below.
	ErrNonPositiveTeeth = errors.New("cogs: tooth count must be positive")

	// ErrDuplicateTeeth indicates a tooth count repeated on one side.
	// Tooth pairs must map to exactly one grid coordinate.
	ErrDuplicateTeeth = errors.New("cogs: duplicate tooth count")

	// ErrDecode indicates a cog set document could not be decoded.
	ErrDecode = errors.New("cogs: cannot decode cog set")
)
