// SPDX-License-Identifier: MIT

package algorithms

import "errors"

var (
	// ErrNoSeeds is returned when a pass needs at least one root.
	ErrNoSeeds = errors.New("algorithms: no seeds given")

	// ErrInvalidRoot is returned for a zero handle or an external face root.
	ErrInvalidRoot = errors.New("algorithms: invalid root element")

	// ErrNoPath is returned when the destination cannot be reached.
	ErrNoPath = errors.New("algorithms: no path between faces")

	// ErrNegativeCost is returned when a cost function yields a negative value.
	ErrNegativeCost = errors.New("algorithms: negative cost")
)

// unreached marks elements a pass did not label.
const unreached = -1
