// Package angular: sentinel error set.
package angular

import "errors"

var (
	// ErrBadSpin is returned by AllowedSpins when an argument is not a
	// non-negative integer or half-integer. The coefficient functions
	// never error — unphysical inputs yield 0 by the selection-rule
	// contract — but sequence constructors validate loudly.
	ErrBadSpin = errors.New("angular: spin must be a non-negative half-integer")
)
