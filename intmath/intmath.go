// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import "golang.org/x/exp/constraints"

// BoundedAdd returns `min(a+b,ceil)` without overflow.
func BoundedAdd[T constraints.Unsigned](a, b, ceil T) T {
	sum := a + b
	if overflow := sum < a; overflow || sum > ceil {
		return ceil
	}
	return sum
}

// BoundedSubtract returns `max(a-b,floor)` without underflow.
func BoundedSubtract[T constraints.Unsigned](a, b, floor T) T {
	// If `floor + b` overflows then it's impossible for `a` to ever be large
	// enough for the subtraction to not be bounded.
	minA := floor + b
	if overflow := minA < b; overflow || a <= minA {
		return floor
	}
	return a - b
}
