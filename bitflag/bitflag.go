// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitflag provides simple bit flag setting, checking, and clearing
// methods that take bit position args as ints (from const int enum iota's)
// and do the bit shifting from there. Maintaining ordinal lists of bit
// positions is much more convenient than maintaining masks by hand.
package bitflag

import "sync/atomic"

// Bits is the set of integer types that can hold bit flags.
type Bits interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Mask makes a mask for checking multiple different flags
func Mask[T Bits](flags ...int) T {
	var mask T
	for _, f := range flags {
		mask |= T(1) << uint(f)
	}
	return mask
}

// Set sets bit value(s) for ordinal bit position flags
func Set[T Bits](bits *T, flags ...int) {
	*bits |= Mask[T](flags...)
}

// Clear clears bit value(s) for ordinal bit position flags
func Clear[T Bits](bits *T, flags ...int) {
	*bits &^= Mask[T](flags...)
}

// SetState sets or clears bit value(s) depending on state (on / off) for
// ordinal bit position flags
func SetState[T Bits](bits *T, state bool, flags ...int) {
	if state {
		Set(bits, flags...)
	} else {
		Clear(bits, flags...)
	}
}

// Toggle toggles state of bit value(s) for ordinal bit position flags
func Toggle[T Bits](bits *T, flags ...int) {
	for _, f := range flags {
		if Has(*bits, f) {
			Clear(bits, f)
		} else {
			Set(bits, f)
		}
	}
}

// Has checks if given bit value is set for ordinal bit position flag
func Has[T Bits](bits T, flag int) bool {
	return bits&(T(1)<<uint(flag)) != 0
}

// HasAny checks if any of a set of flags are set for ordinal bit position flags (logical OR)
func HasAny[T Bits](bits T, flags ...int) bool {
	return bits&Mask[T](flags...) != 0
}

// HasAll checks if all of a set of flags are set for ordinal bit position flags (logical AND)
func HasAll[T Bits](bits T, flags ...int) bool {
	mask := Mask[T](flags...)
	return bits&mask == mask
}

// HasMask checks if any of the bits in mask are set
func HasMask[T Bits](bits, mask T) bool {
	return bits&mask != 0
}

//////// atomic 32 bit

// SetAtomic sets bit value(s) for ordinal bit position flags, using atomic
// compare-and-swap loop, safe for concurrent access
func SetAtomic(bits *int32, flags ...int) {
	mask := Mask[int32](flags...)
	for {
		cr := atomic.LoadInt32(bits)
		if atomic.CompareAndSwapInt32(bits, cr, cr|mask) {
			return
		}
	}
}

// ClearAtomic clears bit value(s) for ordinal bit position flags, using atomic
// compare-and-swap loop, safe for concurrent access
func ClearAtomic(bits *int32, flags ...int) {
	mask := Mask[int32](flags...)
	for {
		cr := atomic.LoadInt32(bits)
		if atomic.CompareAndSwapInt32(bits, cr, cr&^mask) {
			return
		}
	}
}

// SetStateAtomic sets or clears bit value(s) depending on state (on / off)
// for ordinal bit position flags, protected by atomic -- safe for concurrent access
func SetStateAtomic(bits *int32, state bool, flags ...int) {
	if state {
		SetAtomic(bits, flags...)
	} else {
		ClearAtomic(bits, flags...)
	}
}

// HasAtomic checks if given bit value is set for ordinal bit position flag,
// using an atomic load, safe for concurrent access
func HasAtomic(bits *int32, flag int) bool {
	return Has(atomic.LoadInt32(bits), flag)
}
