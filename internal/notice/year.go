// Copyright IBM Corp. 2014, 2026
// SPDX-License-Identifier: MPL-2.0

package notice

import (
	"sync"
	"sync/atomic"
	"time"
)

// Epoch is used for any year that cannot be parsed.
const Epoch = 2025

var (
	localYear    = sync.OnceValue(func() int { return time.Now().Year() })
	yearOverride atomic.Int64
)

// CurrentYear returns the local calendar year, read once per process.
func CurrentYear() int {
	if y := yearOverride.Load(); y != 0 {
		return int(y)
	}
	return localYear()
}

// SetYear pins CurrentYear to y until the returned func is called.
func SetYear(y int) (restore func()) {
	prev := yearOverride.Swap(int64(y))
	return func() { yearOverride.Store(prev) }
}
