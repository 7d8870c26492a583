// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the execution Mode of a crane.
//
// The puzzle has exactly two cranes and there will never be a third, so the
// mode is a closed enumeration that the simulator switches on rather than an
// interface with one implementation per crane.
package crate

import (
	"fmt"
	"strings"
)

// Mode selects how a multi-crate move is carried out.
type Mode int

const (
	// OneAtATime moves crates individually, which reverses the moved block.
	OneAtATime Mode = iota + 1
	// BulkPreserveOrder lifts the whole block at once and keeps its order.
	BulkPreserveOrder
)

// Modes lists every valid mode.
var Modes = []Mode{OneAtATime, BulkPreserveOrder}

// String returns the canonical name of the mode.
func (m Mode) String() string {
	switch m {
	case OneAtATime:
		return "one-at-a-time"
	case BulkPreserveOrder:
		return "bulk"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return m == OneAtATime || m == BulkPreserveOrder
}

// ParseMode accepts the canonical names, their underscore spellings and the
// crane model numbers 9000 and 9001.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-at-a-time", "one_at_a_time", "9000", "cratemover9000":
		return OneAtATime, nil
	case "bulk", "bulk-preserve-order", "bulk_preserve_order", "9001", "cratemover9001":
		return BulkPreserveOrder, nil
	}
	return 0, fmt.Errorf("unknown mode %q: must be 'one-at-a-time' or 'bulk'", s)
}
