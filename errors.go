// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package intcode

import (
	"fmt"
	"math/big"
)

// ParseError is returned when a listing contains a token that isn't an integer.
type ParseError struct {
	Index int    // 0-indexed position of the token within the listing
	Token string // offending token after trimming
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bad value %q at index %v", e.Token, e.Index)
}

// InvalidOpcodeError is returned when a VM executes a cell that doesn't hold a known opcode.
type InvalidOpcodeError struct {
	PC int
	Op *big.Int
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid op %v at %v", e.Op, e.PC)
}

// AddressingError is returned when a parameter uses an unknown addressing mode
// or an instruction tries to write to an immediate-mode parameter.
type AddressingError struct {
	PC    int
	Param int // 1-indexed
	Mode  int64
}

func (e *AddressingError) Error() string {
	if e.Mode == modeImm {
		return fmt.Sprintf("write to immediate param %v at %v", e.Param, e.PC)
	}
	return fmt.Sprintf("bad mode %v for param %v at %v", e.Mode, e.Param, e.PC)
}

// IndexError is returned when an address falls outside of memory.
type IndexError struct {
	Addr *big.Int
	Size int // memory size
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("address %v out of range [0, %v)", e.Addr, e.Size)
}

// EmptyQueueError is returned when reading from a queue with nothing pending.
type EmptyQueueError struct{}

func (e *EmptyQueueError) Error() string { return "queue is empty" }

// RangeError is returned when a value doesn't fit in an int64.
type RangeError struct{ Val *big.Int }

func (e *RangeError) Error() string { return fmt.Sprintf("value %v overflows int64", e.Val) }
