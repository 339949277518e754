// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package intcode

import "math/big"

// Queue is a FIFO of values passed into or out of a VM.
// Values are copied on the way in, so callers may reuse what they push.
//
// A Queue shared between two VMs via Link is only safe if the VMs are driven
// from a single goroutine.
type Queue struct {
	vals []*big.Int
}

// NewQueue returns an empty queue.
func NewQueue() *Queue { return &Queue{} }

// Push appends a copy of v.
func (q *Queue) Push(v *big.Int) { q.vals = append(q.vals, new(big.Int).Set(v)) }

// PushInt appends vals.
func (q *Queue) PushInt(vals ...int64) {
	for _, v := range vals {
		q.vals = append(q.vals, big.NewInt(v))
	}
}

// Pop removes and returns the oldest value.
func (q *Queue) Pop() (*big.Int, error) {
	if len(q.vals) == 0 {
		return nil, &EmptyQueueError{}
	}
	v := q.vals[0]
	q.vals[0] = nil
	q.vals = q.vals[1:]
	return v, nil
}

// PopInt is like Pop but returns an int64.
// A value that doesn't fit is still removed and reported via *RangeError.
func (q *Queue) PopInt() (int64, error) {
	v, err := q.Pop()
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, &RangeError{v}
	}
	return v.Int64(), nil
}

// Len returns the number of pending values.
func (q *Queue) Len() int { return len(q.vals) }
