// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import (
	"strconv"

	"github.com/derat/intcode"
	"golang.org/x/exp/constraints"
)

func init() { Register(13, day13{}) }

type day13 struct{}

// Tile IDs drawn by the arcade cabinet.
const (
	tileEmpty  = 0
	tileWall   = 1
	tileBlock  = 2
	tilePaddle = 3
	tileBall   = 4
)

// PartOne counts the block tiles drawn on the first screen.
func (day13) PartOne(lines []string) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	vm, err := intcode.New(prog, intcode.WithMemorySize(memSize))
	if err != nil {
		return "", err
	}
	if err := vm.Run(); err != nil {
		return "", err
	}
	var blocks int
	err = readTiles(vm, func(x, y, id int64) {
		if id == tileBlock {
			blocks++
		}
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(blocks), nil
}

// PartTwo plays the game for free by tracking the ball with the paddle,
// and returns the final score.
func (day13) PartTwo(lines []string) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	// Cell 0 holds the number of quarters.
	vm, err := intcode.New(prog, intcode.WithMemorySize(memSize), intcode.WithOverwrites(intcode.Overwrite{Addr: 0, Val: 2}))
	if err != nil {
		return "", err
	}

	var score, paddle, ball int64
	for vm.State() != intcode.Halted {
		if err := vm.Run(); err != nil {
			return "", err
		}
		err := readTiles(vm, func(x, y, id int64) {
			switch {
			case x == -1 && y == 0:
				score = id
			case id == tilePaddle:
				paddle = x
			case id == tileBall:
				ball = x
			}
		})
		if err != nil {
			return "", err
		}
		vm.Push(sign(ball - paddle))
	}
	return strconv.FormatInt(score, 10), nil
}

// readTiles drains vm's output as (x, y, id) triples. A trailing partial triple is left pending.
func readTiles(vm *intcode.VM, f func(x, y, id int64)) error {
	for vm.Pending() >= 3 {
		var v [3]int64
		for i := range v {
			var err error
			if v[i], err = vm.PopInt(); err != nil {
				return err
			}
		}
		f(v[0], v[1], v[2])
	}
	return nil
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
