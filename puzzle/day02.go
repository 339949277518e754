// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/derat/intcode"
)

func init() { Register(2, day02{}) }

type day02 struct{}

// day02Target is the output that part two searches for.
const day02Target = 19690720

// PartOne restores the "1202 program alarm" state and reports cell 0.
func (day02) PartOne(lines []string) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	vm, err := intcode.New(prog, intcode.WithOverwrites(intcode.Overwrite{Addr: 1, Val: 12}, intcode.Overwrite{Addr: 2, Val: 2}))
	if err != nil {
		return "", err
	}
	v, err := runToCell0(vm)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// PartTwo searches for the noun and verb that produce day02Target.
func (day02) PartTwo(lines []string) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	model, err := intcode.New(prog)
	if err != nil {
		return "", err
	}
	for noun := int64(0); noun < 100; noun++ {
		for verb := int64(0); verb < 100; verb++ {
			vm := model.Clone()
			if err := vm.Set(1, noun); err != nil {
				return "", err
			}
			if err := vm.Set(2, verb); err != nil {
				return "", err
			}
			// Plenty of combinations reference memory that doesn't exist.
			v, err := runToCell0(vm)
			if err != nil {
				continue
			}
			if v.IsInt64() && v.Int64() == day02Target {
				return strconv.FormatInt(100*noun+verb, 10), nil
			}
		}
	}
	return "", errors.New("no noun and verb produce target")
}

// runToCell0 runs vm to completion and returns the value in cell 0.
func runToCell0(vm *intcode.VM) (*big.Int, error) {
	if err := vm.Run(); err != nil {
		return nil, err
	}
	if vm.State() != intcode.Halted {
		return nil, errNotHalted(vm)
	}
	return vm.Get(0)
}
