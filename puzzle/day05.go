// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import (
	"errors"

	"github.com/derat/intcode"
)

func init() { Register(5, day05{}) }

type day05 struct{}

// PartOne runs the air conditioner diagnostic (system 1).
func (day05) PartOne(lines []string) (string, error) { return diagnose(lines, 1) }

// PartTwo runs the thermal radiator diagnostic (system 5).
func (day05) PartTwo(lines []string) (string, error) { return diagnose(lines, 5) }

// diagnose runs the program with id as input and returns the diagnostic code,
// i.e. the last output value.
func diagnose(lines []string, id int64) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	vm, err := intcode.New(prog)
	if err != nil {
		return "", err
	}
	vm.Push(id)
	if err := vm.Run(); err != nil {
		return "", err
	}
	if vm.State() != intcode.Halted {
		return "", errNotHalted(vm)
	}
	out := vm.Outputs()
	if len(out) == 0 {
		return "", errors.New("no diagnostic code")
	}
	return out[len(out)-1].String(), nil
}
