// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import "github.com/derat/intcode"

func init() { Register(9, day09{}) }

type day09 struct{}

// PartOne runs the BOOST program in test mode.
func (day09) PartOne(lines []string) (string, error) { return boost(lines, 1) }

// PartTwo runs the BOOST program in sensor boost mode.
func (day09) PartTwo(lines []string) (string, error) { return boost(lines, 2) }

// boost runs the program with mode as input and returns its first output.
func boost(lines []string, mode int64) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	vm, err := intcode.New(prog, intcode.WithMemorySize(memSize))
	if err != nil {
		return "", err
	}
	vm.Push(mode)
	if err := vm.Run(); err != nil {
		return "", err
	}
	v, err := vm.Pop()
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
