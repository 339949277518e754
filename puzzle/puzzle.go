// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package puzzle contains Advent of Code solutions that drive Intcode programs.
package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/derat/intcode"
	"golang.org/x/exp/maps"
)

// Solution solves both parts of a day's puzzle given the lines of its input.
type Solution interface {
	PartOne(lines []string) (string, error)
	PartTwo(lines []string) (string, error)
}

var (
	// ErrNotImplemented may be returned by parts that haven't been solved yet.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNoInput is returned when the input doesn't contain a program listing.
	ErrNoInput = errors.New("no program in input")
)

// memSize is the memory size used for programs that need scratch space.
const memSize = 10000

var solutions = map[int]Solution{}

// Register makes s available as the solution for day.
// It panics if day is already registered.
func Register(day int, s Solution) {
	if _, ok := solutions[day]; ok {
		panic(fmt.Sprintf("day %v already registered", day))
	}
	solutions[day] = s
}

// Lookup returns the solution registered for day.
func Lookup(day int) (Solution, bool) {
	s, ok := solutions[day]
	return s, ok
}

// Days returns the registered days in increasing order.
func Days() []int {
	days := maps.Keys(solutions)
	slices.Sort(days)
	return days
}

// Result holds the answers to both parts of a puzzle.
// A part that failed has an empty answer and a non-nil error.
type Result struct {
	One, Two       string
	OneErr, TwoErr error
}

// Solve runs both parts of s independently, so a failure in one part
// doesn't prevent the other from being reported.
func Solve(s Solution, lines []string) Result {
	var r Result
	r.One, r.OneErr = s.PartOne(lines)
	r.Two, r.TwoErr = s.PartTwo(lines)
	return r
}

// program returns the first non-empty line of lines.
func program(lines []string) (string, error) {
	for _, ln := range lines {
		if ln = strings.TrimSpace(ln); ln != "" {
			return ln, nil
		}
	}
	return "", ErrNoInput
}

// errNotHalted describes a program that stopped without halting.
func errNotHalted(vm *intcode.VM) error {
	return fmt.Errorf("program %v at step %v instead of halting", vm.State(), vm.Steps())
}
