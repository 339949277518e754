// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/derat/intcode"
)

func init() { Register(7, day07{}) }

type day07 struct{}

const numAmps = 5

// PartOne finds the highest thruster signal from a linear amplifier chain with phases 0-4.
func (day07) PartOne(lines []string) (string, error) { return bestSignal(lines, 0, false) }

// PartTwo finds the highest thruster signal from an amplifier feedback loop with phases 5-9.
func (day07) PartTwo(lines []string) (string, error) { return bestSignal(lines, numAmps, true) }

// bestSignal tries every assignment of phases [offset, offset+numAmps) to the amplifiers.
func bestSignal(lines []string, offset int64, feedback bool) (string, error) {
	prog, err := program(lines)
	if err != nil {
		return "", err
	}
	model, err := intcode.New(prog)
	if err != nil {
		return "", err
	}

	var best int64
	for i := 0; i < factorial(numAmps); i++ {
		phases := permutation(i, numAmps)
		for j := range phases {
			phases[j] += offset
		}
		sig, err := newAmplifiers(model, phases, feedback).run()
		if err != nil {
			return "", fmt.Errorf("phases %v: %w", phases, err)
		}
		if i == 0 || sig > best {
			best = sig
		}
	}
	return strconv.FormatInt(best, 10), nil
}

// amplifiers is a series of VMs, each feeding its output to the next.
type amplifiers struct {
	vms []*intcode.VM
}

// newAmplifiers copies model once per phase. The first amplifier receives an initial
// signal of 0. If feedback is true, the last amplifier's output is linked back to the first.
func newAmplifiers(model *intcode.VM, phases []int64, feedback bool) *amplifiers {
	a := &amplifiers{vms: make([]*intcode.VM, len(phases))}
	for i := range a.vms {
		a.vms[i] = model.Clone()
	}
	for i := 0; i < len(a.vms)-1; i++ {
		intcode.Link(a.vms[i], a.vms[i+1])
	}
	if feedback {
		intcode.Link(a.vms[len(a.vms)-1], a.vms[0])
	}
	for i, p := range phases {
		a.vms[i].Push(p)
	}
	a.vms[0].Push(0)
	return a
}

var errStalled = errors.New("all amplifiers are waiting for input")

// run drives the amplifiers round-robin until one that's due to run has halted,
// and then returns the last signal produced by the amplifier before it.
func (a *amplifiers) run() (int64, error) {
	n := len(a.vms)
	idle := 0 // consecutive runs that made no progress
	for i := 0; ; i++ {
		vm := a.vms[i%n]
		if vm.State() == intcode.Halted {
			var sig int64
			for prev := a.vms[(i+n-1)%n]; prev.Pending() > 0; {
				v, err := prev.PopInt()
				if err != nil {
					return 0, err
				}
				sig = v
			}
			return sig, nil
		}

		steps, pending := vm.Steps(), vm.Pending()
		if err := vm.Run(); err != nil {
			return 0, err
		}
		if vm.Steps() == steps && vm.Pending() == pending {
			if idle++; idle >= n {
				return 0, errStalled
			}
		} else {
			idle = 0
		}
	}
}

// permutation maps index in [0, n!) to a distinct permutation of [0, n).
// The mapping isn't lexicographic.
func permutation(index, n int) []int64 {
	items := make([]int64, n)
	for i := range items {
		items[i] = int64(i)
	}
	res := make([]int64, n)
	for i := n; i > 0; i-- {
		j := index % i
		res[i-1] = items[j]
		items = append(items[:j], items[j+1:]...)
		index /= i
	}
	return res
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}
