// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/derat/intcode"
)

func init() { Register(11, day11{}) }

type day11 struct{}

const (
	black = 0
	white = 1
)

type point struct{ x, y int }

func (p point) add(o point) point { return point{p.x + o.x, p.y + o.y} }

// Clockwise, starting from up. y increases downward.
var headings = [4]point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// PartOne counts the panels painted at least once when starting on a black panel.
func (day11) PartOne(lines []string) (string, error) {
	hull, err := paintHull(lines, black)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(len(hull)), nil
}

// PartTwo renders the registration identifier painted when starting on a white panel.
func (day11) PartTwo(lines []string) (string, error) {
	hull, err := paintHull(lines, white)
	if err != nil {
		return "", err
	}
	return render(hull), nil
}

// paintHull runs the painting robot until it halts and returns the color of every painted panel.
// The robot starts at the origin facing up, on a panel with color start.
func paintHull(lines []string, start int64) (map[point]int64, error) {
	prog, err := program(lines)
	if err != nil {
		return nil, err
	}
	vm, err := intcode.New(prog, intcode.WithMemorySize(memSize))
	if err != nil {
		return nil, err
	}

	hull := make(map[point]int64)
	var pos point
	var dir int // index into headings
	for vm.State() != intcode.Halted {
		color, ok := hull[pos]
		if !ok && pos == (point{}) {
			color = start
		}
		vm.Push(color)
		if err := vm.Run(); err != nil {
			return nil, err
		}
		if vm.Pending() < 2 {
			if vm.State() == intcode.Halted {
				break
			}
			return nil, fmt.Errorf("robot stalled at %v", pos)
		}

		paint, err := vm.PopInt()
		if err != nil {
			return nil, err
		}
		turn, err := vm.PopInt()
		if err != nil {
			return nil, err
		}
		hull[pos] = paint
		if turn == 1 {
			dir = (dir + 1) % len(headings)
		} else {
			dir = (dir + len(headings) - 1) % len(headings)
		}
		pos = pos.add(headings[dir])
	}
	return hull, nil
}

// render draws the smallest rectangle containing all white panels,
// using '#' for white and '.' for everything else.
func render(hull map[point]int64) string {
	var lo, hi point
	first := true
	for p, c := range hull {
		if c != white {
			continue
		}
		if first {
			lo, hi, first = p, p, false
			continue
		}
		lo = point{min(lo.x, p.x), min(lo.y, p.y)}
		hi = point{max(hi.x, p.x), max(hi.y, p.y)}
	}
	if first {
		return ""
	}

	var rows []string
	for y := lo.y; y <= hi.y; y++ {
		var sb strings.Builder
		for x := lo.x; x <= hi.x; x++ {
			if hull[point{x, y}] == white {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		rows = append(rows, sb.String())
	}
	return strings.Join(rows, "\n")
}
