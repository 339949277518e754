// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Command aoc solves registered puzzles using input files named dayNN.txt.
// A failing part is logged without stopping the remaining parts and days.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/derat/intcode/internal/logging"
	"github.com/derat/intcode/puzzle"
	"github.com/google/uuid"
	"gitlab.com/efronlicht/enve"
	"go.uber.org/zap"
)

func main() {
	day := flag.Int("day", enve.IntOr("AOC_DAY", 0), "Day to solve (0 for all registered days)")
	dir := flag.String("input", enve.StringOr("AOC_INPUT_DIR", "inputs"), "Directory containing dayNN.txt files")
	debug := flag.Bool("debug", enve.BoolOr("AOC_DEBUG", false), "Enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logging.New(os.Stderr, *debug).With(zap.Stringer("run_id", uuid.New()))
	defer logger.Sync()

	days := puzzle.Days()
	if *day != 0 {
		days = []int{*day}
	}
	if failed := solveAll(logger, days, *dir, os.Stdout); failed > 0 {
		logger.Error("some parts failed", zap.Int("failed", failed))
		logger.Sync()
		os.Exit(1)
	}
}

// solveAll solves each of days, writing answers to w and returning the number of failures.
func solveAll(logger *zap.Logger, days []int, dir string, w io.Writer) (failed int) {
	for _, day := range days {
		log := logger.With(zap.Int("day", day))
		s, ok := puzzle.Lookup(day)
		if !ok {
			log.Error("no solution registered")
			failed++
			continue
		}
		p := filepath.Join(dir, fmt.Sprintf("day%02d.txt", day))
		lines, err := readLines(p)
		if err != nil {
			log.Error("failed reading input", zap.String("path", p), zap.Error(err))
			failed++
			continue
		}

		start := time.Now()
		res := puzzle.Solve(s, lines)
		log.Debug("solved", zap.Duration("elapsed", time.Since(start)))
		for i, part := range []struct {
			ans string
			err error
		}{{res.One, res.OneErr}, {res.Two, res.TwoErr}} {
			if part.err != nil {
				log.Error("part failed", zap.Int("part", i+1), zap.Error(part.err))
				failed++
				continue
			}
			fmt.Fprintf(w, "day %d part %d: %s\n", day, i+1, part.ans)
		}
	}
	return failed
}

func readLines(p string) ([]string, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(nil, 1<<20) // listings are long single lines
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}
