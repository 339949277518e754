// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Command intcode runs an Intcode program interactively.
// Whenever the program waits for input, a line of integers is read from stdin.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/derat/intcode"
	"github.com/derat/intcode/internal/logging"
	"gitlab.com/efronlicht/enve"
	"go.uber.org/zap"
)

func main() {
	mem := flag.Int("mem", enve.IntOr("INTCODE_MEM_SIZE", 0), "Memory size in cells (at least the listing's length)")
	debug := flag.Bool("debug", enve.BoolOr("INTCODE_DEBUG", false), "Log VM state transitions")
	in := flag.String("in", "", "Comma-separated initial input values")
	var ows overwrites
	flag.Var(&ows, "set", "Memory overwrite as addr=val (may be repeated)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "%s <prog.txt>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, *debug)
	defer logger.Sync()

	b, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		logger.Fatal("failed reading program", zap.String("path", flag.Arg(0)), zap.Error(err))
	}
	vm, err := intcode.New(string(b),
		intcode.WithMemorySize(*mem), intcode.WithOverwrites(ows...), intcode.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed loading program", zap.String("path", flag.Arg(0)), zap.Error(err))
	}
	if *in != "" {
		vals, err := parseInputs(*in)
		if err != nil {
			logger.Fatal("bad -in flag", zap.Error(err))
		}
		vm.Push(vals...)
	}

	if err := run(vm, os.Stdin, os.Stdout); err != nil {
		logger.Fatal("execution failed", zap.Int("steps", vm.Steps()), zap.Error(err))
	}
}

// run drives vm until it halts, writing each output value to w on its own line
// and reading a line of input values from r whenever vm pauses.
func run(vm *intcode.VM, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		if err := vm.Run(); err != nil {
			return err
		}
		for _, v := range vm.Outputs() {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		if vm.State() == intcode.Halted {
			return nil
		}

		ln, err := br.ReadString('\n')
		if err == io.EOF && strings.TrimSpace(ln) == "" {
			return errors.New("program wants input but stdin is closed")
		} else if err != nil && err != io.EOF {
			return err
		}
		vals, err := parseInputs(ln)
		if err != nil {
			return err
		}
		vm.Push(vals...)
	}
}

// parseInputs parses integers separated by commas and/or whitespace.
func parseInputs(s string) ([]int64, error) {
	var vals []int64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

// overwrites implements flag.Value for repeated addr=val flags.
type overwrites []intcode.Overwrite

func (o *overwrites) String() string {
	parts := make([]string, len(*o))
	for i, ow := range *o {
		parts[i] = fmt.Sprintf("%d=%d", ow.Addr, ow.Val)
	}
	return strings.Join(parts, ",")
}

func (o *overwrites) Set(s string) error {
	a, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("%q isn't addr=val", s)
	}
	addr, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return err
	}
	val, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return err
	}
	*o = append(*o, intcode.Overwrite{Addr: addr, Val: val})
	return nil
}
