// Copyright 2021 Daniel Erat <dan@erat.org>.
// All rights reserved.

// Package intcode implements an interpreter for Intcode programs: comma-separated
// listings of integers that are executed directly out of their own memory.
//
// A VM runs until it halts or needs input that hasn't been supplied yet, at which
// point it pauses and returns control to the caller. Multiple VMs can be chained
// by linking one's output queue to another's input queue and driving them in turn.
package intcode

import (
	"math/big"

	"go.uber.org/zap"
)

// State describes whether a VM can make progress.
type State int

const (
	Running State = iota
	Paused        // waiting for input
	Halted        // terminal
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Halted:
		return "halted"
	default:
		return "unknown"
	}
}

const (
	opAdd  = 1  // add a b c: write a+b to c
	opMul  = 2  // mul a b c: write a*b to c
	opIn   = 3  // in a: read input into a; pause if no input is pending
	opOut  = 4  // out a: append a to output
	opJT   = 5  // jt a b: jump to b if a is nonzero
	opJF   = 6  // jf a b: jump to b if a is zero
	opLT   = 7  // lt a b c: write 1 to c if a < b, 0 otherwise
	opEq   = 8  // eq a b c: write 1 to c if a == b, 0 otherwise
	opBase = 9  // base a: add a to the relative base
	opHalt = 99 // halt
)

const (
	modePos = 0 // parameter is an address
	modeImm = 1 // parameter is a literal value
	modeRel = 2 // parameter is an offset from the relative base
)

var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

// VM is a single Intcode machine. It is not safe for concurrent use, and
// neither are queues shared with other VMs via Link.
type VM struct {
	mem   []*big.Int
	pc    int      // address of next instruction
	base  *big.Int // relative base
	in    *Queue
	out   *Queue
	state State
	steps int // executed instructions
	log   *zap.Logger
}

// Overwrite describes a memory cell that should be patched after a listing is loaded.
type Overwrite struct {
	Addr int
	Val  int64
}

type config struct {
	size int
	ows  []Overwrite
	log  *zap.Logger
}

// Option configures a VM created by New.
type Option func(*config)

// WithMemorySize allocates n cells of memory. Cells past the end of the listing are zero.
// Sizes smaller than the listing are ignored.
func WithMemorySize(n int) Option { return func(c *config) { c.size = n } }

// WithOverwrites patches memory after the listing is loaded.
func WithOverwrites(ows ...Overwrite) Option {
	return func(c *config) { c.ows = append(c.ows, ows...) }
}

// WithLogger sets a logger for state transitions and faults.
func WithLogger(l *zap.Logger) Option { return func(c *config) { c.log = l } }

// New returns a VM with memory initialized from the comma-separated listing in text.
func New(text string, opts ...Option) (*VM, error) {
	cfg := config{log: zap.NewNop()}
	for _, o := range opts {
		o(&cfg)
	}
	vals, err := Parse(text)
	if err != nil {
		return nil, err
	}

	vm := &VM{
		mem:  make([]*big.Int, max(cfg.size, len(vals))),
		base: new(big.Int),
		in:   NewQueue(),
		out:  NewQueue(),
		log:  cfg.log,
	}
	copy(vm.mem, vals)
	for i := len(vals); i < len(vm.mem); i++ {
		vm.mem[i] = new(big.Int)
	}
	for _, ow := range cfg.ows {
		if err := vm.Set(ow.Addr, ow.Val); err != nil {
			return nil, err
		}
	}
	return vm, nil
}

// Clone returns a fresh VM with a copy of vm's memory.
// The copy starts at address 0 with empty queues, regardless of vm's state.
func (vm *VM) Clone() *VM {
	c := &VM{
		mem:  make([]*big.Int, len(vm.mem)),
		base: new(big.Int),
		in:   NewQueue(),
		out:  NewQueue(),
		log:  vm.log,
	}
	for i, v := range vm.mem {
		c.mem[i] = new(big.Int).Set(v)
	}
	return c
}

// Link makes dst read its input from src's output.
// Anything already pending in dst's input is discarded.
func Link(src, dst *VM) { dst.in = src.out }

// State returns vm's current state.
func (vm *VM) State() State { return vm.state }

// Steps returns the number of instructions executed so far.
func (vm *VM) Steps() int { return vm.steps }

// Input returns the queue that vm reads from.
func (vm *VM) Input() *Queue { return vm.in }

// Output returns the queue that vm writes to.
func (vm *VM) Output() *Queue { return vm.out }

// Push appends vals to vm's input.
func (vm *VM) Push(vals ...int64) {
	for _, v := range vals {
		vm.in.Push(big.NewInt(v))
	}
}

// PushBig appends vals to vm's input.
func (vm *VM) PushBig(vals ...*big.Int) {
	for _, v := range vals {
		vm.in.Push(v)
	}
}

// Pop removes and returns the oldest pending output value.
func (vm *VM) Pop() (*big.Int, error) { return vm.out.Pop() }

// PopInt is like Pop but returns an int64. Values out of range are reported via *RangeError.
func (vm *VM) PopInt() (int64, error) { return vm.out.PopInt() }

// Pending returns the number of output values waiting to be read.
func (vm *VM) Pending() int { return vm.out.Len() }

// Outputs removes and returns all pending output values.
func (vm *VM) Outputs() []*big.Int {
	vals := make([]*big.Int, 0, vm.out.Len())
	for vm.out.Len() > 0 {
		v, _ := vm.out.Pop()
		vals = append(vals, v)
	}
	return vals
}

// Size returns the number of memory cells.
func (vm *VM) Size() int { return len(vm.mem) }

// Get returns a copy of the value at addr.
func (vm *VM) Get(addr int) (*big.Int, error) {
	if addr < 0 || addr >= len(vm.mem) {
		return nil, &IndexError{Addr: big.NewInt(int64(addr)), Size: len(vm.mem)}
	}
	return new(big.Int).Set(vm.mem[addr]), nil
}

// Set writes v to addr.
func (vm *VM) Set(addr int, v int64) error { return vm.SetBig(addr, big.NewInt(v)) }

// SetBig writes a copy of v to addr.
func (vm *VM) SetBig(addr int, v *big.Int) error {
	if addr < 0 || addr >= len(vm.mem) {
		return &IndexError{Addr: big.NewInt(int64(addr)), Size: len(vm.mem)}
	}
	vm.mem[addr].Set(v)
	return nil
}

// Run executes instructions until vm halts or pauses to wait for input.
// Calling Run on a halted VM does nothing, and calling it on a paused VM
// resumes execution at the instruction that paused.
//
// A non-nil error means that the program faulted. Instructions executed before
// the fault remain applied and the state is left at Running.
func (vm *VM) Run() (err error) {
	switch vm.state {
	case Halted:
		return nil
	case Paused:
		vm.state = Running
	}

	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(fault)
			if !ok {
				panic(r)
			}
			err = f.err
			vm.log.Debug("faulted", zap.Int("pc", vm.pc), zap.Int("steps", vm.steps), zap.Error(err))
		}
	}()

	for vm.state == Running {
		vm.step()
	}
	vm.log.Debug(vm.state.String(), zap.Int("pc", vm.pc), zap.Int("steps", vm.steps),
		zap.Int("pending_in", vm.in.Len()), zap.Int("pending_out", vm.out.Len()))
	return nil
}

// step decodes and executes the instruction at vm.pc.
func (vm *VM) step() {
	ins := vm.cell(vm.pc)
	if !ins.IsInt64() {
		throw(&InvalidOpcodeError{PC: vm.pc, Op: new(big.Int).Set(ins)})
	}
	code := ins.Int64()
	op := code % 100

	var sz int // instruction size (including opcode)

	// Returns the addressing mode of the 1-indexed parameter.
	mode := func(arg int) int64 {
		sz = max(sz, arg+1)
		m := code / 100
		for i := 1; i < arg; i++ {
			m /= 10
		}
		return m % 10
	}

	// Returns the address referenced by the 1-indexed parameter.
	addr := func(arg int) int {
		p := vm.cell(vm.pc + arg)
		switch m := mode(arg); m {
		case modePos:
			return vm.index(p)
		case modeRel:
			return vm.index(new(big.Int).Add(p, vm.base))
		default:
			throw(&AddressingError{PC: vm.pc, Param: arg, Mode: m})
		}
		panic("unreachable")
	}

	// Returns the value of the 1-indexed parameter. The returned value must not be modified.
	get := func(arg int) *big.Int {
		if mode(arg) == modeImm {
			return vm.cell(vm.pc + arg)
		}
		return vm.mem[addr(arg)]
	}

	// Writes val to the address referenced by the 1-indexed parameter.
	set := func(arg int, val *big.Int) { vm.mem[addr(arg)].Set(val) }

	switch op {
	case opAdd:
		a, b := get(1), get(2)
		set(3, new(big.Int).Add(a, b))
	case opMul:
		a, b := get(1), get(2)
		set(3, new(big.Int).Mul(a, b))
	case opIn:
		dst := addr(1)
		if vm.in.Len() == 0 {
			vm.state = Paused
			return // retry the same instruction when resumed
		}
		v, _ := vm.in.Pop()
		vm.mem[dst].Set(v)
	case opOut:
		vm.out.Push(get(1))
	case opJT, opJF:
		a, b := get(1), get(2)
		if (a.Sign() != 0) == (op == opJT) {
			vm.pc = vm.index(b)
			sz = 0 // don't advance pc
		}
	case opLT:
		a, b := get(1), get(2)
		set(3, cond(a.Cmp(b) < 0, one, zero))
	case opEq:
		a, b := get(1), get(2)
		set(3, cond(a.Cmp(b) == 0, one, zero))
	case opBase:
		vm.base.Add(vm.base, get(1))
	case opHalt:
		vm.state = Halted
		sz = 0
	default:
		throw(&InvalidOpcodeError{PC: vm.pc, Op: big.NewInt(code)})
	}

	vm.pc += sz
	vm.steps++
}

// cell returns the memory cell at p, faulting if p is out of range.
func (vm *VM) cell(p int) *big.Int {
	if p < 0 || p >= len(vm.mem) {
		throw(&IndexError{Addr: big.NewInt(int64(p)), Size: len(vm.mem)})
	}
	return vm.mem[p]
}

// index converts v to a memory address, faulting if it's out of range.
func (vm *VM) index(v *big.Int) int {
	if !v.IsInt64() || v.Sign() < 0 || v.Int64() >= int64(len(vm.mem)) {
		throw(&IndexError{Addr: new(big.Int).Set(v), Size: len(vm.mem)})
	}
	return int(v.Int64())
}

// cond returns a if c is true and b otherwise.
func cond[T any](c bool, a, b T) T {
	if c {
		return a
	}
	return b
}

// fault wraps errors raised while executing instructions so Run can tell them
// apart from other panics.
type fault struct{ err error }

// throw aborts the current instruction with err.
func throw(err error) { panic(fault{err}) }
