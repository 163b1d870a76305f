// Package debug provides the scripting and inspection tooling a front end
// (the TUI debugger in cmd/nesrun, or any future GUI) uses to drive a
// *nes.CPU interactively: conditional breakpoints and state dumps.
package debug

import (
	"fmt"

	"github.com/robertkrimen/otto"

	"github.com/nesforge/nes65/nes"
)

// Breakpoint is an address paired with an optional JavaScript boolean
// expression. An empty Condition always breaks.
type Breakpoint struct {
	Addr      uint16
	Condition string
}

// Breakpoints is an address-indexed set of breakpoints, letting a debugger
// front end add, remove and evaluate them against CPU state each step.
type Breakpoints struct {
	vm     *otto.Otto
	byAddr map[uint16]string
}

// NewBreakpoints returns an empty breakpoint set with its own otto VM.
func NewBreakpoints() *Breakpoints {
	return &Breakpoints{vm: otto.New(), byAddr: map[uint16]string{}}
}

// Set adds or replaces the breakpoint at addr.
func (b *Breakpoints) Set(addr uint16, condition string) {
	b.byAddr[addr] = condition
}

// Clear removes the breakpoint at addr, if any.
func (b *Breakpoints) Clear(addr uint16) {
	delete(b.byAddr, addr)
}

// List returns every registered breakpoint, sorted is not guaranteed.
func (b *Breakpoints) List() []Breakpoint {
	out := make([]Breakpoint, 0, len(b.byAddr))
	for addr, cond := range b.byAddr {
		out = append(out, Breakpoint{Addr: addr, Condition: cond})
	}
	return out
}

// ShouldBreak reports whether execution should stop at cpu.PC: the address
// must have a registered breakpoint, and if it carries a condition, that
// expression must evaluate truthy against the current register snapshot.
func (b *Breakpoints) ShouldBreak(cpu *nes.CPU) (bool, error) {
	cond, ok := b.byAddr[cpu.PC]
	if !ok {
		return false, nil
	}
	if cond == "" {
		return true, nil
	}
	return b.eval(cpu, cond)
}

func (b *Breakpoints) eval(cpu *nes.CPU, expr string) (bool, error) {
	vm := b.vm.Copy() // isolate globals per evaluation
	vm.Set("A", cpu.A)
	vm.Set("X", cpu.X)
	vm.Set("Y", cpu.Y)
	vm.Set("P", byte(cpu.P))
	vm.Set("SP", cpu.SP)
	vm.Set("PC", cpu.PC)
	vm.Set("Cycles", cpu.Cycles)

	v, err := vm.Run(expr)
	if err != nil {
		return false, fmt.Errorf("debug: evaluating breakpoint condition %q: %w", expr, err)
	}
	truthy, err := v.ToBoolean()
	if err != nil {
		return false, fmt.Errorf("debug: breakpoint condition %q did not evaluate to a boolean: %w", expr, err)
	}
	return truthy, nil
}
