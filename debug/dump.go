package debug

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/nesforge/nes65/nes"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// snapshot is the flat, exported view of CPU state spew renders — the
// real *nes.CPU keeps its fields exported too, but a dedicated struct
// lets the dump's shape stay stable even if CPU grows unexported bus
// plumbing later.
type snapshot struct {
	PC        uint16
	A, X, Y   byte
	SP        byte
	Status    string
	Cycles    uint64
	Halted    bool
	NextInstr string
}

// Dump renders a deep, field-labelled snapshot of cpu's architectural
// state, for nesrun's `-trace` flag and its final headless register dump.
func Dump(cpu *nes.CPU) string {
	text, _ := nes.Disassemble(cpu.Bus, cpu.PC)
	snap := snapshot{
		PC:        cpu.PC,
		A:         cpu.A,
		X:         cpu.X,
		Y:         cpu.Y,
		SP:        cpu.SP,
		Status:    StatusString(cpu.StatusByte()),
		Cycles:    cpu.Cycles,
		Halted:    cpu.Halted(),
		NextInstr: text,
	}
	return dumpConfig.Sdump(snap)
}

// StatusString renders the eight status bits as NV-BDIZC, matching the
// convention most 6502 disassemblers print registers in, with a clear
// unset-bit marker so the raw byte is still legible at a glance. Exported
// so front ends (the TUI debugger) can reuse it instead of reimplementing.
func StatusString(p byte) string {
	letters := "NV-BDIZC"
	out := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bit := byte(1) << (7 - i)
		if p&bit != 0 {
			out[i] = letters[i]
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
