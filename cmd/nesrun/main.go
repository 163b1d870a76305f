// Command nesrun loads an iNES ROM or assembles a source file and either
// executes it headless or drives it through an interactive TUI debugger.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"github.com/nesforge/nes65/asm"
	"github.com/nesforge/nes65/cmd/nesrun/internal/tui"
	"github.com/nesforge/nes65/debug"
	"github.com/nesforge/nes65/nes"
)

func main() {
	app := &cli.App{
		Name:    "nesrun",
		Usage:   "run or debug a 6502/NES ROM",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "steps",
				Usage: "execute N instructions headless, then print a register dump",
			},
			&cli.StringSliceFlag{
				Name:  "break",
				Usage: "breakpoint, as $ADDR or $ADDR:condition (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "log a state dump after every step",
			},
			&cli.BoolFlag{
				Name:  "tui",
				Usage: "launch the interactive step debugger",
			},
		},
		Action: action,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func action(c *cli.Context) error {
	if c.Args().Len() != 1 {
		cli.ShowAppHelp(c)
		return cli.Exit("nesrun: exactly one ROM path is required", 86)
	}
	path := c.Args().Get(0)

	img, labels, err := nes.Load(path, asm.New())
	if err != nil {
		return cli.Exit(fmt.Sprintf("nesrun: %s", err), 1)
	}

	bus := nes.NewBus(img)
	cpu := nes.NewCPU(bus)

	breakpoints := debug.NewBreakpoints()
	for _, spec := range c.StringSlice("break") {
		addr, cond, err := parseBreak(spec, labels)
		if err != nil {
			return cli.Exit(fmt.Sprintf("nesrun: %s", err), 1)
		}
		breakpoints.Set(addr, cond)
	}

	if c.Bool("tui") {
		tui.Run(cpu, breakpoints)
		return nil
	}

	return runHeadless(cpu, breakpoints, c.Int("steps"), c.Bool("trace"))
}

func runHeadless(cpu *nes.CPU, breakpoints *debug.Breakpoints, steps int, trace bool) error {
	for i := 0; steps <= 0 || i < steps; i++ {
		if cpu.Halted() {
			break
		}

		hit, err := breakpoints.ShouldBreak(cpu)
		if err != nil {
			return cli.Exit(fmt.Sprintf("nesrun: %s", err), 1)
		}
		if hit {
			break
		}

		if trace {
			fmt.Fprint(os.Stderr, debug.Dump(cpu))
		}
		cpu.Step()
	}

	fmt.Fprint(os.Stderr, debug.Dump(cpu))
	return nil
}

// parseBreak parses a "$ADDR" or "$ADDR:condition" breakpoint spec. ADDR may
// also be a label name from the assembled image's symbol table.
func parseBreak(spec string, labels nes.SymbolTable) (uint16, string, error) {
	addrText, cond, _ := strings.Cut(spec, ":")
	addrText = strings.TrimPrefix(addrText, "$")

	if addr, ok := labels[addrText]; ok {
		return addr, cond, nil
	}

	addr, err := strconv.ParseUint(addrText, 16, 16)
	if err != nil {
		return 0, "", fmt.Errorf("invalid breakpoint address %q: %w", spec, err)
	}
	return uint16(addr), cond, nil
}
