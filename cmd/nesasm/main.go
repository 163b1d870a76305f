// Command nesasm assembles a two-pass 6502/iNES source file into a .nes
// ROM image.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/urfave/cli.v2"

	"github.com/nesforge/nes65/asm"
)

func main() {
	app := &cli.App{
		Name:    "nesasm",
		Usage:   "assemble a 6502/NES source file into an iNES ROM",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output .nes path (default: input path with .nes extension)",
			},
			&cli.BoolFlag{
				Name:  "labels",
				Usage: "print the resolved label table to stderr after assembling",
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
		return cli.Exit("nesasm: exactly one input file is required", 86)
	}
	in := c.Args().Get(0)

	out := c.String("out")
	if out == "" {
		out = strings.TrimSuffix(in, ".asm") + ".nes"
	}

	source, err := os.ReadFile(in)
	if err != nil {
		return cli.Exit(fmt.Sprintf("nesasm: %s", err), 1)
	}

	img, labels, err := asm.Assemble(source)
	if err != nil {
		return cli.Exit(fmt.Sprintf("nesasm: %s", err), 1)
	}

	f, err := os.Create(out)
	if err != nil {
		return cli.Exit(fmt.Sprintf("nesasm: %s", err), 1)
	}
	defer f.Close()

	if _, err := img.WriteTo(f); err != nil {
		return cli.Exit(fmt.Sprintf("nesasm: %s", err), 1)
	}

	if c.Bool("labels") {
		printLabels(labels)
	}

	return nil
}

func printLabels(labels map[string]uint16) {
	names := make([]string, 0, len(labels))
	for name := range labels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "%s = $%04X\n", name, labels[name])
	}
}
