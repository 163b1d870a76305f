// Package tui is the interactive step debugger nesrun's -tui flag launches:
// a bubbletea program wrapping a *nes.CPU, rendering disassembly,
// registers, a memory page and the breakpoint list.
package tui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nesforge/nes65/debug"
	"github.com/nesforge/nes65/nes"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	pcStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

type model struct {
	cpu         *nes.CPU
	breakpoints *debug.Breakpoints
	lastErr     error
	quitting    bool
}

// Init performs no initial command; the CPU is already reset by the time
// Run is called.
func (m model) Init() tea.Cmd { return nil }

// Update handles key presses: space/j single-steps, c runs to the next
// breakpoint, q quits.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case " ", "j":
		if !m.cpu.Halted() {
			m.cpu.Step()
		}

	case "c":
		for !m.cpu.Halted() {
			m.cpu.Step()
			hit, err := m.breakpoints.ShouldBreak(m.cpu)
			if err != nil {
				m.lastErr = err
				break
			}
			if hit {
				break
			}
		}
	}

	return m, nil
}

// View renders the register panel, the next disassembled instruction, a
// page of memory around PC, and the breakpoint list.
func (m model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		headerStyle.Render("nesrun debugger") + dimStyle.Render("  (space/j step, c run, q quit)"),
		"",
		m.registers(),
		"",
		m.nextInstruction(),
		"",
		m.memoryPage(),
		"",
		m.breakpointList(),
	}
	if m.lastErr != nil {
		sections = append(sections, "", "error: "+m.lastErr.Error())
	}
	return strings.Join(sections, "\n")
}

func (m model) registers() string {
	return fmt.Sprintf(
		"PC:%04X  A:%02X  X:%02X  Y:%02X  SP:%02X  P:%s  cycles:%d",
		m.cpu.PC, m.cpu.A, m.cpu.X, m.cpu.Y, m.cpu.SP,
		debug.StatusString(m.cpu.StatusByte()), m.cpu.Cycles,
	)
}

func (m model) nextInstruction() string {
	if m.cpu.Halted() {
		return pcStyle.Render("CPU halted (JAM)")
	}
	text, _ := nes.Disassemble(m.cpu.Bus, m.cpu.PC)
	return pcStyle.Render(fmt.Sprintf("%04X  %s", m.cpu.PC, text))
}

func (m model) memoryPage() string {
	base := m.cpu.PC &^ 0x000F
	var lines []string
	for row := uint16(0); row < 4; row++ {
		addr := base + row*16
		line := fmt.Sprintf("%04X  ", addr)
		for col := uint16(0); col < 16; col++ {
			b := m.cpu.Bus.Peek(addr + col)
			if addr+col == m.cpu.PC {
				line += pcStyle.Render(fmt.Sprintf("[%02X]", b)) + " "
			} else {
				line += fmt.Sprintf(" %02X  ", b)
			}
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m model) breakpointList() string {
	bps := m.breakpoints.List()
	if len(bps) == 0 {
		return dimStyle.Render("no breakpoints")
	}
	sort.Slice(bps, func(i, j int) bool { return bps[i].Addr < bps[j].Addr })
	lines := []string{headerStyle.Render("breakpoints")}
	for _, bp := range bps {
		if bp.Condition == "" {
			lines = append(lines, fmt.Sprintf("  $%04X", bp.Addr))
		} else {
			lines = append(lines, fmt.Sprintf("  $%04X: %s", bp.Addr, bp.Condition))
		}
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive debugger for cpu, blocking until the user
// quits.
func Run(cpu *nes.CPU, breakpoints *debug.Breakpoints) {
	p := tea.NewProgram(model{cpu: cpu, breakpoints: breakpoints})
	if _, err := p.Run(); err != nil {
		fmt.Println("tui: error:", err)
	}
}
