package debug

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nesforge/nes65/nes"
)

func testCPU() *nes.CPU {
	bus := &nes.Bus{PRG: make([]byte, 16*1024)}
	return nes.NewCPU(bus)
}

func TestShouldBreakUnconditional(t *testing.T) {
	bp := NewBreakpoints()
	cpu := testCPU()
	bp.Set(cpu.PC, "")
	hit, err := bp.ShouldBreak(cpu)
	require.NoError(t, err)
	require.True(t, hit)
}

func TestShouldBreakConditionTrue(t *testing.T) {
	bp := NewBreakpoints()
	cpu := testCPU()
	cpu.A = 0x42
	bp.Set(cpu.PC, "A == 0x42")
	hit, err := bp.ShouldBreak(cpu)
	require.NoError(t, err)
	require.True(t, hit)
}

func TestShouldBreakConditionFalse(t *testing.T) {
	bp := NewBreakpoints()
	cpu := testCPU()
	cpu.A = 0x01
	bp.Set(cpu.PC, "A == 0x42")
	hit, err := bp.ShouldBreak(cpu)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestShouldBreakNoBreakpointAtAddress(t *testing.T) {
	bp := NewBreakpoints()
	cpu := testCPU()
	hit, err := bp.ShouldBreak(cpu)
	require.NoError(t, err)
	require.False(t, hit)
}

func TestShouldBreakBadExpression(t *testing.T) {
	bp := NewBreakpoints()
	cpu := testCPU()
	bp.Set(cpu.PC, "this is not valid js (")
	_, err := bp.ShouldBreak(cpu)
	require.Error(t, err)
}

func TestClearRemovesBreakpoint(t *testing.T) {
	bp := NewBreakpoints()
	cpu := testCPU()
	bp.Set(cpu.PC, "")
	bp.Clear(cpu.PC)
	hit, err := bp.ShouldBreak(cpu)
	require.NoError(t, err)
	require.False(t, hit)
}
