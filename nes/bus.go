package nes

import (
	"github.com/golang/glog"
)

// Bus is the CPU-visible address space:
//
//	$0000-$07FF  internal RAM
//	$0800-$1FFF  RAM mirrors
//	$2000-$2007  PPU registers
//	$2008-$3FFF  PPU register mirrors (every 8 bytes)
//	$4000-$4017  APU/IO registers (stubbed: $4014 writes run OAM DMA,
//	             other writes are ignored, reads return 0)
//	$4020-$7FFF  expansion/SRAM (stubbed)
//	$8000-$FFFF  PRG ROM (NROM: mirrored if 16KiB)
//
// It does not model cycle timing itself; CPU.Step drives the clock and
// calls Read/Write once per bus access, matching spec.md's "decoder reads
// through Bus, one access per cycle-relevant step" contract.
type Bus struct {
	RAM    RAM
	PPU    ppuShadow
	PRG    []byte
	Strict bool // when true, unmapped accesses are fatal instead of logged
}

// NewBus wires a bus over a loaded image's PRG bank.
func NewBus(img *Image) *Bus {
	b := &Bus{PRG: img.PRG}
	b.PPU.CHR = img.CHR
	return b
}

// Read returns the byte visible at addr. readOnly is the spec's
// "do not mutate observable state" contract (§4.7): callers that only want
// to inspect memory — disassembly, a GUI memory pane — pass true so that
// vblank, the PPU address latch and the PPUDATA read buffer survive the
// read unchanged. Peek is the convenience wrapper for that case.
func (b *Bus) Read(addr uint16, readOnly bool) byte {
	switch {
	case addr < 0x2000:
		return b.RAM.Read(addr % 0x0800)
	case addr < 0x4000:
		return b.PPU.readRegister(addr%8, readOnly)
	case addr == 0x4015:
		return 0 // APU status: synthesis out of scope, always reports idle
	case addr < 0x4020:
		b.unmapped("read", addr)
		return 0
	case addr < 0x8000:
		b.unmapped("read", addr)
		return 0
	default:
		return b.readPRG(addr)
	}
}

// PPURead reads directly from PPU address space ($0000-$3FFF: pattern
// tables, nametables, palette RAM), bypassing the CPU-side $2000-$3FFF
// register window and its buffered-read/vblank side effects entirely —
// there is nothing to preserve here, so readOnly is accepted only to match
// Read's signature for callers that treat the two uniformly.
func (b *Bus) PPURead(addr uint16, readOnly bool) byte {
	return b.PPU.readVRAM(addr % 0x4000)
}

// PPUWrite stores v directly into PPU address space, bypassing the CPU-side
// register window.
func (b *Bus) PPUWrite(addr uint16, v byte) {
	b.PPU.writeVRAM(addr%0x4000, v)
}

// Peek reads addr without mutating any observable state, per spec.md §4.7's
// read_only contract. Used by the disassembler and memory-inspection front
// ends, which must not perturb the PPU's latch/buffer/vblank as a side
// effect of merely displaying memory.
func (b *Bus) Peek(addr uint16) byte { return b.Read(addr, true) }

// PeekWord is ReadWord's read_only counterpart.
func (b *Bus) PeekWord(addr uint16) uint16 {
	lo := uint16(b.Peek(addr))
	hi := uint16(b.Peek(addr + 1))
	return hi<<8 | lo
}

// Write stores v at addr.
func (b *Bus) Write(addr uint16, v byte) {
	switch {
	case addr < 0x2000:
		b.RAM.Write(addr%0x0800, v)
	case addr < 0x4000:
		b.PPU.writeRegister(addr%8, v)
	case addr == 0x4014:
		b.oamDMA(v)
	case addr <= 0x4017:
		// APU/IO register write: audio synthesis and controller strobing
		// are both out of scope; acknowledged and discarded.
	case addr < 0x8000:
		b.unmapped("write", addr)
	default:
		glog.Warningf("nes: write to PRG ROM at $%04X ignored", addr)
	}
}

// ReadWord reads a little-endian 16-bit value at addr.
func (b *Bus) ReadWord(addr uint16) uint16 {
	lo := uint16(b.Read(addr, false))
	hi := uint16(b.Read(addr+1, false))
	return hi<<8 | lo
}

func (b *Bus) readPRG(addr uint16) byte {
	off := int(addr - 0x8000)
	if len(b.PRG) == prgBankSize {
		off %= prgBankSize // NROM-128: $8000-$BFFF mirrors into $C000-$FFFF
	}
	if off >= len(b.PRG) {
		return 0
	}
	return b.PRG[off]
}

func (b *Bus) oamDMA(page byte) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.PPU.OAM[b.PPU.oamAddr] = b.Read(base+uint16(i), false)
		b.PPU.oamAddr++
	}
}

func (b *Bus) unmapped(op string, addr uint16) {
	if b.Strict {
		glog.Fatalf("nes: unmapped bus %s at $%04X", op, addr)
	}
	glog.Infof("nes: unmapped bus %s at $%04X ignored", op, addr)
}

// ppuShadow tracks only the CPU-visible side effects of the eight PPU
// registers ($2000-$2007): the vblank flag, the write-twice address
// latch and the buffered-read quirk of PPUDATA. It does not render
// anything; spec.md's Non-goals exclude scanline/sprite rendering.
type ppuShadow struct {
	CHR     []byte
	VRAM    [4096]byte // nametables, $2000-$3EFF; mirroring is caller-controlled
	palette [32]byte
	OAM     [256]byte
	ctrl    byte // $2000 PPUCTRL (write-only, shadowed for VRAM increment)
	mask    byte // $2001 PPUMASK
	status  byte // $2002 PPUSTATUS (bit7 vblank)
	oamAddr byte // $2003 OAMADDR
	addr    uint16
	latch   bool // write-twice latch for $2006 ($2005 writes are not handled)
	readBuf byte
}

const ppuStatusVblank = 1 << 7

func (p *ppuShadow) readRegister(reg uint16, readOnly bool) byte {
	switch reg {
	case 2: // PPUSTATUS
		v := p.status
		if !readOnly {
			p.status &^= ppuStatusVblank
			p.latch = false
		}
		return v
	case 4: // OAMDATA
		return p.OAM[p.oamAddr]
	case 7: // PPUDATA
		return p.readData(readOnly)
	default:
		return 0
	}
}

func (p *ppuShadow) writeRegister(reg uint16, v byte) {
	switch reg {
	case 0: // PPUCTRL
		p.ctrl = v
	case 1: // PPUMASK
		p.mask = v
	case 3: // OAMADDR
		p.oamAddr = v
	case 4: // OAMDATA
		p.OAM[p.oamAddr] = v
		p.oamAddr++
	case 6: // PPUADDR, high byte first
		if !p.latch {
			p.addr = p.addr&0x00FF | uint16(v)<<8
		} else {
			p.addr = p.addr&0xFF00 | uint16(v)
		}
		p.latch = !p.latch
	case 7: // PPUDATA
		p.writeData(v)
	}
}

func (p *ppuShadow) vramInc() uint16 {
	if p.ctrl&0x04 != 0 {
		return 32
	}
	return 1
}

// readData implements PPUDATA's buffered-read quirk: a read returns the
// value latched by the *previous* read, except for palette addresses
// ($3F00-$3FFF) which bypass the buffer and return immediately.
func (p *ppuShadow) readData(readOnly bool) byte {
	addr := p.addr % 0x4000
	if readOnly {
		if addr >= 0x3F00 {
			return p.readVRAM(addr)
		}
		return p.readBuf
	}
	var ret byte
	if addr >= 0x3F00 {
		ret = p.readVRAM(addr)
		p.readBuf = p.readVRAM(addr - 0x1000)
	} else {
		ret = p.readBuf
		p.readBuf = p.readVRAM(addr)
	}
	p.addr += p.vramInc()
	return ret
}

func (p *ppuShadow) writeData(v byte) {
	addr := p.addr % 0x4000
	p.writeVRAM(addr, v)
	p.addr += p.vramInc()
}

func (p *ppuShadow) readVRAM(addr uint16) byte {
	switch {
	case addr >= 0x3F00:
		return p.palette[paletteIndex(addr)]
	case addr >= 0x2000:
		return p.VRAM[(addr-0x2000)%4096]
	default:
		if int(addr) < len(p.CHR) {
			return p.CHR[addr]
		}
		return 0
	}
}

func (p *ppuShadow) writeVRAM(addr uint16, v byte) {
	switch {
	case addr >= 0x3F00:
		p.palette[paletteIndex(addr)] = v
	case addr >= 0x2000:
		p.VRAM[(addr-0x2000)%4096] = v
	default:
		if int(addr) < len(p.CHR) {
			p.CHR[addr] = v
		}
	}
}

// paletteIndex mirrors the four background-color "transparent" entries
// ($3F10/$3F14/$3F18/$3F1C) onto their universal-background counterparts,
// matching real PPU palette RAM addressing.
func paletteIndex(addr uint16) uint16 {
	i := (addr - 0x3F00) % 32
	if i >= 16 && i%4 == 0 {
		i -= 16
	}
	return i
}
