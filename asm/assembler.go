package asm

import (
	"github.com/golang/glog"

	"github.com/nesforge/nes65/internal/errs"
	"github.com/nesforge/nes65/nes"
)

const bankSize = 8 * 1024 // .bank indexes 8KiB units across PRG then CHR

// Assembler implements nes.Assembler: it is stateless and safe to reuse
// across files, each call to Assemble starting a fresh two-pass run.
type Assembler struct{}

// New returns a ready-to-use Assembler.
func New() *Assembler { return &Assembler{} }

// Assemble lexes, parses and two-pass assembles source into an iNES image
// plus its resolved label table.
func (a *Assembler) Assemble(source []byte) (*nes.Image, nes.SymbolTable, error) {
	return Assemble(source)
}

// Assemble is the package-level convenience entry point wrapping
// Lex -> Parse -> the logical assembler's two passes.
func Assemble(source []byte) (*nes.Image, nes.SymbolTable, error) {
	toks, err := Lex(string(source))
	if err != nil {
		return nil, nil, err
	}
	stmts, err := Parse(toks)
	if err != nil {
		return nil, nil, err
	}
	return assembleStatements(stmts)
}

type refKind byte

const (
	refAbsolute refKind = iota
	refRelative
)

type unresolvedRef struct {
	bank        int
	bankOffset  uint16
	width       int // 1 or 2 bytes
	kind        refKind
	label       string
	operandAddr uint16 // CPU-visible address of the first operand byte
	line        int
}

// logicalAssembler carries pass-1 state (spec.md §4.5): current address,
// current bank, the label table, unresolved references, header fields and
// the bank-indexed byte buffer, which is allocated lazily once both PRG
// and CHR counts are known.
type logicalAssembler struct {
	addr uint16
	bank int

	labels     nes.SymbolTable
	unresolved []unresolvedRef

	buf []byte

	prgSet, chrSet, mapSet, mirSet bool
	prgBanks, chrBanks             uint16
	mapper                         byte
	mirroring                      nes.Mirroring
}

func assembleStatements(stmts []Statement) (*nes.Image, nes.SymbolTable, error) {
	la := &logicalAssembler{labels: nes.SymbolTable{}}

	for _, stmt := range stmts {
		var err error
		switch stmt.Kind {
		case StmtLabel:
			err = la.defineLabel(stmt)
		case StmtDirective:
			err = la.applyDirective(stmt)
		case StmtInstruction:
			err = la.emitInstruction(stmt)
		}
		if err != nil {
			return nil, nil, err
		}
	}

	if !la.prgSet || !la.chrSet || !la.mapSet || !la.mirSet {
		return nil, nil, errs.Atf(-1, "asm/assembler.go:assembleStatements",
			"incomplete header: inesprg=%v ineschr=%v inesmap=%v inesmir=%v set",
			la.prgSet, la.chrSet, la.mapSet, la.mirSet)
	}

	if err := la.resolveReferences(); err != nil {
		return nil, nil, err
	}

	prgLen := int(la.prgBanks) * 16 * 1024
	chrLen := int(la.chrBanks) * 8 * 1024
	img := &nes.Image{
		PRG:       make([]byte, prgLen),
		CHR:       make([]byte, chrLen),
		Mapper:    la.mapper,
		Mirroring: la.mirroring,
	}
	copy(img.PRG, la.buf[:prgLen])
	if chrLen > 0 {
		copy(img.CHR, la.buf[prgLen:prgLen+chrLen])
	}
	return img, la.labels, nil
}

func (la *logicalAssembler) defineLabel(stmt Statement) error {
	if _, exists := la.labels[stmt.Label]; exists {
		return errs.Atf(stmt.Line, "asm/assembler.go:defineLabel", "label %q redefined", stmt.Label)
	}
	la.labels[stmt.Label] = la.addr
	return nil
}

func (la *logicalAssembler) applyDirective(stmt Statement) error {
	d := stmt.Directive
	switch d.Kind {
	case DirInesPRG:
		la.prgBanks = d.Arg
		la.prgSet = true
		la.maybeAllocate()
	case DirInesCHR:
		la.chrBanks = d.Arg
		la.chrSet = true
		la.maybeAllocate()
	case DirInesMapper:
		la.mapper = byte(d.Arg)
		la.mapSet = true
	case DirInesMirror:
		if d.Arg == 0 {
			la.mirroring = nes.MirrorHorizontal
		} else {
			la.mirroring = nes.MirrorVertical
		}
		la.mirSet = true
	case DirBank:
		la.bank = int(d.Arg)
	case DirOrg:
		la.addr = d.Arg
	case DirDS:
		la.addr += d.Arg
	case DirDB:
		if err := la.writeByte(byte(d.Arg)); err != nil {
			return errs.At(stmt.Line, "asm/assembler.go:applyDirective", err)
		}
	}
	return nil
}

func (la *logicalAssembler) maybeAllocate() {
	if la.buf != nil || !la.prgSet || !la.chrSet {
		return
	}
	// The assembler's own working buffer is bank-indexed in 8KiB units
	// across PRG then CHR (spec.md §3 ".bank N"), distinct from the final
	// image's PRG-bank unit of 16KiB — a 16KiB PRG bank spans two 8KiB
	// assembler bank indices.
	prgChunks := int(la.prgBanks) * 2
	chrChunks := int(la.chrBanks)
	la.buf = make([]byte, (prgChunks+chrChunks)*bankSize)
}

// writeByte implements the bank writer (spec.md §4.5): linear offset is
// bank*8KiB + (address & 0x1FFF), and advances the current address by one.
func (la *logicalAssembler) writeByte(v byte) error {
	if la.buf == nil {
		return errBanksNotAllocated
	}
	off := la.bank*bankSize + int(la.addr&0x1FFF)
	if off < 0 || off >= len(la.buf) {
		return errBankOutOfRange
	}
	la.buf[off] = v
	la.addr++
	return nil
}

func (la *logicalAssembler) emitInstruction(stmt Statement) error {
	opcode, ok := nes.Encode(stmt.Mnemonic, stmt.Mode)
	if !ok {
		return errs.Atf(stmt.Line, "asm/assembler.go:emitInstruction", "no encoding for %s in mode %v", stmt.Mnemonic, stmt.Mode)
	}
	if err := la.writeByte(opcode); err != nil {
		return errs.At(stmt.Line, "asm/assembler.go:emitInstruction", err)
	}

	size := nes.Lookup(opcode).Size()
	operandLen := int(size) - 1

	switch stmt.Operand.Kind {
	case OperandNone:
		if operandLen != 0 {
			return errs.Atf(stmt.Line, "asm/assembler.go:emitInstruction", "%s expects %d operand bytes, got none", stmt.Mnemonic, operandLen)
		}
	case OperandU8:
		if operandLen != 1 {
			return errs.Atf(stmt.Line, "asm/assembler.go:emitInstruction", "%s encoded length mismatch for 8-bit operand", stmt.Mnemonic)
		}
		if err := la.writeByte(byte(stmt.Operand.Value)); err != nil {
			return errs.At(stmt.Line, "asm/assembler.go:emitInstruction", err)
		}
	case OperandU16:
		if operandLen != 2 {
			return errs.Atf(stmt.Line, "asm/assembler.go:emitInstruction", "%s encoded length mismatch for 16-bit operand", stmt.Mnemonic)
		}
		if err := la.writeByte(byte(stmt.Operand.Value)); err != nil {
			return errs.At(stmt.Line, "asm/assembler.go:emitInstruction", err)
		}
		if err := la.writeByte(byte(stmt.Operand.Value >> 8)); err != nil {
			return errs.At(stmt.Line, "asm/assembler.go:emitInstruction", err)
		}
	case OperandLabel:
		bank, bankOffset := la.bank, la.addr&0x1FFF
		kind := refAbsolute
		if stmt.Mode == nes.Relative {
			kind = refRelative
		}
		la.unresolved = append(la.unresolved, unresolvedRef{
			bank: bank, bankOffset: bankOffset, width: operandLen,
			kind: kind, label: stmt.Operand.Label, operandAddr: la.addr, line: stmt.Line,
		})
		for i := 0; i < operandLen; i++ {
			if err := la.writeByte(0); err != nil {
				return errs.At(stmt.Line, "asm/assembler.go:emitInstruction", err)
			}
		}
	}

	return nil
}

func (la *logicalAssembler) resolveReferences() error {
	for _, ref := range la.unresolved {
		target, ok := la.labels[ref.label]
		if !ok {
			return errs.Atf(ref.line, "asm/assembler.go:resolveReferences", "undefined label %q", ref.label)
		}

		off := ref.bank*bankSize + int(ref.bankOffset)
		if off < 0 || off+ref.width > len(la.buf) {
			return errs.Atf(ref.line, "asm/assembler.go:resolveReferences", "label patch for %q out of bank range", ref.label)
		}

		switch ref.kind {
		case refRelative:
			delta := int32(target) - int32(ref.operandAddr+1)
			if delta < -128 || delta > 127 {
				return errs.Atf(ref.line, "asm/assembler.go:resolveReferences", "branch to %q is out of range (%d bytes)", ref.label, delta)
			}
			la.buf[off] = byte(int8(delta))
		case refAbsolute:
			switch ref.width {
			case 1:
				la.buf[off] = byte(target)
			case 2:
				la.buf[off] = byte(target)
				la.buf[off+1] = byte(target >> 8)
			}
		}
	}
	if len(la.unresolved) > 0 {
		glog.Infof("asm: resolved %d label reference(s)", len(la.unresolved))
	}
	return nil
}

var (
	errBanksNotAllocated = bankError("write before PRG/CHR banks were declared")
	errBankOutOfRange    = bankError("bank write address out of declared bank range")
)

type bankError string

func (e bankError) Error() string { return string(e) }
