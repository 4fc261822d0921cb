package cpu

// Addressing modes. The "Penalty" variants add one cycle when
// indexing crosses a page boundary; their non-penalty counterparts are
// used by stores and read-modify-write instructions, which always pay
// the worst-case cycle count instead.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	modeImplicit = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteXPenalty
	modeAbsoluteY
	modeAbsoluteYPenalty
	modeIndirect
	modeIndirectX
	modeIndirectY
	modeIndirectYPenalty
)

type mnemonic uint8

const (
	opADC = iota
	opAND
	opASL
	opBCC
	opBCS
	opBEQ
	opBIT
	opBMI
	opBNE
	opBPL
	opBRK
	opBVC
	opBVS
	opCLC
	opCLD
	opCLI
	opCLV
	opCMP
	opCPX
	opCPY
	opDEC
	opDEX
	opDEY
	opEOR
	opINC
	opINX
	opINY
	opJMP
	opJSR
	opLDA
	opLDX
	opLDY
	opLSR
	opNOP
	opORA
	opPHA
	opPHP
	opPLA
	opPLP
	opROL
	opROR
	opRTI
	opRTS
	opSBC
	opSEC
	opSED
	opSEI
	opSTA
	opSTX
	opSTY
	opTAX
	opTAY
	opTSX
	opTXA
	opTXS
	opTYA
	// Undocumented opcodes NES software is known to rely on.
	opLAX
	opSAX
	opDCP
	opISB
	opSLO
	opRLA
	opSRE
	opRRA
)

type opcode struct {
	op     mnemonic
	mode   uint8
	bytes  uint8
	cycles uint8
}

// opcodeTable maps every one of the 256 possible opcode bytes to its
// instruction and addressing mode. Entries not set explicitly default
// to {opNOP, modeImplicit, 1, 2}, which is what real 6502s do for most
// unassigned bytes; the few undocumented opcodes NES games actually
// execute are listed individually below.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() map[uint8]opcode {
	t := make(map[uint8]opcode, 256)
	for i := 0; i < 256; i++ {
		t[uint8(i)] = opcode{opNOP, modeImplicit, 1, 2}
	}

	set := func(b uint8, op mnemonic, mode uint8, bytes, cycles uint8) {
		t[b] = opcode{op, mode, bytes, cycles}
	}

	// ADC
	set(0x69, opADC, modeImmediate, 2, 2)
	set(0x65, opADC, modeZeroPage, 2, 3)
	set(0x75, opADC, modeZeroPageX, 2, 4)
	set(0x6D, opADC, modeAbsolute, 3, 4)
	set(0x7D, opADC, modeAbsoluteXPenalty, 3, 4)
	set(0x79, opADC, modeAbsoluteYPenalty, 3, 4)
	set(0x61, opADC, modeIndirectX, 2, 6)
	set(0x71, opADC, modeIndirectYPenalty, 2, 5)

	// AND
	set(0x29, opAND, modeImmediate, 2, 2)
	set(0x25, opAND, modeZeroPage, 2, 3)
	set(0x35, opAND, modeZeroPageX, 2, 4)
	set(0x2D, opAND, modeAbsolute, 3, 4)
	set(0x3D, opAND, modeAbsoluteXPenalty, 3, 4)
	set(0x39, opAND, modeAbsoluteYPenalty, 3, 4)
	set(0x21, opAND, modeIndirectX, 2, 6)
	set(0x31, opAND, modeIndirectYPenalty, 2, 5)

	// ASL
	set(0x0A, opASL, modeAccumulator, 1, 2)
	set(0x06, opASL, modeZeroPage, 2, 5)
	set(0x16, opASL, modeZeroPageX, 2, 6)
	set(0x0E, opASL, modeAbsolute, 3, 6)
	set(0x1E, opASL, modeAbsoluteX, 3, 7)

	set(0x90, opBCC, modeRelative, 2, 2)
	set(0xB0, opBCS, modeRelative, 2, 2)
	set(0xF0, opBEQ, modeRelative, 2, 2)
	set(0x24, opBIT, modeZeroPage, 2, 3)
	set(0x2C, opBIT, modeAbsolute, 3, 4)
	set(0x30, opBMI, modeRelative, 2, 2)
	set(0xD0, opBNE, modeRelative, 2, 2)
	set(0x10, opBPL, modeRelative, 2, 2)
	set(0x00, opBRK, modeImplicit, 2, 7)
	set(0x50, opBVC, modeRelative, 2, 2)
	set(0x70, opBVS, modeRelative, 2, 2)

	set(0x18, opCLC, modeImplicit, 1, 2)
	set(0xD8, opCLD, modeImplicit, 1, 2)
	set(0x58, opCLI, modeImplicit, 1, 2)
	set(0xB8, opCLV, modeImplicit, 1, 2)

	// CMP
	set(0xC9, opCMP, modeImmediate, 2, 2)
	set(0xC5, opCMP, modeZeroPage, 2, 3)
	set(0xD5, opCMP, modeZeroPageX, 2, 4)
	set(0xCD, opCMP, modeAbsolute, 3, 4)
	set(0xDD, opCMP, modeAbsoluteXPenalty, 3, 4)
	set(0xD9, opCMP, modeAbsoluteYPenalty, 3, 4)
	set(0xC1, opCMP, modeIndirectX, 2, 6)
	set(0xD1, opCMP, modeIndirectYPenalty, 2, 5)

	set(0xE0, opCPX, modeImmediate, 2, 2)
	set(0xE4, opCPX, modeZeroPage, 2, 3)
	set(0xEC, opCPX, modeAbsolute, 3, 4)
	set(0xC0, opCPY, modeImmediate, 2, 2)
	set(0xC4, opCPY, modeZeroPage, 2, 3)
	set(0xCC, opCPY, modeAbsolute, 3, 4)

	set(0xC6, opDEC, modeZeroPage, 2, 5)
	set(0xD6, opDEC, modeZeroPageX, 2, 6)
	set(0xCE, opDEC, modeAbsolute, 3, 6)
	set(0xDE, opDEC, modeAbsoluteX, 3, 7)
	set(0xCA, opDEX, modeImplicit, 1, 2)
	set(0x88, opDEY, modeImplicit, 1, 2)

	// EOR
	set(0x49, opEOR, modeImmediate, 2, 2)
	set(0x45, opEOR, modeZeroPage, 2, 3)
	set(0x55, opEOR, modeZeroPageX, 2, 4)
	set(0x4D, opEOR, modeAbsolute, 3, 4)
	set(0x5D, opEOR, modeAbsoluteXPenalty, 3, 4)
	set(0x59, opEOR, modeAbsoluteYPenalty, 3, 4)
	set(0x41, opEOR, modeIndirectX, 2, 6)
	set(0x51, opEOR, modeIndirectYPenalty, 2, 5)

	set(0xE6, opINC, modeZeroPage, 2, 5)
	set(0xF6, opINC, modeZeroPageX, 2, 6)
	set(0xEE, opINC, modeAbsolute, 3, 6)
	set(0xFE, opINC, modeAbsoluteX, 3, 7)
	set(0xE8, opINX, modeImplicit, 1, 2)
	set(0xC8, opINY, modeImplicit, 1, 2)

	set(0x4C, opJMP, modeAbsolute, 3, 3)
	set(0x6C, opJMP, modeIndirect, 3, 5)
	set(0x20, opJSR, modeAbsolute, 3, 6)

	// LDA
	set(0xA9, opLDA, modeImmediate, 2, 2)
	set(0xA5, opLDA, modeZeroPage, 2, 3)
	set(0xB5, opLDA, modeZeroPageX, 2, 4)
	set(0xAD, opLDA, modeAbsolute, 3, 4)
	set(0xBD, opLDA, modeAbsoluteXPenalty, 3, 4)
	set(0xB9, opLDA, modeAbsoluteYPenalty, 3, 4)
	set(0xA1, opLDA, modeIndirectX, 2, 6)
	set(0xB1, opLDA, modeIndirectYPenalty, 2, 5)

	set(0xA2, opLDX, modeImmediate, 2, 2)
	set(0xA6, opLDX, modeZeroPage, 2, 3)
	set(0xB6, opLDX, modeZeroPageY, 2, 4)
	set(0xAE, opLDX, modeAbsolute, 3, 4)
	set(0xBE, opLDX, modeAbsoluteYPenalty, 3, 4)

	set(0xA0, opLDY, modeImmediate, 2, 2)
	set(0xA4, opLDY, modeZeroPage, 2, 3)
	set(0xB4, opLDY, modeZeroPageX, 2, 4)
	set(0xAC, opLDY, modeAbsolute, 3, 4)
	set(0xBC, opLDY, modeAbsoluteXPenalty, 3, 4)

	set(0x4A, opLSR, modeAccumulator, 1, 2)
	set(0x46, opLSR, modeZeroPage, 2, 5)
	set(0x56, opLSR, modeZeroPageX, 2, 6)
	set(0x4E, opLSR, modeAbsolute, 3, 6)
	set(0x5E, opLSR, modeAbsoluteX, 3, 7)

	set(0xEA, opNOP, modeImplicit, 1, 2)

	// ORA
	set(0x09, opORA, modeImmediate, 2, 2)
	set(0x05, opORA, modeZeroPage, 2, 3)
	set(0x15, opORA, modeZeroPageX, 2, 4)
	set(0x0D, opORA, modeAbsolute, 3, 4)
	set(0x1D, opORA, modeAbsoluteXPenalty, 3, 4)
	set(0x19, opORA, modeAbsoluteYPenalty, 3, 4)
	set(0x01, opORA, modeIndirectX, 2, 6)
	set(0x11, opORA, modeIndirectYPenalty, 2, 5)

	set(0x48, opPHA, modeImplicit, 1, 3)
	set(0x08, opPHP, modeImplicit, 1, 3)
	set(0x68, opPLA, modeImplicit, 1, 4)
	set(0x28, opPLP, modeImplicit, 1, 4)

	set(0x2A, opROL, modeAccumulator, 1, 2)
	set(0x26, opROL, modeZeroPage, 2, 5)
	set(0x36, opROL, modeZeroPageX, 2, 6)
	set(0x2E, opROL, modeAbsolute, 3, 6)
	set(0x3E, opROL, modeAbsoluteX, 3, 7)

	set(0x6A, opROR, modeAccumulator, 1, 2)
	set(0x66, opROR, modeZeroPage, 2, 5)
	set(0x76, opROR, modeZeroPageX, 2, 6)
	set(0x6E, opROR, modeAbsolute, 3, 6)
	set(0x7E, opROR, modeAbsoluteX, 3, 7)

	set(0x40, opRTI, modeImplicit, 1, 6)
	set(0x60, opRTS, modeImplicit, 1, 6)

	// SBC, including the $EB unofficial immediate alias.
	set(0xE9, opSBC, modeImmediate, 2, 2)
	set(0xEB, opSBC, modeImmediate, 2, 2)
	set(0xE5, opSBC, modeZeroPage, 2, 3)
	set(0xF5, opSBC, modeZeroPageX, 2, 4)
	set(0xED, opSBC, modeAbsolute, 3, 4)
	set(0xFD, opSBC, modeAbsoluteXPenalty, 3, 4)
	set(0xF9, opSBC, modeAbsoluteYPenalty, 3, 4)
	set(0xE1, opSBC, modeIndirectX, 2, 6)
	set(0xF1, opSBC, modeIndirectYPenalty, 2, 5)

	set(0x38, opSEC, modeImplicit, 1, 2)
	set(0xF8, opSED, modeImplicit, 1, 2)
	set(0x78, opSEI, modeImplicit, 1, 2)

	set(0x85, opSTA, modeZeroPage, 2, 3)
	set(0x95, opSTA, modeZeroPageX, 2, 4)
	set(0x8D, opSTA, modeAbsolute, 3, 4)
	set(0x9D, opSTA, modeAbsoluteX, 3, 5)
	set(0x99, opSTA, modeAbsoluteY, 3, 5)
	set(0x81, opSTA, modeIndirectX, 2, 6)
	set(0x91, opSTA, modeIndirectY, 2, 6)

	set(0x86, opSTX, modeZeroPage, 2, 3)
	set(0x96, opSTX, modeZeroPageY, 2, 4)
	set(0x8E, opSTX, modeAbsolute, 3, 4)
	set(0x84, opSTY, modeZeroPage, 2, 3)
	set(0x94, opSTY, modeZeroPageX, 2, 4)
	set(0x8C, opSTY, modeAbsolute, 3, 4)

	set(0xAA, opTAX, modeImplicit, 1, 2)
	set(0xA8, opTAY, modeImplicit, 1, 2)
	set(0xBA, opTSX, modeImplicit, 1, 2)
	set(0x8A, opTXA, modeImplicit, 1, 2)
	set(0x9A, opTXS, modeImplicit, 1, 2)
	set(0x98, opTYA, modeImplicit, 1, 2)

	// Unofficial NOPs that still consume their addressing mode's bus
	// cycles.
	for _, b := range []uint8{0x1A, 0x3A, 0x5A, 0x7A, 0xDA, 0xFA} {
		set(b, opNOP, modeImplicit, 1, 2)
	}
	for _, b := range []uint8{0x80, 0x82, 0x89, 0xC2, 0xE2} {
		set(b, opNOP, modeImmediate, 2, 2)
	}
	for _, b := range []uint8{0x04, 0x44, 0x64} {
		set(b, opNOP, modeZeroPage, 2, 3)
	}
	for _, b := range []uint8{0x14, 0x34, 0x54, 0x74, 0xD4, 0xF4} {
		set(b, opNOP, modeZeroPageX, 2, 4)
	}
	set(0x0C, opNOP, modeAbsolute, 3, 4)
	for _, b := range []uint8{0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC} {
		set(b, opNOP, modeAbsoluteXPenalty, 3, 4)
	}

	// LAX
	set(0xA3, opLAX, modeIndirectX, 2, 6)
	set(0xA7, opLAX, modeZeroPage, 2, 3)
	set(0xAF, opLAX, modeAbsolute, 3, 4)
	set(0xB3, opLAX, modeIndirectYPenalty, 2, 5)
	set(0xB7, opLAX, modeZeroPageY, 2, 4)
	set(0xBF, opLAX, modeAbsoluteYPenalty, 3, 4)

	// SAX
	set(0x83, opSAX, modeIndirectX, 2, 6)
	set(0x87, opSAX, modeZeroPage, 2, 3)
	set(0x8F, opSAX, modeAbsolute, 3, 4)
	set(0x97, opSAX, modeZeroPageY, 2, 4)

	// DCP/ISB/SLO/RLA/SRE/RRA: read-modify-write family, fixed
	// (non-penalty) cycle counts on the indexed addressing modes.
	type rmwFamily struct {
		op                                     mnemonic
		indX, zp, abs, indY, zpX, absY, absX    uint8
	}
	for _, f := range []rmwFamily{
		{opDCP, 0xC3, 0xC7, 0xCF, 0xD3, 0xD7, 0xDB, 0xDF},
		{opISB, 0xE3, 0xE7, 0xEF, 0xF3, 0xF7, 0xFB, 0xFF},
		{opSLO, 0x03, 0x07, 0x0F, 0x13, 0x17, 0x1B, 0x1F},
		{opRLA, 0x23, 0x27, 0x2F, 0x33, 0x37, 0x3B, 0x3F},
		{opSRE, 0x43, 0x47, 0x4F, 0x53, 0x57, 0x5B, 0x5F},
		{opRRA, 0x63, 0x67, 0x6F, 0x73, 0x77, 0x7B, 0x7F},
	} {
		set(f.indX, f.op, modeIndirectX, 2, 8)
		set(f.zp, f.op, modeZeroPage, 2, 5)
		set(f.abs, f.op, modeAbsolute, 3, 6)
		set(f.indY, f.op, modeIndirectY, 2, 8)
		set(f.zpX, f.op, modeZeroPageX, 2, 6)
		set(f.absY, f.op, modeAbsoluteY, 3, 7)
		set(f.absX, f.op, modeAbsoluteX, 3, 7)
	}

	return t
}
