// Package nes wires the CPU, PPU, cartridge mapper and controller
// ports together into the shared address space each chip reads and
// writes.
// https://www.nesdev.org/wiki/CPU_memory_map
package nes

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/nescore/gintendo/controller"
	"github.com/nescore/gintendo/cpu"
	"github.com/nescore/gintendo/mapper"
	"github.com/nescore/gintendo/ppu"
	"github.com/nescore/gintendo/rom"
)

const (
	wramSize  = 0x0800
	wramLimit = 0x1FFF

	ppuRegLimit = 0x3FFF

	ctrlPort1 = 0x4016
	ctrlPort2 = 0x4017
	oamDMA    = 0x4014

	apuIOLimit = 0x4017
)

// System is one assembled NES: the CPU and PPU ticking against a
// cartridge through the memory map they both share.
type System struct {
	cpu *cpu.CPU
	ppu *ppu.PPU
	cart mapper.Mapper

	wram [wramSize]uint8

	port1, port2 controller.Port

	// dmaStallCycles counts the CPU cycles an in-flight OAMDMA still
	// owes; Step folds them into the cycle count of the instruction
	// that wrote $4014 so the PPU keeps ticking 3 dots per CPU cycle
	// throughout.
	dmaStallCycles uint64
}

func New() *System {
	return &System{}
}

// InsertCartridge parses a ROM image and builds the mapper it
// requires, replacing anything previously loaded.
func (s *System) InsertCartridge(data []byte) error {
	r, err := rom.Parse(data)
	if err != nil {
		return fmt.Errorf("nes: parsing ROM: %w", err)
	}
	m, err := mapper.Get(r)
	if err != nil {
		return fmt.Errorf("nes: selecting mapper: %w", err)
	}

	s.cart = m
	s.cpu = cpu.New()
	s.ppu = ppu.New(m)
	glog.V(1).Infof("nes: loaded mapper %d, mirroring %v", m.Number(), m.Mirroring())
	return nil
}

// PowerOn brings up CPU and PPU state the way real hardware does at
// cold boot. InsertCartridge must have been called first.
func (s *System) PowerOn() {
	s.cpu.PowerOn(s)
	s.ppu.PowerOn()
}

func (s *System) Reset() {
	s.cpu.Reset(s)
	s.ppu.Reset()
}

// Port1 and Port2 expose the standard controller ports for a
// presenter to feed input into.
func (s *System) Port1() *controller.Port { return &s.port1 }
func (s *System) Port2() *controller.Port { return &s.port2 }

// Buffer returns the most recently rendered frame as NES palette
// indices; ppu.SystemPalette maps each byte to RGB.
func (s *System) Buffer() []uint8 { return s.ppu.Buffer() }

// Step runs one CPU step (either servicing a pending interrupt or
// executing exactly one instruction) and the three PPU dots per CPU
// cycle that step took, returning the number of CPU cycles consumed.
func (s *System) Step() uint64 {
	cycles := s.cpu.Step(s)
	if s.dmaStallCycles > 0 {
		stall := s.dmaStallCycles
		s.dmaStallCycles = 0
		cycles += stall
	}
	for i := uint64(0); i < cycles*3; i++ {
		s.ppu.Step()
	}
	return cycles
}

// RunFrame steps the system until the PPU completes a frame.
func (s *System) RunFrame() {
	target := s.ppu.Frame() + 1
	for s.ppu.Frame() < target {
		s.Step()
	}
}

// Read implements cpu.Bus.
func (s *System) Read(addr uint16) uint8 {
	switch {
	case addr <= wramLimit:
		return s.wram[addr&0x07FF]
	case addr <= ppuRegLimit:
		return s.ppu.ReadRegister(0x2000 + addr&0x0007)
	case addr == ctrlPort1:
		return s.port1.Read()
	case addr == ctrlPort2:
		return s.port2.Read()
	case addr <= apuIOLimit:
		return 0 // APU registers are not emulated; open bus
	case addr >= 0x8000:
		return s.cart.PrgRead(addr - 0x8000)
	}
	return 0
}

// Write implements cpu.Bus.
func (s *System) Write(addr uint16, val uint8) {
	switch {
	case addr <= wramLimit:
		s.wram[addr&0x07FF] = val
	case addr <= ppuRegLimit:
		s.ppu.WriteRegister(0x2000+addr&0x0007, val)
	case addr == oamDMA:
		s.runOAMDMA(val)
	case addr == ctrlPort1:
		// Writing $4016 strobes both controller shift registers at
		// once; $4017 has no write-side effect here since the frame
		// counter it shares with real hardware isn't emulated.
		s.port1.Write(val)
		s.port2.Write(val)
	case addr <= apuIOLimit:
		// Unemulated APU registers.
	case addr >= 0x8000:
		s.cart.PrgWrite(addr-0x8000, val)
	}
}

// runOAMDMA copies the 256-byte page starting at val*0x100 into OAM
// and charges the CPU the stall real hardware pays for it: 513 cycles,
// or 514 when it lands on an odd CPU cycle.
// https://www.nesdev.org/wiki/DMA#OAM_DMA
func (s *System) runOAMDMA(page uint8) {
	var buf [256]uint8
	base := uint16(page) << 8
	for i := range buf {
		buf[i] = s.Read(base + uint16(i))
	}
	s.ppu.WriteOAMDMA(buf)

	stall := uint64(513)
	if s.cpu.Cycles()%2 != 0 {
		stall = 514
	}
	s.dmaStallCycles += stall
}

// NMIPending implements cpu.Bus by forwarding the PPU's vblank NMI
// line.
func (s *System) NMIPending() bool { return s.ppu.NMIPending() }
func (s *System) ClearNMI()        { s.ppu.ClearNMI() }

// IRQPending implements cpu.Bus. Mapper 0 carts never raise IRQ.
func (s *System) IRQPending() bool { return false }
