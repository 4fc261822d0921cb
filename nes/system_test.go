package nes

import (
	"testing"

	"github.com/nescore/gintendo/cpu"
	"github.com/nescore/gintendo/mapper"
	"github.com/nescore/gintendo/ppu"
)

func newTestSystem() *System {
	m := mapper.NewMock(mapper.MirrorVertical)
	s := New()
	s.cart = m
	s.cpu = cpu.New()
	s.ppu = ppu.New(m)
	return s
}

func TestWRAMMirroring(t *testing.T) {
	s := newTestSystem()
	for i := 0; i < 10; i++ {
		s.Write(uint16(i), uint8(i+1))
	}

	for _, base := range []uint16{0x0000, 0x0800, 0x1000, 0x1800} {
		for i := 0; i < 10; i++ {
			if got := s.Read(base + uint16(i)); got != uint8(i+1) {
				t.Errorf("wram[%#04x] = %#02x, want %#02x", base+uint16(i), got, i+1)
			}
		}
	}
}

func TestPPURegisterMirroring(t *testing.T) {
	s := newTestSystem()

	// $2000-$2007 repeat every 8 bytes through $3FFF; $3FFB mirrors
	// $2003 (OAMADDR) and $3FFC mirrors $2004 (OAMDATA).
	s.Write(0x3FFB, 0x10) // OAMADDR = 0x10
	s.Write(0x3FFC, 0x77) // OAMDATA <- 0x77 at 0x10, OAMADDR increments to 0x11

	s.Write(0x2003, 0x10) // rewind OAMADDR through the un-mirrored address
	if got := s.ppu.ReadRegister(ppu.RegOAMData); got != 0x77 {
		t.Errorf("OAMDATA through mirrored write = %#x, want 0x77", got)
	}
}

func TestControllerPortsStrobeTogether(t *testing.T) {
	s := newTestSystem()
	s.port1.SetButtons(1) // A
	s.port2.SetButtons(2) // B

	s.Write(0x4016, 1)
	s.Write(0x4016, 0)

	if got := s.Read(0x4016) &^ 0x40; got != 1 {
		t.Errorf("port1 first read = %d, want 1 (A pressed)", got)
	}
	if got := s.Read(0x4017) &^ 0x40; got != 0 {
		t.Errorf("port2 first read = %d, want 0 (A not pressed on port2)", got)
	}
}

func TestOAMDMAChargesStallCyclesByParity(t *testing.T) {
	s := newTestSystem()

	s.Write(0x4014, 0x00) // cpu.Cycles() is 0 (even) before any Step
	if s.dmaStallCycles != 513 {
		t.Errorf("stall on even cycle = %d, want 513", s.dmaStallCycles)
	}
}

func TestStepAdvancesPPUThreeDotsPerCPUCycle(t *testing.T) {
	s := newTestSystem()
	s.PowerOn()
	s.cpu.SetPC(0x0000)
	s.wram[0] = 0xEA // NOP, 2 cycles

	cycles := s.Step()
	if cycles != 2 {
		t.Fatalf("Step() cycles = %d, want 2", cycles)
	}

	// The NOP left the PPU 6 dots in. A JMP $0001 loop then costs 3
	// cycles (9 dots) per Step; a frame with rendering off is
	// 262*341 = 89342 dots, so Step 9927 of the loop (6+89343 dots) is
	// the first to complete it.
	s.wram[1], s.wram[2], s.wram[3] = 0x4C, 0x01, 0x00
	for i := 0; i < 9926; i++ {
		s.Step()
	}
	if got := s.ppu.Frame(); got != 0 {
		t.Fatalf("frames after 6+9926*9 dots = %d, want 0", got)
	}
	s.Step()
	if got := s.ppu.Frame(); got != 1 {
		t.Errorf("frames after 6+9927*9 dots = %d, want 1", got)
	}
}

func TestNMIForwardedFromPPU(t *testing.T) {
	s := newTestSystem()
	if s.NMIPending() {
		t.Fatalf("NMI should not be pending before vblank")
	}
	s.ClearNMI() // must be a harmless no-op
}
