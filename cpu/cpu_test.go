package cpu

import "testing"

type testBus struct {
	mem [0x10000]byte
	nmi bool
	irq bool
}

func (b *testBus) Read(addr uint16) uint8       { return b.mem[addr] }
func (b *testBus) Write(addr uint16, val uint8) { b.mem[addr] = val }
func (b *testBus) NMIPending() bool             { return b.nmi }
func (b *testBus) ClearNMI()                    { b.nmi = false }
func (b *testBus) IRQPending() bool             { return b.irq }

func newTestCPU() (*CPU, *testBus) {
	c := New()
	b := &testBus{}
	c.PowerOn(b)
	return c, b
}

func TestPowerOnState(t *testing.T) {
	c, b := newTestCPU()
	if c.a != 0 || c.x != 0 || c.y != 0 {
		t.Errorf("A/X/Y = %d/%d/%d, want 0/0/0", c.a, c.x, c.y)
	}
	if c.sp != 0xFD {
		t.Errorf("SP = %#x, want 0xFD", c.sp)
	}
	if b.mem[0x4017] != 0 || b.mem[0x4015] != 0 {
		t.Errorf("PowerOn did not silence APU registers")
	}
}

func TestResetVector(t *testing.T) {
	c, b := newTestCPU()
	b.mem[0xFFFC] = 0x00
	b.mem[0xFFFD] = 0x80
	c.Reset(b)
	if c.pc != 0x8000 {
		t.Errorf("PC after reset = %#x, want 0x8000", c.pc)
	}
	if !c.flag(FlagInterruptDisable) {
		t.Errorf("reset did not set the interrupt-disable flag")
	}
}

func TestADCCyclesAndPageCross(t *testing.T) {
	cases := []struct {
		name       string
		op         uint8
		x, y       uint8
		arg1, arg2 uint8
		wantCycles uint64
	}{
		{"immediate", 0x69, 0, 0, 0x01, 0x00, 2},
		{"absolute,x no cross", 0x7D, 1, 0, 0x00, 0x00, 4},
		{"absolute,x crossed", 0x7D, 0x01, 0, 0xFF, 0x00, 5},
		{"absolute,y crossed", 0x79, 0, 0x01, 0xFF, 0x00, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, b := newTestCPU()
			c.x, c.y = tc.x, tc.y
			c.SetPC(0x0200)
			b.mem[0x0200] = tc.op
			b.mem[0x0201] = tc.arg1
			b.mem[0x0202] = tc.arg2
			got := c.Step(b)
			if got != tc.wantCycles {
				t.Errorf("Step() cycles = %d, want %d", got, tc.wantCycles)
			}
		})
	}
}

func TestADCCarryAndOverflow(t *testing.T) {
	c, b := newTestCPU()
	c.a = 0x50
	c.SetPC(0x0200)
	b.mem[0x0200] = 0x69 // ADC immediate
	b.mem[0x0201] = 0x50
	c.Step(b)

	if c.a != 0xA0 {
		t.Errorf("A = %#x, want 0xA0", c.a)
	}
	if !c.flag(FlagOverflow) {
		t.Errorf("overflow flag not set for 0x50+0x50")
	}
	if c.flag(FlagCarry) {
		t.Errorf("carry flag unexpectedly set for 0x50+0x50")
	}
}

func TestSBCBorrow(t *testing.T) {
	c, b := newTestCPU()
	c.a = 0x00
	c.status |= FlagCarry // no borrow going in
	c.SetPC(0x0200)
	b.mem[0x0200] = 0xE9 // SBC immediate
	b.mem[0x0201] = 0x01
	c.Step(b)

	if c.a != 0xFF {
		t.Errorf("A = %#x, want 0xFF", c.a)
	}
	if c.flag(FlagCarry) {
		t.Errorf("carry flag set, want clear (borrow occurred)")
	}
}

func TestPushPullStatusRoundTrip(t *testing.T) {
	c, b := newTestCPU()
	c.status = FlagCarry | FlagZero | FlagUnused
	c.SetPC(0x0200)
	b.mem[0x0200] = 0x08 // PHP
	c.Step(b)
	b.mem[0x0201] = 0x28 // PLP
	c.Step(b)

	if c.status&(FlagCarry|FlagZero) != (FlagCarry | FlagZero) {
		t.Errorf("status after PHP/PLP = %08b, want carry+zero set", c.status)
	}
}

func TestJSRThenRTSRestoresPC(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0x0200] = 0x20 // JSR
	b.mem[0x0201] = 0x00
	b.mem[0x0202] = 0x03
	c.Step(b)
	if c.pc != 0x0300 {
		t.Fatalf("PC after JSR = %#x, want 0x0300", c.pc)
	}

	b.mem[0x0300] = 0x60 // RTS
	c.Step(b)
	if c.pc != 0x0203 {
		t.Errorf("PC after RTS = %#x, want 0x0203", c.pc)
	}
}

func TestBRKPushesPCAndStatusThenLoadsIRQVector(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0xFFFE] = 0x00
	b.mem[0xFFFF] = 0x90
	b.mem[0x0200] = 0x00 // BRK
	c.Step(b)

	if c.pc != 0x9000 {
		t.Errorf("PC after BRK = %#x, want 0x9000", c.pc)
	}
	if !c.flag(FlagInterruptDisable) {
		t.Errorf("BRK did not set the interrupt-disable flag")
	}
}

func TestNMIServicedBeforeNextInstruction(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0xFFFA] = 0x00
	b.mem[0xFFFB] = 0xA0
	b.nmi = true

	cycles := c.Step(b)
	if cycles != 7 {
		t.Fatalf("NMI service cycles = %d, want 7", cycles)
	}
	if c.pc != 0xA000 {
		t.Errorf("PC after NMI = %#x, want 0xA000", c.pc)
	}
	if b.nmi {
		t.Errorf("NMI line was not cleared after servicing")
	}
}

func TestISBIncrementsThenSubtracts(t *testing.T) {
	c, b := newTestCPU()
	c.a = 0x10
	c.status |= FlagCarry
	c.SetPC(0x0200)
	b.mem[0x0200] = 0xE7 // ISB zero page
	b.mem[0x0201] = 0x10
	b.mem[0x0010] = 0x00 // becomes 0x01 after increment, then A -= 1

	c.Step(b)

	if got := b.mem[0x0010]; got != 0x01 {
		t.Errorf("memory after ISB = %#x, want 0x01", got)
	}
	if c.a != 0x0F {
		t.Errorf("A after ISB = %#x, want 0x0F", c.a)
	}
}

func TestLAXLoadsBothAAndX(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0200)
	b.mem[0x0200] = 0xA7 // LAX zero page
	b.mem[0x0201] = 0x20
	b.mem[0x0020] = 0x77

	c.Step(b)

	if c.a != 0x77 || c.x != 0x77 {
		t.Errorf("A/X after LAX = %#x/%#x, want 0x77/0x77", c.a, c.x)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, b := newTestCPU()
	c.SetPC(0x0400)
	b.mem[0x0400] = 0x6C // JMP (indirect)
	b.mem[0x0401] = 0xFF
	b.mem[0x0402] = 0x02 // pointer = 0x02FF
	b.mem[0x02FF] = 0x34 // low byte of target
	b.mem[0x0300] = 0x12 // correct (unwrapped) high byte, should NOT be used
	b.mem[0x0200] = 0x56 // wrapped high byte, read from 0x0200 not 0x0300

	c.Step(b)

	want := uint16(0x5634)
	if c.pc != want {
		t.Errorf("PC after indirect JMP = %#x, want %#x (page-wrap bug)", c.pc, want)
	}
}
