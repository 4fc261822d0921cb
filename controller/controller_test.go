package controller

import "testing"

func TestReadShiftsOutButtons(t *testing.T) {
	var p Port
	p.SetButtons(A | Start | Right)
	p.Write(1)
	p.Write(0) // falling edge latches for shift-out

	want := []uint8{1, 0, 0, 1, 0, 0, 0, 1}
	for i, w := range want {
		got := p.Read() &^ 0x40
		if got != w {
			t.Fatalf("Read() bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestReadPastEighthBitReturnsZero(t *testing.T) {
	var p Port
	p.SetButtons(A)
	p.Write(1)
	p.Write(0)
	for i := 0; i < 8; i++ {
		p.Read()
	}
	if got := p.Read() &^ 0x40; got != 0 {
		t.Errorf("Read() after 8 shifts = %d, want 0", got)
	}
}

func TestStrobeHighAlwaysReportsA(t *testing.T) {
	var p Port
	p.SetButtons(A | B)
	p.Write(1)
	for i := 0; i < 3; i++ {
		if got := p.Read() &^ 0x40; got != 1 {
			t.Errorf("Read() under strobe = %d, want 1", got)
		}
	}
}

func TestReadSetsOpenBusBit(t *testing.T) {
	var p Port
	p.Write(1)
	if got := p.Read(); got&0x40 == 0 {
		t.Errorf("Read() = %#x, want bit 0x40 set", got)
	}
}
