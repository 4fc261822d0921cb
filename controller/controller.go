// Package controller implements the NES standard controller port: an
// 8-bit shift register loaded from button state on strobe and shifted
// out one bit per read. It knows nothing about any physical input
// device; the host polls its own keyboard/gamepad and calls SetButtons.
// http://wiki.nesdev.com/w/index.php/Standard_controller
package controller

// Button is a bitmask identifying one of the eight standard buttons.
type Button uint8

const (
	A Button = 1 << iota
	B
	Select
	Start
	Up
	Down
	Left
	Right
)

// Port is a single standard controller.
type Port struct {
	state   uint8 // live button mask, updated at any time by SetButtons
	latched uint8 // button mask captured by the last Write, shifted out by Read
	current uint8 // single-bit mask selecting the next button to report
	strobe  bool
}

// SetButtons records the host's current button mask. Since strobe reads
// always resample state directly, this can be called mid-frame without
// disturbing an in-progress shift-out.
func (p *Port) SetButtons(mask Button) {
	p.state = uint8(mask)
}

// Write handles a CPU write to $4016. Bit 0 set begins strobing (every
// read returns the A button) and rearms the shift position at A for
// when strobe is next cleared.
func (p *Port) Write(val uint8) {
	p.strobe = val&0x01 != 0
	p.latched = p.state
	p.current = 1
}

// Read returns 1 if the currently selected button is pressed, OR'd
// with the open-bus bit 0x40 real hardware exposes on this port. While
// strobe is held high every read reports the A button; otherwise each
// read advances to the next button, and once the eight buttons are
// exhausted further reads report 0 until the next Write.
func (p *Port) Read() uint8 {
	var value uint8
	if p.strobe {
		value = p.state & uint8(A)
		if value != 0 {
			value = 1
		}
		return value | 0x40
	}

	if p.latched&p.current != 0 {
		value = 1
	}
	p.current <<= 1
	return value | 0x40
}
