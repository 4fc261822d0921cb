package ppu

// The PPU's internal v/t scroll registers pack five fields into 15
// bits (the "loopy" registers, named for the nesdev forum user who
// documented them):
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
//
// https://www.nesdev.org/wiki/PPU_scrolling#PPU_internal_registers
func coarseX(v uint16) uint16 { return v & 0b0000_0000_0001_1111 }
func coarseY(v uint16) uint16 { return (v & 0b0000_0111_1110_0000) >> 5 }
func fineY(v uint16) uint16   { return (v & 0b0111_0000_0000_0000) >> 12 }

// tileAddr and attrAddr turn v into the nametable/attribute-table
// addresses to fetch for the tile v currently points at.
// https://www.nesdev.org/wiki/PPU_scrolling#Tile_and_attribute_fetching
func tileAddr(v uint16) uint16 { return 0x2000 | (v & 0x0FFF) }
func attrAddr(v uint16) uint16 {
	return 0x23C0 | (v & 0x0C00) | ((v >> 4) & 0x38) | ((v >> 2) & 0x07)
}

// incrCoarseX wraps coarse X at 32 tiles, flipping to the neighboring
// horizontal nametable.
// https://www.nesdev.org/wiki/PPU_scrolling#Coarse_X_increment
func (p *PPU) incrCoarseX() {
	if coarseX(p.v) == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

// incrY advances fine Y, carrying into coarse Y and wrapping the
// vertical nametable at the 30-row boundary (not 32, since rows 30-31
// of a nametable hold attribute data, not tiles).
// https://www.nesdev.org/wiki/PPU_scrolling#Y_increment
func (p *PPU) incrY() {
	if fineY(p.v) < 7 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	y := coarseY(p.v)
	switch y {
	case 29:
		y = 0
		p.v ^= 0x0800
	case 31:
		y = 0
	default:
		y++
	}
	p.v = (p.v &^ 0x03E0) | (y << 5)
}

// copyX copies t's horizontal-position bits into v, done at dot 257 of
// every visible/pre-render scanline.
func (p *PPU) copyX() {
	const mask = 0b100_0001_1111
	p.v = (p.v &^ mask) | (p.t & mask)
}

// copyY copies t's vertical-position bits into v, done across dots
// 280-304 of the pre-render scanline.
func (p *PPU) copyY() {
	const mask = 0b111_1011_1110_0000
	p.v = (p.v &^ mask) | (p.t & mask)
}

// bgShift advances the background shift registers by one pixel.
func (p *PPU) bgShift() {
	p.bg.shiftLow <<= 1
	p.bg.shiftHigh <<= 1
	p.bg.attrShiftLow = p.bg.attrShiftLow<<1 | b2u8(p.bg.attrLatchLow)
	p.bg.attrShiftHigh = p.bg.attrShiftHigh<<1 | b2u8(p.bg.attrLatchHigh)
}

// bgShiftReload loads the next tile's fetched pattern/attribute bits
// into the low byte of the shift registers, leaving the high byte (the
// tile currently being drawn) untouched.
func (p *PPU) bgShiftReload() {
	p.bg.shiftLow = (p.bg.shiftLow &^ 0xFF) | uint16(p.bg.low)
	p.bg.shiftHigh = (p.bg.shiftHigh &^ 0xFF) | uint16(p.bg.high)
	p.bg.attrLatchLow = p.bg.at&1 != 0
	p.bg.attrLatchHigh = p.bg.at&2 != 0
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
