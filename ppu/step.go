package ppu

// Step advances the PPU by exactly one dot: 341 dots per scanline,
// scanlines 0-239 visible, 240 post-render, 241 where vblank/NMI
// begins, 242-260 vblank, 261 pre-render.
// https://www.nesdev.org/wiki/PPU_rendering
func (p *PPU) Step() {
	pre := p.scanLine == 261

	if pre || p.scanLine <= 239 {
		p.stepSprites(pre)
		p.stepBackground(pre)
	} else if p.scanLine == 241 && p.dot == 1 {
		p.setStatus(StatusVBlank, true)
		if p.ctrlEnabled(CtrlNMIEnabled) {
			p.nmiPending = true
		}
	}

	p.dot++
	if p.dot > 340 {
		p.dot %= 341
		p.scanLine++
		if p.scanLine > 261 {
			p.scanLine = 0
			p.frames++
		}
	}
}

func (p *PPU) stepSprites(pre bool) {
	switch p.dot {
	case 1:
		for i := range p.secondary {
			clearSprite(&p.secondary[i])
		}
		if pre {
			p.setStatus(StatusSprOverflow, false)
			p.setStatus(StatusSpr0Hit, false)
		}
	case 257:
		p.evaluateSprites(pre)
	case 321:
		p.loadSprites()
	}
}

func (p *PPU) stepBackground(pre bool) {
	switch {
	case (2 <= p.dot && p.dot <= 255) || (322 <= p.dot && p.dot <= 337):
		p.renderPixel()
		p.fetchBackgroundByte()

	case p.dot == 256:
		p.renderPixel()
		p.bg.high = p.ppuRead(p.bg.addr)
		if p.renderingEnabled() {
			p.incrY()
		}

	case p.dot == 257:
		p.renderPixel()
		p.bgShiftReload()
		if p.renderingEnabled() {
			p.copyX()
		}

	case 280 <= p.dot && p.dot <= 304 && pre:
		if p.renderingEnabled() {
			p.copyY()
		}

	case p.dot == 1:
		p.bg.addr = tileAddr(p.v)
		if pre {
			p.setStatus(StatusVBlank, false)
		}

	case p.dot == 321 || p.dot == 339:
		p.bg.addr = tileAddr(p.v)

	case p.dot == 338:
		p.bg.nt = p.ppuRead(p.bg.addr)

	case p.dot == 340:
		p.bg.nt = p.ppuRead(p.bg.addr)
		if pre && p.renderingEnabled() && p.frames%2 != 0 {
			p.dot++ // skip the idle cycle on odd frames
		}
	}
}

// fetchBackgroundByte runs the 8-dot tile/attribute/pattern fetch
// pipeline that repeats across the visible and prefetch portions of
// every rendered scanline.
// https://www.nesdev.org/wiki/PPU_scrolling#Tile_and_attribute_fetching
func (p *PPU) fetchBackgroundByte() {
	switch p.dot % 8 {
	case 1:
		p.bg.addr = tileAddr(p.v)
		p.bgShiftReload()
	case 2:
		p.bg.nt = p.ppuRead(p.bg.addr)
	case 3:
		p.bg.addr = attrAddr(p.v)
	case 4:
		p.bg.at = p.ppuRead(p.bg.addr)
		if coarseY(p.v)&0b10 != 0 {
			p.bg.at >>= 4
		}
		if coarseX(p.v)&0b10 != 0 {
			p.bg.at >>= 2
		}
	case 5:
		var base uint16
		if p.ctrlEnabled(CtrlBGTable) {
			base = 0x1000
		}
		p.bg.addr = base + uint16(p.bg.nt)*16 + fineY(p.v)
	case 6:
		p.bg.low = p.ppuRead(p.bg.addr)
	case 7:
		p.bg.addr += 8
	case 0:
		p.bg.high = p.ppuRead(p.bg.addr)
		if p.renderingEnabled() {
			p.incrCoarseX()
		}
	}
}

// renderPixel produces the single output pixel two dots behind the
// current dot (the pipeline delay between fetch and shift-out) and
// advances the background shift registers.
// https://www.nesdev.org/w/images/default/d/d1/Ntsc_timing.png
func (p *PPU) renderPixel() {
	const pixelDelay = 2
	x := p.dot - pixelDelay

	if p.scanLine < 240 && 0 <= x && x < 256 {
		bg := p.backgroundPixel(uint16(x))
		spr, behindBG := p.spritePixel(uint16(x), bg)

		var color uint8
		if p.renderingEnabled() {
			switch {
			case bg == 0 && spr == 0:
			case bg == 0:
				color = spr
			case spr == 0:
				color = bg
			case behindBG:
				color = bg
			default:
				color = spr
			}
		}
		p.buffer[p.scanLine*ScreenWidth+x] = p.ppuRead(0x3F00 + uint16(color))
	}

	p.bgShift()
}

func nthBit(v uint16, n uint) uint8 { return uint8(v>>n) & 1 }

func (p *PPU) backgroundPixel(x uint16) uint8 {
	if !p.maskEnabled(MaskBG) || (!p.maskEnabled(MaskBGLeft) && x < 8) {
		return 0
	}

	fineX := uint(p.x)
	bg := nthBit(p.bg.shiftHigh, 15-fineX)<<1 | nthBit(p.bg.shiftLow, 15-fineX)
	if bg == 0 {
		return 0
	}

	attrBit := uint(7) - fineX
	attr := (p.bg.attrShiftHigh>>attrBit&1)<<1 | (p.bg.attrShiftLow >> attrBit & 1)
	return bg | attr<<2
}

// spritePixel finds the highest-priority (lowest OAM index) opaque
// sprite pixel at x, reporting sprite-0 hit when it overlaps an opaque
// background pixel. It returns the palette index (0 if no sprite
// pixel) and whether that sprite is behind the background.
func (p *PPU) spritePixel(x uint16, bg uint8) (uint8, bool) {
	if !p.maskEnabled(MaskSpr) || (!p.maskEnabled(MaskSprLeft) && x < 8) {
		return 0, false
	}

	var color uint8
	var behindBG bool
	// Sprites with lower OAM indices draw in front, so scan back to
	// front and let index 0 win last.
	// https://www.nesdev.org/wiki/PPU_sprite_priority
	for i := spriteLimit - 1; i >= 0; i-- {
		s := p.primary[i]
		if !s.enabled {
			continue
		}
		spriteX := x - uint16(s.x)
		if spriteX >= 8 {
			continue
		}
		if s.attr&SpriteAttrFlipH != 0 {
			spriteX ^= 7
		}
		px := 7 - spriteX
		palette := (s.high>>px&1)<<1 | s.low>>px&1
		if palette == 0 {
			continue
		}
		if s.index == 0 && bg != 0 && x != 255 {
			p.setStatus(StatusSpr0Hit, true)
		}
		color = (palette | (s.attr&SpriteAttrPalette)<<2) + 0x10
		behindBG = s.attr&SpriteAttrBehindBG != 0
	}
	return color, behindBG
}
