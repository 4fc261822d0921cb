package cpu

// pageCrossed reports whether adding base and offset changes the high
// byte of the address, which is when indexed addressing costs an
// extra cycle on real hardware.
func pageCrossed(base uint16, offset uint8) bool {
	return (base&0xFF00) != ((base+uint16(offset))&0xFF00)
}

// operand resolves an addressing mode to the address its instruction
// should read or write, adding any page-crossing penalty cycles to
// extra. It never advances PC; the caller does that once, after
// execute returns, based on the opcode's fixed byte count.
func (c *CPU) operand(bus Bus, mode uint8, extra *uint8) uint16 {
	switch mode {
	case modeAccumulator, modeImplicit:
		return 0
	case modeImmediate:
		return c.pc
	case modeZeroPage:
		return uint16(bus.Read(c.pc))
	case modeZeroPageX:
		return uint16(bus.Read(c.pc) + c.x)
	case modeZeroPageY:
		return uint16(bus.Read(c.pc) + c.y)
	case modeAbsolute:
		return readWord(bus, c.pc)
	case modeAbsoluteX:
		return readWord(bus, c.pc) + uint16(c.x)
	case modeAbsoluteXPenalty:
		base := readWord(bus, c.pc)
		if pageCrossed(base, c.x) {
			*extra++
		}
		return base + uint16(c.x)
	case modeAbsoluteY:
		return readWord(bus, c.pc) + uint16(c.y)
	case modeAbsoluteYPenalty:
		base := readWord(bus, c.pc)
		if pageCrossed(base, c.y) {
			*extra++
		}
		return base + uint16(c.y)
	case modeIndirect:
		return readOnIndirect(bus, readWord(bus, c.pc))
	case modeIndirectX:
		return readOnIndirect(bus, uint16(bus.Read(c.pc)+c.x))
	case modeIndirectY:
		base := readOnIndirect(bus, uint16(bus.Read(c.pc)))
		return base + uint16(c.y)
	case modeIndirectYPenalty:
		base := readOnIndirect(bus, uint16(bus.Read(c.pc)))
		if pageCrossed(base, c.y) {
			*extra++
		}
		return base + uint16(c.y)
	case modeRelative:
		// Relative to PC as it will be once this instruction's
		// single operand byte has been consumed.
		return (c.pc + 1) + uint16(int8(bus.Read(c.pc)))
	default:
		panic("cpu: invalid addressing mode")
	}
}

// readOnIndirect reproduces the 6502's indirect-addressing page-wrap
// bug: the high byte is fetched from the same page as the low byte
// instead of wrapping into the next page.
// http://nesdev.com/6502bugs.txt
func readOnIndirect(bus Bus, addr uint16) uint16 {
	lo := uint16(bus.Read(addr))
	hi := uint16(bus.Read((addr & 0xFF00) | ((addr + 1) & 0x00FF)))
	return lo | hi<<8
}

// execute runs the decoded instruction and returns any additional
// cycles beyond the opcode table's base count (addressing-mode page
// crossings and taken branches).
func (c *CPU) execute(bus Bus, op opcode) uint8 {
	var extra uint8
	addr := c.operand(bus, op.mode, &extra)

	switch op.op {
	case opLDA:
		c.a = bus.Read(addr)
		c.setZN(c.a)
	case opLDX:
		c.x = bus.Read(addr)
		c.setZN(c.x)
	case opLDY:
		c.y = bus.Read(addr)
		c.setZN(c.y)
	case opSTA:
		bus.Write(addr, c.a)
	case opSTX:
		bus.Write(addr, c.x)
	case opSTY:
		bus.Write(addr, c.y)
	case opTAX:
		c.x = c.a
		c.setZN(c.x)
	case opTAY:
		c.y = c.a
		c.setZN(c.y)
	case opTXA:
		c.a = c.x
		c.setZN(c.a)
	case opTYA:
		c.a = c.y
		c.setZN(c.a)
	case opTSX:
		c.x = c.sp
		c.setZN(c.x)
	case opTXS:
		c.sp = c.x

	case opPHA:
		c.pushByte(bus, c.a)
	case opPHP:
		c.pushByte(bus, c.status|FlagBreak|FlagUnused)
	case opPLA:
		c.a = c.popByte(bus)
		c.setZN(c.a)
	case opPLP:
		c.status = (c.popByte(bus) &^ uint8(FlagBreak)) | FlagUnused

	case opAND:
		c.a &= bus.Read(addr)
		c.setZN(c.a)
	case opEOR:
		c.a ^= bus.Read(addr)
		c.setZN(c.a)
	case opORA:
		c.a |= bus.Read(addr)
		c.setZN(c.a)
	case opBIT:
		m := bus.Read(addr)
		c.setFlag(FlagZero, c.a&m == 0)
		c.setFlag(FlagOverflow, m&0x40 != 0)
		c.setFlag(FlagNegative, m&0x80 != 0)

	case opADC:
		c.adc(bus.Read(addr))
	case opSBC:
		c.adc(^bus.Read(addr))
	case opCMP:
		c.compare(c.a, bus.Read(addr))
	case opCPX:
		c.compare(c.x, bus.Read(addr))
	case opCPY:
		c.compare(c.y, bus.Read(addr))

	case opINC:
		v := bus.Read(addr) + 1
		bus.Write(addr, v)
		c.setZN(v)
	case opINX:
		c.x++
		c.setZN(c.x)
	case opINY:
		c.y++
		c.setZN(c.y)
	case opDEC:
		v := bus.Read(addr) - 1
		bus.Write(addr, v)
		c.setZN(v)
	case opDEX:
		c.x--
		c.setZN(c.x)
	case opDEY:
		c.y--
		c.setZN(c.y)

	case opASL:
		c.shift(bus, op.mode, addr, func(v uint8) (uint8, bool) { return v << 1, v&0x80 != 0 })
	case opLSR:
		c.shift(bus, op.mode, addr, func(v uint8) (uint8, bool) { return v >> 1, v&0x01 != 0 })
	case opROL:
		c.shift(bus, op.mode, addr, func(v uint8) (uint8, bool) {
			carryIn := uint8(0)
			if c.flag(FlagCarry) {
				carryIn = 1
			}
			return v<<1 | carryIn, v&0x80 != 0
		})
	case opROR:
		c.shift(bus, op.mode, addr, func(v uint8) (uint8, bool) {
			carryIn := uint8(0)
			if c.flag(FlagCarry) {
				carryIn = 0x80
			}
			return v>>1 | carryIn, v&0x01 != 0
		})

	case opJMP:
		c.pc = addr
	case opJSR:
		c.pushWord(bus, c.pc+1)
		c.pc = addr
	case opRTS:
		c.pc = c.popWord(bus) + 1

	case opBCC:
		extra += c.branch(bus, addr, !c.flag(FlagCarry))
	case opBCS:
		extra += c.branch(bus, addr, c.flag(FlagCarry))
	case opBEQ:
		extra += c.branch(bus, addr, c.flag(FlagZero))
	case opBNE:
		extra += c.branch(bus, addr, !c.flag(FlagZero))
	case opBMI:
		extra += c.branch(bus, addr, c.flag(FlagNegative))
	case opBPL:
		extra += c.branch(bus, addr, !c.flag(FlagNegative))
	case opBVC:
		extra += c.branch(bus, addr, !c.flag(FlagOverflow))
	case opBVS:
		extra += c.branch(bus, addr, c.flag(FlagOverflow))

	case opCLC:
		c.setFlag(FlagCarry, false)
	case opCLD:
		c.setFlag(FlagDecimal, false)
	case opCLI:
		c.setFlag(FlagInterruptDisable, false)
	case opCLV:
		c.setFlag(FlagOverflow, false)
	case opSEC:
		c.setFlag(FlagCarry, true)
	case opSED:
		c.setFlag(FlagDecimal, true)
	case opSEI:
		c.setFlag(FlagInterruptDisable, true)

	case opBRK:
		c.pushWord(bus, c.pc+1)
		c.pushByte(bus, c.status|FlagBreak|FlagUnused)
		c.status |= FlagInterruptDisable
		c.pc = readWord(bus, vectorIRQ)
	case opRTI:
		c.status = (c.popByte(bus) &^ uint8(FlagBreak)) | FlagUnused
		c.pc = c.popWord(bus)

	case opNOP:
		// consumes its addressing mode's bytes/cycles and nothing else

	case opLAX:
		c.a = bus.Read(addr)
		c.x = c.a
		c.setZN(c.a)
	case opSAX:
		bus.Write(addr, c.a&c.x)
	case opDCP:
		v := bus.Read(addr) - 1
		bus.Write(addr, v)
		c.compare(c.a, v)
	case opISB:
		v := bus.Read(addr) + 1
		bus.Write(addr, v)
		c.adc(^v)
	case opSLO:
		v := bus.Read(addr)
		c.setFlag(FlagCarry, v&0x80 != 0)
		v <<= 1
		bus.Write(addr, v)
		c.a |= v
		c.setZN(c.a)
	case opRLA:
		v := bus.Read(addr)
		carryOut := v&0x80 != 0
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 1
		}
		v = v<<1 | carryIn
		c.setFlag(FlagCarry, carryOut)
		bus.Write(addr, v)
		c.a &= v
		c.setZN(c.a)
	case opSRE:
		v := bus.Read(addr)
		c.setFlag(FlagCarry, v&0x01 != 0)
		v >>= 1
		bus.Write(addr, v)
		c.a ^= v
		c.setZN(c.a)
	case opRRA:
		v := bus.Read(addr)
		carryOut := v&0x01 != 0
		carryIn := uint8(0)
		if c.flag(FlagCarry) {
			carryIn = 0x80
		}
		v = v>>1 | carryIn
		c.setFlag(FlagCarry, carryOut)
		bus.Write(addr, v)
		c.adc(v)
	}

	return extra
}

// adc implements both ADC and SBC (SBC calls it with the operand
// bit-inverted) including the carry/overflow derivation for signed
// arithmetic on 8-bit twos-complement values.
func (c *CPU) adc(m uint8) {
	carryIn := uint16(0)
	if c.flag(FlagCarry) {
		carryIn = 1
	}
	sum := uint16(c.a) + uint16(m) + carryIn
	r := uint8(sum)

	a7 := c.a >> 7 & 1
	m7 := m >> 7 & 1
	c6 := a7 ^ m7 ^ (r >> 7 & 1)
	c7 := (a7 & m7) | (a7 & c6) | (m7 & c6)

	c.setFlag(FlagCarry, c7 == 1)
	c.setFlag(FlagOverflow, (c6^c7) == 1)
	c.a = r
	c.setZN(c.a)
}

func (c *CPU) compare(reg, m uint8) {
	c.setZN(reg - m)
	c.setFlag(FlagCarry, reg >= m)
}

// shift applies fn to the accumulator or a memory operand depending on
// the addressing mode, writing the result back and setting carry from
// the reported bit in addition to the usual zero/negative flags.
func (c *CPU) shift(bus Bus, mode uint8, addr uint16, fn func(uint8) (uint8, bool)) {
	var result uint8
	var carry bool
	if mode == modeAccumulator {
		result, carry = fn(c.a)
		c.a = result
	} else {
		v := bus.Read(addr)
		result, carry = fn(v)
		bus.Write(addr, result)
	}
	c.setFlag(FlagCarry, carry)
	c.setZN(result)
}

// branch adjusts PC to addr when taken is true, returning the extra
// cycles a taken branch (and one that also crosses a page) costs.
func (c *CPU) branch(bus Bus, addr uint16, taken bool) uint8 {
	if !taken {
		return 0
	}
	var extra uint8 = 1
	if (c.pc+1)&0xFF00 != addr&0xFF00 {
		extra++
	}
	c.pc = addr
	return extra
}
