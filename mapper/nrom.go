package mapper

import "github.com/nescore/gintendo/rom"

func init() {
	Register(0, newNROM)
}

// nrom implements mapper 0: no bank switching, PRG mirrored to 16KiB
// when the cartridge only supplies one bank, CHR either ROM or, when
// the cartridge declared a zero CHR size, a single writable RAM bank.
type nrom struct {
	mirroring Mirroring
	battery   bool
	prg       []byte
	chr       []byte
	mirrored  bool // true when PRG is a single 16KiB bank mirrored twice
}

func newNROM(r *rom.ROM) Mapper {
	prg := r.PRG()
	return &nrom{
		mirroring: r.Mirroring(),
		battery:   r.HasSaveRAM(),
		prg:       prg,
		chr:       r.CHR(),
		mirrored:  len(prg) == 0x4000,
	}
}

func (m *nrom) Number() uint8       { return 0 }
func (m *nrom) Mirroring() Mirroring { return m.mirroring }
func (m *nrom) HasSaveRAM() bool    { return m.battery }

func (m *nrom) PrgRead(addr uint16) uint8 {
	if m.mirrored {
		addr %= 0x4000
	}
	return m.prg[addr]
}

// PrgWrite is a no-op: NROM carts have no PRG RAM and no bank-select
// registers to write to.
func (m *nrom) PrgWrite(addr uint16, val uint8) {}

func (m *nrom) ChrRead(addr uint16) uint8 {
	return m.chr[addr]
}

func (m *nrom) ChrWrite(addr uint16, val uint8) {
	// Only meaningful when the cartridge uses CHR RAM; ROM carts
	// supply a CHR() slice but real hardware ignores writes to it.
	if len(m.chr) > 0 {
		m.chr[addr] = val
	}
}
