package mapper

// mock is a test double backing the full address space with flat
// slices, used by tests (such as the nes package's) that need a Mapper
// without parsing a cartridge image.
type mock struct {
	mirroring Mirroring
	prg       [0x8000]byte
	chr       [0x2000]byte
}

// NewMock returns a Mapper backed by plain RAM-like slices, for tests
// that need to drive the CPU or PPU without a real cartridge.
func NewMock(mirroring Mirroring) Mapper {
	return &mock{mirroring: mirroring}
}

func (m *mock) Number() uint8        { return 0 }
func (m *mock) Mirroring() Mirroring { return m.mirroring }
func (m *mock) HasSaveRAM() bool     { return false }

func (m *mock) PrgRead(addr uint16) uint8        { return m.prg[addr] }
func (m *mock) PrgWrite(addr uint16, val uint8)  { m.prg[addr] = val }
func (m *mock) ChrRead(addr uint16) uint8        { return m.chr[addr] }
func (m *mock) ChrWrite(addr uint16, val uint8)  { m.chr[addr] = val }
