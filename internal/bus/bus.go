// Package bus implements the Game Boy's 64 KiB memory-mapped address
// space: the region dispatcher every CPU read/write goes through, the I/O
// register file, and the per-cycle fan-out to the timer and the scanline
// counter that raises VBlank. Pixel rendering, real MBC bank switching,
// joypad sampling, and audio are explicitly out of scope here — the bus
// only stores the bytes a renderer would later read.
package bus

import (
	"log/slog"

	"github.com/ochs-dev/gbcore/internal/interrupt"
	"github.com/ochs-dev/gbcore/internal/timer"
)

const (
	cyclesPerScanline = 456
	scanlinesPerFrame = 154
	vblankScanline    = 144

	minROMSize = 0x150
)

// I/O register addresses the bus dispatches specially; everything else in
// 0xFF00-0xFF7F is a plain stored byte.
const (
	p1Addr   = 0xFF00
	ifAddr   = 0xFF0F
	statAddr = 0xFF41
	lyAddr   = 0xFF44
	dmaAddr  = 0xFF46
	ieAddr   = 0xFFFF
)

// Bus is the 64 KiB address space dispatcher described in spec.md §3/§4.1.
type Bus struct {
	rom    []byte
	vram   [0x2000]byte
	extRAM [0x2000]byte
	wram   [0x2000]byte
	oam    [0xA0]byte
	hram   [0x7F]byte
	io     [0x80]byte // 0xFF00-0xFF7F
	ie     uint8

	Timer *timer.Timer

	scanlineCycles int
	ly             uint8

	log *slog.Logger
}

// New returns a Bus with no ROM loaded and a fresh Timer, wired so timer
// overflow requests the Timer interrupt through IF.
func New(log *slog.Logger) *Bus {
	if log == nil {
		log = slog.Default()
	}
	b := &Bus{Timer: timer.New(), log: log}
	b.Timer.OverflowFunc = func() { b.RequestInterrupt(interrupt.Timer) }
	b.io[p1Addr-0xFF00] = 0xFF
	return b
}

// LoadROM installs a ROM image. Per spec.md §6 the only header byte the
// core cares about is 0x0147 (cartridge type), and only for logging —
// bank switching is entirely out of scope.
func (b *Bus) LoadROM(data []byte) {
	b.rom = data
	if len(data) >= minROMSize {
		b.log.Debug("loaded ROM", "size", len(data), "cartridge_type", data[0x0147])
	} else {
		b.log.Debug("loaded undersized ROM", "size", len(data))
	}
}

// Read returns the byte at addr. Reads never fail: unmapped regions and
// the unusable 0xFEA0-0xFEFF window return fixed values instead of
// erroring.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= 0x7FFF:
		return b.readROM(addr)
	case addr <= 0x9FFF:
		return b.vram[addr-0x8000]
	case addr <= 0xBFFF:
		return b.extRAM[addr-0xA000]
	case addr <= 0xDFFF:
		return b.wram[addr-0xC000]
	case addr <= 0xFDFF:
		return b.wram[addr-0xE000]
	case addr <= 0xFE9F:
		return b.oam[addr-0xFE00]
	case addr <= 0xFEFF:
		return 0 // unusable
	case addr <= 0xFF7F:
		return b.readIO(addr)
	case addr <= 0xFFFE:
		return b.hram[addr-0xFF80]
	default: // 0xFFFF
		return b.ie
	}
}

// Write stores v (masked to 8 bits implicitly by the uint8 parameter) at
// addr, routing echo writes back to work RAM and silently dropping ROM
// writes (the stub MBC).
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr <= 0x7FFF:
		b.log.Debug("stub MBC: ignored ROM-region write", "addr", addr, "value", v)
	case addr <= 0x9FFF:
		b.vram[addr-0x8000] = v
	case addr <= 0xBFFF:
		b.extRAM[addr-0xA000] = v
	case addr <= 0xDFFF:
		b.wram[addr-0xC000] = v
	case addr <= 0xFDFF:
		b.wram[addr-0xE000] = v
	case addr <= 0xFE9F:
		b.oam[addr-0xFE00] = v
	case addr <= 0xFEFF:
		// unusable, write ignored
	case addr <= 0xFF7F:
		b.writeIO(addr, v)
	case addr <= 0xFFFE:
		b.hram[addr-0xFF80] = v
	default: // 0xFFFF
		b.ie = v
	}
}

func (b *Bus) readROM(addr uint16) uint8 {
	if int(addr) >= len(b.rom) {
		return 0xFF
	}
	return b.rom[addr]
}

func (b *Bus) readIO(addr uint16) uint8 {
	switch addr {
	case p1Addr:
		return 0b11011111
	case timer.DivAddr, timer.TimaAddr, timer.TmaAddr, timer.TacAddr:
		return b.Timer.ReadRegister(addr)
	case lyAddr:
		return b.ly
	case statAddr:
		// Open question in spec.md: source raises on STAT reads. Real
		// hardware always has bit 7 set; gbcore returns that over the
		// stored value rather than failing.
		return 0x80 | b.io[addr-0xFF00]
	default:
		return b.io[addr-0xFF00]
	}
}

func (b *Bus) writeIO(addr uint16, v uint8) {
	switch addr {
	case timer.DivAddr:
		b.Timer.WriteRegister(addr, v)
	case timer.TimaAddr, timer.TmaAddr, timer.TacAddr:
		b.Timer.WriteRegister(addr, v)
	case lyAddr:
		b.ly = 0
	case dmaAddr:
		b.runOAMDMA(v)
		b.io[addr-0xFF00] = v
	default:
		b.io[addr-0xFF00] = v
	}
}

// runOAMDMA copies 160 bytes from (v<<8) into OAM, the way 0xFF46 behaves
// on real hardware. Not named in spec.md's I/O table, but every complete
// MMU in the reference pack that reaches 0xFF46 implements it, and OAM is
// otherwise unreachable to a renderer during the transfer on real
// hardware; gbcore does the copy instantly rather than modeling the
// stall, which is consistent with the "no sub-instruction timing" Non-goal.
func (b *Bus) runOAMDMA(v uint8) {
	src := uint16(v) << 8
	for i := uint16(0); i < 160; i++ {
		b.oam[i] = b.Read(src + i)
	}
}

// AdvanceCycles forwards n machine cycles to the scanline counter (which
// raises VBlank on the LY==144 transition) and to the Timer.
func (b *Bus) AdvanceCycles(n int) {
	b.scanlineCycles += n
	for b.scanlineCycles >= cyclesPerScanline {
		b.scanlineCycles -= cyclesPerScanline
		b.ly = (b.ly + 1) % scanlinesPerFrame
		if b.ly == vblankScanline {
			b.RequestInterrupt(interrupt.VBlank)
		}
	}
	b.Timer.Tick(n)
}

// RequestInterrupt sets the given interrupt's bit in IF.
func (b *Bus) RequestInterrupt(bit uint8) {
	b.io[ifAddr-0xFF00] |= 1 << bit
}

// IE returns the Interrupt Enable register.
func (b *Bus) IE() uint8 { return b.ie }

// IF returns the Interrupt Flag register.
func (b *Bus) IF() uint8 { return b.io[ifAddr-0xFF00] }

// ClearInterrupt clears a single interrupt's bit in IF, once dispatched.
func (b *Bus) ClearInterrupt(bit uint8) {
	b.io[ifAddr-0xFF00] &^= 1 << bit
}

// LY returns the current scanline counter, for host renderers and tests.
func (b *Bus) LY() uint8 { return b.ly }
