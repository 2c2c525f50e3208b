package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWorkRamRoundTrips(t *testing.T) {
	b := New(nil)
	b.Write(0xC123, 0x42)
	require.Equal(t, uint8(0x42), b.Read(0xC123))
}

func TestEchoRegionMirrorsWorkRam(t *testing.T) {
	b := New(nil)
	b.Write(0xE123, 0x99)
	require.Equal(t, uint8(0x99), b.Read(0xC123))
	require.Equal(t, uint8(0x99), b.Read(0xE123))

	b.Write(0xC456, 0x77)
	require.Equal(t, uint8(0x77), b.Read(0xE456))
}

func TestHighRamRoundTrips(t *testing.T) {
	b := New(nil)
	b.Write(0xFF80, 0xAB)
	require.Equal(t, uint8(0xAB), b.Read(0xFF80))
	b.Write(0xFFFE, 0xCD)
	require.Equal(t, uint8(0xCD), b.Read(0xFFFE))
}

func TestUnusableRegionReadsZeroAndIgnoresWrites(t *testing.T) {
	b := New(nil)
	require.Equal(t, uint8(0), b.Read(0xFEA0))
	require.Equal(t, uint8(0), b.Read(0xFEFF))
	b.Write(0xFEA0, 0xFF)
	require.Equal(t, uint8(0), b.Read(0xFEA0))
}

func TestRomWritesAreDroppedByTheStubMBC(t *testing.T) {
	b := New(nil)
	rom := make([]byte, 0x8000)
	rom[0x0000] = 0x11
	rom[0x4000] = 0x22
	b.LoadROM(rom)

	b.Write(0x0000, 0xFF)
	b.Write(0x4000, 0xFF)
	require.Equal(t, uint8(0x11), b.Read(0x0000))
	require.Equal(t, uint8(0x22), b.Read(0x4000))
}

func TestJoypadReadsStubValue(t *testing.T) {
	b := New(nil)
	require.Equal(t, uint8(0b11011111), b.Read(0xFF00))
}

func TestStatReadAlwaysHasTopBitSet(t *testing.T) {
	b := New(nil)
	require.Equal(t, uint8(0x80), b.Read(0xFF41))
	b.Write(0xFF41, 0x05)
	require.Equal(t, uint8(0x85), b.Read(0xFF41))
}

func TestDivWriteResetsInternalDivider(t *testing.T) {
	b := New(nil)
	b.AdvanceCycles(2000)
	require.NotZero(t, b.Read(0xFF04))

	b.Write(0xFF04, 0x99) // value is ignored; any write resets it
	require.Zero(t, b.Read(0xFF04))
}

func TestLyWriteResetsScanlineCounter(t *testing.T) {
	b := New(nil)
	b.AdvanceCycles(456 * 10)
	require.NotZero(t, b.LY())

	b.Write(0xFF44, 0x00)
	require.Zero(t, b.LY())
}

func TestAdvanceCyclesRaisesVBlankAtScanline144(t *testing.T) {
	b := New(nil)
	b.AdvanceCycles(456 * 144)
	require.Equal(t, uint8(144), b.LY())
	require.NotZero(t, b.IF()&0x01, "VBlank bit should be set in IF")
}

func TestAdvanceCyclesForwardsToTimerAndRequestsInterrupt(t *testing.T) {
	b := New(nil)
	b.Write(0xFF07, 0x05) // TAC: enabled, tick bit 3
	b.Write(0xFF06, 0xAB) // TMA
	b.Write(0xFF05, 0xFE) // TIMA, near overflow

	b.AdvanceCycles(32)

	require.Equal(t, uint8(0xAB), b.Read(0xFF05))
	require.NotZero(t, b.IF()&0x04, "Timer bit should be set in IF")
}

func TestOamDmaCopiesOneHundredSixtyBytes(t *testing.T) {
	b := New(nil)
	rom := make([]byte, 0x8000)
	src := uint16(0x10) << 8 // 0x1000, inside ROM bank 0
	for i := uint16(0); i < 160; i++ {
		rom[src+i] = uint8(i)
	}
	b.LoadROM(rom)

	b.Write(0xFF46, 0x10)

	for i := uint16(0); i < 160; i++ {
		require.Equal(t, uint8(i), b.Read(0xFE00+i))
	}
}

func TestIEIsByteAddressable(t *testing.T) {
	b := New(nil)
	b.Write(0xFFFF, 0x1F)
	require.Equal(t, uint8(0x1F), b.IE())
	require.Equal(t, uint8(0x1F), b.Read(0xFFFF))
}

func TestClearInterruptClearsOnlyThatBit(t *testing.T) {
	b := New(nil)
	b.RequestInterrupt(0)
	b.RequestInterrupt(2)
	b.ClearInterrupt(0)
	require.Equal(t, uint8(0x04), b.IF())
}
