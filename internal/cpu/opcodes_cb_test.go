package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCbRlcSetsCarryFromBit7(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x00) // RLC B
	c.Reg.B = 0x85
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 8, cycles)
	require.Equal(t, uint8(0x0B), c.Reg.B)
	require.True(t, c.Reg.GetFlag(flagCForTest))
}

func TestCbRlThroughCarryFlag(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x10) // RL B
	c.Reg.B = 0x80
	c.Reg.SetFlag(flagCForTest, true)
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), c.Reg.B) // old carry shifted into bit 0
	require.True(t, c.Reg.GetFlag(flagCForTest))
}

func TestCbSraPreservesSignBit(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x2F) // SRA A
	c.Reg.A = 0x81
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0xC0), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagCForTest))
}

func TestCbSrlClearsBit7(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x3F) // SRL A
	c.Reg.A = 0x81
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x40), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagCForTest))
}

func TestCbSwapNibbles(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x37) // SWAP A
	c.Reg.A = 0xA5
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x5A), c.Reg.A)
	require.False(t, c.Reg.GetFlag(flagCForTest))
}

func TestCbBitSetsZeroWhenBitClear(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x78) // BIT 7,B
	c.Reg.B = 0x00
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 8, cycles)
	require.True(t, c.Reg.GetFlag(flagZForTest))
	require.True(t, c.Reg.GetFlag(flagHForTest))
	require.False(t, c.Reg.GetFlag(flagNForTest))
}

func TestCbBitOnHLIndirectCosts12Cycles(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x46) // BIT 0,(HL)
	c.Reg.SetHL(0xC000)
	c.Bus.Write(0xC000, 0x01)
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 12, cycles)
	require.False(t, c.Reg.GetFlag(flagZForTest))
}

func TestCbResAndSetOnHLIndirectCost16Cycles(t *testing.T) {
	c := newTestCPU(t, 0xCB, 0x86, 0xCB, 0xC6) // RES 0,(HL) ; SET 0,(HL)
	c.Reg.SetHL(0xC000)
	c.Bus.Write(0xC000, 0xFF)
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 16, cycles)
	require.Equal(t, uint8(0xFE), c.Bus.Read(0xC000))

	cycles, err = c.Step()
	require.NoError(t, err)
	require.Equal(t, 16, cycles)
	require.Equal(t, uint8(0xFF), c.Bus.Read(0xC000))
}
