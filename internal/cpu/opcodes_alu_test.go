package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddSetsHalfCarryAndCarry(t *testing.T) {
	c := newTestCPU(t, 0x80) // ADD A,B
	c.Reg.A = 0x0F
	c.Reg.B = 0x01
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 4, cycles)
	require.Equal(t, uint8(0x10), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagHForTest))
	require.False(t, c.Reg.GetFlag(flagCForTest))
	require.False(t, c.Reg.GetFlag(flagZForTest))
}

func TestAdcIncludesIncomingCarry(t *testing.T) {
	c := newTestCPU(t, 0x89) // ADC A,C
	c.Reg.A = 0x01
	c.Reg.C = 0x01
	c.Reg.SetFlag(flagCForTest, true)
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x03), c.Reg.A)
}

func TestSubSetsCarryOnBorrow(t *testing.T) {
	c := newTestCPU(t, 0x90) // SUB B
	c.Reg.A = 0x00
	c.Reg.B = 0x01
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagCForTest))
	require.True(t, c.Reg.GetFlag(flagNForTest))
}

func TestCpLeavesALeftUntouched(t *testing.T) {
	c := newTestCPU(t, 0xB8) // CP B
	c.Reg.A = 0x05
	c.Reg.B = 0x05
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x05), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagZForTest))
}

func TestAndSetsHalfCarryAndClearsCarry(t *testing.T) {
	c := newTestCPU(t, 0xA0) // AND B
	c.Reg.A = 0xFF
	c.Reg.B = 0x0F
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x0F), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagHForTest))
	require.False(t, c.Reg.GetFlag(flagCForTest))
}

func TestOrAndXorClearAllFlagsButZero(t *testing.T) {
	c := newTestCPU(t, 0xB1, 0xA8) // OR C ; XOR B
	c.Reg.A = 0x00
	c.Reg.C = 0x00
	_, err := c.Step()
	require.NoError(t, err)
	require.True(t, c.Reg.GetFlag(flagZForTest))
	require.False(t, c.Reg.GetFlag(flagHForTest))

	c.Reg.B = 0x00
	c.Reg.SetFlag(flagHForTest, true)
	_, err = c.Step()
	require.NoError(t, err)
	require.True(t, c.Reg.GetFlag(flagZForTest))
	require.False(t, c.Reg.GetFlag(flagHForTest))
}

func TestIncWrapsToZeroAndSetsHalfCarry(t *testing.T) {
	c := newTestCPU(t, 0x3C) // INC A
	c.Reg.A = 0xFF
	c.Reg.SetFlag(flagCForTest, true) // INC must not touch carry
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x00), c.Reg.A)
	require.True(t, c.Reg.GetFlag(flagZForTest))
	require.True(t, c.Reg.GetFlag(flagHForTest))
	require.True(t, c.Reg.GetFlag(flagCForTest)) // untouched by INC
}

func TestDecSetsHalfCarryOnBorrowFromBit4(t *testing.T) {
	c := newTestCPU(t, 0x05) // DEC B
	c.Reg.B = 0x10
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x0F), c.Reg.B)
	require.True(t, c.Reg.GetFlag(flagHForTest))
	require.True(t, c.Reg.GetFlag(flagNForTest))
}

func TestIncDecHLIndirectGoThroughBus(t *testing.T) {
	c := newTestCPU(t, 0x34) // INC (HL)
	c.Reg.SetHL(0xC000)
	c.Bus.Write(0xC000, 0x41)
	cycles, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, 12, cycles)
	require.Equal(t, uint8(0x42), c.Bus.Read(0xC000))
}

func TestAddHLLeavesZeroFlagUntouched(t *testing.T) {
	c := newTestCPU(t, 0x09) // ADD HL,BC
	c.Reg.SetHL(0xFFFF)
	c.Reg.SetBC(0x0001)
	c.Reg.SetFlag(flagZForTest, true)
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0000), c.Reg.HL())
	require.True(t, c.Reg.GetFlag(flagCForTest))
	require.True(t, c.Reg.GetFlag(flagZForTest)) // ADD HL,rr never touches Z
}

func TestAddSPSignedNegativeDisplacement(t *testing.T) {
	c := newTestCPU(t, 0xE8, 0xFF) // ADD SP,-1
	c.Reg.SP = 0x0005
	_, err := c.Step()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0004), c.Reg.SP)
	require.False(t, c.Reg.GetFlag(flagZForTest))
	require.False(t, c.Reg.GetFlag(flagNForTest))
}

func TestDaaAdjustsAfterBcdAddition(t *testing.T) {
	c := newTestCPU(t, 0x80, 0x27) // ADD A,B ; DAA
	c.Reg.A = 0x45
	c.Reg.B = 0x38 // 45 + 38 = 7D in binary, should become 0x83 in BCD
	_, err := c.Step()
	require.NoError(t, err)
	_, err = c.Step()
	require.NoError(t, err)
	require.Equal(t, uint8(0x83), c.Reg.A)
}
