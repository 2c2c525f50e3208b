package cpu

import "github.com/ochs-dev/gbcore/internal/registers"

// aluAdd implements ADD/ADC's flag contract: Z from the masked result,
// N=0, H from a nibble carry, C from a byte carry. carryIn is 0 for ADD
// and the current carry flag (0 or 1) for ADC.
func (c *CPU) aluAdd(val, carryIn uint8) {
	a := c.Reg.A
	sum := uint16(a) + uint16(val) + uint16(carryIn)
	h := (a&0x0F)+(val&0x0F)+carryIn > 0x0F
	c.Reg.A = uint8(sum)
	c.Reg.SetFlags(c.Reg.A == 0, false, h, sum > 0xFF)
}

// aluSub implements SUB/SBC/CP's flag contract and returns the masked
// difference; callers decide whether to store it back into A (SUB/SBC do,
// CP doesn't).
func (c *CPU) aluSub(val, carryIn uint8) uint8 {
	a := c.Reg.A
	diff := int(a) - int(val) - int(carryIn)
	h := int(a&0x0F)-int(val&0x0F)-int(carryIn) < 0
	res := uint8(diff)
	c.Reg.SetFlags(res == 0, true, h, diff < 0)
	return res
}

func (c *CPU) aluAnd(val uint8) {
	c.Reg.A &= val
	c.Reg.SetFlags(c.Reg.A == 0, false, true, false)
}

func (c *CPU) aluOr(val uint8) {
	c.Reg.A |= val
	c.Reg.SetFlags(c.Reg.A == 0, false, false, false)
}

func (c *CPU) aluXor(val uint8) {
	c.Reg.A ^= val
	c.Reg.SetFlags(c.Reg.A == 0, false, false, false)
}

// incVal implements INC's flag contract: Z; N=0; H set on a nibble
// carry-out; C untouched.
func (c *CPU) incVal(old uint8) uint8 {
	v := old + 1
	c.Reg.SetFlag(registers.FlagZ, v == 0)
	c.Reg.SetFlag(registers.FlagN, false)
	c.Reg.SetFlag(registers.FlagH, old&0x0F == 0x0F)
	return v
}

// decVal implements DEC's flag contract: Z; N=1; H set on a nibble
// borrow-out; C untouched.
func (c *CPU) decVal(old uint8) uint8 {
	v := old - 1
	c.Reg.SetFlag(registers.FlagZ, v == 0)
	c.Reg.SetFlag(registers.FlagN, true)
	c.Reg.SetFlag(registers.FlagH, old&0x0F == 0x00)
	return v
}

// addHL16 implements ADD HL,rr: N=0; H from a bit-11 carry; C from a
// bit-15 carry; Z is left untouched (the spec corrects the source's
// Z-clearing bug — see DESIGN.md).
func (c *CPU) addHL16(val uint16) {
	hl := c.Reg.HL()
	sum := uint32(hl) + uint32(val)
	h := (hl&0x0FFF)+(val&0x0FFF) > 0x0FFF
	c.Reg.SetFlag(registers.FlagN, false)
	c.Reg.SetFlag(registers.FlagH, h)
	c.Reg.SetFlag(registers.FlagC, sum > 0xFFFF)
	c.Reg.SetHL(uint16(sum))
}

// addSPSigned implements both ADD SP,r8 and LDHL SP+r8: the displacement
// is sign-extended, and flags are computed on the low byte as if it were
// an 8-bit addition (Z and N are always cleared; H/C come from bits 3/7).
func (c *CPU) addSPSigned(disp int8) uint16 {
	sp := c.Reg.SP
	d := uint16(int16(disp))
	result := sp + d
	h := (sp&0x0F)+(d&0x0F) > 0x0F
	cy := (sp&0xFF)+(d&0xFF) > 0xFF
	c.Reg.SetFlags(false, false, h, cy)
	return result
}
