package cpu

import "github.com/ochs-dev/gbcore/internal/registers"

// shiftOp computes a rotate/shift family result and its outgoing carry bit;
// used for the eight CB 0x00-0x3F operations.
type shiftOp func(v uint8, carryIn bool) (result uint8, carryOut bool)

func rlcOp(v uint8, _ bool) (uint8, bool) {
	cy := v&0x80 != 0
	return v<<1 | v>>7, cy
}

func rrcOp(v uint8, _ bool) (uint8, bool) {
	cy := v&0x01 != 0
	return v>>1 | v<<7, cy
}

func rlOp(v uint8, carryIn bool) (uint8, bool) {
	cy := v&0x80 != 0
	in := uint8(0)
	if carryIn {
		in = 1
	}
	return v<<1 | in, cy
}

func rrOp(v uint8, carryIn bool) (uint8, bool) {
	cy := v&0x01 != 0
	in := uint8(0)
	if carryIn {
		in = 0x80
	}
	return v>>1 | in, cy
}

func slaOp(v uint8, _ bool) (uint8, bool) {
	cy := v&0x80 != 0
	return v << 1, cy
}

func sraOp(v uint8, _ bool) (uint8, bool) {
	cy := v&0x01 != 0
	return v>>1 | v&0x80, cy // arithmetic: sign bit (bit 7) is preserved
}

func srlOp(v uint8, _ bool) (uint8, bool) {
	cy := v&0x01 != 0
	return v >> 1, cy
}

func swapOp(v uint8, _ bool) (uint8, bool) {
	return v<<4 | v>>4, false
}

// registerCB fills in the full 256-entry 0xCB-prefixed table: rotate/shift
// (0x00-0x3F), BIT (0x40-0x7F), RES (0x80-0xBF), SET (0xC0-0xFF).
func registerCB() {
	shiftOps := [8]shiftOp{rlcOp, rrcOp, rlOp, rrOp, slaOp, sraOp, swapOp, srlOp}
	for group, op := range shiftOps {
		fn := op
		for r := reg8(0); r <= regA; r++ {
			opcode := uint8(group)*8 + uint8(r)
			reg := r
			cbTable[opcode] = func(c *CPU) int {
				carryIn := c.Reg.GetFlag(registers.FlagC)
				result, cy := fn(c.get8(reg), carryIn)
				c.set8(reg, result)
				c.Reg.SetFlags(result == 0, false, false, cy)
				if reg == regHLInd {
					return 16
				}
				return 8
			}
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for r := reg8(0); r <= regA; r++ {
			opcode := uint8(0x40) + bit*8 + uint8(r)
			b, reg := bit, r
			cbTable[opcode] = func(c *CPU) int {
				v := c.get8(reg)
				c.Reg.SetFlag(registers.FlagZ, v&(1<<b) == 0)
				c.Reg.SetFlag(registers.FlagN, false)
				c.Reg.SetFlag(registers.FlagH, true)
				if reg == regHLInd {
					return 12
				}
				return 8
			}
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for r := reg8(0); r <= regA; r++ {
			opcode := uint8(0x80) + bit*8 + uint8(r)
			b, reg := bit, r
			cbTable[opcode] = func(c *CPU) int {
				c.set8(reg, c.get8(reg)&^(1<<b))
				if reg == regHLInd {
					return 16
				}
				return 8
			}
		}
	}

	for bit := uint8(0); bit < 8; bit++ {
		for r := reg8(0); r <= regA; r++ {
			opcode := uint8(0xC0) + bit*8 + uint8(r)
			b, reg := bit, r
			cbTable[opcode] = func(c *CPU) int {
				c.set8(reg, c.get8(reg)|1<<b)
				if reg == regHLInd {
					return 16
				}
				return 8
			}
		}
	}
}
