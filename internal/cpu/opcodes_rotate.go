package cpu

import "github.com/ochs-dev/gbcore/internal/registers"

// registerRotateA fills in the four non-CB accumulator rotates and the
// four flag/accumulator misc ops (DAA, CPL, SCF, CCF). The non-CB rotates
// always clear Z — spec.md is definite about this where the source
// flagged it as uncertain (see DESIGN.md).
func registerRotateA() {
	opcodeTable[0x07] = func(c *CPU) int { // RLCA
		a := c.Reg.A
		cy := a>>7 != 0
		c.Reg.A = a<<1 | a>>7
		c.Reg.SetFlags(false, false, false, cy)
		return 4
	}
	opcodeTable[0x17] = func(c *CPU) int { // RLA
		a := c.Reg.A
		oldCarry := uint8(0)
		if c.Reg.GetFlag(registers.FlagC) {
			oldCarry = 1
		}
		cy := a>>7 != 0
		c.Reg.A = a<<1 | oldCarry
		c.Reg.SetFlags(false, false, false, cy)
		return 4
	}
	opcodeTable[0x0F] = func(c *CPU) int { // RRCA
		a := c.Reg.A
		cy := a&1 != 0
		c.Reg.A = a>>1 | a<<7
		c.Reg.SetFlags(false, false, false, cy)
		return 4
	}
	opcodeTable[0x1F] = func(c *CPU) int { // RRA
		a := c.Reg.A
		oldCarry := uint8(0)
		if c.Reg.GetFlag(registers.FlagC) {
			oldCarry = 1
		}
		cy := a&1 != 0
		c.Reg.A = a>>1 | oldCarry<<7
		c.Reg.SetFlags(false, false, false, cy)
		return 4
	}

	opcodeTable[0x27] = func(c *CPU) int { // DAA
		a := c.Reg.A
		n := c.Reg.GetFlag(registers.FlagN)
		h := c.Reg.GetFlag(registers.FlagH)
		cy := c.Reg.GetFlag(registers.FlagC)
		var adjust uint8
		newCarry := cy
		if n {
			if h {
				adjust += 0x06
			}
			if cy {
				adjust += 0x60
			}
			a -= adjust
		} else {
			if h || a&0x0F > 0x09 {
				adjust += 0x06
			}
			if cy || a > 0x99 {
				adjust += 0x60
				newCarry = true
			}
			a += adjust
		}
		c.Reg.A = a
		c.Reg.SetFlag(registers.FlagZ, a == 0)
		c.Reg.SetFlag(registers.FlagH, false)
		c.Reg.SetFlag(registers.FlagC, newCarry)
		return 4
	}

	opcodeTable[0x2F] = func(c *CPU) int { // CPL
		c.Reg.A = ^c.Reg.A
		c.Reg.SetFlag(registers.FlagN, true)
		c.Reg.SetFlag(registers.FlagH, true)
		return 4
	}

	opcodeTable[0x37] = func(c *CPU) int { // SCF
		c.Reg.SetFlag(registers.FlagN, false)
		c.Reg.SetFlag(registers.FlagH, false)
		c.Reg.SetFlag(registers.FlagC, true)
		return 4
	}

	opcodeTable[0x3F] = func(c *CPU) int { // CCF
		c.Reg.SetFlag(registers.FlagN, false)
		c.Reg.SetFlag(registers.FlagH, false)
		c.Reg.SetFlag(registers.FlagC, !c.Reg.GetFlag(registers.FlagC))
		return 4
	}
}
