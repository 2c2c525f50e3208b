package cpu

// registerControl fills in the base table's control-flow family: JP, JR,
// CALL, RET/RETI, and RST. Conditional forms compute their own
// taken/not-taken cycle cost instead of returning an Optional override, per
// the REDESIGN FLAGS.
func registerControl() {
	opcodeTable[0xC3] = func(c *CPU) int { // JP nn
		c.Reg.PC = c.fetch16()
		return 16
	}
	opcodeTable[0xE9] = func(c *CPU) int { // JP (HL) - no memory read, just a register copy
		c.Reg.PC = c.Reg.HL()
		return 4
	}

	condJumps := [4]uint8{0xC2, 0xCA, 0xD2, 0xDA}
	conds := [4]cond{condNZ, condZ, condNC, condC}
	for i, op := range condJumps {
		cc := conds[i]
		opcodeTable[op] = func(c *CPU) int {
			target := c.fetch16()
			if c.condTrue(cc) {
				c.Reg.PC = target
				return 16
			}
			return 12
		}
	}

	opcodeTable[0x18] = func(c *CPU) int { // JR r8
		disp := int8(c.fetch8())
		c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
		return 12
	}

	condRel := [4]uint8{0x20, 0x28, 0x30, 0x38}
	for i, op := range condRel {
		cc := conds[i]
		opcodeTable[op] = func(c *CPU) int {
			disp := int8(c.fetch8())
			if c.condTrue(cc) {
				c.Reg.PC = uint16(int32(c.Reg.PC) + int32(disp))
				return 12
			}
			return 8
		}
	}

	opcodeTable[0xCD] = func(c *CPU) int { // CALL nn
		target := c.fetch16()
		c.push16(c.Reg.PC)
		c.Reg.PC = target
		return 24
	}

	condCall := [4]uint8{0xC4, 0xCC, 0xD4, 0xDC}
	for i, op := range condCall {
		cc := conds[i]
		opcodeTable[op] = func(c *CPU) int {
			target := c.fetch16()
			if c.condTrue(cc) {
				c.push16(c.Reg.PC)
				c.Reg.PC = target
				return 24
			}
			return 12
		}
	}

	opcodeTable[0xC9] = func(c *CPU) int { // RET
		c.Reg.PC = c.pop16()
		return 16
	}
	opcodeTable[0xD9] = func(c *CPU) int { // RETI
		c.Reg.PC = c.pop16()
		c.IME = true
		c.imeNext = imeIdle
		return 16
	}

	condRet := [4]uint8{0xC0, 0xC8, 0xD0, 0xD8}
	for i, op := range condRet {
		cc := conds[i]
		opcodeTable[op] = func(c *CPU) int {
			if c.condTrue(cc) {
				c.Reg.PC = c.pop16()
				return 20
			}
			return 8
		}
	}

	rstOpcodes := [8]uint8{0xC7, 0xCF, 0xD7, 0xDF, 0xE7, 0xEF, 0xF7, 0xFF}
	for i, op := range rstOpcodes {
		vector := uint16(i) * 8
		opcodeTable[op] = func(c *CPU) int {
			c.push16(c.Reg.PC)
			c.Reg.PC = vector
			return 16
		}
	}
}
