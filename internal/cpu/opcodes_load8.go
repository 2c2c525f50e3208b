package cpu

// registerLoad8 fills in the base table's 8-bit load family: register-to-
// register moves (0x40-0x7F, minus HALT's slot), immediate loads, and the
// (BC)/(DE)/(HL+)/(HL-)/(nn)/(0xFF00+n)/(0xFF00+C) memory forms.
func registerLoad8() {
	// LD r,r' - 0x40-0x7F, 8x8 grid of {dst}x{src}. 0x76 (dst=(HL),
	// src=(HL)) is HALT instead; registerMisc installs that slot.
	for dst := reg8(0); dst <= regA; dst++ {
		for src := reg8(0); src <= regA; src++ {
			if dst == regHLInd && src == regHLInd {
				continue
			}
			op := uint8(0x40) + uint8(dst)*8 + uint8(src)
			d, s := dst, src
			opcodeTable[op] = func(c *CPU) int {
				c.set8(d, c.get8(s))
				if d == regHLInd || s == regHLInd {
					return 8
				}
				return 4
			}
		}
	}

	// LD r,n - 0x06,0x0E,0x16,0x1E,0x26,0x2E,0x36,0x3E.
	for r := reg8(0); r <= regA; r++ {
		op := uint8(0x06) + uint8(r)*8
		dst := r
		opcodeTable[op] = func(c *CPU) int {
			n := c.fetch8()
			c.set8(dst, n)
			if dst == regHLInd {
				return 12
			}
			return 8
		}
	}

	opcodeTable[0x0A] = func(c *CPU) int { c.Reg.A = c.Bus.Read(c.Reg.BC()); return 8 }
	opcodeTable[0x1A] = func(c *CPU) int { c.Reg.A = c.Bus.Read(c.Reg.DE()); return 8 }
	opcodeTable[0x02] = func(c *CPU) int { c.Bus.Write(c.Reg.BC(), c.Reg.A); return 8 }
	opcodeTable[0x12] = func(c *CPU) int { c.Bus.Write(c.Reg.DE(), c.Reg.A); return 8 }

	opcodeTable[0x2A] = func(c *CPU) int {
		hl := c.Reg.HL()
		c.Reg.A = c.Bus.Read(hl)
		c.Reg.SetHL(hl + 1)
		return 8
	}
	opcodeTable[0x3A] = func(c *CPU) int {
		hl := c.Reg.HL()
		c.Reg.A = c.Bus.Read(hl)
		c.Reg.SetHL(hl - 1)
		return 8
	}
	opcodeTable[0x22] = func(c *CPU) int {
		hl := c.Reg.HL()
		c.Bus.Write(hl, c.Reg.A)
		c.Reg.SetHL(hl + 1)
		return 8
	}
	opcodeTable[0x32] = func(c *CPU) int {
		hl := c.Reg.HL()
		c.Bus.Write(hl, c.Reg.A)
		c.Reg.SetHL(hl - 1)
		return 8
	}

	opcodeTable[0xEA] = func(c *CPU) int { c.Bus.Write(c.fetch16(), c.Reg.A); return 16 }
	opcodeTable[0xFA] = func(c *CPU) int { c.Reg.A = c.Bus.Read(c.fetch16()); return 16 }

	opcodeTable[0xE0] = func(c *CPU) int {
		n := c.fetch8()
		c.Bus.Write(0xFF00+uint16(n), c.Reg.A)
		return 12
	}
	opcodeTable[0xF0] = func(c *CPU) int {
		n := c.fetch8()
		c.Reg.A = c.Bus.Read(0xFF00 + uint16(n))
		return 12
	}
	opcodeTable[0xE2] = func(c *CPU) int {
		c.Bus.Write(0xFF00+uint16(c.Reg.C), c.Reg.A)
		return 8
	}
	opcodeTable[0xF2] = func(c *CPU) int {
		c.Reg.A = c.Bus.Read(0xFF00 + uint16(c.Reg.C))
		return 8
	}
}
