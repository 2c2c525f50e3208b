package cpu

// registerLoad16 fills in the base table's 16-bit load and stack-transfer
// family: immediate pair loads, LD (nn),SP, SP<->HL moves, LDHL SP+r8, and
// PUSH/POP.
func registerLoad16() {
	pairs := [4]reg16{pairBC, pairDE, pairHL, pairSP}
	for i, p := range pairs {
		op := uint8(0x01) + uint8(i)*0x10
		pair := p
		opcodeTable[op] = func(c *CPU) int {
			c.set16(pair, c.fetch16())
			return 12
		}
	}

	opcodeTable[0x08] = func(c *CPU) int {
		addr := c.fetch16()
		sp := c.Reg.SP
		c.Bus.Write(addr, uint8(sp))
		c.Bus.Write(addr+1, uint8(sp>>8))
		return 20
	}

	opcodeTable[0xF9] = func(c *CPU) int {
		c.Reg.SP = c.Reg.HL()
		return 8
	}

	opcodeTable[0xF8] = func(c *CPU) int {
		disp := int8(c.fetch8())
		c.Reg.SetHL(c.addSPSigned(disp))
		return 12
	}

	stackPairs := [4]reg16Stack{stackBC, stackDE, stackHL, stackAF}
	for i, p := range stackPairs {
		push := uint8(0xC5) + uint8(i)*0x10
		pop := uint8(0xC1) + uint8(i)*0x10
		pair := p
		opcodeTable[push] = func(c *CPU) int {
			c.push16(c.get16Stack(pair))
			return 16
		}
		opcodeTable[pop] = func(c *CPU) int {
			c.set16Stack(pair, c.pop16())
			return 12
		}
	}
}
