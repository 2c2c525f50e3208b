package cpu

// registerAlu16 fills in the base table's 16-bit arithmetic family:
// INC/DEC rr, ADD HL,rr, and ADD SP,r8.
func registerAlu16() {
	pairs := [4]reg16{pairBC, pairDE, pairHL, pairSP}
	for i, p := range pairs {
		incOp := uint8(0x03) + uint8(i)*0x10
		decOp := uint8(0x0B) + uint8(i)*0x10
		addOp := uint8(0x09) + uint8(i)*0x10
		pair := p
		opcodeTable[incOp] = func(c *CPU) int {
			c.set16(pair, c.get16(pair)+1)
			return 8
		}
		opcodeTable[decOp] = func(c *CPU) int {
			c.set16(pair, c.get16(pair)-1)
			return 8
		}
		opcodeTable[addOp] = func(c *CPU) int {
			c.addHL16(c.get16(pair))
			return 8
		}
	}

	opcodeTable[0xE8] = func(c *CPU) int {
		disp := int8(c.fetch8())
		c.Reg.SP = c.addSPSigned(disp)
		return 16
	}
}
