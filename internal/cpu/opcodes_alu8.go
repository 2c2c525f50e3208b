package cpu

import "github.com/ochs-dev/gbcore/internal/registers"

// registerAlu8 fills in the base table's 8-bit arithmetic-on-A family
// (0x80-0xBF plus the 0xC6/0xCE/... immediate forms) and the per-register
// INC/DEC family.
func registerAlu8() {
	// 0x80-0xBF: eight operations (ADD,ADC,SUB,SBC,AND,XOR,OR,CP), each
	// over the eight reg8 operands in order.
	ops := []func(c *CPU, v uint8){
		func(c *CPU, v uint8) { c.aluAdd(v, 0) },
		func(c *CPU, v uint8) {
			cy := uint8(0)
			if c.Reg.GetFlag(registers.FlagC) {
				cy = 1
			}
			c.aluAdd(v, cy)
		},
		func(c *CPU, v uint8) { c.Reg.A = c.aluSub(v, 0) },
		func(c *CPU, v uint8) {
			cy := uint8(0)
			if c.Reg.GetFlag(registers.FlagC) {
				cy = 1
			}
			c.Reg.A = c.aluSub(v, cy)
		},
		func(c *CPU, v uint8) { c.aluAnd(v) },
		func(c *CPU, v uint8) { c.aluXor(v) },
		func(c *CPU, v uint8) { c.aluOr(v) },
		func(c *CPU, v uint8) { c.aluSub(v, 0) }, // CP: flags only, A unchanged
	}

	for group, op := range ops {
		fn := op
		for src := reg8(0); src <= regA; src++ {
			opcode := uint8(0x80) + uint8(group)*8 + uint8(src)
			s := src
			opcodeTable[opcode] = func(c *CPU) int {
				fn(c, c.get8(s))
				if s == regHLInd {
					return 8
				}
				return 4
			}
		}
	}

	// Immediate forms: ADD,ADC,SUB,SBC,AND,XOR,OR,CP A,d8.
	immOpcodes := [8]uint8{0xC6, 0xCE, 0xD6, 0xDE, 0xE6, 0xEE, 0xF6, 0xFE}
	for group, opcode := range immOpcodes {
		fn := ops[group]
		opcodeTable[opcode] = func(c *CPU) int {
			fn(c, c.fetch8())
			return 8
		}
	}

	// INC r / DEC r, including (HL). Opcodes follow the same 8*r+base
	// pattern as the immediate loads: INC at 0x04+8r, DEC at 0x05+8r.
	for r := reg8(0); r <= regA; r++ {
		reg := r
		incOp := uint8(0x04) + uint8(r)*8
		decOp := uint8(0x05) + uint8(r)*8
		opcodeTable[incOp] = func(c *CPU) int {
			c.set8(reg, c.incVal(c.get8(reg)))
			if reg == regHLInd {
				return 12
			}
			return 4
		}
		opcodeTable[decOp] = func(c *CPU) int {
			c.set8(reg, c.decVal(c.get8(reg)))
			if reg == regHLInd {
				return 12
			}
			return 4
		}
	}
}
