// Package registers implements the Sharp LR35902 register file: eight
// 8-bit registers with 16-bit paired views, and the four flag bits packed
// into F's high nibble.
package registers

// Flag bits, packed into the high nibble of F. The low nibble of F always
// reads back as zero.
const (
	FlagZ uint8 = 1 << 7 // Zero
	FlagN uint8 = 1 << 6 // Subtract
	FlagH uint8 = 1 << 5 // Half-carry
	FlagC uint8 = 1 << 4 // Carry
)

// File is the Sharp LR35902 register file: A, F, B, C, D, E, H, L, SP, PC.
type File struct {
	A, F uint8
	B, C uint8
	D, E uint8
	H, L uint8
	SP   uint16
	PC   uint16
}

// Reset sets the post-boot register values specified for this core: A=0x11
// with Z set, DE=0xFF56, HL=0x000D, SP=0xFFFE, PC=0x0100. These differ from
// the usual DMG boot-ROM handoff values; they are the values this core's
// spec prescribes for CPU construction, so conformance tests built against
// it agree on a single fixed starting state.
func (f *File) Reset() {
	*f = File{
		A:  0x11,
		F:  FlagZ,
		B:  0x00,
		C:  0x00,
		D:  0xFF,
		E:  0x56,
		H:  0x00,
		L:  0x0D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
}

// --- 16-bit paired views ---

func (f *File) AF() uint16 { return uint16(f.A)<<8 | uint16(f.F&0xF0) }
func (f *File) BC() uint16 { return uint16(f.B)<<8 | uint16(f.C) }
func (f *File) DE() uint16 { return uint16(f.D)<<8 | uint16(f.E) }
func (f *File) HL() uint16 { return uint16(f.H)<<8 | uint16(f.L) }

func (f *File) SetAF(v uint16) {
	f.A = uint8(v >> 8)
	f.F = uint8(v) & 0xF0 // low nibble of F is never set
}

func (f *File) SetBC(v uint16) {
	f.B = uint8(v >> 8)
	f.C = uint8(v)
}

func (f *File) SetDE(v uint16) {
	f.D = uint8(v >> 8)
	f.E = uint8(v)
}

func (f *File) SetHL(v uint16) {
	f.H = uint8(v >> 8)
	f.L = uint8(v)
}

// --- Flags ---

// GetFlag reports whether the given flag bit is set.
func (f *File) GetFlag(flag uint8) bool {
	return f.F&flag != 0
}

// SetFlag sets or clears the given flag bit.
func (f *File) SetFlag(flag uint8, set bool) {
	if set {
		f.F |= flag
	} else {
		f.F &^= flag
	}
}

// SetFlags sets all four flags in one call, as most opcode handlers need to.
func (f *File) SetFlags(z, n, h, c bool) {
	var v uint8
	if z {
		v |= FlagZ
	}
	if n {
		v |= FlagN
	}
	if h {
		v |= FlagH
	}
	if c {
		v |= FlagC
	}
	f.F = v
}

// FlagsByte packs the four flags into a byte with the F-register layout
// (bits 7/6/5/4), low nibble zero.
func FlagsByte(z, n, h, c bool) uint8 {
	var v uint8
	if z {
		v |= FlagZ
	}
	if n {
		v |= FlagN
	}
	if h {
		v |= FlagH
	}
	if c {
		v |= FlagC
	}
	return v
}
