// Package cpu implements the Sharp LR35902 instruction decoder, dispatcher,
// and execution engine: the outer fetch/decode/execute/interrupt loop that
// drives the bus described in internal/bus.
package cpu

import (
	"fmt"

	"github.com/ochs-dev/gbcore/internal/bus"
	"github.com/ochs-dev/gbcore/internal/registers"
)

// imeState models the one-instruction delayed effect of EI, as an explicit
// three-state ladder instead of the two independent booleans the teacher
// and pyboy both use.
type imeState uint8

const (
	imeIdle imeState = iota
	imeArmedThisInstr
	imeEnableAfterNext
)

// CPU is the engine described in spec.md §4.5/§4.6: it owns the register
// file, drives the bus, and services interrupts between instructions.
type CPU struct {
	Reg registers.File
	Bus *bus.Bus

	IME     bool
	imeNext imeState

	Halted bool
	// Stopped marks that STOP (0x10) has executed; the core does not model
	// waking from STOP (that requires joypad input, out of scope), so this
	// is exposed for hosts/tests to observe but never cleared internally.
	Stopped bool

	// IdleLoopThreshold, when non-zero, makes RunForCycles return
	// an *IdleLoopError once the same PC has been fetched this many
	// consecutive times. Off (0) by default; the CLI's --debug flag turns
	// it on. See spec.md §7.
	IdleLoopThreshold int

	lastPC     uint16
	idleStreak int
}

// New returns a CPU wired to bus and reset to the post-boot register state
// described in spec.md §3.
func New(b *bus.Bus) *CPU {
	c := &CPU{Bus: b}
	c.Reg.Reset()
	return c
}

// LoadProgram copies data into the bus's ROM image. Callers that want
// execution to begin somewhere other than the default post-boot PC/SP
// should follow with SetStart.
func (c *CPU) LoadProgram(data []byte) {
	c.Bus.LoadROM(data)
}

// SetStart overrides PC and SP, for hosts or tests that don't want the
// spec's default post-boot entry point.
func (c *CPU) SetStart(pc, sp uint16) {
	c.Reg.PC = pc
	c.Reg.SP = sp
}

// State is a snapshot of registers and flags, the CPU's public surface per
// spec.md §6.
type State struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	Z, N, Hc, Cy           bool
	IME                    bool
	Halted                 bool
}

// State returns a snapshot of the current register and flag state.
func (c *CPU) State() State {
	return State{
		A: c.Reg.A, F: c.Reg.F,
		B: c.Reg.B, C: c.Reg.C,
		D: c.Reg.D, E: c.Reg.E,
		H: c.Reg.H, L: c.Reg.L,
		SP: c.Reg.SP, PC: c.Reg.PC,
		Z:  c.Reg.GetFlag(registers.FlagZ),
		N:  c.Reg.GetFlag(registers.FlagN),
		Hc: c.Reg.GetFlag(registers.FlagH),
		Cy: c.Reg.GetFlag(registers.FlagC),

		IME:    c.IME,
		Halted: c.Halted,
	}
}

// BusRead and BusWrite expose the indirect bus access named in spec.md §6.
func (c *CPU) BusRead(addr uint16) uint8     { return c.Bus.Read(addr) }
func (c *CPU) BusWrite(addr uint16, v uint8) { c.Bus.Write(addr, v) }

// fetch8 reads the byte at PC and advances PC by one.
func (c *CPU) fetch8() uint8 {
	v := c.Bus.Read(c.Reg.PC)
	c.Reg.PC++
	return v
}

// fetch16 reads a little-endian 16-bit value at PC and advances PC by two.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return uint16(hi)<<8 | uint16(lo)
}

// push16 pushes a 16-bit value high-byte-first, pre-decrementing SP for
// each byte, matching real hardware and spec.md §4.6 step 5.
func (c *CPU) push16(v uint16) {
	c.Reg.SP--
	c.Bus.Write(c.Reg.SP, uint8(v>>8))
	c.Reg.SP--
	c.Bus.Write(c.Reg.SP, uint8(v))
}

// pop16 pops a 16-bit value low-byte-first.
func (c *CPU) pop16() uint16 {
	lo := c.Bus.Read(c.Reg.SP)
	c.Reg.SP++
	hi := c.Bus.Read(c.Reg.SP)
	c.Reg.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// UnknownOpcodeError reports a base opcode byte with no dispatch-table
// entry. Per spec.md §7 this is fatal: no real ROM should hit one of the
// 11 undefined slots.
type UnknownOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// UnknownCBOpcodeError is UnknownOpcodeError's counterpart for the
// 0xCB-prefixed table. Every one of the 256 CB slots is defined, so this
// should be unreachable; it exists to satisfy spec.md §7's taxonomy and to
// catch a malformed table at test time.
type UnknownCBOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnknownCBOpcodeError) Error() string {
	return fmt.Sprintf("unknown CB opcode 0x%02X at PC=0x%04X", e.Opcode, e.PC)
}

// IdleLoopError is returned by RunForCycles when IdleLoopThreshold is set
// and the same PC has been fetched that many times in a row.
type IdleLoopError struct {
	PC uint16
}

func (e *IdleLoopError) Error() string {
	return fmt.Sprintf("idle loop detected at PC=0x%04X", e.PC)
}
