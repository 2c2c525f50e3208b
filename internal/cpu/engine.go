package cpu

import "github.com/ochs-dev/gbcore/internal/interrupt"

const haltIdleCycles = 4

// RunForCycles executes whole instructions until at least n machine cycles
// have elapsed, then returns the number actually consumed. It sequences
// decode -> execute -> IME-ladder step -> Bus.AdvanceCycles -> interrupt
// dispatch exactly as spec.md §4.5/§5 orders it, and returns immediately on
// a fatal decode error (UnknownOpcodeError/UnknownCBOpcodeError) or, if
// IdleLoopThreshold is set, on IdleLoopError.
func (c *CPU) RunForCycles(n int) (int, error) {
	consumed := 0
	for consumed < n {
		if c.Halted {
			// Run the full interrupt check on the waking iteration itself
			// (spec.md §4.5 step 1): un-HALT and, if IME is set, dispatch the
			// vector before any instruction fetches. Dispatching here rather
			// than after a post-HALT Step() is what keeps the pushed return
			// address pointing at the instruction after HALT instead of past
			// it.
			if dispatchCycles, dispatched := c.serviceInterrupt(); dispatched {
				c.Bus.AdvanceCycles(dispatchCycles)
				consumed += dispatchCycles
				continue
			}
			if c.Halted {
				c.Bus.AdvanceCycles(haltIdleCycles)
				consumed += haltIdleCycles
				continue
			}
			// Woken with IME off: no vector to service, fall through and
			// execute the instruction after HALT normally.
		}

		if c.IdleLoopThreshold > 0 {
			if c.Reg.PC == c.lastPC {
				c.idleStreak++
				if c.idleStreak >= c.IdleLoopThreshold {
					return consumed, &IdleLoopError{PC: c.Reg.PC}
				}
			} else {
				c.idleStreak = 0
			}
			c.lastPC = c.Reg.PC
		}

		cycles, err := c.Step()
		if err != nil {
			return consumed, err
		}

		c.stepIME()

		c.Bus.AdvanceCycles(cycles)
		consumed += cycles

		if dispatchCycles, dispatched := c.serviceInterrupt(); dispatched {
			c.Bus.AdvanceCycles(dispatchCycles)
			consumed += dispatchCycles
		}
	}
	return consumed, nil
}

// stepIME advances the delayed-enable ladder by exactly one instruction
// boundary: EI's effect takes hold only after the instruction following it.
func (c *CPU) stepIME() {
	switch c.imeNext {
	case imeArmedThisInstr:
		c.imeNext = imeEnableAfterNext
	case imeEnableAfterNext:
		c.IME = true
		c.imeNext = imeIdle
	}
}

// serviceInterrupt implements the interrupt controller of spec.md §4.6: it
// un-halts unconditionally on any pending interrupt, but only dispatches
// (stack push + vector jump) when IME is set, and charges the 20-cycle
// dispatch cost to the caller.
func (c *CPU) serviceInterrupt() (cycles int, dispatched bool) {
	bit, ok := interrupt.Pending(c.Bus.IE(), c.Bus.IF())
	if !ok {
		return 0, false
	}
	c.Halted = false
	if !c.IME {
		return 0, false
	}

	c.IME = false
	c.Bus.ClearInterrupt(bit)
	c.push16(c.Reg.PC)
	c.Reg.PC = interrupt.VectorFor(bit)
	return 20, true
}
