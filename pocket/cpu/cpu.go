package cpu

import (
	"fmt"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/bit"
	"github.com/tiago/go-pocket/pocket/memory"
)

// Flag is one of the 4 flags kept in the high nibble of F.
type Flag uint8

const (
	zeroFlag      Flag = 0x80
	subFlag       Flag = 0x40
	halfCarryFlag Flag = 0x20
	carryFlag     Flag = 0x10
)

const (
	// cycles consumed by an interrupt dispatch
	interruptServiceCycles = 20
	// extra cycles when the dispatch also wakes the CPU from HALT
	haltWakeCycles = 4
)

// InvalidOpcodeError is the fatal fault raised when execution reaches an
// unassigned opcode.
type InvalidOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e InvalidOpcodeError) Error() string {
	return fmt.Sprintf("invalid opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

// CPU holds the full processor state: the eight 8-bit registers, SP/PC, the
// interrupt master enable and the HALT/STOP latches. The low nibble of F is
// forced to zero on every path that writes it.
type CPU struct {
	memory *memory.MMU

	a, f uint8
	b, c uint8
	d, e uint8
	h, l uint8
	sp   uint16
	pc   uint16

	ime     bool
	halted  bool
	stopped bool

	// two-step deferral latches: EI/DI take effect after the following
	// instruction completes
	eiDelay int
	diDelay int

	// cycle cost replayed while halted
	lastCycles int

	currentOpcode uint16
	fault         error
}

// New returns a CPU attached to the given memory unit, in the all-zero
// power-on state (bootstrap ROM execution starts at 0x0000).
func New(mem *memory.MMU) *CPU {
	return &CPU{
		memory:     mem,
		lastCycles: 4,
	}
}

// InitPostBootstrap loads the register state the bootstrap ROM leaves
// behind, for running without a boot image.
func (c *CPU) InitPostBootstrap() {
	c.setAF(0x01B0)
	c.setBC(0x0013)
	c.setDE(0x00D8)
	c.setHL(0x014D)
	c.sp = 0xFFFE
	c.pc = 0x0100
	c.ime = true
}

// Restart returns the CPU to the power-on state.
func (c *CPU) Restart() {
	*c = CPU{memory: c.memory, lastCycles: 4}
}

// GetPC returns the current program counter.
func (c *CPU) GetPC() uint16 {
	return c.pc
}

// GetSP returns the current stack pointer.
func (c *CPU) GetSP() uint16 {
	return c.sp
}

// GetA returns the accumulator, for debug displays and tests.
func (c *CPU) GetA() uint8 {
	return c.a
}

// IsStopped reports whether a STOP instruction suspended the CPU.
func (c *CPU) IsStopped() bool {
	return c.stopped
}

// Tick runs a single step: apply deferred EI/DI, service a pending
// interrupt, then fetch-decode-execute one instruction. It returns the
// cycles consumed. While halted with nothing pending it replays the last
// instruction's cost without touching any state.
func (c *CPU) Tick() (int, error) {
	pending := c.memory.Read(addr.IE) & c.memory.Read(addr.IF) & 0x1F

	wake := false
	if c.halted || c.stopped {
		if pending == 0 {
			return c.lastCycles, nil
		}
		c.halted = false
		c.stopped = false
		wake = true
	}

	if c.diDelay > 0 {
		c.diDelay--
		if c.diDelay == 0 {
			c.ime = false
		}
	}
	if c.eiDelay > 0 {
		c.eiDelay--
		if c.eiDelay == 0 {
			c.ime = true
		}
	}

	if c.ime && pending != 0 {
		cycles := c.serviceInterrupt(pending)
		if wake {
			cycles += haltWakeCycles
		}
		c.lastCycles = cycles
		return cycles, nil
	}

	// leaving the bootstrap ROM: mono devices flip the latch when execution
	// reaches the cartridge entry point
	if c.pc == 0x0100 && c.memory.BootstrapEnabled() && !c.memory.IsColor() {
		c.memory.PushSideEvent(memory.SideEvent{Type: memory.BootstrapDone})
	}

	op := c.readImmediate()
	c.currentOpcode = uint16(op)

	var cycles int
	if op == 0xCB {
		cb := c.readImmediate()
		c.currentOpcode = 0xCB00 | uint16(cb)
		cycles = opcodeCBMap[cb](c)
	} else {
		cycles = opcodeMap[op](c)
	}

	if c.fault != nil {
		return 0, c.fault
	}

	c.lastCycles = cycles
	return cycles, nil
}

// serviceInterrupt dispatches the lowest-numbered pending source: IME off,
// PC pushed high byte first, PC set to the fixed vector, IF bit cleared.
func (c *CPU) serviceInterrupt(pending uint8) int {
	for b := uint8(0); b < 5; b++ {
		if !bit.IsSet(b, pending) {
			continue
		}

		c.ime = false
		flags := c.memory.Read(addr.IF)
		c.memory.Write(addr.IF, bit.Reset(b, flags))

		c.pushStack(c.pc)
		c.pc = addr.Interrupt(1 << b).Vector()
		return interruptServiceCycles
	}
	return 0
}

func (c *CPU) invalidOpcode() int {
	c.fault = InvalidOpcodeError{Opcode: uint8(c.currentOpcode), PC: c.pc - 1}
	return 0
}

// register pair accessors; AF masks the unused flag bits on write

func (c *CPU) getAF() uint16 { return bit.Combine(c.a, c.f) }
func (c *CPU) getBC() uint16 { return bit.Combine(c.b, c.c) }
func (c *CPU) getDE() uint16 { return bit.Combine(c.d, c.e) }
func (c *CPU) getHL() uint16 { return bit.Combine(c.h, c.l) }

func (c *CPU) setAF(value uint16) {
	c.a = bit.High(value)
	c.f = bit.Low(value) & 0xF0
}

func (c *CPU) setBC(value uint16) {
	c.b = bit.High(value)
	c.c = bit.Low(value)
}

func (c *CPU) setDE(value uint16) {
	c.d = bit.High(value)
	c.e = bit.Low(value)
}

func (c *CPU) setHL(value uint16) {
	c.h = bit.High(value)
	c.l = bit.Low(value)
}

// flag helpers

func (c *CPU) setFlag(flag Flag) {
	c.f |= uint8(flag)
}

func (c *CPU) resetFlag(flag Flag) {
	c.f &^= uint8(flag)
}

func (c *CPU) isSetFlag(flag Flag) bool {
	return c.f&uint8(flag) != 0
}

func (c *CPU) setFlagToCondition(flag Flag, condition bool) {
	if condition {
		c.setFlag(flag)
	} else {
		c.resetFlag(flag)
	}
}

func (c *CPU) flagToBit(flag Flag) uint8 {
	if c.isSetFlag(flag) {
		return 1
	}
	return 0
}

// operand fetch

func (c *CPU) readImmediate() uint8 {
	value := c.memory.Read(c.pc)
	c.pc++
	return value
}

func (c *CPU) readImmediateWord() uint16 {
	low := c.readImmediate()
	high := c.readImmediate()
	return bit.Combine(high, low)
}

func (c *CPU) readHL() uint8 {
	return c.memory.Read(c.getHL())
}

func (c *CPU) writeHL(value uint8) {
	c.memory.Write(c.getHL(), value)
}
