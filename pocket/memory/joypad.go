package memory

import "github.com/tiago/go-pocket/pocket/bit"

// JoypadKey represents a key on the Gameboy joypad.
type JoypadKey uint8

const (
	JoypadA JoypadKey = iota
	JoypadB
	JoypadSelect
	JoypadStart
	JoypadRight
	JoypadLeft
	JoypadUp
	JoypadDown
)

// Joypad models the P1 register: bits 4-5 select a button group (active
// low), bits 0-3 mirror the selected group's state. Bits 6-7 always read 1.
//
// The button and d-pad nibbles are tracked separately from the register so a
// selection write can recompute the low bits, and so 1->0 transitions on the
// visible nibble can raise the joypad interrupt.
type joypad struct {
	buttons uint8 // A, B, Select, Start on bits 0-3, active low
	dpad    uint8 // Right, Left, Up, Down on bits 0-3, active low
	p1      uint8
}

func newJoypad() joypad {
	return joypad{
		buttons: 0x0F,
		dpad:    0x0F,
		p1:      0xCF,
	}
}

func (j *joypad) read() uint8 {
	return j.p1
}

// writeSelect stores the selection bits; the visible nibble is refreshed by
// the JoypadUpdate side event.
func (j *joypad) writeSelect(value uint8) {
	j.p1 = (j.p1 & 0b1100_1111) | (value & 0b0011_0000)
}

// recompute refreshes P1's low nibble from the selected button group and
// reports whether any visible bit dropped from 1 to 0.
func (j *joypad) recompute() (fellEdge bool) {
	old := j.p1 & 0x0F

	result := uint8(0b1100_0000)
	result |= j.p1 & 0b0011_0000

	selectDpad := !bit.IsSet(4, j.p1)
	selectButtons := !bit.IsSet(5, j.p1)

	switch {
	case selectButtons && !selectDpad:
		result |= j.buttons & 0x0F
	case selectDpad && !selectButtons:
		result |= j.dpad & 0x0F
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad & 0x0F
	default:
		result |= 0x0F
	}

	j.p1 = result
	return old&^(result&0x0F) != 0
}

func (j *joypad) press(key JoypadKey) {
	switch key {
	case JoypadA:
		j.buttons = bit.Reset(0, j.buttons)
	case JoypadB:
		j.buttons = bit.Reset(1, j.buttons)
	case JoypadSelect:
		j.buttons = bit.Reset(2, j.buttons)
	case JoypadStart:
		j.buttons = bit.Reset(3, j.buttons)
	case JoypadRight:
		j.dpad = bit.Reset(0, j.dpad)
	case JoypadLeft:
		j.dpad = bit.Reset(1, j.dpad)
	case JoypadUp:
		j.dpad = bit.Reset(2, j.dpad)
	case JoypadDown:
		j.dpad = bit.Reset(3, j.dpad)
	}
}

func (j *joypad) release(key JoypadKey) {
	switch key {
	case JoypadA:
		j.buttons = bit.Set(0, j.buttons)
	case JoypadB:
		j.buttons = bit.Set(1, j.buttons)
	case JoypadSelect:
		j.buttons = bit.Set(2, j.buttons)
	case JoypadStart:
		j.buttons = bit.Set(3, j.buttons)
	case JoypadRight:
		j.dpad = bit.Set(0, j.dpad)
	case JoypadLeft:
		j.dpad = bit.Set(1, j.dpad)
	case JoypadUp:
		j.dpad = bit.Set(2, j.dpad)
	case JoypadDown:
		j.dpad = bit.Set(3, j.dpad)
	}
}
