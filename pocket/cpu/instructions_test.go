package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tiago/go-pocket/pocket/memory"
)

func TestCPU_stack(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	cpu.sp = 0xFFFE
	cpu.pushStack(0x0153)

	// high byte is pushed first
	assert.Equal(t, uint16(0xFFFC), cpu.sp)
	assert.Equal(t, uint8(0x01), mmu.Read(0xFFFD))
	assert.Equal(t, uint8(0x53), mmu.Read(0xFFFC))

	popped := cpu.popStack()

	assert.Equal(t, uint16(0x0153), popped)
	assert.Equal(t, uint16(0xFFFE), cpu.sp)
}

func TestCPU_inc(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	testCases := []struct {
		desc  string
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "increases", arg: 0x0A, want: 0x0B},
		{desc: "sets zero flag", arg: 0xFF, want: 0, flags: zeroFlag | halfCarryFlag},
		{desc: "sets half carry flag", arg: 0x0F, want: 0x10, flags: halfCarryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.arg
			cpu.inc(&cpu.a)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestCPU_dec(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	testCases := []struct {
		desc  string
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "decreases", arg: 0x0A, want: 0x09, flags: subFlag},
		{desc: "sets half carry flag", arg: 0, want: 0xFF, flags: subFlag | halfCarryFlag},
		{desc: "sets zero flag", arg: 0x01, want: 0, flags: subFlag | zeroFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.arg
			cpu.dec(&cpu.a)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equal(t, uint8(tC.flags), cpu.f)
		})
	}
}

func TestCPU_addToA(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	testCases := []struct {
		desc  string
		a     uint8
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "adds", a: 0x01, arg: 0x02, want: 0x03},
		{desc: "full carry chain", a: 0x3A, arg: 0xC6, want: 0x00, flags: zeroFlag | halfCarryFlag | carryFlag},
		{desc: "half carry only", a: 0x0F, arg: 0x01, want: 0x10, flags: halfCarryFlag},
		{desc: "carry only", a: 0xF0, arg: 0x20, want: 0x10, flags: carryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.a
			cpu.addToA(tC.arg)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equalf(t, uint8(tC.flags), cpu.f, "flags don't match")
		})
	}
}

func TestCPU_adcToA(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	cpu.f = 0
	cpu.setFlag(carryFlag)
	cpu.a = 0x0F
	cpu.adcToA(0x00)

	assert.Equal(t, uint8(0x10), cpu.a)
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))
}

func TestCPU_sub(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	testCases := []struct {
		desc  string
		a     uint8
		arg   uint8
		want  uint8
		flags Flag
	}{
		{desc: "subtracts", a: 0x05, arg: 0x03, want: 0x02, flags: subFlag},
		{desc: "sets zero", a: 0x05, arg: 0x05, want: 0x00, flags: subFlag | zeroFlag},
		{desc: "borrows", a: 0x00, arg: 0x01, want: 0xFF, flags: subFlag | halfCarryFlag | carryFlag},
		{desc: "half borrow", a: 0x10, arg: 0x01, want: 0x0F, flags: subFlag | halfCarryFlag},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cpu.f = 0
			cpu.a = tC.a
			cpu.sub(tC.arg)
			assert.Equal(t, tC.want, cpu.a)
			assert.Equalf(t, uint8(tC.flags), cpu.f, "flags don't match")
		})
	}
}

func TestCPU_sbc(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	cpu.f = 0
	cpu.setFlag(carryFlag)
	cpu.a = 0x10
	cpu.sbc(0x0F)

	assert.Equal(t, uint8(0x00), cpu.a)
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestCPU_logic(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	t.Run("and sets half carry", func(t *testing.T) {
		cpu.f = 0
		cpu.a = 0xF0
		cpu.and(0x0F)
		assert.Equal(t, uint8(0x00), cpu.a)
		assert.Equal(t, uint8(zeroFlag|halfCarryFlag), cpu.f)
	})

	t.Run("or clears other flags", func(t *testing.T) {
		cpu.f = 0xF0
		cpu.a = 0xF0
		cpu.or(0x0F)
		assert.Equal(t, uint8(0xFF), cpu.a)
		assert.Equal(t, uint8(0), cpu.f)
	})

	t.Run("xor with itself zeroes A", func(t *testing.T) {
		cpu.f = 0
		cpu.a = 0xAA
		cpu.xor(0xAA)
		assert.Equal(t, uint8(0x00), cpu.a)
		assert.Equal(t, uint8(zeroFlag), cpu.f)
	})

	t.Run("cp leaves A unchanged", func(t *testing.T) {
		cpu.f = 0
		cpu.a = 0x42
		cpu.cp(0x42)
		assert.Equal(t, uint8(0x42), cpu.a)
		assert.True(t, cpu.isSetFlag(zeroFlag))
	})
}

func TestCPU_addToHL(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	cpu.f = 0
	cpu.setFlag(zeroFlag)
	cpu.setHL(0x8A23)
	cpu.setBC(0x0605)
	cpu.addToHL(cpu.getBC())

	assert.Equal(t, uint16(0x9028), cpu.getHL())
	assert.True(t, cpu.isSetFlag(halfCarryFlag))
	assert.False(t, cpu.isSetFlag(carryFlag))
	assert.False(t, cpu.isSetFlag(subFlag))
	// Z is untouched by 16-bit adds
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestCPU_addSignedToSP(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	t.Run("positive offset", func(t *testing.T) {
		cpu.f = 0xF0
		cpu.sp = 0xFFF8
		result := cpu.addSignedToSP(0x08)
		assert.Equal(t, uint16(0x0000), result)
		assert.False(t, cpu.isSetFlag(zeroFlag))
		assert.False(t, cpu.isSetFlag(subFlag))
		assert.True(t, cpu.isSetFlag(halfCarryFlag))
		assert.True(t, cpu.isSetFlag(carryFlag))
	})

	t.Run("negative offset keeps unsigned flag rule", func(t *testing.T) {
		cpu.f = 0
		cpu.sp = 0x0001
		result := cpu.addSignedToSP(0xFF) // -1
		assert.Equal(t, uint16(0x0000), result)
		// low byte 0x01 + 0xFF carries
		assert.True(t, cpu.isSetFlag(carryFlag))
		assert.True(t, cpu.isSetFlag(halfCarryFlag))
	})
}

func TestCPU_rotates(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	t.Run("rlc", func(t *testing.T) {
		cpu.f = 0
		cpu.b = 0x80
		cpu.rlc(&cpu.b)
		assert.Equal(t, uint8(0x01), cpu.b)
		assert.True(t, cpu.isSetFlag(carryFlag))
		assert.False(t, cpu.isSetFlag(zeroFlag))
	})

	t.Run("rlc zero result sets Z", func(t *testing.T) {
		cpu.f = 0
		cpu.b = 0x00
		cpu.rlc(&cpu.b)
		assert.Equal(t, uint8(0x00), cpu.b)
		assert.True(t, cpu.isSetFlag(zeroFlag))
	})

	t.Run("rl pulls in carry", func(t *testing.T) {
		cpu.f = 0
		cpu.setFlag(carryFlag)
		cpu.b = 0x01
		cpu.rl(&cpu.b)
		assert.Equal(t, uint8(0x03), cpu.b)
		assert.False(t, cpu.isSetFlag(carryFlag))
	})

	t.Run("rrc", func(t *testing.T) {
		cpu.f = 0
		cpu.b = 0x01
		cpu.rrc(&cpu.b)
		assert.Equal(t, uint8(0x80), cpu.b)
		assert.True(t, cpu.isSetFlag(carryFlag))
	})

	t.Run("rr pulls in carry", func(t *testing.T) {
		cpu.f = 0
		cpu.setFlag(carryFlag)
		cpu.b = 0x02
		cpu.rr(&cpu.b)
		assert.Equal(t, uint8(0x81), cpu.b)
		assert.False(t, cpu.isSetFlag(carryFlag))
	})

	t.Run("sla", func(t *testing.T) {
		cpu.f = 0
		cpu.b = 0x81
		cpu.sla(&cpu.b)
		assert.Equal(t, uint8(0x02), cpu.b)
		assert.True(t, cpu.isSetFlag(carryFlag))
	})

	t.Run("sra keeps sign bit", func(t *testing.T) {
		cpu.f = 0
		cpu.b = 0x81
		cpu.sra(&cpu.b)
		assert.Equal(t, uint8(0xC0), cpu.b)
		assert.True(t, cpu.isSetFlag(carryFlag))
	})

	t.Run("swap", func(t *testing.T) {
		cpu.f = 0xF0
		cpu.b = 0xAB
		cpu.swap(&cpu.b)
		assert.Equal(t, uint8(0xBA), cpu.b)
		assert.Equal(t, uint8(0), cpu.f)
	})

	t.Run("srl clears high bit", func(t *testing.T) {
		cpu.f = 0
		cpu.b = 0x81
		cpu.srl(&cpu.b)
		assert.Equal(t, uint8(0x40), cpu.b)
		assert.True(t, cpu.isSetFlag(carryFlag))
	})
}

func TestCPU_bitTest(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	cpu.f = 0
	cpu.bitTest(7, 0x80)
	assert.False(t, cpu.isSetFlag(zeroFlag))
	assert.True(t, cpu.isSetFlag(halfCarryFlag))

	cpu.bitTest(6, 0x80)
	assert.True(t, cpu.isSetFlag(zeroFlag))
}

func TestCPU_daa(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	t.Run("after addition", func(t *testing.T) {
		cpu.f = 0
		cpu.a = 0x45
		cpu.addToA(0x45) // 0x8A, H clear
		assert.False(t, cpu.isSetFlag(halfCarryFlag))

		cpu.daa()
		assert.Equal(t, uint8(0x90), cpu.a)
		assert.False(t, cpu.isSetFlag(carryFlag))
		assert.False(t, cpu.isSetFlag(zeroFlag))
	})

	t.Run("after subtraction", func(t *testing.T) {
		cpu.f = 0
		cpu.a = 0x42
		cpu.sub(0x15) // 0x2D with half borrow
		assert.True(t, cpu.isSetFlag(halfCarryFlag))

		cpu.daa()
		assert.Equal(t, uint8(0x27), cpu.a)
	})

	t.Run("subtraction with both borrows", func(t *testing.T) {
		cpu.f = 0
		cpu.a = 0x20
		cpu.sub(0x55) // 0xCB, H and C set
		assert.True(t, cpu.isSetFlag(carryFlag))
		assert.True(t, cpu.isSetFlag(halfCarryFlag))

		cpu.daa()
		// subtracts 0x66, the 0x9A-complement adjustment
		assert.Equal(t, uint8(0x65), cpu.a)
		assert.True(t, cpu.isSetFlag(carryFlag))
	})
}

// every flag-touching helper keeps the low nibble of F zero
func TestCPU_flagLowNibbleAlwaysZero(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	ops := []func(){
		func() { cpu.addToA(0x3A) },
		func() { cpu.adcToA(0x7F) },
		func() { cpu.sub(0x11) },
		func() { cpu.sbc(0x22) },
		func() { cpu.and(0x0F) },
		func() { cpu.or(0xF0) },
		func() { cpu.xor(0xAA) },
		func() { cpu.cp(0x55) },
		func() { cpu.inc(&cpu.b) },
		func() { cpu.dec(&cpu.c) },
		func() { cpu.rlc(&cpu.d) },
		func() { cpu.rr(&cpu.e) },
		func() { cpu.daa() },
		func() { cpu.addToHL(0x1234) },
		func() { cpu.sp = cpu.addSignedToSP(0x7F) },
	}
	for _, op := range ops {
		op()
		assert.Zero(t, cpu.f&0x0F)
	}

	cpu.setAF(0xFFFF)
	assert.Equal(t, uint8(0xF0), cpu.f)
}
