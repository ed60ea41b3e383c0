package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/memory"
)

func TestCPU_interruptDispatch(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	loadProgram(cpu, mmu, 0x00) // NOP, never reached
	cpu.sp = 0xFFFE
	cpu.ime = true
	mmu.Write(addr.IE, 0x01)
	mmu.Write(addr.IF, 0x01)

	cycles, err := cpu.Tick()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x0040), cpu.pc)
	assert.Equal(t, uint16(0xFFFC), cpu.sp)
	// return address pushed high byte first
	assert.Equal(t, uint8(0xC0), mmu.Read(0xFFFD))
	assert.Equal(t, uint8(0x00), mmu.Read(0xFFFC))
	assert.False(t, cpu.ime)
	assert.Zero(t, mmu.Read(addr.IF)&0x01)
	assert.Equal(t, 20, cycles)
}

func TestCPU_interruptPriority(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	vectors := []struct {
		bit    uint8
		vector uint16
	}{
		{0, 0x0040},
		{1, 0x0048},
		{2, 0x0050},
		{3, 0x0058},
		{4, 0x0060},
	}
	for _, v := range vectors {
		loadProgram(cpu, mmu, 0x00)
		cpu.sp = 0xFFFE
		cpu.ime = true
		mmu.Write(addr.IE, 0x1F)
		// all sources from this bit upward pending; the lowest wins
		mmu.Write(addr.IF, uint8(0x1F)<<v.bit)

		_, err := cpu.Tick()
		require.NoError(t, err)
		assert.Equal(t, v.vector, cpu.pc)
	}
}

func TestCPU_eiDeferral(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	loadProgram(cpu, mmu,
		0xFB, // EI
		0x04, // INC B
		0x04, // INC B, preempted by the dispatch
	)
	cpu.sp = 0xFFFE
	mmu.Write(addr.IE, 0x01)
	mmu.Write(addr.IF, 0x01)

	_, err := cpu.Tick() // EI
	require.NoError(t, err)
	assert.False(t, cpu.ime)

	_, err = cpu.Tick() // the following instruction still runs
	require.NoError(t, err)
	assert.Equal(t, uint8(1), cpu.b)
	assert.Equal(t, uint16(0xC002), cpu.pc)

	_, err = cpu.Tick() // now the dispatch happens
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0040), cpu.pc)
	assert.Equal(t, uint8(1), cpu.b)
}

func TestCPU_diDeferral(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	loadProgram(cpu, mmu,
		0xF3, // DI
		0x00, // NOP, dispatch may still occur before it
		0x00,
	)
	cpu.sp = 0xFFFE
	cpu.ime = true

	_, err := cpu.Tick() // DI
	require.NoError(t, err)
	assert.True(t, cpu.ime)

	_, err = cpu.Tick()
	require.NoError(t, err)
	assert.True(t, cpu.ime)

	_, err = cpu.Tick()
	require.NoError(t, err)
	assert.False(t, cpu.ime)
}

func TestCPU_reti(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	loadProgram(cpu, mmu, 0xD9) // RETI
	cpu.sp = 0xFFFC
	mmu.Write(0xFFFC, 0x34)
	mmu.Write(0xFFFD, 0x12)
	cpu.ime = false

	cycles, err := cpu.Tick()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), cpu.pc)
	assert.True(t, cpu.ime)
	assert.Equal(t, 16, cycles)
}

func TestCPU_haltWakeWithDispatch(t *testing.T) {
	mmu := memory.New()
	cpu := New(mmu)

	loadProgram(cpu, mmu, 0x76) // HALT
	cpu.sp = 0xFFFE
	cpu.ime = true

	_, err := cpu.Tick()
	require.NoError(t, err)
	assert.True(t, cpu.halted)

	mmu.Write(addr.IE, 0x04)
	mmu.Write(addr.IF, 0x04)

	cycles, err := cpu.Tick()
	require.NoError(t, err)

	assert.False(t, cpu.halted)
	assert.Equal(t, uint16(0x0050), cpu.pc)
	// dispatch plus the HALT wake penalty
	assert.Equal(t, 24, cycles)
}
