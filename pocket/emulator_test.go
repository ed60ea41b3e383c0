package pocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/cpu"
	"github.com/tiago/go-pocket/pocket/memory"
)

// buildROM assembles a 32KB RomOnly image with the program at the entry
// point. The rest of the image is zero, which decodes as NOPs.
func buildROM(program ...uint8) []uint8 {
	rom := make([]uint8, 0x8000)
	copy(rom[0x134:], "TEST")
	copy(rom[0x100:], program)
	return rom
}

func newEmulator(t *testing.T, rom []uint8) *Emulator {
	t.Helper()
	emu, err := NewWithConfig(Config{ROM: rom})
	require.NoError(t, err)
	return emu
}

func TestEmulator_nopAndLoad(t *testing.T) {
	emu := newEmulator(t, buildROM(
		0x00,       // NOP
		0x3E, 0x42, // LD A, 0x42
	))

	c := emu.GetCPU()
	cycles1, err := c.Tick()
	require.NoError(t, err)
	cycles2, err := c.Tick()
	require.NoError(t, err)

	assert.Equal(t, uint8(0x42), c.GetA())
	assert.Equal(t, uint16(0x0103), c.GetPC())
	assert.Equal(t, 12, cycles1+cycles2)
}

func TestEmulator_call(t *testing.T) {
	emu := newEmulator(t, buildROM(
		0xCD, 0x34, 0x12, // CALL 0x1234
	))

	c := emu.GetCPU()
	cycles, err := c.Tick()
	require.NoError(t, err)

	assert.Equal(t, uint16(0x1234), c.GetPC())
	assert.Equal(t, uint16(0xFFFC), c.GetSP())
	assert.Equal(t, uint8(0x01), emu.GetMMU().Read(0xFFFD))
	assert.Equal(t, uint8(0x03), emu.GetMMU().Read(0xFFFC))
	assert.Equal(t, 24, cycles)
}

func TestEmulator_oamDMA(t *testing.T) {
	emu := newEmulator(t, buildROM(
		0x3E, 0x80, // LD A, 0x80
		0xE0, 0x46, // LDH (0x46), A
	))

	mmu := emu.GetMMU()
	for i := uint16(0); i < 160; i++ {
		mmu.Write(0x8000+i, uint8(i))
	}

	require.NoError(t, emu.Step())

	for i := uint16(0); i < 160; i++ {
		assert.Equal(t, uint8(i), mmu.ReadOAM(i))
	}
}

func TestEmulator_vblankInterruptVectors(t *testing.T) {
	rom := buildROM(
		0x3E, 0x01, // LD A, 0x01
		0xE0, 0xFF, // LDH (0xFF), A  -> IE = VBlank
		0x18, 0xFE, // JR -2: spin until the interrupt fires
	)
	// interrupt handler parks at its own vector
	rom[0x40] = 0xC3 // JP 0x0040
	rom[0x41] = 0x40
	rom[0x42] = 0x00

	emu := newEmulator(t, rom)
	require.NoError(t, emu.RunUntilFrame())

	pc := emu.GetCPU().GetPC()
	assert.True(t, pc >= 0x0040 && pc <= 0x0042, "vectored to the VBlank handler, PC=0x%04X", pc)
	assert.Zero(t, emu.GetMMU().Read(addr.IF)&0x01, "pending bit cleared by dispatch")
}

func TestEmulator_mbc1BankedRead(t *testing.T) {
	rom := make([]uint8, 8*0x4000)
	rom[0x147] = 0x01 // MBC1
	copy(rom[0x134:], "TEST")
	for i := 0; i < 0x4000; i++ {
		rom[0xC000+i] = uint8(i & 0xFF)
	}

	emu := newEmulator(t, rom)
	mmu := emu.GetMMU()

	mmu.Write(0x2000, 0x03)
	for i := uint16(0); i < 0x100; i++ {
		require.Equal(t, rom[0xC000+int(i)], mmu.Read(0x4000+i))
	}
}

func TestEmulator_invalidOpcodeHalts(t *testing.T) {
	emu := newEmulator(t, buildROM(0xDD))

	err := emu.RunUntilFrame()
	require.Error(t, err)

	var fault cpu.InvalidOpcodeError
	require.ErrorAs(t, err, &fault)
	assert.Equal(t, uint8(0xDD), fault.Opcode)
	assert.Equal(t, uint16(0x0100), fault.PC)
}

func TestEmulator_framePacing(t *testing.T) {
	emu := newEmulator(t, buildROM()) // NOP sled

	require.NoError(t, emu.RunUntilFrame())
	assert.Equal(t, uint64(1), emu.GetFrameCount())

	require.NoError(t, emu.RunUntilFrame())
	assert.Equal(t, uint64(2), emu.GetFrameCount())

	assert.Equal(t, uint8(144), emu.GetMMU().Read(addr.LY))
}

func TestEmulator_restart(t *testing.T) {
	emu := newEmulator(t, buildROM())

	require.NoError(t, emu.RunUntilFrame())
	emu.GetMMU().Write(0xC000, 0x42)

	emu.Restart()

	assert.Equal(t, uint16(0x0100), emu.GetCPU().GetPC())
	assert.Zero(t, emu.GetMMU().Read(0xC000))
	assert.Zero(t, emu.GetFrameCount())

	// still runs after the restart
	require.NoError(t, emu.RunUntilFrame())
}

func TestEmulator_joypadThroughCore(t *testing.T) {
	emu := newEmulator(t, buildROM(
		0x3E, 0x20, // LD A, 0b0010_0000: select direction keys
		0xE0, 0x00, // LDH (0x00), A
	))

	require.NoError(t, emu.Step())

	emu.HandleKeyPress(memory.JoypadRight)
	assert.Equal(t, uint8(0b1110), emu.GetMMU().Read(addr.P1)&0x0F)
	assert.NotZero(t, emu.GetMMU().Read(addr.IF)&0x10)

	emu.HandleKeyRelease(memory.JoypadRight)
	assert.Equal(t, uint8(0b1111), emu.GetMMU().Read(addr.P1)&0x0F)
}

func TestEmulator_batterySnapshot(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x147] = 0x03 // MBC1 with battery
	rom[0x149] = 0x02 // 8KB RAM
	copy(rom[0x134:], "TEST")

	emu := newEmulator(t, rom)
	mmu := emu.GetMMU()

	assert.Empty(t, emu.SaveBattery(), "clean RAM yields no snapshot")

	mmu.Write(0x0000, 0x0A) // enable RAM
	mmu.Write(0xA000, 0x42)

	snapshot := emu.SaveBattery()
	require.Len(t, snapshot, 8*1024)
	assert.Equal(t, uint8(0x42), snapshot[0])

	assert.Empty(t, emu.SaveBattery(), "no writes since last snapshot")
}
