package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bankedROM builds a ROM where every byte holds its bank number.
func bankedROM(banks int) []uint8 {
	rom := make([]uint8, banks*romBankSize)
	for i := range rom {
		rom[i] = uint8(i / romBankSize)
	}
	return rom
}

func TestMBC1(t *testing.T) {
	t.Run("bank 0 is fixed", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), 0, false)
		assert.Equal(t, uint8(0), mbc.ReadROM(0x0000))
		assert.Equal(t, uint8(0), mbc.ReadROM(0x3FFF))
	})

	t.Run("bank switching", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(8), 0, false)

		assert.Equal(t, uint8(1), mbc.ReadROM(0x4000), "default bank is 1")

		mbc.WriteROM(0x2000, 0x03)
		assert.Equal(t, uint8(3), mbc.ReadROM(0x4000))
		assert.Equal(t, uint8(3), mbc.ReadROM(0x7FFF))
	})

	t.Run("bank 0 and its aliases promote to the next bank", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(128), 0, false)

		testCases := []struct {
			write uint8
			upper uint8
			want  uint8
		}{
			{write: 0x00, upper: 0, want: 0x01},
			{write: 0x20 & 0x1F, upper: 1, want: 0x21},
			{write: 0x40 & 0x1F, upper: 2, want: 0x41},
			{write: 0x60 & 0x1F, upper: 3, want: 0x61},
		}
		for _, tC := range testCases {
			mbc.WriteROM(0x2000, tC.write)
			mbc.WriteROM(0x4000, tC.upper)
			assert.Equal(t, tC.want, mbc.ReadROM(0x4000))
		}
	})

	t.Run("bank wraps to ROM size", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(8), 0, false)

		// bank 37 with only 8 banks wraps to bank 5
		mbc.WriteROM(0x2000, 5)
		mbc.WriteROM(0x4000, 1)
		assert.Equal(t, uint8(5), mbc.ReadROM(0x4000))
	})

	t.Run("RAM enable latch", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), 0x8000, true)

		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(0xA000), "disabled by default")

		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteRAM(0xA000, 0x42)
		assert.Equal(t, uint8(0x42), mbc.ReadRAM(0xA000))

		mbc.WriteROM(0x0000, 0x00)
		mbc.WriteRAM(0xA000, 0x13) // dropped
		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(0xA000))

		mbc.WriteROM(0x0000, 0x0A)
		assert.Equal(t, uint8(0x42), mbc.ReadRAM(0xA000))
	})

	t.Run("RAM banking mode", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), 0x8000, false)
		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteROM(0x6000, 0x01) // RAM banking mode

		for bank := uint8(0); bank < 4; bank++ {
			mbc.WriteROM(0x4000, bank)
			mbc.WriteRAM(0xA000, 0x40+bank)
		}
		for bank := uint8(0); bank < 4; bank++ {
			mbc.WriteROM(0x4000, bank)
			assert.Equal(t, uint8(0x40+bank), mbc.ReadRAM(0xA000))
		}
	})

	t.Run("battery snapshot only when dirty", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), 0x2000, true)

		assert.Nil(t, mbc.SaveBattery(), "clean RAM produces no snapshot")

		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteRAM(0xA000, 0x99)

		snapshot := mbc.SaveBattery()
		require.Len(t, snapshot, 0x2000)
		assert.Equal(t, uint8(0x99), snapshot[0])

		assert.Nil(t, mbc.SaveBattery(), "second snapshot without writes is empty")
	})

	t.Run("no battery means no snapshot", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), 0x2000, false)
		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteRAM(0xA000, 0x99)
		assert.Nil(t, mbc.SaveBattery())
	})
}

func TestMBC2(t *testing.T) {
	t.Run("address bit 8 routes register writes", func(t *testing.T) {
		mbc := NewMBC2(bankedROM(16), false)

		// bit 8 set: ROM bank write, RAM latch untouched
		mbc.WriteROM(0x2100, 0x03)
		assert.Equal(t, uint8(3), mbc.ReadROM(0x4000))
		assert.Equal(t, uint8(0xFF), mbc.ReadRAM(0xA000))

		// bit 8 clear: RAM enable
		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteRAM(0xA000, 0x05)
		assert.Equal(t, uint8(0xF5), mbc.ReadRAM(0xA000))

		// bit 8 set on the enable range is ignored
		mbc.WriteROM(0x0100, 0x00)
		assert.Equal(t, uint8(0xF5), mbc.ReadRAM(0xA000))
	})

	t.Run("upper nibble reads back as 0xF", func(t *testing.T) {
		mbc := NewMBC2(bankedROM(4), false)
		mbc.WriteROM(0x0000, 0x0A)
		mbc.WriteRAM(0xA010, 0xA7)
		assert.Equal(t, uint8(0xF7), mbc.ReadRAM(0xA010))
	})

	t.Run("bank 0 promotes to 1", func(t *testing.T) {
		mbc := NewMBC2(bankedROM(4), false)
		mbc.WriteROM(0x2100, 0x00)
		assert.Equal(t, uint8(1), mbc.ReadROM(0x4000))
	})
}

func TestMBC3(t *testing.T) {
	fixedClock := func() time.Time {
		return time.Date(2016, time.March, 10, 14, 30, 45, 0, time.UTC)
	}

	t.Run("ROM banking uses 7 bits", func(t *testing.T) {
		mbc := NewMBC3(bankedROM(128), 0, false, false, nil)
		mbc.WriteROM(0x2000, 0x7F)
		assert.Equal(t, uint8(0x7F), mbc.ReadROM(0x4000))

		mbc.WriteROM(0x2000, 0x00)
		assert.Equal(t, uint8(0x01), mbc.ReadROM(0x4000), "bank 0 promotes to 1")
	})

	t.Run("RTC registers selected through the RAM bank", func(t *testing.T) {
		mbc := NewMBC3(bankedROM(4), 0x8000, false, true, fixedClock)
		mbc.WriteROM(0x0000, 0x0A)

		// latch on a 0->1 transition
		mbc.WriteROM(0x6000, 0x00)
		mbc.WriteROM(0x6000, 0x01)

		testCases := []struct {
			register uint8
			want     uint8
		}{
			{register: 0x8, want: 45},
			{register: 0x9, want: 30},
			{register: 0xA, want: 14},
			{register: 0xB, want: uint8(fixedClock().YearDay() & 0xFF)},
		}
		for _, tC := range testCases {
			mbc.WriteROM(0x4000, tC.register)
			assert.Equal(t, tC.want, mbc.ReadRAM(0xA000))
		}
	})

	t.Run("latch is a no-op while the clock is stopped", func(t *testing.T) {
		rtc := NewRTC(fixedClock)
		rtc.Write(0xC, 1<<6) // stop bit
		rtc.Write(0x8, 12)

		rtc.Latch()
		assert.Equal(t, uint8(12), rtc.Read(0x8))
	})

	t.Run("RAM banks still work alongside the clock", func(t *testing.T) {
		mbc := NewMBC3(bankedROM(4), 0x8000, false, true, fixedClock)
		mbc.WriteROM(0x0000, 0x0A)

		mbc.WriteROM(0x4000, 0x02)
		mbc.WriteRAM(0xA000, 0x77)
		mbc.WriteROM(0x4000, 0x00)
		assert.NotEqual(t, uint8(0x77), mbc.ReadRAM(0xA000))
		mbc.WriteROM(0x4000, 0x02)
		assert.Equal(t, uint8(0x77), mbc.ReadRAM(0xA000))
	})
}

func TestMBC5(t *testing.T) {
	t.Run("9-bit bank register across two writes", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(512), 0, false, false)

		mbc.WriteROM(0x2000, 0x34)
		mbc.WriteROM(0x3000, 0x01)
		// bank value is a byte in the fixture, so bank 0x134 reads as its low byte
		assert.Equal(t, uint8(0x34), mbc.ReadROM(0x4000))
	})

	t.Run("bank 0 is selectable", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(4), 0, false, false)
		mbc.WriteROM(0x2000, 0x00)
		assert.Equal(t, uint8(0), mbc.ReadROM(0x4000))
	})

	t.Run("rumble bit is accepted and ignored", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(4), 0x8000, false, true)
		mbc.WriteROM(0x0000, 0x0A)

		mbc.WriteROM(0x4000, 0x08|0x01) // rumble on, RAM bank 1... also selects bank 9
		mbc.WriteRAM(0xA000, 0x42)
		assert.Equal(t, uint8(0x42), mbc.ReadRAM(0xA000))
		assert.True(t, mbc.rumbleOn)
	})
}

func TestRomOnly(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x1234] = 0xAB
	m := NewRomOnly(rom, 0x2000, false)

	assert.Equal(t, uint8(0xAB), m.ReadROM(0x1234))

	m.WriteROM(0x2000, 0x05) // no banking latches to hit
	assert.Equal(t, uint8(0xAB), m.ReadROM(0x1234))

	m.WriteRAM(0xA000, 0x42)
	assert.Equal(t, uint8(0x42), m.ReadRAM(0xA000))
}
