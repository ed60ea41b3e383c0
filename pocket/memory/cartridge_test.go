package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartridgeWithData_validation(t *testing.T) {
	t.Run("empty image", func(t *testing.T) {
		_, err := NewCartridgeWithData(nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidCartridge)
	})

	t.Run("length not a power of two", func(t *testing.T) {
		_, err := NewCartridgeWithData(make([]uint8, 0x8001), nil, nil)
		assert.ErrorIs(t, err, ErrInvalidCartridge)
	})

	t.Run("unsupported mapper byte", func(t *testing.T) {
		_, err := NewCartridgeWithData(testROM(0x8000, 0xFD, 0x00, 0x00), nil, nil)

		var unsupported UnsupportedCartridgeError
		require.ErrorAs(t, err, &unsupported)
		assert.Equal(t, uint8(0xFD), unsupported.Mapper)
	})
}

func TestNewCartridgeWithData_mapperSelection(t *testing.T) {
	testCases := []struct {
		desc   string
		mapper uint8
		size   int
		want   interface{}
	}{
		{desc: "rom only", mapper: 0x00, size: 0x8000, want: &RomOnly{}},
		{desc: "mbc1", mapper: 0x01, size: 0x8000, want: &MBC1{}},
		{desc: "mbc1 with battery", mapper: 0x03, size: 0x8000, want: &MBC1{}},
		{desc: "mbc2", mapper: 0x06, size: 0x8000, want: &MBC2{}},
		{desc: "mbc3 with rtc", mapper: 0x10, size: 0x8000, want: &MBC3{}},
		{desc: "mbc5 rumble", mapper: 0x1C, size: 0x8000, want: &MBC5{}},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			cart, err := NewCartridgeWithData(testROM(tC.size, tC.mapper, 0x02, 0x00), nil, nil)
			require.NoError(t, err)
			assert.IsType(t, tC.want, cart.Mapper())
		})
	}
}

func TestNewCartridgeWithData_header(t *testing.T) {
	cart, err := NewCartridgeWithData(testROM(0x8000, 0x00, 0x00, 0xC0), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "TEST", cart.Title())
	assert.True(t, cart.IsColor())
}

func TestNewCartridgeWithData_battery(t *testing.T) {
	t.Run("matching battery is loaded", func(t *testing.T) {
		battery := make([]uint8, 8*1024)
		battery[0] = 0x42

		cart, err := NewCartridgeWithData(testROM(0x8000, 0x03, 0x02, 0x00), battery, nil)
		require.NoError(t, err)

		mapper := cart.Mapper()
		mapper.WriteROM(0x0000, 0x0A)
		assert.Equal(t, uint8(0x42), mapper.ReadRAM(0xA000))
	})

	t.Run("wrong size clears RAM instead of failing", func(t *testing.T) {
		battery := make([]uint8, 16)

		cart, err := NewCartridgeWithData(testROM(0x8000, 0x03, 0x02, 0x00), battery, nil)
		require.NoError(t, err)

		mapper := cart.Mapper()
		mapper.WriteROM(0x0000, 0x0A)
		assert.Equal(t, uint8(0x00), mapper.ReadRAM(0xA000))
	})
}

func TestHeaderRAMSize(t *testing.T) {
	testCases := []struct {
		code uint8
		want int
	}{
		{0x00, 0},
		{0x01, 2 * 1024},
		{0x02, 8 * 1024},
		{0x03, 32 * 1024},
		{0x04, 128 * 1024},
		{0x05, 64 * 1024},
	}
	for _, tC := range testCases {
		assert.Equal(t, tC.want, headerRAMSize(tC.code))
	}
}
