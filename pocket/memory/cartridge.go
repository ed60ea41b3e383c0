package memory

import (
	"errors"
	"fmt"
	"log/slog"
	"math/bits"
	"strings"
	"time"
	"unicode"
)

const titleLength = 11

const (
	titleAddress         = 0x134
	cgbFlagAddress       = 0x143
	cartridgeTypeAddress = 0x147
	romSizeAddress       = 0x148
	ramSizeAddress       = 0x149
	versionNumberAddress = 0x14C
)

// ErrInvalidCartridge is returned for ROM images whose length is zero or not
// a power of two.
var ErrInvalidCartridge = errors.New("invalid cartridge: length must be a non-zero power of two")

// UnsupportedCartridgeError is returned when the header names a banking chip
// this core does not implement.
type UnsupportedCartridgeError struct {
	Mapper uint8
}

func (e UnsupportedCartridgeError) Error() string {
	return fmt.Sprintf("unsupported cartridge mapper: 0x%02X", e.Mapper)
}

// Cartridge holds a loaded ROM image, its parsed header fields and the
// banking controller built from them.
type Cartridge struct {
	data    []uint8
	mapper  Mapper
	title   string
	version uint8

	cartType uint8
	isColor  bool
}

// NewCartridge creates an empty cartridge, equivalent to powering the console
// on with nothing in the slot.
func NewCartridge() *Cartridge {
	return &Cartridge{mapper: NullMapper{}}
}

// NewCartridgeWithData parses a ROM image and builds the matching banking
// controller. The battery slice, when non-empty, is loaded into cartridge
// RAM; a size mismatch clears the RAM and is logged rather than failing.
// The clock source feeds MBC3's RTC and may be nil for the host clock.
func NewCartridgeWithData(data, battery []uint8, now func() time.Time) (*Cartridge, error) {
	if len(data) == 0 || bits.OnesCount(uint(len(data))) != 1 {
		return nil, ErrInvalidCartridge
	}
	if len(data) < 0x150 {
		return nil, ErrInvalidCartridge
	}

	cgb := data[cgbFlagAddress]
	cart := &Cartridge{
		data:     data,
		title:    cleanTitle(data[titleAddress : titleAddress+titleLength]),
		version:  data[versionNumberAddress],
		cartType: data[cartridgeTypeAddress],
		isColor:  cgb == 0x80 || cgb == 0xC0,
	}

	ramSize := headerRAMSize(data[ramSizeAddress])
	var ram []uint8

	switch t := cart.cartType; {
	case t == 0x00:
		m := NewRomOnly(data, ramSize, false)
		ram = m.ram
		cart.mapper = m
	case t >= 0x01 && t <= 0x03:
		m := NewMBC1(data, ramSize, t == 0x03)
		ram = m.ram
		cart.mapper = m
	case t >= 0x05 && t <= 0x06:
		m := NewMBC2(data, t == 0x06)
		ram = m.ram
		cart.mapper = m
	case t >= 0x0F && t <= 0x13:
		m := NewMBC3(data, ramSize, t == 0x0F || t == 0x10 || t == 0x13, t == 0x0F || t == 0x10, now)
		ram = m.ram
		cart.mapper = m
	case t >= 0x19 && t <= 0x1E:
		m := NewMBC5(data, ramSize, t == 0x1B || t == 0x1E, t >= 0x1C)
		ram = m.ram
		cart.mapper = m
	default:
		return nil, UnsupportedCartridgeError{Mapper: t}
	}

	if !loadBatteryRAM(ram, battery) {
		slog.Warn("Battery file size mismatch, clearing cartridge RAM",
			"expected", len(ram), "got", len(battery))
	}

	slog.Debug("Loaded cartridge",
		"title", cart.title,
		"type", fmt.Sprintf("0x%02X", cart.cartType),
		"rom_size", len(data),
		"ram_size", ramSize,
		"color", cart.isColor)

	return cart, nil
}

// Mapper returns the banking controller for this cartridge.
func (c *Cartridge) Mapper() Mapper {
	return c.mapper
}

// Title returns the game title parsed from the header.
func (c *Cartridge) Title() string {
	return c.title
}

// IsColor reports whether the header declares color capability.
func (c *Cartridge) IsColor() bool {
	return c.isColor
}

// headerRAMSize decodes header byte 0x149 into a RAM size in bytes.
func headerRAMSize(code uint8) int {
	switch code {
	case 0x01:
		return 2 * 1024
	case 0x02:
		return 8 * 1024
	case 0x03:
		return 32 * 1024
	case 0x04:
		return 128 * 1024
	case 0x05:
		return 64 * 1024
	}
	return 0
}

// cleanTitle turns the raw header title bytes into printable ASCII, replacing
// NULs with spaces and anything unprintable with '?'.
func cleanTitle(raw []uint8) string {
	runes := make([]rune, 0, len(raw))
	for _, b := range raw {
		r := rune(b)
		if r == 0 {
			r = ' '
		} else if !unicode.IsPrint(r) {
			r = '?'
		}
		runes = append(runes, r)
	}

	title := strings.TrimSpace(string(runes))
	if title == "" {
		return "(Untitled)"
	}
	return title
}
