package memory

import "time"

// MBC3 adds a real-time clock to MBC1-style banking:
//   - up to 2MB ROM (128 banks), up to 64KB RAM (8 banks)
//   - RAM bank values 0x8-0xC select the RTC registers instead of RAM
//   - a 0->1 write on the latch register samples the host clock
type MBC3 struct {
	rom []uint8
	ram []uint8
	rtc *RTC

	romBank    uint8
	ramBank    uint8
	ramEnabled bool
	latchState uint8

	hasBattery  bool
	ramModified bool
}

// NewMBC3 creates a new MBC3 controller. The clock source is used only when
// hasRTC is set; pass nil for the host clock.
func NewMBC3(rom []uint8, ramSize int, hasBattery, hasRTC bool, now func() time.Time) *MBC3 {
	m := &MBC3{
		rom:        rom,
		ram:        make([]uint8, ramSize),
		romBank:    1,
		latchState: 0xFF,
		hasBattery: hasBattery,
	}
	if hasRTC {
		m.rtc = NewRTC(now)
	}
	return m
}

func (m *MBC3) ReadROM(address uint16) uint8 {
	bank := uint32(0)
	if address&0x4000 != 0 {
		bank = uint32(m.romBank)
	}
	offset := bank*romBankSize + uint32(address&0x3FFF)

	return m.rom[offset&uint32(len(m.rom)-1)]
}

func (m *MBC3) WriteROM(address uint16, value uint8) {
	switch (address >> 13) & 0b11 {
	case 0: // RAM/RTC enable
		m.ramEnabled = value&0xF == 0xA
	case 1: // ROM bank
		bank := value & 0x7F
		if bank == 0 {
			bank = 1
		}
		m.romBank = bank
	case 2: // RAM bank or RTC register select
		m.ramBank = value & 0xF
	case 3: // clock latch, triggered on a 0->1 transition
		if m.rtc != nil && m.latchState == 0 && value == 1 {
			m.rtc.Latch()
		}
		m.latchState = value
	}
}

func (m *MBC3) ReadRAM(address uint16) uint8 {
	if !m.ramEnabled {
		return 0xFF
	}

	if m.ramBank < 8 {
		offset := int(m.ramBank)*ramBankSize + int(address&0x1FFF)
		if offset < len(m.ram) {
			return m.ram[offset]
		}
		return 0xFF
	}
	if m.rtc != nil {
		return m.rtc.Read(m.ramBank)
	}
	return 0xFF
}

func (m *MBC3) WriteRAM(address uint16, value uint8) {
	if !m.ramEnabled {
		return
	}

	if m.ramBank < 8 {
		offset := int(m.ramBank)*ramBankSize + int(address&0x1FFF)
		if offset < len(m.ram) {
			m.ram[offset] = value
			m.ramModified = true
		}
		return
	}
	if m.rtc != nil {
		m.rtc.Write(m.ramBank, value)
	}
}

func (m *MBC3) SaveBattery() []uint8 {
	return snapshotRAM(m.ram, m.hasBattery, &m.ramModified)
}
