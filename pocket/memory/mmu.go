package memory

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/audio"
	"github.com/tiago/go-pocket/pocket/bit"
)

const (
	vramBankSize = 0x2000
	vramBanks    = 2
	wramBankSize = 0x1000
	wramBanks    = 8
	oamSize      = 0xA0
	ioSize       = 0x80
	hramSize     = 0x7F
	bootSize     = 0x900
	// 2 bytes for each of the 4 colors of each of the 8 palettes
	paletteSize = 2 * 4 * 8

	cpuFrequency = 4194304
	// an OAM DMA occupies the bus for 160 microseconds
	dmaDurationCycles = cpuFrequency / (1000000 / 160)
)

// SerialPort is the minimal interface for a device connected to SB/SC.
// Implementations must only accept reads/writes to addr.SB and addr.SC.
type SerialPort interface {
	Write(address uint16, value uint8)
	Read(address uint16) uint8
	Tick(cycles int)
	Reset()
}

// MMU dispatches CPU reads and writes to the owning storage: bootstrap ROM,
// the cartridge mapper, banked VRAM/WRAM, OAM, the I/O band, HRAM and IE.
// It also owns the side-event queue that I/O writes feed.
type MMU struct {
	cart   *Cartridge
	mapper Mapper

	bootstrap        [bootSize]uint8
	bootstrapEnabled bool

	vram [vramBanks * vramBankSize]uint8
	wram [wramBanks * wramBankSize]uint8
	oam  [oamSize]uint8
	io   [ioSize]uint8
	hram [hramSize]uint8

	interruptEnable uint8

	// access gating, owned by the LCD state machine
	canAccessVRAM bool
	canAccessOAM  bool

	// color-device palette memory, referenced through BGPI/OBPI
	bgPaletteData     [paletteSize]uint8
	spritePaletteData [paletteSize]uint8

	// H-blank DMA state: blocks left to copy and the moving addresses
	hdmaActive bool
	hdmaSource uint16
	hdmaDest   uint16
	hdmaLeft   uint8

	timer  Timer
	joypad joypad
	serial SerialPort
	APU    *audio.APU

	events sideEventQueue
}

// New creates a memory unit with no cartridge loaded, equivalent to turning
// the console on with an empty slot.
func New() *MMU {
	m := &MMU{
		cart:             NewCartridge(),
		mapper:           NullMapper{},
		bootstrapEnabled: false,
		canAccessVRAM:    true,
		canAccessOAM:     true,
		joypad:           newJoypad(),
		APU:              audio.New(),
	}
	m.timer.overflowHandler = func() { m.RequestInterrupt(addr.TimerInterrupt) }
	for i := range m.bgPaletteData {
		m.bgPaletteData[i] = 0xFF
		m.spritePaletteData[i] = 0xFF
	}
	return m
}

// NewWithCartridge creates a memory unit with the given cartridge in the slot.
func NewWithCartridge(cart *Cartridge) *MMU {
	m := New()
	m.cart = cart
	m.mapper = cart.Mapper()
	return m
}

// LoadBootstrap installs a bootstrap ROM image and raises the visibility
// latch. The image shadows 0x0000-0x00FF on mono devices and 0x0000-0x08FF
// (minus the header hole) on color devices.
func (m *MMU) LoadBootstrap(rom []uint8) {
	copy(m.bootstrap[:], rom)
	m.bootstrapEnabled = true
}

// BootstrapEnabled reports whether the bootstrap ROM still shadows the
// cartridge.
func (m *MMU) BootstrapEnabled() bool {
	return m.bootstrapEnabled
}

// DisableBootstrap drops the one-way bootstrap latch.
func (m *MMU) DisableBootstrap() {
	m.bootstrapEnabled = false
}

// IsColor reports whether the loaded cartridge declares color capability.
func (m *MMU) IsColor() bool {
	return m.cart.IsColor()
}

// SetSerial attaches a serial device to SB/SC.
func (m *MMU) SetSerial(port SerialPort) {
	m.serial = port
}

// Tick advances memory-owned peripherals that follow the cycle budget.
func (m *MMU) Tick(cycles int) {
	m.timer.Tick(cycles)
	if m.serial != nil {
		m.serial.Tick(cycles)
	}
	if m.APU != nil {
		m.APU.Tick(cycles)
	}
}

// PopSideEvent drains one pending side event.
func (m *MMU) PopSideEvent() (SideEvent, bool) {
	return m.events.pop()
}

// PushSideEvent enqueues a side event; used by the CPU for the bootstrap
// hand-off, and internally by I/O write hooks.
func (m *MMU) PushSideEvent(e SideEvent) {
	m.events.push(e)
}

// RequestInterrupt sets the IF bit of the chosen interrupt.
func (m *MMU) RequestInterrupt(interrupt addr.Interrupt) {
	m.io[addr.IF-0xFF00] |= uint8(interrupt) | 0xE0
}

// SetVRAMAccessible is the gating capability flipped by the LCD machine:
// while clear, CPU reads of VRAM return 0xFF and writes are dropped.
func (m *MMU) SetVRAMAccessible(accessible bool) {
	m.canAccessVRAM = accessible
}

// SetOAMAccessible gates CPU access to the sprite attribute table.
func (m *MMU) SetOAMAccessible(accessible bool) {
	m.canAccessOAM = accessible
}

func (m *MMU) vbk() uint8 {
	return m.io[addr.VBK-0xFF00] & 0x1
}

func (m *MMU) svbk() uint8 {
	bank := m.io[addr.SVBK-0xFF00] & 0x7
	if bank == 0 {
		bank = 1
	}
	return bank
}

func (m *MMU) wramOffset(address uint16) int {
	if address < 0xD000 {
		return int(address - 0xC000)
	}
	return int(m.svbk())*wramBankSize + int(address-0xD000)
}

// Read dispatches a CPU read by address range.
func (m *MMU) Read(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		if m.bootstrapEnabled && m.bootstrapCovers(address) {
			return m.bootstrap[address]
		}
		return m.mapper.ReadROM(address)
	case address <= 0x9FFF:
		if !m.canAccessVRAM {
			return 0xFF
		}
		return m.vram[int(m.vbk())*vramBankSize+int(address-0x8000)]
	case address <= 0xBFFF:
		return m.mapper.ReadRAM(address)
	case address <= 0xDFFF:
		return m.wram[m.wramOffset(address)]
	case address <= 0xFDFF:
		// echo of 0xC000-0xDDFF
		return m.wram[m.wramOffset(address-0x2000)]
	case address <= 0xFE9F:
		if !m.canAccessOAM {
			return 0xFF
		}
		return m.oam[address-0xFE00]
	case address <= 0xFEFF:
		// unusable band
		return 0x00
	case address <= 0xFF7F:
		return m.readIO(address)
	case address <= 0xFFFE:
		return m.hram[address-0xFF80]
	default:
		return m.interruptEnable
	}
}

// Write dispatches a CPU write by address range, applying the I/O hooks.
func (m *MMU) Write(address uint16, value uint8) {
	switch {
	case address <= 0x7FFF:
		m.mapper.WriteROM(address, value)
	case address <= 0x9FFF:
		if m.canAccessVRAM {
			m.vram[int(m.vbk())*vramBankSize+int(address-0x8000)] = value
		}
	case address <= 0xBFFF:
		m.mapper.WriteRAM(address, value)
	case address <= 0xDFFF:
		m.wram[m.wramOffset(address)] = value
	case address <= 0xFDFF:
		m.wram[m.wramOffset(address-0x2000)] = value
	case address <= 0xFE9F:
		if m.canAccessOAM {
			m.oam[address-0xFE00] = value
		}
	case address <= 0xFEFF:
		// unusable band, writes dropped
	case address <= 0xFF7F:
		m.writeIO(address, value)
	case address <= 0xFFFE:
		m.hram[address-0xFF80] = value
	default:
		m.interruptEnable = value
	}
}

func (m *MMU) bootstrapCovers(address uint16) bool {
	if m.IsColor() {
		// the cartridge header stays visible inside the color bootstrap range
		return address < 0x900 && !(address >= 0x100 && address < 0x200)
	}
	return address < 0x100
}

func (m *MMU) readIO(address uint16) uint8 {
	switch {
	case address == addr.P1:
		return m.joypad.read()
	case address == addr.SB || address == addr.SC:
		if m.serial != nil {
			return m.serial.Read(address)
		}
		return 0xFF
	case address >= addr.DIV && address <= addr.TAC:
		return m.timer.Read(address)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		return m.APU.ReadRegister(address)
	case address == addr.IF:
		return m.io[address-0xFF00] | 0xE0
	case address == addr.BGPD && m.IsColor():
		return m.bgPaletteData[m.io[addr.BGPI-0xFF00]&0x3F]
	case address == addr.OBPD && m.IsColor():
		return m.spritePaletteData[m.io[addr.OBPI-0xFF00]&0x3F]
	case address == addr.HDMA5 && m.IsColor():
		if m.hdmaActive {
			return 0x80 | (m.hdmaLeft - 1)
		}
		return 0xFF
	default:
		return m.io[address-0xFF00]
	}
}

func (m *MMU) writeIO(address uint16, value uint8) {
	switch {
	case address == addr.P1:
		m.joypad.writeSelect(value)
		m.events.push(SideEvent{Type: JoypadUpdate})
	case address == addr.SB || address == addr.SC:
		if m.serial != nil {
			m.serial.Write(address, value)
		}
	case address >= addr.DIV && address <= addr.TAC:
		m.timer.Write(address, value)
	case address >= addr.AudioStart && address <= addr.AudioEnd:
		m.APU.WriteRegister(address, value)
	case address == addr.IF:
		m.io[address-0xFF00] = value | 0xE0
	case address == addr.LY:
		// LY is read-only from the CPU side; a write clears it
		m.io[address-0xFF00] = 0
	case address == addr.STAT:
		// bits 0-2 belong to the LCD machine
		m.io[address-0xFF00] = (value & 0xF8) | (m.io[address-0xFF00] & 0x07)
	case address == addr.DMA:
		m.io[address-0xFF00] = value
		m.events.push(SideEvent{Type: DMATransfer, Value: value, Duration: dmaDurationCycles})
	case address == addr.BOOT:
		m.DisableBootstrap()
		m.io[address-0xFF00] = value
	case address == addr.BGPD && m.IsColor():
		index := m.io[addr.BGPI-0xFF00]
		m.bgPaletteData[index&0x3F] = value
		if bit.IsSet(7, index) {
			m.io[addr.BGPI-0xFF00] = 0x80 | ((index + 1) & 0x3F)
		}
	case address == addr.OBPD && m.IsColor():
		index := m.io[addr.OBPI-0xFF00]
		m.spritePaletteData[index&0x3F] = value
		if bit.IsSet(7, index) {
			m.io[addr.OBPI-0xFF00] = 0x80 | ((index + 1) & 0x3F)
		}
	case address == addr.HDMA5 && m.IsColor():
		m.startHDMA(value)
	default:
		m.io[address-0xFF00] = value
	}
}

// WriteIO is the privileged path core components use to update registers the
// CPU cannot (LY, STAT mode bits) without tripping the write hooks.
func (m *MMU) WriteIO(address uint16, value uint8) {
	m.io[address-0xFF00] = value
}

// ReadVRAMBank reads from a specific VRAM bank, ignoring VBK and gating.
// The pixel pipeline uses it to reach tile data and attributes directly.
func (m *MMU) ReadVRAMBank(bank uint8, address uint16) uint8 {
	return m.vram[int(bank&0x1)*vramBankSize+int(address-0x8000)]
}

// ReadOAM reads a sprite table byte, ignoring gating.
func (m *MMU) ReadOAM(offset uint16) uint8 {
	return m.oam[offset]
}

// ReadBGPalette reads color palette memory for the background planes.
func (m *MMU) ReadBGPalette(index uint8) uint8 {
	return m.bgPaletteData[index&0x3F]
}

// ReadSpritePalette reads color palette memory for the sprite plane.
func (m *MMU) ReadSpritePalette(index uint8) uint8 {
	return m.spritePaletteData[index&0x3F]
}

// RunDMA copies 160 bytes from (source<<8) into OAM. Runs with the bus
// granted to the DMA engine, so gating does not apply.
func (m *MMU) RunDMA(source uint8) {
	base := uint16(source) << 8
	for i := uint16(0); i < oamSize; i++ {
		m.oam[i] = m.readUngated(base + i)
	}
}

// readUngated reads without the VRAM/OAM access latches; the DMA engines own
// the bus while they run.
func (m *MMU) readUngated(address uint16) uint8 {
	switch {
	case address <= 0x7FFF:
		return m.mapper.ReadROM(address)
	case address <= 0x9FFF:
		return m.vram[int(m.vbk())*vramBankSize+int(address-0x8000)]
	case address <= 0xBFFF:
		return m.mapper.ReadRAM(address)
	case address <= 0xDFFF:
		return m.wram[m.wramOffset(address)]
	case address <= 0xFDFF:
		return m.wram[m.wramOffset(address-0x2000)]
	default:
		return m.Read(address)
	}
}

// startHDMA begins a color-device VRAM DMA. Top bit clear is a general
// purpose burst copied immediately; top bit set arms a 16-bytes-per-HBlank
// block transfer. Writing with the top bit clear while a block transfer is
// active cancels it.
func (m *MMU) startHDMA(value uint8) {
	if m.hdmaActive && !bit.IsSet(7, value) {
		m.hdmaActive = false
		return
	}

	source := bit.Combine(m.io[addr.HDMA1-0xFF00], m.io[addr.HDMA2-0xFF00]&0xF0)
	dest := 0x8000 | (bit.Combine(m.io[addr.HDMA3-0xFF00]&0x1F, m.io[addr.HDMA4-0xFF00]&0xF0))
	blocks := (value & 0x7F) + 1

	if bit.IsSet(7, value) {
		m.hdmaActive = true
		m.hdmaSource = source
		m.hdmaDest = dest
		m.hdmaLeft = blocks
		return
	}

	for range blocks {
		m.copyHDMABlock(&source, &dest)
	}
	m.io[addr.HDMA5-0xFF00] = 0xFF
}

// RunHBlankDMA copies one 16-byte block if an H-blank transfer is armed.
// The LCD machine calls it on every HBlank entry.
func (m *MMU) RunHBlankDMA() {
	if !m.hdmaActive {
		return
	}
	m.copyHDMABlock(&m.hdmaSource, &m.hdmaDest)
	m.hdmaLeft--
	if m.hdmaLeft == 0 {
		m.hdmaActive = false
		m.io[addr.HDMA5-0xFF00] = 0xFF
	}
}

func (m *MMU) copyHDMABlock(source, dest *uint16) {
	for i := 0; i < 0x10; i++ {
		// destination is forced into the VRAM window
		target := 0x8000 | (*dest & 0x1FF0) | uint16(i)
		m.vram[int(m.vbk())*vramBankSize+int(target-0x8000)] = m.readUngated(*source + uint16(i))
	}
	*source += 0x10
	*dest += 0x10
}

// RunJoypadUpdate recomputes the visible P1 nibble, raising the joypad
// interrupt when a selected key reads as newly pressed.
func (m *MMU) RunJoypadUpdate() {
	if m.joypad.recompute() {
		m.RequestInterrupt(addr.JoypadInterrupt)
	}
}

// HandleKeyPress records a host key press and fires the edge interrupt.
func (m *MMU) HandleKeyPress(key JoypadKey) {
	m.joypad.press(key)
	m.RunJoypadUpdate()
}

// HandleKeyRelease records a host key release.
func (m *MMU) HandleKeyRelease(key JoypadKey) {
	m.joypad.release(key)
	m.RunJoypadUpdate()
}

// SaveBattery returns the battery snapshot from the mapper; empty unless RAM
// was written since the last snapshot.
func (m *MMU) SaveBattery() []uint8 {
	return m.mapper.SaveBattery()
}

// Restart clears all memory state but keeps the loaded cartridge bytes.
func (m *MMU) Restart() {
	m.vram = [vramBanks * vramBankSize]uint8{}
	m.wram = [wramBanks * wramBankSize]uint8{}
	m.oam = [oamSize]uint8{}
	m.io = [ioSize]uint8{}
	m.hram = [hramSize]uint8{}
	m.interruptEnable = 0
	m.canAccessVRAM = true
	m.canAccessOAM = true
	m.hdmaActive = false
	m.joypad = newJoypad()
	m.timer.reset()
	m.events = sideEventQueue{}
	for i := range m.bgPaletteData {
		m.bgPaletteData[i] = 0xFF
		m.spritePaletteData[i] = 0xFF
	}
	if m.serial != nil {
		m.serial.Reset()
	}
	slog.Debug("Memory restarted", "cartridge", m.cart.Title())
}

// Dump formats a memory range as a hex listing for debug logs.
func (m *MMU) Dump(from, to uint16) string {
	var b strings.Builder
	for i := int(from); i <= int(to); i++ {
		if (i-int(from))%16 == 0 {
			fmt.Fprintf(&b, "\n%04x: ", i)
		}
		fmt.Fprintf(&b, "%02x ", m.Read(uint16(i)))
	}
	return b.String()
}
