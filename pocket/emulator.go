// Package pocket implements a cycle-driven emulator core for the original
// 8-bit handheld and its color successor: a single-threaded loop that runs
// CPU instructions, feeds their cycle cost to the timer and LCD state
// machines, and rasterizes one scanline per OAM->VRAM transition.
package pocket

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/audio"
	"github.com/tiago/go-pocket/pocket/cpu"
	"github.com/tiago/go-pocket/pocket/memory"
	"github.com/tiago/go-pocket/pocket/serial"
	"github.com/tiago/go-pocket/pocket/video"
)

// Config selects what gets loaded into a new emulator.
type Config struct {
	// ROM image bytes; empty means an empty cartridge slot.
	ROM []uint8
	// Battery file contents, loaded into cartridge RAM when sized right.
	Battery []uint8
	// Bootstrap ROM image; when empty the core boots with the post-boot
	// register state instead.
	Bootstrap []uint8
	// Clock feeds the MBC3 real-time clock; nil means the host clock.
	Clock func() time.Time
}

// Emulator is the orchestrator: it owns the CPU, memory, LCD and timer and
// advances them in lockstep, one LCD event at a time.
type Emulator struct {
	cpu *cpu.CPU
	gpu *video.GPU
	mem *memory.MMU

	hasBootstrap bool

	instructionCount uint64
	frameCount       uint64
}

// New creates an emulator with an empty cartridge slot.
func New() *Emulator {
	e, _ := NewWithConfig(Config{})
	return e
}

// NewWithFile creates an emulator and loads the ROM at the given path, plus
// an adjacent <rom>.sav battery file when one exists.
func NewWithFile(path string) (*Emulator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM: %w", err)
	}

	battery, err := os.ReadFile(path + ".sav")
	if err != nil {
		battery = nil
	}

	return NewWithConfig(Config{ROM: data, Battery: battery})
}

// NewWithConfig creates an emulator from an explicit configuration.
func NewWithConfig(cfg Config) (*Emulator, error) {
	var cart *memory.Cartridge
	if len(cfg.ROM) == 0 {
		cart = memory.NewCartridge()
	} else {
		var err error
		cart, err = memory.NewCartridgeWithData(cfg.ROM, cfg.Battery, cfg.Clock)
		if err != nil {
			return nil, err
		}
	}

	mem := memory.NewWithCartridge(cart)
	mem.SetSerial(serial.NewLogSink(func() {
		mem.RequestInterrupt(addr.SerialInterrupt)
	}))

	e := &Emulator{
		cpu:          cpu.New(mem),
		gpu:          video.NewGPU(mem),
		mem:          mem,
		hasBootstrap: len(cfg.Bootstrap) > 0,
	}

	if e.hasBootstrap {
		mem.LoadBootstrap(cfg.Bootstrap)
	} else {
		e.initPostBootstrap()
	}

	slog.Debug("Emulator created",
		"title", cart.Title(), "color", cart.IsColor(), "bootstrap", e.hasBootstrap)

	return e, nil
}

// initPostBootstrap applies the register state the bootstrap ROM would have
// left behind.
func (e *Emulator) initPostBootstrap() {
	e.cpu.InitPostBootstrap()
	e.mem.WriteIO(addr.LCDC, 0x91)
	e.mem.WriteIO(addr.BGP, 0xFC)
	e.mem.WriteIO(addr.OBP0, 0xFF)
	e.mem.WriteIO(addr.OBP1, 0xFF)
}

// Step advances time by one LCD event: it drains CPU instructions until the
// event's cycle budget is exhausted, feeding each instruction's cost (and
// any side event it raised) to the timer and the LCD state machine.
func (e *Emulator) Step() error {
	budget := e.gpu.ModeCycles()
	spent := 0

	for spent < budget {
		cycles, err := e.cpu.Tick()
		if err != nil {
			slog.Error("CPU fault, halting", "error", err)
			return err
		}
		e.instructionCount++

		e.mem.Tick(cycles)
		spent += cycles

		for {
			event, ok := e.mem.PopSideEvent()
			if !ok {
				break
			}
			extra := e.runSideEvent(event)
			if extra > 0 {
				e.mem.Tick(extra)
				e.gpu.Tick(extra)
				spent += extra
			}
		}

		e.gpu.Tick(cycles)
	}

	e.mem.APU.PublishParameters()
	return nil
}

func (e *Emulator) runSideEvent(event memory.SideEvent) int {
	switch event.Type {
	case memory.DMATransfer:
		e.mem.RunDMA(event.Value)
		return event.Duration
	case memory.JoypadUpdate:
		e.mem.RunJoypadUpdate()
	case memory.BootstrapDone:
		e.mem.DisableBootstrap()
	}
	return 0
}

// RunUntilFrame steps the emulator until the LCD publishes a frame (the
// line 143 HBlank to VBlank transition).
func (e *Emulator) RunUntilFrame() error {
	for {
		if err := e.Step(); err != nil {
			return err
		}
		if e.gpu.FrameReady() {
			e.frameCount++
			return nil
		}
	}
}

// GetCurrentFrame exposes the framebuffer for the host presenter.
func (e *Emulator) GetCurrentFrame() *video.FrameBuffer {
	return e.gpu.GetFrameBuffer()
}

// HandleKeyPress records a host key press.
func (e *Emulator) HandleKeyPress(key memory.JoypadKey) {
	e.mem.HandleKeyPress(key)
}

// HandleKeyRelease records a host key release.
func (e *Emulator) HandleKeyRelease(key memory.JoypadKey) {
	e.mem.HandleKeyRelease(key)
}

// SaveBattery returns the battery snapshot; empty unless cartridge RAM was
// written since the last call.
func (e *Emulator) SaveBattery() []uint8 {
	return e.mem.SaveBattery()
}

// APU exposes the audio unit for the host player.
func (e *Emulator) APU() *audio.APU {
	return e.mem.APU
}

// Restart reinitializes the CPU, memory and LCD, keeping the cartridge.
func (e *Emulator) Restart() {
	e.cpu.Restart()
	e.mem.Restart()
	e.gpu.Restart()
	e.instructionCount = 0
	e.frameCount = 0
	if e.hasBootstrap {
		e.mem.LoadBootstrap(nil)
	} else {
		e.initPostBootstrap()
	}
	slog.Info("Emulator restarted")
}

// GetMMU exposes the memory unit, mainly for tests and debug tooling.
func (e *Emulator) GetMMU() *memory.MMU {
	return e.mem
}

// GetCPU exposes the processor, mainly for tests and debug tooling.
func (e *Emulator) GetCPU() *cpu.CPU {
	return e.cpu
}

// GetFrameCount returns the number of completed frames.
func (e *Emulator) GetFrameCount() uint64 {
	return e.frameCount
}

// GetInstructionCount returns the number of executed instructions.
func (e *Emulator) GetInstructionCount() uint64 {
	return e.instructionCount
}
