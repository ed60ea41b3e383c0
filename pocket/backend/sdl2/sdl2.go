// Package sdl2 presents frames in an SDL window with a streaming RGBA
// texture and maps the keyboard onto the joypad.
package sdl2

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/tiago/go-pocket/pocket"
	"github.com/tiago/go-pocket/pocket/memory"
	"github.com/tiago/go-pocket/pocket/video"
)

var keyMap = map[sdl.Keycode]memory.JoypadKey{
	sdl.K_z:      memory.JoypadA,
	sdl.K_x:      memory.JoypadB,
	sdl.K_LSHIFT: memory.JoypadSelect,
	sdl.K_LCTRL:  memory.JoypadStart,
	sdl.K_RIGHT:  memory.JoypadRight,
	sdl.K_LEFT:   memory.JoypadLeft,
	sdl.K_UP:     memory.JoypadUp,
	sdl.K_DOWN:   memory.JoypadDown,
}

// Backend drives an emulator and renders into an SDL window.
type Backend struct {
	emu      *pocket.Emulator
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	speed int
}

// New creates the window at the given integer scale factor.
func New(emu *pocket.Emulator, scale int) (*Backend, error) {
	if scale < 1 {
		scale = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("initializing SDL: %w", err)
	}

	window, err := sdl.CreateWindow("pocket",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale), int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	// the framebuffer hands out R,G,B,A byte order, ABGR8888 when packed
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth, video.FramebufferHeight)
	if err != nil {
		return nil, fmt.Errorf("creating texture: %w", err)
	}

	return &Backend{
		emu:      emu,
		window:   window,
		renderer: renderer,
		texture:  texture,
		speed:    1,
	}, nil
}

// Run executes the emulator until the window closes or the core faults.
// The battery callback runs every 60 presented frames (about once per
// wall-clock second, since the loop is paced at 60 Hz) and on exit.
func (b *Backend) Run(saveBattery func([]uint8)) error {
	defer b.cleanup()

	frames := 0
	for {
		quit := b.pollInput()
		if quit {
			b.flushBattery(saveBattery)
			return nil
		}

		start := time.Now()
		for i := 0; i < b.speed; i++ {
			if err := b.emu.RunUntilFrame(); err != nil {
				b.flushBattery(saveBattery)
				return err
			}
		}

		b.present()

		frames++
		if frames%60 == 0 {
			b.flushBattery(saveBattery)
		}

		frameTime := time.Second / 60
		if elapsed := time.Since(start); elapsed < frameTime {
			sdl.Delay(uint32((frameTime - elapsed).Milliseconds()))
		}
	}
}

func (b *Backend) flushBattery(saveBattery func([]uint8)) {
	if saveBattery == nil {
		return
	}
	if data := b.emu.SaveBattery(); len(data) > 0 {
		saveBattery(data)
	}
}

func (b *Backend) pollInput() (quit bool) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if ev.Keysym.Sym == sdl.K_ESCAPE {
				return true
			}
			if ev.Keysym.Sym == sdl.K_r && ev.Type == sdl.KEYDOWN {
				b.emu.Restart()
				continue
			}
			if ev.Keysym.Sym == sdl.K_TAB {
				if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
					b.speed = 4
				} else if ev.Type == sdl.KEYUP {
					b.speed = 1
				}
				continue
			}

			key, ok := keyMap[ev.Keysym.Sym]
			if !ok {
				continue
			}
			if ev.Type == sdl.KEYDOWN && ev.Repeat == 0 {
				b.emu.HandleKeyPress(key)
			} else if ev.Type == sdl.KEYUP {
				b.emu.HandleKeyRelease(key)
			}
		}
	}
	return false
}

func (b *Backend) present() {
	pixels := b.emu.GetCurrentFrame().ToRGBA()

	if err := b.texture.Update(nil, pixels, video.FramebufferWidth*4); err != nil {
		slog.Warn("Texture update failed", "error", err)
		return
	}
	b.renderer.Clear()
	b.renderer.Copy(b.texture, nil, nil)
	b.renderer.Present()
}

func (b *Backend) cleanup() {
	b.texture.Destroy()
	b.renderer.Destroy()
	b.window.Destroy()
	sdl.Quit()
}
