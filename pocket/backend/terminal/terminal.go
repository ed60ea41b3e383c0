// Package terminal presents frames in the terminal using half-block
// characters and maps the keyboard onto the joypad.
package terminal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tiago/go-pocket/pocket"
	"github.com/tiago/go-pocket/pocket/memory"
	"github.com/tiago/go-pocket/pocket/render"
	"github.com/tiago/go-pocket/pocket/video"
)

const frameTime = time.Second / 60

// terminal key repeat means we never see release events; a held key is one
// whose press was seen recently
const keyTimeout = 150 * time.Millisecond

var runeKeys = map[rune]memory.JoypadKey{
	'z': memory.JoypadA,
	'x': memory.JoypadB,
	'b': memory.JoypadSelect,
	'n': memory.JoypadStart,
}

var arrowKeys = map[tcell.Key]memory.JoypadKey{
	tcell.KeyRight: memory.JoypadRight,
	tcell.KeyLeft:  memory.JoypadLeft,
	tcell.KeyUp:    memory.JoypadUp,
	tcell.KeyDown:  memory.JoypadDown,
}

// Backend drives an emulator and renders into a tcell screen.
type Backend struct {
	emu    *pocket.Emulator
	screen tcell.Screen

	pressedAt map[memory.JoypadKey]time.Time
	held      map[memory.JoypadKey]bool

	speed int
}

// New creates a terminal presenter over the given emulator.
func New(emu *pocket.Emulator) (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))

	return &Backend{
		emu:       emu,
		screen:    screen,
		pressedAt: make(map[memory.JoypadKey]time.Time),
		held:      make(map[memory.JoypadKey]bool),
		speed:     1,
	}, nil
}

// Run executes the emulator until the user quits or the core faults.
func (b *Backend) Run() error {
	defer b.screen.Fini()

	for {
		start := time.Now()

		quit := b.pollInput()
		if quit {
			return nil
		}

		for i := 0; i < b.speed; i++ {
			if err := b.emu.RunUntilFrame(); err != nil {
				return err
			}
		}

		b.draw()
		b.screen.Show()

		if elapsed := time.Since(start); elapsed < frameTime {
			time.Sleep(frameTime - elapsed)
		}
	}
}

func (b *Backend) pollInput() (quit bool) {
	now := time.Now()

	for b.screen.HasPendingEvent() {
		switch ev := b.screen.PollEvent().(type) {
		case *tcell.EventResize:
			b.screen.Sync()
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return true
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				b.emu.Restart()
			case ev.Key() == tcell.KeyRune && ev.Rune() == '+':
				if b.speed < 8 {
					b.speed++
				}
				slog.Info("Speed changed", "multiplier", b.speed)
			case ev.Key() == tcell.KeyRune && ev.Rune() == '-':
				if b.speed > 1 {
					b.speed--
				}
				slog.Info("Speed changed", "multiplier", b.speed)
			case ev.Key() == tcell.KeyRune:
				if key, ok := runeKeys[ev.Rune()]; ok {
					b.pressedAt[key] = now
				}
			default:
				if key, ok := arrowKeys[ev.Key()]; ok {
					b.pressedAt[key] = now
				}
			}
		}
	}

	// apply presses and expire stale keys
	for key, at := range b.pressedAt {
		if now.Sub(at) < keyTimeout {
			if !b.held[key] {
				b.emu.HandleKeyPress(key)
				b.held[key] = true
			}
		} else {
			delete(b.pressedAt, key)
			if b.held[key] {
				b.emu.HandleKeyRelease(key)
				delete(b.held, key)
			}
		}
	}

	return false
}

var shadeColors = [4]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorSilver,
	tcell.ColorGray,
	tcell.ColorBlack,
}

func (b *Backend) draw() {
	frame := b.emu.GetCurrentFrame().ToSlice()

	for y := 0; y < video.FramebufferHeight; y += 2 {
		for x := 0; x < video.FramebufferWidth; x++ {
			topShade := render.PixelToShade(frame[y*video.FramebufferWidth+x])
			bottomShade := render.PixelToShade(frame[(y+1)*video.FramebufferWidth+x])

			char := render.HalfBlockChar(topShade, bottomShade)
			style := tcell.StyleDefault.
				Foreground(shadeColors[topShade]).
				Background(shadeColors[bottomShade])
			if topShade == bottomShade {
				style = tcell.StyleDefault.Foreground(shadeColors[topShade])
			} else if char == '▄' {
				style = tcell.StyleDefault.
					Foreground(shadeColors[bottomShade]).
					Background(shadeColors[topShade])
			}

			b.screen.SetContent(x, y/2, char, nil, style)
		}
	}
}
