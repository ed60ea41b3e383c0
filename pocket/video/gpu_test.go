package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/memory"
)

func newMonoMMU() *memory.MMU {
	return memory.New()
}

func newColorMMU(t *testing.T) *memory.MMU {
	t.Helper()
	rom := make([]uint8, 0x8000)
	rom[0x143] = 0x80 // color capable
	copy(rom[0x134:], "TEST")
	cart, err := memory.NewCartridgeWithData(rom, nil, nil)
	require.NoError(t, err)
	return memory.NewWithCartridge(cart)
}

// fillSolidTile makes tile 0 read as color number 3 everywhere.
func fillSolidTile(mmu *memory.MMU) {
	for i := uint16(0); i < 16; i++ {
		mmu.Write(addr.TileData0+i, 0xFF)
	}
}

func TestGPU_modeCycle(t *testing.T) {
	mmu := newMonoMMU()
	gpu := NewGPU(mmu)

	assert.Equal(t, uint8(2), mmu.Read(addr.STAT)&0x3, "starts in OAM search")

	gpu.Tick(77)
	assert.Equal(t, uint8(3), mmu.Read(addr.STAT)&0x3, "VRAM access after 77 cycles")

	gpu.Tick(169)
	assert.Equal(t, uint8(0), mmu.Read(addr.STAT)&0x3, "HBlank after 169 more")

	gpu.Tick(201)
	assert.Equal(t, uint8(2), mmu.Read(addr.STAT)&0x3, "next line OAM")
	assert.Equal(t, uint8(1), mmu.Read(addr.LY))
}

func TestGPU_accessGatingFollowsMode(t *testing.T) {
	mmu := newMonoMMU()
	gpu := NewGPU(mmu)

	// OAM search: OAM gated, VRAM open
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFE00))
	mmu.Write(0x8000, 0x42)
	assert.Equal(t, uint8(0x42), mmu.Read(0x8000))

	// VRAM access: both gated
	gpu.Tick(77)
	assert.Equal(t, uint8(0xFF), mmu.Read(0x8000))
	assert.Equal(t, uint8(0xFF), mmu.Read(0xFE00))

	// HBlank: both open
	gpu.Tick(169)
	assert.Equal(t, uint8(0x42), mmu.Read(0x8000))
}

func TestGPU_vblankInterruptAndFrame(t *testing.T) {
	mmu := newMonoMMU()
	mmu.WriteIO(addr.LCDC, 0x91)
	gpu := NewGPU(mmu)

	// run 143 full lines plus the final line's OAM+VRAM+HBlank
	for line := 0; line < 144; line++ {
		gpu.Tick(77)
		gpu.Tick(169)
		gpu.Tick(201)
	}

	assert.Equal(t, uint8(144), mmu.Read(addr.LY))
	assert.Equal(t, uint8(1), mmu.Read(addr.STAT)&0x3, "in VBlank")
	assert.NotZero(t, mmu.Read(addr.IF)&0x01, "VBlank interrupt requested")
	assert.True(t, gpu.FrameReady())
	assert.False(t, gpu.FrameReady(), "flag clears on read")

	// ten VBlank lines bring LY back to zero
	for i := 0; i < 10; i++ {
		gpu.Tick(456)
	}
	assert.Equal(t, uint8(0), mmu.Read(addr.LY))
	assert.Equal(t, uint8(2), mmu.Read(addr.STAT)&0x3)
}

func TestGPU_statCoincidenceInterrupt(t *testing.T) {
	mmu := newMonoMMU()
	gpu := NewGPU(mmu)

	mmu.WriteIO(addr.LYC, 2)
	mmu.Write(addr.STAT, 1<<6) // enable the coincidence source

	for line := 0; line < 2; line++ {
		gpu.Tick(77)
		gpu.Tick(169)
		gpu.Tick(201)
	}

	assert.NotZero(t, mmu.Read(addr.STAT)&0x04, "coincidence flag set")
	assert.NotZero(t, mmu.Read(addr.IF)&0x02, "STAT interrupt requested")
}

func TestGPU_solidBackgroundScanline(t *testing.T) {
	mmu := newMonoMMU()
	mmu.WriteIO(addr.LCDC, 0x91) // LCD on, BG on, tile data at 0x8000
	mmu.WriteIO(addr.BGP, 0xE4)  // identity palette
	fillSolidTile(mmu)
	// tile map left zeroed: every cell points at the solid tile

	gpu := NewGPU(mmu)
	gpu.Tick(77) // OAM -> VRAM rasterizes line 0

	want := MonoColor(3)
	for x := uint(0); x < FramebufferWidth; x++ {
		require.Equal(t, want, gpu.GetFrameBuffer().GetPixel(x, 0))
	}

	// every pixel carries full alpha
	rgba := gpu.GetFrameBuffer().ToRGBA()
	for i := 3; i < len(rgba); i += 4 {
		require.Equal(t, uint8(0xFF), rgba[i])
	}
}

func TestGPU_backgroundDisabledRendersColorZero(t *testing.T) {
	mmu := newMonoMMU()
	mmu.WriteIO(addr.LCDC, 0x80) // LCD on, BG off
	mmu.WriteIO(addr.BGP, 0xE4)
	fillSolidTile(mmu)

	gpu := NewGPU(mmu)
	gpu.Tick(77)

	assert.Equal(t, MonoColor(0), gpu.GetFrameBuffer().GetPixel(0, 0))
}

func TestGPU_scrollWrapsTileMap(t *testing.T) {
	mmu := newMonoMMU()
	mmu.WriteIO(addr.LCDC, 0x91)
	mmu.WriteIO(addr.BGP, 0xE4)
	fillSolidTile(mmu)

	// tile 1 is transparent (color 0); put it at map position 0 and scroll
	// so column 0 reads map position 31 (still tile 0, solid)
	for i := uint16(0); i < 16; i++ {
		mmu.Write(addr.TileData0+16+i, 0x00)
	}
	mmu.Write(addr.TileMap0, 0x01)
	mmu.WriteIO(addr.SCX, 248) // -8 mod 256

	gpu := NewGPU(mmu)
	gpu.Tick(77)

	assert.Equal(t, MonoColor(3), gpu.GetFrameBuffer().GetPixel(0, 0))
	// column 8 wraps around to map position 0, the transparent tile
	assert.Equal(t, MonoColor(0), gpu.GetFrameBuffer().GetPixel(8, 0))
}

func TestGPU_windowOverridesBackground(t *testing.T) {
	mmu := newMonoMMU()
	// window enabled on tile map 1, background on tile map 0
	mmu.WriteIO(addr.LCDC, 0x91|(1<<5)|(1<<6))
	mmu.WriteIO(addr.BGP, 0xE4)
	fillSolidTile(mmu)

	// background uses tile 1 (all zero), the window map is left pointing at
	// the solid tile 0
	for i := uint16(0); i < 16; i++ {
		mmu.Write(addr.TileData0+16+i, 0x00)
	}
	for i := uint16(0); i < 32; i++ {
		mmu.Write(addr.TileMap0+i, 0x01)
	}

	mmu.WriteIO(addr.WY, 0)
	mmu.WriteIO(addr.WX, 7+80) // window starts at column 80

	gpu := NewGPU(mmu)
	gpu.Tick(77)

	assert.Equal(t, MonoColor(0), gpu.GetFrameBuffer().GetPixel(0, 0), "left of window")
	assert.Equal(t, MonoColor(3), gpu.GetFrameBuffer().GetPixel(80, 0), "window area")
	assert.Equal(t, MonoColor(3), gpu.GetFrameBuffer().GetPixel(159, 0))
}

func TestGPU_sprites(t *testing.T) {
	setup := func(t *testing.T) (*memory.MMU, *GPU) {
		t.Helper()
		mmu := newMonoMMU()
		mmu.WriteIO(addr.LCDC, 0x93) // LCD, BG, sprites on
		mmu.WriteIO(addr.BGP, 0xE4)
		mmu.WriteIO(addr.OBP0, 0xE4)

		// tile 0: solid color 3 for BG; tile 1: solid color 1 for the sprite
		fillSolidTile(mmu)
		for i := uint16(0); i < 16; i += 2 {
			mmu.Write(addr.TileData0+16+i, 0xFF)
			mmu.Write(addr.TileData0+16+i+1, 0x00)
		}
		return mmu, NewGPU(mmu)
	}

	writeOAM := func(mmu *memory.MMU, sprite int, y, x, tile, flags uint8) {
		base := addr.OAMStart + uint16(sprite*4)
		mmu.SetOAMAccessible(true)
		mmu.Write(base, y)
		mmu.Write(base+1, x)
		mmu.Write(base+2, tile)
		mmu.Write(base+3, flags)
		mmu.SetOAMAccessible(false)
	}

	t.Run("sprite draws over background", func(t *testing.T) {
		mmu, gpu := setup(t)
		writeOAM(mmu, 0, 16, 8, 1, 0) // top-left corner, tile 1

		gpu.Tick(77)

		assert.Equal(t, MonoColor(1), gpu.GetFrameBuffer().GetPixel(0, 0))
		assert.Equal(t, MonoColor(3), gpu.GetFrameBuffer().GetPixel(8, 0), "past the sprite")
	})

	t.Run("behind-background sprite hides under non-zero BG", func(t *testing.T) {
		mmu, gpu := setup(t)
		writeOAM(mmu, 0, 16, 8, 1, 0x80) // BG priority flag

		gpu.Tick(77)

		assert.Equal(t, MonoColor(3), gpu.GetFrameBuffer().GetPixel(0, 0))
	})

	t.Run("lower OAM index overdraws higher", func(t *testing.T) {
		mmu, gpu := setup(t)
		// sprite 1 uses OBP1 with an inverted palette so the two differ
		mmu.WriteIO(addr.OBP1, 0x1B)
		writeOAM(mmu, 0, 16, 8, 1, 0)    // OBP0: color 1
		writeOAM(mmu, 1, 16, 8, 1, 0x10) // OBP1 at the same spot

		gpu.Tick(77)

		assert.Equal(t, MonoColor(1), gpu.GetFrameBuffer().GetPixel(0, 0))
	})

	t.Run("offscreen sprite is rejected", func(t *testing.T) {
		mmu, gpu := setup(t)
		writeOAM(mmu, 0, 0, 8, 1, 0) // y=0 means above the screen

		gpu.Tick(77)

		assert.Equal(t, MonoColor(3), gpu.GetFrameBuffer().GetPixel(0, 0))
	})
}

func TestGPU_colorPipeline(t *testing.T) {
	mmu := newColorMMU(t)
	mmu.WriteIO(addr.LCDC, 0x91)
	fillSolidTile(mmu)

	// BG palette 0, color 3 = pure red (5-bit 0x1F in the low bits)
	mmu.Write(addr.BGPI, 0x80 | 6) // color 3, low byte, auto-increment
	mmu.Write(addr.BGPD, 0x1F)
	mmu.Write(addr.BGPD, 0x00)

	gpu := NewGPU(mmu)
	gpu.Tick(77)

	assert.Equal(t, NewGBColor(0xFF, 0, 0), gpu.GetFrameBuffer().GetPixel(0, 0))
}

func TestColorFromPalette(t *testing.T) {
	// 5-bit white widens to 8-bit white
	assert.Equal(t, NewGBColor(0xFF, 0xFF, 0xFF), colorFromPalette(0x7F, 0xFF))
	assert.Equal(t, NewGBColor(0, 0, 0), colorFromPalette(0, 0))
	assert.Equal(t, uint8(0xFF), to255(0x1F))
	assert.Equal(t, uint8(0x00), to255(0x00))
}
