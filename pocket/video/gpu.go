package video

import (
	"github.com/tiago/go-pocket/pocket/addr"
	"github.com/tiago/go-pocket/pocket/bit"
	"github.com/tiago/go-pocket/pocket/memory"
)

// GpuMode represents the LCD's current stage. The values match STAT bits 1-0.
type GpuMode uint8

const (
	// hblankMode (mode 0): horizontal blank, CPU can access VRAM/OAM
	hblankMode GpuMode = 0
	// vblankMode (mode 1): vertical blank, CPU can access VRAM/OAM
	vblankMode GpuMode = 1
	// oamReadMode (mode 2): LCD is reading OAM, CPU cannot access OAM
	oamReadMode GpuMode = 2
	// vramReadMode (mode 3): LCD is reading VRAM, CPU cannot access VRAM/OAM
	vramReadMode GpuMode = 3
)

const (
	oamCycles        = 77
	vramCycles       = 169
	hblankCycles     = 201
	vblankLineCycles = 456
)

// tileType tags where a recorded pixel came from for the sprite pass.
type tileType uint8

const (
	backgroundTile tileType = iota
	windowTile
	spriteTile
)

// tileAttr is a BG map attribute or OAM attribute byte.
type tileAttr uint8

func (a tileAttr) cgbPalette() uint8 { return uint8(a) & 0x7 }
func (a tileAttr) vramBank() uint8   { return (uint8(a) >> 3) & 0x1 }
func (a tileAttr) dmgPalette() uint8 { return (uint8(a) >> 4) & 0x1 }
func (a tileAttr) hFlip() bool       { return bit.IsSet(5, uint8(a)) }
func (a tileAttr) vFlip() bool       { return bit.IsSet(6, uint8(a)) }
func (a tileAttr) bgPriority() bool  { return bit.IsSet(7, uint8(a)) }

// tilePixel records one rasterized BG/window pixel for the sprite-priority
// pass: the raw 2-bit color number plus the attributes it was drawn with.
type tilePixel struct {
	colorNumber uint8
	attr        tileAttr
	kind        tileType
}

// GPU owns the STAT/LY mode state machine and the per-scanline pixel
// pipeline. Mode changes gate VRAM/OAM access, advance LY, and raise the
// STAT and VBlank interrupts; the OAM->VRAM transition rasterizes one line.
type GPU struct {
	memory      *memory.MMU
	framebuffer *FrameBuffer

	mode    GpuMode
	line    int
	cycles  int
	isColor bool

	// one scanline of BG/window records for the sprite pass
	linePixels [FramebufferWidth]tilePixel

	frameReady bool
}

// NewGPU creates the display state machine over the given memory unit.
func NewGPU(mem *memory.MMU) *GPU {
	g := &GPU{
		framebuffer: NewFrameBuffer(),
		memory:      mem,
		isColor:     mem.IsColor(),
	}
	g.framebuffer.Clear(MonoColor(0))
	g.setMode(oamReadMode)
	return g
}

func (g *GPU) GetFrameBuffer() *FrameBuffer {
	return g.framebuffer
}

// FrameReady reports and clears the per-frame publication flag, set on the
// line 143 HBlank -> VBlank transition.
func (g *GPU) FrameReady() bool {
	ready := g.frameReady
	g.frameReady = false
	return ready
}

// Mode returns the current STAT mode.
func (g *GPU) Mode() GpuMode {
	return GpuMode(g.memory.Read(addr.STAT) & 0x3)
}

// ModeCycles returns the cycle budget of the current mode, the event length
// the orchestrator drains instructions against.
func (g *GPU) ModeCycles() int {
	switch g.mode {
	case oamReadMode:
		return oamCycles
	case vramReadMode:
		return vramCycles
	case hblankMode:
		return hblankCycles
	default:
		return vblankLineCycles
	}
}

// Tick advances the LCD by the given cycle budget, crossing mode boundaries
// as they come due.
func (g *GPU) Tick(cycles int) {
	g.cycles += cycles

	switch g.mode {
	case oamReadMode:
		if g.cycles < oamCycles {
			break
		}
		g.cycles -= oamCycles
		g.setMode(vramReadMode)
		if g.line < FramebufferHeight && g.lcdEnabled() {
			g.drawScanline()
		}
	case vramReadMode:
		if g.cycles < vramCycles {
			break
		}
		g.cycles -= vramCycles
		g.setMode(hblankMode)
		if g.isColor {
			g.memory.RunHBlankDMA()
		}
	case hblankMode:
		if g.cycles < hblankCycles {
			break
		}
		g.cycles -= hblankCycles
		g.setLY(g.line + 1)

		if g.line == FramebufferHeight {
			g.setMode(vblankMode)
			g.frameReady = true
			if g.lcdEnabled() {
				g.memory.RequestInterrupt(addr.VBlankInterrupt)
			}
		} else {
			g.setMode(oamReadMode)
		}
	case vblankMode:
		if g.cycles < vblankLineCycles {
			break
		}
		g.cycles -= vblankLineCycles

		if g.line == FramebufferHeight+9 {
			g.setLY(0)
			g.setMode(oamReadMode)
		} else {
			g.setLY(g.line + 1)
		}
	}
}

func (g *GPU) lcdEnabled() bool {
	return bit.IsSet(7, g.memory.Read(addr.LCDC))
}

// setMode updates STAT bits 1-0, flips the access gates and re-arbitrates
// the STAT interrupt.
func (g *GPU) setMode(mode GpuMode) {
	g.mode = mode

	stat := g.memory.Read(addr.STAT)
	g.memory.WriteIO(addr.STAT, (stat&0xFC)|uint8(mode))

	// strict gating: VRAM is CPU-visible outside mode 3, OAM outside 2 and 3
	g.memory.SetVRAMAccessible(mode != vramReadMode)
	g.memory.SetOAMAccessible(mode != oamReadMode && mode != vramReadMode)

	g.statInterrupt()
}

// setLY advances the current scanline, refreshing the LYC coincidence flag.
func (g *GPU) setLY(line int) {
	g.line = line
	g.memory.WriteIO(addr.LY, uint8(line))

	stat := g.memory.Read(addr.STAT)
	if uint8(line) == g.memory.Read(addr.LYC) {
		stat = bit.Set(2, stat)
	} else {
		stat = bit.Reset(2, stat)
	}
	g.memory.WriteIO(addr.STAT, stat)

	g.statInterrupt()
}

// statInterrupt raises IF.1 when any enabled STAT condition holds: the
// coincidence flag or the matching mode gate.
func (g *GPU) statInterrupt() {
	stat := g.memory.Read(addr.STAT)
	mode := stat & 0x3

	coincidence := bit.IsSet(6, stat) && bit.IsSet(2, stat)
	oam := bit.IsSet(5, stat) && mode == uint8(oamReadMode)
	vblank := bit.IsSet(4, stat) && mode == uint8(vblankMode)
	hblank := bit.IsSet(3, stat) && mode == uint8(hblankMode)

	if coincidence || oam || vblank || hblank {
		g.memory.RequestInterrupt(addr.LCDSTATInterrupt)
	}
}

// Restart puts the state machine back into its power-on mode.
func (g *GPU) Restart() {
	g.cycles = 0
	g.frameReady = false
	g.framebuffer.Clear(MonoColor(0))
	g.setLY(0)
	g.setMode(oamReadMode)
}

// drawScanline rasterizes the background, window and sprite planes for the
// current LY into the framebuffer.
func (g *GPU) drawScanline() {
	g.drawBackgroundWindow()
	g.drawSprites()
}

func (g *GPU) drawBackgroundWindow() {
	lcdc := g.memory.Read(addr.LCDC)

	bgOn := bit.IsSet(0, lcdc)
	if g.isColor {
		// on color devices LCDC bit 0 only demotes BG priority; the plane is
		// always rendered
		bgOn = true
	}
	windowOn := bit.IsSet(5, lcdc)

	line := g.line
	lineWidth := line * FramebufferWidth

	if !bgOn && !windowOn {
		for x := 0; x < FramebufferWidth; x++ {
			g.linePixels[x] = tilePixel{}
			g.framebuffer.buffer[lineWidth+x] = uint32(g.translate(tilePixel{}))
		}
		return
	}

	scx := g.memory.Read(addr.SCX)
	scy := g.memory.Read(addr.SCY)
	wy := g.memory.Read(addr.WY)
	wx := g.memory.Read(addr.WX) - 7

	signedTiles := !bit.IsSet(4, lcdc)
	tileBase := addr.TileData0
	if signedTiles {
		tileBase = addr.TileData2
	}

	bgMap := addr.TileMap0
	if bit.IsSet(3, lcdc) {
		bgMap = addr.TileMap1
	}
	windowMap := addr.TileMap0
	if bit.IsSet(6, lcdc) {
		windowMap = addr.TileMap1
	}

	inWindow := false
	ypos := uint8(line) + scy

	for x := 0; x < FramebufferWidth; x++ {
		if windowOn && !inWindow && x >= int(wx) && int(wx) < FramebufferWidth && line >= int(wy) {
			inWindow = true
			ypos = uint8(line) - wy
		}

		var xpos uint8
		var mapBase uint16
		kind := backgroundTile
		if inWindow {
			xpos = uint8(x) - wx
			mapBase = windowMap
			kind = windowTile
		} else {
			xpos = uint8(x) + scx
			mapBase = bgMap
		}

		if !bgOn && !inWindow {
			g.linePixels[x] = tilePixel{}
			g.framebuffer.buffer[lineWidth+x] = uint32(g.translate(tilePixel{}))
			continue
		}

		mapAddr := mapBase + uint16(ypos>>3)*32 + uint16(xpos>>3)
		tileIndex := g.memory.ReadVRAMBank(0, mapAddr)

		var attr tileAttr
		if g.isColor {
			attr = tileAttr(g.memory.ReadVRAMBank(1, mapAddr))
		}

		tileCol := xpos & 0x7
		tileLine := ypos & 0x7
		if attr.hFlip() {
			tileCol = 7 - tileCol
		}
		if attr.vFlip() {
			tileLine = 7 - tileLine
		}

		var tileAddr uint16
		if signedTiles {
			tileAddr = uint16(int(tileBase) + int(int8(tileIndex))*16)
		} else {
			tileAddr = tileBase + uint16(tileIndex)*16
		}

		low := g.memory.ReadVRAMBank(attr.vramBank(), tileAddr+uint16(tileLine)*2)
		high := g.memory.ReadVRAMBank(attr.vramBank(), tileAddr+uint16(tileLine)*2+1)

		shift := 7 - tileCol
		colorNumber := ((high>>shift)&0x1)<<1 | ((low >> shift) & 0x1)

		pixel := tilePixel{colorNumber: colorNumber, attr: attr, kind: kind}
		g.linePixels[x] = pixel
		g.framebuffer.buffer[lineWidth+x] = uint32(g.translate(pixel))
	}
}

func (g *GPU) drawSprites() {
	lcdc := g.memory.Read(addr.LCDC)
	if !bit.IsSet(1, lcdc) {
		return
	}

	height := 8
	if bit.IsSet(2, lcdc) {
		height = 16
	}

	line := g.line
	lineWidth := line * FramebufferWidth

	// highest OAM index first, so lower-indexed sprites overdraw
	for sprite := 39; sprite >= 0; sprite-- {
		base := uint16(sprite * 4)
		y := int(g.memory.ReadOAM(base)) - 16
		if line < y || line >= y+height {
			continue
		}
		x := int(g.memory.ReadOAM(base+1)) - 8
		if x <= -8 || x >= FramebufferWidth {
			continue
		}

		tileIndex := g.memory.ReadOAM(base + 2)
		attr := tileAttr(g.memory.ReadOAM(base + 3))

		if height == 16 {
			tileIndex &= 0xFE
		}

		tileLine := line - y
		if attr.vFlip() {
			tileLine = height - 1 - tileLine
		}

		bank := uint8(0)
		if g.isColor {
			bank = attr.vramBank()
		}
		tileAddr := addr.TileData0 + uint16(tileIndex)*16 + uint16(tileLine)*2
		low := g.memory.ReadVRAMBank(bank, tileAddr)
		high := g.memory.ReadVRAMBank(bank, tileAddr+1)

		for col := 0; col < 8; col++ {
			screenX := x + col
			if screenX < 0 || screenX >= FramebufferWidth {
				continue
			}

			shift := 7 - col
			if attr.hFlip() {
				shift = col
			}
			colorNumber := ((high>>uint(shift))&0x1)<<1 | ((low >> uint(shift)) & 0x1)
			if colorNumber == 0 {
				// color 0 is transparent for sprites
				continue
			}

			bgPixel := g.linePixels[screenX]

			var visible bool
			if g.isColor {
				spritesOnTop := !bit.IsSet(0, lcdc)
				visible = spritesOnTop ||
					(!bgPixel.attr.bgPriority() && (!attr.bgPriority() || bgPixel.colorNumber == 0))
			} else {
				visible = !attr.bgPriority() || bgPixel.colorNumber == 0
			}
			if !visible {
				continue
			}

			pixel := tilePixel{colorNumber: colorNumber, attr: attr, kind: spriteTile}
			g.framebuffer.buffer[lineWidth+screenX] = uint32(g.translate(pixel))
		}
	}
}

// translate turns a recorded pixel into an RGBA color through the mono
// registers or the color palette memory.
func (g *GPU) translate(pixel tilePixel) GBColor {
	if g.isColor {
		paletteBase := pixel.attr.cgbPalette()*8 + pixel.colorNumber*2
		var low, high uint8
		if pixel.kind == spriteTile {
			low = g.memory.ReadSpritePalette(paletteBase)
			high = g.memory.ReadSpritePalette(paletteBase + 1)
		} else {
			low = g.memory.ReadBGPalette(paletteBase)
			high = g.memory.ReadBGPalette(paletteBase + 1)
		}
		return colorFromPalette(high, low)
	}

	var palette uint8
	if pixel.kind == spriteTile {
		if pixel.attr.dmgPalette() == 0 {
			palette = g.memory.Read(addr.OBP0)
		} else {
			palette = g.memory.Read(addr.OBP1)
		}
	} else {
		palette = g.memory.Read(addr.BGP)
	}
	return MonoColor(monoLookup(palette, pixel.colorNumber))
}
