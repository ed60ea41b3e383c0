// Package render holds shared helpers for turning framebuffers into text,
// used by the terminal presenter and the headless snapshot writer.
package render

// PixelToShade buckets a packed RGBA pixel into a shade level (0 lightest,
// 3 darkest) by luminance, so it works for both mono and color output.
func PixelToShade(pixel uint32) int {
	r := (pixel >> 24) & 0xFF
	g := (pixel >> 16) & 0xFF
	b := (pixel >> 8) & 0xFF
	// integer approximation of BT.601 luma
	luma := (299*r + 587*g + 114*b) / 1000

	switch {
	case luma >= 192:
		return 0
	case luma >= 128:
		return 1
	case luma >= 64:
		return 2
	default:
		return 3
	}
}

// HalfBlockChar picks the character rendering two stacked pixels in one
// terminal cell.
func HalfBlockChar(topShade, bottomShade int) rune {
	switch {
	case topShade == bottomShade:
		return '█'
	case topShade == 0 && bottomShade != 0:
		return '▄'
	default:
		return '▀'
	}
}

// FrameToHalfBlocks converts a frame to its half-block text representation,
// one string per pair of pixel rows.
func FrameToHalfBlocks(frame []uint32, width, height int) []string {
	if len(frame) < width*height {
		return nil
	}

	lines := make([]string, 0, (height+1)/2)
	for y := 0; y < height; y += 2 {
		line := make([]rune, width)
		for x := 0; x < width; x++ {
			top := PixelToShade(frame[y*width+x])
			bottom := 0
			if y+1 < height {
				bottom = PixelToShade(frame[(y+1)*width+x])
			}
			line[x] = HalfBlockChar(top, bottom)
		}
		lines = append(lines, string(line))
	}
	return lines
}
