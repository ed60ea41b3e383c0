package video

// The four shades of the mono display, lightest first.
var dmgPalette = [4]GBColor{
	NewGBColor(137, 143, 110),
	NewGBColor(87, 92, 72),
	NewGBColor(35, 40, 34),
	NewGBColor(16, 21, 21),
}

// MonoColor returns the RGB triple for a translated mono palette index.
func MonoColor(index uint8) GBColor {
	return dmgPalette[index&0x3]
}

// monoLookup translates a 2-bit color number through BGP/OBP0/OBP1.
func monoLookup(palette, colorNumber uint8) uint8 {
	return (palette >> (colorNumber * 2)) & 0x3
}

// to255 widens a 5-bit color channel to 8 bits.
func to255(v uint8) uint8 {
	return (v << 3) | (v >> 2)
}

// colorFromPalette decodes a 15-bit color palette entry (little-endian pair,
// 5 bits per channel) into an RGBA pixel.
func colorFromPalette(high, low uint8) GBColor {
	r := low & 0x1F
	g := ((high & 0x3) << 3) | (low >> 5)
	b := (high >> 2) & 0x1F
	return NewGBColor(to255(r), to255(g), to255(b))
}
