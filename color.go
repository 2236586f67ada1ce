package speedtui

// Color is a terminal color. The zero value represents the default foreground
// or background color. Non-default colors carry a 24-bit RGB value packed as
// (r<<16)|(g<<8)|b below the rgb flag bit
type Color uint32

const rgb Color = 1 << 24

// PackRGB packs a 24-bit RGB triple into a Color. Each component is clamped
// to [0,255]; out-of-range input is not an error
func PackRGB(r int, g int, b int) Color {
	color := Color(clamp(r)<<16 | clamp(g)<<8 | clamp(b))
	return color | rgb
}

// UnpackRGB is the inverse of PackRGB for any non-default Color
func UnpackRGB(c Color) (r uint8, g uint8, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// IsDefault reports whether c is the terminal-default sentinel
func (c Color) IsDefault() bool {
	return c&rgb == 0
}

// Params returns the SGR parameters for the color, or an empty slice if the
// color is the default color
func (c Color) Params() []uint8 {
	if c.IsDefault() {
		return []uint8{}
	}
	r, g, b := UnpackRGB(c)
	return []uint8{r, g, b}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
