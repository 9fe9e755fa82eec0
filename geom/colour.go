package geom

import "fmt"

// Colour is an 8-bit-per-channel RGB triple.
type Colour struct {
	R, G, B uint8
}

// Predefined colours used as binary-segmenter defaults.
var (
	ColourWhite = Colour{255, 255, 255}
	ColourBlack = Colour{0, 0, 0}
	ColourRed   = Colour{255, 0, 0}
	ColourGreen = Colour{0, 255, 0}
	ColourBlue  = Colour{0, 0, 255}
)

// Add returns c + o with each channel saturating at 255 rather than
// wrapping.
func (c Colour) Add(o Colour) Colour {
	return Colour{
		R: saturate(int(c.R) + int(o.R)),
		G: saturate(int(c.G) + int(o.G)),
		B: saturate(int(c.B) + int(o.B)),
	}
}

func saturate(v int) uint8 {
	if v > 255 {
		v = 255
	}

	return uint8(v)
}

// String renders c as "r g b", the PLY face-colour field format.
func (c Colour) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}
