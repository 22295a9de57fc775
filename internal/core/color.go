package core

import (
	"fmt"
	"strings"
)

// Color is a named palette entry. Terminal hosts map it to ANSI codes,
// window hosts to RGB via Color.RGB.
type Color uint8

// Palette colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorSilver
	ColorGold
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorOrange:  "orange",
	ColorGray:    "gray",
	ColorSilver:  "silver",
	ColorGold:    "gold",
}

// rgb values roughly follow the classic Arkanoid brick palette.
var colorRGB = map[Color][3]uint8{
	ColorDefault: {230, 230, 230},
	ColorBlack:   {10, 10, 30},
	ColorRed:     {220, 50, 50},
	ColorGreen:   {60, 200, 80},
	ColorYellow:  {240, 220, 60},
	ColorBlue:    {60, 110, 230},
	ColorMagenta: {210, 70, 200},
	ColorCyan:    {70, 210, 220},
	ColorWhite:   {245, 245, 245},
	ColorOrange:  {245, 150, 40},
	ColorGray:    {130, 130, 140},
	ColorSilver:  {190, 190, 200},
	ColorGold:    {220, 180, 40},
}

// String returns the palette name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// RGB returns the 8-bit red, green and blue components of the color.
func (c Color) RGB() (r, g, b uint8) {
	v, ok := colorRGB[c]
	if !ok {
		v = colorRGB[ColorDefault]
	}
	return v[0], v[1], v[2]
}

// ParseColor resolves a palette name (case-insensitive, "grey" accepted).
func ParseColor(name string) (Color, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "grey" {
		n = "gray"
	}
	for c, cn := range colorNames {
		if cn == n {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}
