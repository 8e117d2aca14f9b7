package core

import "image/color"

// Color is a palette index for a screen cell or a drawn shape.
// Terminal drivers map it to ANSI colors, windowed drivers to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorBlack
)

var rgba = map[Color]color.RGBA{
	ColorDefault:      {R: 245, G: 245, B: 245, A: 255},
	ColorRed:          {R: 139, G: 0, B: 0, A: 255},
	ColorGreen:        {R: 0, G: 117, B: 44, A: 255},
	ColorYellow:       {R: 200, G: 190, B: 0, A: 255},
	ColorBlue:         {R: 0, G: 82, B: 172, A: 255},
	ColorCyan:         {R: 0, G: 170, B: 170, A: 255},
	ColorWhite:        {R: 220, G: 220, B: 220, A: 255},
	ColorBrightRed:    {R: 230, G: 41, B: 55, A: 255},
	ColorBrightGreen:  {R: 0, G: 228, B: 48, A: 255},
	ColorBrightYellow: {R: 253, G: 249, B: 0, A: 255},
	ColorBrightBlue:   {R: 0, G: 121, B: 241, A: 255},
	ColorBrightCyan:   {R: 0, G: 255, B: 255, A: 255},
	ColorBrightWhite:  {R: 255, G: 255, B: 255, A: 255},
	ColorOrange:       {R: 255, G: 161, B: 0, A: 255},
	ColorGray:         {R: 80, G: 80, B: 80, A: 255},
	ColorBlack:        {R: 0, G: 0, B: 0, A: 255},
}

// ToRGBA returns the color for windowed rendering.
// Unknown values render as ColorDefault.
func (c Color) ToRGBA() color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[ColorDefault]
}
