// Package palette holds the fixed color tables shared by the playfield
// and the info bar. Logical records store indices into these tables.
package palette

import "image/color"

// Enemy colors, assigned randomly at load or spawn time.
var Enemy = [23]color.RGBA{
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0x7F, 0xFF, 0xD4, 0xFF}, // aquamarine
	{0xFF, 0xE4, 0xC4, 0xFF}, // bisque
	{0x00, 0x00, 0xFF, 0xFF}, // blue
	{0xDC, 0x14, 0x3C, 0xFF}, // crimson
	{0x00, 0xFF, 0xFF, 0xFF}, // cyan
	{0x00, 0x80, 0x00, 0xFF}, // dark green
	{0xFF, 0x00, 0xFF, 0xFF}, // fuchsia
	{0xFF, 0xD7, 0x00, 0xFF}, // gold
	{0x00, 0xFF, 0x00, 0xFF}, // green
	{0x80, 0x80, 0x00, 0xFF}, // olive
	{0xFF, 0xA5, 0x00, 0xFF}, // orange
	{0xFF, 0x45, 0x00, 0xFF}, // orange red
	{0xFF, 0xC0, 0xCB, 0xFF}, // pink
	{0xFF, 0x00, 0x00, 0xFF}, // red
	{0xFA, 0x80, 0x72, 0xFF}, // salmon
	{0x2E, 0x8B, 0x57, 0xFF}, // sea green
	{0x00, 0x80, 0x80, 0xFF}, // teal
	{0xFF, 0x63, 0x47, 0xFF}, // tomato
	{0x40, 0xE0, 0xD0, 0xFF}, // turquoise
	{0xEE, 0x82, 0xEE, 0xFF}, // violet
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0x9A, 0xCD, 0x32, 0xFF}, // yellow green
}

// Item colors, cycled per frame so collectibles shimmer.
var Item = [7]color.RGBA{
	{0x00, 0x00, 0xFF, 0xFF}, // blue
	{0x00, 0xFF, 0x00, 0xFF}, // green
	{0x00, 0xFF, 0xFF, 0xFF}, // cyan
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0x00, 0xFF, 0xFF, 0xFF}, // cyan
}

// Common UI colors.
var (
	White  = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Black  = color.RGBA{0x00, 0x00, 0x00, 0xFF}
	Yellow = color.RGBA{0xFF, 0xFF, 0x00, 0xFF}
	Cyan   = color.RGBA{0x00, 0xFF, 0xFF, 0xFF}
	Gray   = color.RGBA{0x80, 0x80, 0x80, 0xFF}
	DarkGray = color.RGBA{0x40, 0x40, 0x40, 0xFF}
	Wall     = color.RGBA{0x58, 0x58, 0x70, 0xFF}
)
