// This file is part of Gopher800.
//
// Gopher800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher800.  If not, see <https://www.gnu.org/licenses/>.

package colourgen

import (
	"fmt"
	"image"
	"image/color"
)

// NumColours is the number of entries in a Table.
const NumColours = 256

// the I and Q components for each of the sixteen hues. hue zero is the
// greyscale
var ntscIQ = [16][2]float64{
	{0.000, 0.000},
	{0.144, -0.189},
	{0.231, -0.081},
	{0.243, 0.032},
	{0.217, 0.121},
	{0.117, 0.216},
	{0.021, 0.233},
	{-0.066, 0.196},
	{-0.139, 0.134},
	{-0.182, 0.062},
	{-0.175, -0.022},
	{-0.136, -0.100},
	{-0.069, -0.150},
	{0.005, -0.159},
	{0.071, -0.125},
	{0.124, -0.089},
}

// Table maps indexed colours to RGB components.
type Table struct {
	Red   [NumColours]uint8
	Green [NumColours]uint8
	Blue  [NumColours]uint8
}

// clamp a colour component. the fractional part is truncated
func clamp(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NewNTSC creates a Table for the NTSC television standard.
func NewNTSC() *Table {
	tab := &Table{}

	for v := 0; v < NumColours; v++ {
		cr := v >> 4
		lm := v & 0x0f

		// integer division
		y := float64(255 * (lm + 1) / 16)

		i := ntscIQ[cr][0] * 255
		q := ntscIQ[cr][1] * 255

		tab.Red[v] = clamp(y + 0.956*i + 0.621*q)
		tab.Green[v] = clamp(y - 0.272*i - 0.647*q)
		tab.Blue[v] = clamp(y - 1.107*i + 1.704*q)
	}

	return tab
}

// RGB returns the red, green and blue components of the indexed colour.
func (tab *Table) RGB(idx uint8) (uint8, uint8, uint8) {
	return tab.Red[idx], tab.Green[idx], tab.Blue[idx]
}

// RGBA returns the indexed colour as a fully opaque color.RGBA.
func (tab *Table) RGBA(idx uint8) color.RGBA {
	return color.RGBA{R: tab.Red[idx], G: tab.Green[idx], B: tab.Blue[idx], A: 255}
}

// Palette returns the table as a color.Palette. The palette can be used with
// image.Paletted to display the indexed video buffer directly.
func (tab *Table) Palette() color.Palette {
	p := make(color.Palette, NumColours)
	for i := range p {
		p[i] = tab.RGBA(uint8(i))
	}
	return p
}

// Decode converts the indexed colours into dst. Components must be 3 (RGB)
// or 4 (RGBA with alpha set to 255). The length of dst must be at least
// len(indexed)*components.
func (tab *Table) Decode(indexed []uint8, dst []uint8, components int) error {
	if components != 3 && components != 4 {
		return fmt.Errorf("colourgen: unsupported number of components (%d)", components)
	}
	if len(dst) < len(indexed)*components {
		return fmt.Errorf("colourgen: destination too small (%d < %d)", len(dst), len(indexed)*components)
	}

	j := 0
	for _, v := range indexed {
		dst[j] = tab.Red[v]
		dst[j+1] = tab.Green[v]
		dst[j+2] = tab.Blue[v]
		if components == 4 {
			dst[j+3] = 255
		}
		j += components
	}

	return nil
}

// Image returns the indexed colours as an RGBA image of the specified
// dimensions.
func (tab *Table) Image(indexed []uint8, width int, height int) (*image.RGBA, error) {
	if len(indexed) != width*height {
		return nil, fmt.Errorf("colourgen: indexed buffer does not match dimensions (%d != %dx%d)", len(indexed), width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	err := tab.Decode(indexed, img.Pix, 4)
	if err != nil {
		return nil, err
	}
	return img, nil
}
