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

// Package colourgen builds the table that converts the indexed colours
// produced by the emulation into RGB values.
//
// An indexed colour is a single byte. The upper nibble selects the hue and
// the lower nibble selects the luminance. The hue is mapped to a pair of I
// and Q values, the luminance to a Y value, and the resulting YIQ triple is
// converted to RGB with the usual NTSC matrix.
//
// A Table is immutable once created and is safe to share between any number
// of consumers.
//
//	tab := colourgen.NewNTSC()
//	r, g, b := tab.RGB(0x94)
package colourgen
