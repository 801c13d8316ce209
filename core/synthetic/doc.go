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

// Package synthetic is an in-process emulation core that honours the whole
// of the core contract without emulating any real hardware.
//
// It produces a deterministic video test pattern, a square wave and a state
// blob that conforms to the embedded Atari 800 schema. The CPU is not
// emulated. Instead, the program counter advances a fixed number of
// instructions every frame and a single step in the monitor advances the
// program counter by the length of the instruction found in RAM.
//
// The core is useful for testing the frontend and for running the frontend
// on a machine where the real core is not available. It registers itself
// with the core package as "synthetic".
//
// Supported option tokens:
//
//	-basic		enable the built-in BASIC
//	-xl		XL machine type
//	-pal		PAL television
//	-ntsc		NTSC television (default)
//	-banks n	number of 16K extended RAM banks
//	file		any other token is booted with RebootWithFile()
package synthetic
