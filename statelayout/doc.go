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

// Package statelayout decodes the state blob produced by the emulation core.
//
// The blob is an opaque, variable-length block of bytes. Its structure is
// described by a Schema, an ordered list of Fields. A Field is either a leaf
// (a single unsigned value or an opaque run of bytes) or an aggregate (a
// struct of Fields or an array of elements). The size of an array or of a
// run of bytes can be given directly or read from a value that appears
// earlier in the blob.
//
// Decode() walks the schema over a blob and produces a Layout: the offset of
// every leaf keyed by its fully-qualified name, and a list of Segments
// describing where each aggregate lives. Names are formed by joining field
// names with a dot. Array elements are indexed with square brackets:
//
//	cpu.PC
//	ram.bank[1]
//	gtia.COLPF[3]
//
// A blob that does not match the schema exactly results in a LayoutMismatch
// error. No partial Layout is ever returned.
//
// Schemas are normally loaded from YAML. The schema for the Atari 800 state
// is embedded in the package and is returned by Atari800().
package statelayout
