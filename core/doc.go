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

// Package core defines the contract between the frontend and an emulation
// core.
//
// The core is opaque. The frontend never looks inside it except through the
// state blob written into the frame.Output record, which is decoded with the
// statelayout package.
//
// Implementations register themselves by name, normally from an init()
// function, and are created with New():
//
//	import _ "github.com/gopher800/gopher800/core/synthetic"
//
//	c, err := core.New("synthetic")
package core
