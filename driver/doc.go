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

// Package driver advances the emulation one frame at a time and maintains
// everything that happens around a frame: the staging of input, the decoding
// of the state blob, the deferred frame events and the recording of history.
//
// A Driver is created with a core, the schema of the core's state blob and a
// history store:
//
//	drv := driver.NewDriver(c, schema, hist)
//	err := drv.Start(args)
//	for {
//		err = drv.Tick()
//	}
//
// The layout of the state blob is decoded in full on the first tick. Every
// subsequent tick only verifies that the blob still has the same shape. A
// blob that fails to decode or verify terminates the session.
//
// The Driver is not safe for concurrent use. Every operation runs to
// completion before returning.
package driver
