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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error and so patterns that need to be checked for by other packages are
// stored as exported constants. For example, the statelayout package declares:
//
//	const LayoutMismatch = "layout mismatch: %v"
//
// and a caller can test for it with the Is() function:
//
//	_, err := statelayout.Decode(schema, blob)
//	if curated.Is(err, statelayout.LayoutMismatch) {
//		// the session can not continue
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is useful when a package wraps the error of another
// package:
//
//	err := driver.Tick()
//	if curated.Has(err, statelayout.LayoutMismatch) {
//		...
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. So a chain of the form:
//
//	driver: driver: layout mismatch: blob is 10 bytes, schema requires 12
//
// is reported as:
//
//	driver: layout mismatch: blob is 10 bytes, schema requires 12
//
// Chains are thought of as being composed of parts separated by the sub-string
// ': ' as suggested on p239 of "The Go Programming Language" (Donovan,
// Kernighan).
//
// Curated errors also support the Unwrap() convention of the standard errors
// package. The first error value in the placeholder list is returned.
package curated
