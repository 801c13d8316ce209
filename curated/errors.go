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

package curated

import (
	"fmt"
	"strings"
)

// curated errors keep the pattern they were created with so that they can be
// identified with Is() and Has() after they have been wrapped.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a format string in the
// style of the fmt package. Formatting is deferred until Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{pattern: pattern, values: values}
}

// Error formats the error. Adjacent parts of the message that are the same
// are collapsed into one. Parts are separated by a colon and a space, so
// wrapping an error with its own package prefix does not repeat the prefix.
func (er curated) Error() string {
	parts := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")

	msg := parts[:1]
	for _, p := range parts[1:] {
		if p != msg[len(msg)-1] {
			msg = append(msg, p)
		}
	}

	return strings.Join(msg, ": ")
}

// Unwrap returns the first placeholder value that is an error, or nil.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if err, ok := v.(error); ok {
			return err
		}
	}
	return nil
}

// IsAny returns true if the error was created by Errorf().
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if the error was created by Errorf() with the pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if the error, or any curated error among its placeholder
// values, was created with the pattern. The search continues through every
// level of wrapping.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if inner, ok := v.(curated); ok && Has(inner, pattern) {
			return true
		}
	}

	return false
}
