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

package logger

import "sync/atomic"

// Permission decides whether a log request results in a new entry.
type Permission interface {
	AllowLogging() bool
}

// PermissionFunc adapts an ordinary function to the Permission interface.
type PermissionFunc func() bool

// AllowLogging implements the Permission interface.
func (f PermissionFunc) AllowLogging() bool {
	return f()
}

// Allow always permits the entry.
var Allow Permission = PermissionFunc(func() bool { return true })

// Verbose permits the entry only if SetVerbose(true) has been called. Use it
// for entries that can be made once per frame.
var Verbose Permission = PermissionFunc(func() bool { return verbose.Load() })

var verbose atomic.Bool

// SetVerbose controls whether requests made with the Verbose permission
// result in new entries.
func SetVerbose(on bool) {
	verbose.Store(on)
}
