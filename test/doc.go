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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectSuccess() functions are the most useful. The
// Demand*() variants stop the test immediately on failure and should be used
// when the value is needed for further tests. For example, the length of a
// slice before it is indexed.
//
// The tags argument to every function is optional. If present the values are
// printed at the start of any failure message. This is useful when tests are
// run inside a loop:
//
//	for i, f := range frames {
//		test.ExpectSuccess(t, store.Get(f) != nil, i, f)
//	}
package test
