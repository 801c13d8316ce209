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

package core_test

import (
	"testing"

	"github.com/gopher800/gopher800/core"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/test"
)

func TestUnknownCore(t *testing.T) {
	_, err := core.New("no such core")
	test.ExpectEquality(t, curated.Is(err, core.UnknownCore), true)
}

func TestRegisterTwice(t *testing.T) {
	core.Register("test", func() core.Core { return nil })

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	core.Register("test", func() core.Core { return nil })
}
