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

//go:build !statsview

package statsview_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gopher800/gopher800/statsview"
	"github.com/gopher800/gopher800/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), false)

	var s strings.Builder
	em := statsview.NewEmulation(time.Second)
	statsview.Launch(&s, em)
	test.ExpectEquality(t, s.String(), "")

	// sampling works without the server
	_, ok := em.Update(time.Now(), 1, func() int { return 0 })
	test.ExpectSuccess(t, ok)
}
