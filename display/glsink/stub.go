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

//go:build !sdl

package glsink

import (
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/display"
)

// NotAvailable is returned when the sink is created in a build without the
// sdl build tag.
const NotAvailable = "gl display not available: build with -tags sdl"

func init() {
	display.Register("gl", func(cfg display.Config) (display.Sink, error) {
		return nil, curated.Errorf(NotAvailable)
	})
}
