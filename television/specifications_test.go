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

package television_test

import (
	"testing"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/television"
	"github.com/gopher800/gopher800/test"
)

func TestSpecifications(t *testing.T) {
	test.ExpectEquality(t, television.SpecNTSC.CyclesPerFrame, 29868)
	test.ExpectEquality(t, television.SpecPAL.CyclesPerFrame, 35568)

	spec, err := television.GetSpec("pal")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spec, television.SpecPAL)

	spec, err = television.GetSpec("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, spec, television.SpecNTSC)

	_, err = television.GetSpec("SECAM")
	test.ExpectEquality(t, curated.Is(err, television.UnknownSpec), true)
}
