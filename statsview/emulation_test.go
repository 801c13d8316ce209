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

package statsview_test

import (
	"testing"
	"time"

	"github.com/gopher800/gopher800/statsview"
	"github.com/gopher800/gopher800/test"
)

func TestEmulationSampling(t *testing.T) {
	em := statsview.NewEmulation(time.Second)

	_, ok := em.Latest()
	test.ExpectEquality(t, ok, false)

	var calls int
	snapshots := func() int {
		calls++
		return 7
	}

	var reported []statsview.Sample
	em.SetReport(func(smp statsview.Sample) {
		reported = append(reported, smp)
	})

	start := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	smp, ok := em.Update(start, 0, snapshots)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, smp.FPS, 0.0)
	test.ExpectEquality(t, smp.Snapshots, 7)

	// within the period no sample is taken and the history is not asked
	_, ok = em.Update(start.Add(500*time.Millisecond), 30, snapshots)
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, calls, 1)

	smp, ok = em.Update(start.Add(2*time.Second), 120, snapshots)
	test.DemandSuccess(t, ok)
	test.ExpectApproximate(t, smp.FPS, 60.0, 0.001)
	test.ExpectEquality(t, smp.Frames, 120)
	test.ExpectEquality(t, smp.String(), "60.00 fps, 120 frames, 7 snapshots")

	latest, ok := em.Latest()
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, latest.Frames, 120)

	test.ExpectEquality(t, len(reported), 2)
}
