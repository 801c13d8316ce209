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

package statsview

import (
	"fmt"
	"sync"
	"time"
)

// Sample of the emulation statistics.
type Sample struct {
	Time time.Time

	// frames ticked since the session started
	Frames int

	// frame rate since the previous sample
	FPS float64

	// number of snapshots held by the history
	Snapshots int
}

func (smp Sample) String() string {
	return fmt.Sprintf("%.2f fps, %d frames, %d snapshots", smp.FPS, smp.Frames, smp.Snapshots)
}

// Emulation samples the statistics of the running emulation. Update() is
// called every frame but a sample is only taken once per period.
type Emulation struct {
	crit sync.Mutex

	period time.Duration
	latest Sample
	valid  bool

	// called with every new sample
	report func(Sample)
}

// NewEmulation is the preferred method of initialisation for the Emulation
// type.
func NewEmulation(period time.Duration) *Emulation {
	return &Emulation{period: period}
}

// Update the statistics. The snapshots function is only called when a
// sample is taken. Returns the new sample and true if one was taken.
func (em *Emulation) Update(now time.Time, frames int, snapshots func() int) (Sample, bool) {
	em.crit.Lock()

	if em.valid && now.Sub(em.latest.Time) < em.period {
		em.crit.Unlock()
		return Sample{}, false
	}

	smp := Sample{Time: now, Frames: frames, Snapshots: snapshots()}
	if em.valid {
		elapsed := now.Sub(em.latest.Time).Seconds()
		if elapsed > 0 {
			smp.FPS = float64(frames-em.latest.Frames) / elapsed
		}
	}
	em.latest = smp
	em.valid = true
	report := em.report

	em.crit.Unlock()

	if report != nil {
		report(smp)
	}

	return smp, true
}

// Latest returns the most recent sample. Returns false if no sample has been
// taken.
func (em *Emulation) Latest() (Sample, bool) {
	em.crit.Lock()
	defer em.crit.Unlock()
	return em.latest, em.valid
}

// SetReport sets the function that is called with every new sample. A nil
// function stops reporting.
func (em *Emulation) SetReport(report func(Sample)) {
	em.crit.Lock()
	defer em.crit.Unlock()
	em.report = report
}
