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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/driver"
	"github.com/gopher800/gopher800/performance/limiter"
	"github.com/gopher800/gopher800/television"
)

// Leadtime is the period of time the emulation runs for before measurement
// begins. The frame rate settles down during the leadtime.
var Leadtime = 2 * time.Second

// Check the performance of the driver. The driver must be running. The
// emulation runs for the duration after the leadtime. The result is written
// to output.
func Check(output io.Writer, profile Profile, drv *driver.Driver, spec *television.Specification, uncapped bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	var lim *limiter.FpsLimiter
	if !uncapped {
		lim = limiter.NewFPSLimiter(spec.FramesPerSecond)
		defer lim.Close()
	}

	var startFrame int
	var startTime time.Time
	var measured time.Duration

	runner := func() error {
		// the leadtime timer is replaced by the measurement timer when it
		// expires
		timer := time.NewTimer(Leadtime)
		defer timer.Stop()
		measuring := false

		for {
			if lim != nil {
				lim.Wait()
			}

			err := drv.Tick()
			if err != nil {
				return err
			}

			select {
			case <-timer.C:
				if measuring {
					measured = time.Since(startTime)
					return nil
				}
				measuring = true
				startFrame = drv.FrameCount()
				startTime = time.Now()
				timer.Reset(dur)
			default:
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	numFrames := drv.FrameCount() - startFrame
	fps, accuracy := CalcFPS(spec, numFrames, measured.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, measured.Seconds(), accuracy)

	return nil
}
