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

// Package limiter paces the run loop to a number of frames per second.
package limiter

import (
	"sync"
	"time"
)

// FpsLimiter will trigger every frames-per-second.
type FpsLimiter struct {
	mu              sync.Mutex
	framesPerSecond float64
	secondsPerFrame time.Duration

	tick chan bool
	done chan bool
	once sync.Once
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter
// type. The limiter must be closed with Close() when it is no longer
// required.
func NewFPSLimiter(framesPerSecond float64) *FpsLimiter {
	lim := &FpsLimiter{
		tick: make(chan bool),
		done: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	// run ticker concurrently
	go func() {
		adjustedSecondPerFrame := lim.period()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.done:
				return
			}

			time.Sleep(adjustedSecondPerFrame)

			// adjust the sleep period by the amount the previous sleep
			// overshot the target
			spf := lim.period()
			nt := time.Now()
			adjustedSecondPerFrame -= nt.Sub(t) - spf
			if adjustedSecondPerFrame < 0 || adjustedSecondPerFrame > spf {
				adjustedSecondPerFrame = spf
			}
			t = nt
		}
	}()

	return lim
}

func (lim *FpsLimiter) period() time.Duration {
	lim.mu.Lock()
	defer lim.mu.Unlock()
	return lim.secondsPerFrame
}

// SetLimit sets the number of frames per second. A value of zero or less
// means no limit.
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) {
	lim.mu.Lock()
	defer lim.mu.Unlock()
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond <= 0 {
		lim.secondsPerFrame = 0
		return
	}
	lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
}

// Limit returns the current frames per second limit.
func (lim *FpsLimiter) Limit() float64 {
	lim.mu.Lock()
	defer lim.mu.Unlock()
	return lim.framesPerSecond
}

// Wait will block until trigger.
func (lim *FpsLimiter) Wait() {
	select {
	case <-lim.tick:
	case <-lim.done:
	}
}

// HasWaited returns true if the limiter has triggered since the last call
// to Wait() or HasWaited(). It does not block.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Close stops the limiter. Calls to Wait() will no longer block.
func (lim *FpsLimiter) Close() {
	lim.once.Do(func() {
		close(lim.done)
	})
}
