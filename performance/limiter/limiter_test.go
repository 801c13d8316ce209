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

package limiter_test

import (
	"testing"
	"time"

	"github.com/gopher800/gopher800/performance/limiter"
	"github.com/gopher800/gopher800/test"
)

func TestLimiter(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)
	defer lim.Close()
	test.ExpectEquality(t, lim.Limit(), 100.0)

	start := time.Now()
	for i := 0; i < 20; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// twenty frames at 100fps is 200ms. the first tick is immediate
	test.ExpectEquality(t, elapsed >= 150*time.Millisecond, true, elapsed)
}

func TestClose(t *testing.T) {
	lim := limiter.NewFPSLimiter(1)
	lim.Wait()
	lim.Close()
	lim.Close()

	// wait does not block after close
	done := make(chan bool)
	go func() {
		lim.Wait()
		done <- true
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("wait blocked after close")
	}
}
