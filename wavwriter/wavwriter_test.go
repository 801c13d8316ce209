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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/test"
	"github.com/gopher800/gopher800/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	snk, err := display.New("wav", display.Config{Path: fn, FramesPerSecond: 50})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, snk.Capabilities(), display.CapAudio)

	out := &frame.Output{}
	for i := range out.Audio {
		out.Audio[i] = uint8(i)
	}

	for i := 0; i < 10; i++ {
		fr, err := display.Prepare(out, nil, snk.Capabilities())
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, snk.Present(fr))
	}

	aw := snk.(*wavwriter.WavWriter)
	test.ExpectEquality(t, aw.Len(), 10*882)
	test.DemandSuccess(t, snk.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectEquality(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 10*882)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.SampleFreq)
	test.ExpectEquality(t, int(dec.BitDepth), 8)
	test.ExpectEquality(t, int(dec.NumChans), 1)
}

func TestShortBuffer(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "out.wav"), 0)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.SetAudio(make([]uint8, 10)))
	test.ExpectEquality(t, aw.Len(), 0)

	_, err = wavwriter.New("", 0)
	test.ExpectFailure(t, err)
}
