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

package history_test

import (
	"bytes"
	"testing"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/history"
	"github.com/gopher800/gopher800/test"
)

func newStore(t *testing.T, interval int) *history.Store {
	t.Helper()
	s, err := history.NewStore(false)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, s.Prefs.Interval.Set(interval))
	return s
}

func output(f int) *frame.Output {
	return &frame.Output{FrameNumber: uint32(f), State: []byte{byte(f)}}
}

// record frames from zero up to and including last
func recordUpTo(s *history.Store, last int) {
	for f := 0; f <= last; f++ {
		s.Record(f, output(f))
	}
}

func TestRetention(t *testing.T) {
	s := newStore(t, 10)
	recordUpTo(s, 25)

	test.ExpectEquality(t, s.Len(), 26)
	test.ExpectEquality(t, s.Latest(), 25)

	for f := 0; f < s.Len(); f++ {
		expected := f%10 == 0 || f == 25
		test.ExpectEquality(t, s.Get(f) != nil, expected, f)
	}

	retained := s.Retained()
	test.DemandEquality(t, len(retained), 4)
	test.ExpectEquality(t, retained[3], 25)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newStore(t, 10)
	out := output(0)
	s.Record(0, out)
	out.State[0] = 0xff
	test.ExpectEquality(t, s.Get(0).State[0], 0)
}

func TestNavigation(t *testing.T) {
	s := newStore(t, 10)
	recordUpTo(s, 25)

	f, err := s.FindPreviousNonEmpty(25)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 20)

	f, err = s.FindPreviousNonEmpty(26)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 25)

	f, err = s.FindPreviousNonEmpty(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 0)

	_, err = s.FindPreviousNonEmpty(0)
	test.ExpectEquality(t, curated.Is(err, history.NotFound), true)

	f, err = s.FindNextNonEmpty(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 10)

	f, err = s.FindNextNonEmpty(21)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 25)

	_, err = s.FindNextNonEmpty(26)
	test.ExpectEquality(t, curated.Is(err, history.NotFound), true)

	// navigation never returns an empty entry
	for from := 0; from <= s.Len(); from++ {
		if f, err := s.FindPreviousNonEmpty(from); err == nil {
			test.ExpectInequality(t, s.Get(f), nil, from)
		}
		if f, err := s.FindNextNonEmpty(from); err == nil {
			test.ExpectInequality(t, s.Get(f), nil, from)
		}
	}
}

func TestEmptyRecord(t *testing.T) {
	s := newStore(t, 10)
	s.Record(0, output(0))
	s.Record(1, output(1))
	s.Record(2, nil)

	test.ExpectEquality(t, s.Len(), 3)
	test.ExpectEquality(t, s.Get(2), nil)

	// an empty record does not remove the most recent snapshot
	f, err := s.FindPreviousNonEmpty(3)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, 1)
}

func TestTruncate(t *testing.T) {
	s := newStore(t, 10)
	recordUpTo(s, 25)

	s.TruncateAfter(12)
	test.ExpectEquality(t, s.Len(), 13)
	test.ExpectEquality(t, s.Get(20), nil)
	test.ExpectEquality(t, s.Get(13), nil)
	test.ExpectEquality(t, s.Latest(), 10)

	_, err := s.FindNextNonEmpty(11)
	test.ExpectEquality(t, curated.Is(err, history.NotFound), true)

	// truncating beyond the end changes nothing
	s.TruncateAfter(100)
	test.ExpectEquality(t, s.Len(), 13)

	// recording continues from the truncation point
	s.Record(13, output(13))
	test.ExpectEquality(t, s.Len(), 14)
	test.ExpectInequality(t, s.Get(13), nil)
	test.ExpectInequality(t, s.Get(10), nil)

	s.TruncateAfter(-1)
	test.ExpectEquality(t, s.Len(), 0)
	test.ExpectEquality(t, s.Latest(), -1)
}

func TestMaxSnapshots(t *testing.T) {
	s := newStore(t, 1)
	test.DemandSuccess(t, s.Prefs.MaxSnapshots.Set(5))

	recordUpTo(s, 9)
	test.ExpectEquality(t, len(s.Retained()), 5)
	test.ExpectEquality(t, s.Retained()[0], 5)

	// reducing the limit applies immediately
	test.DemandSuccess(t, s.Prefs.MaxSnapshots.Set(2))
	test.ExpectEquality(t, len(s.Retained()), 2)
	test.ExpectEquality(t, s.Latest(), 9)
}

func TestDefaultRetentionIsUnbounded(t *testing.T) {
	s, err := history.NewStore(false)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, s.Prefs.MaxSnapshots.Get().(int), 0)

	interval := s.Interval()
	last := 1001*interval + 10
	recordUpTo(s, last)

	for f := 0; f <= last; f += interval {
		if !test.ExpectInequality(t, s.Get(f), nil, f) {
			break
		}
	}
	test.ExpectEquality(t, len(s.Retained()), last/interval+1)
}

func TestMaxSnapshotsKeepsLatest(t *testing.T) {
	s := newStore(t, 1)
	recordUpTo(s, 9)

	// rerecording an earlier frame makes it the most recent snapshot. it
	// is the lowest numbered snapshot so it would otherwise be pruned first
	s.Record(0, output(0))
	test.DemandEquality(t, s.Latest(), 0)

	test.DemandSuccess(t, s.Prefs.MaxSnapshots.Set(3))
	test.DemandEquality(t, len(s.Retained()), 3)
	test.ExpectInequality(t, s.Get(0), nil)
	test.ExpectEquality(t, s.Retained()[0], 0)
	test.ExpectEquality(t, s.Retained()[2], 9)

	s.Record(0, output(0))
	test.ExpectInequality(t, s.Get(0), nil)
	test.ExpectEquality(t, len(s.Retained()), 3)
}

func TestReset(t *testing.T) {
	s := newStore(t, 10)
	recordUpTo(s, 5)
	s.Reset()
	test.ExpectEquality(t, s.Len(), 0)
	test.ExpectEquality(t, len(s.Retained()), 0)
	test.ExpectEquality(t, s.Latest(), -1)
}

func TestVisualise(t *testing.T) {
	s := newStore(t, 10)
	recordUpTo(s, 12)

	var b bytes.Buffer
	s.Visualise(&b)
	test.ExpectEquality(t, bytes.Contains(b.Bytes(), []byte("digraph")), true)
}
