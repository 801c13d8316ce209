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

package history

import (
	"fmt"
	"io"
	"sort"

	"github.com/bradleyjkemp/memviz"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/logger"
)

// NotFound is returned when a search for a snapshot fails.
const NotFound = "history: not found: %v"

// Store is a sparse record of output snapshots.
type Store struct {
	Prefs *Preferences

	entries map[int]*frame.Output

	// sorted list of the frame numbers in the entries map
	index []int

	// one more than the highest frame number recorded
	length int

	// the most recent frame with a snapshot. -1 if there is no snapshot
	latest int
}

// NewStore is the preferred method of initialisation for the Store type. If
// persist is true then the preferences are loaded from and saved to the
// preferences file.
func NewStore(persist bool) (*Store, error) {
	s := &Store{
		entries: make(map[int]*frame.Output),
		latest:  -1,
	}

	var err error
	s.Prefs, err = newPreferences(s, persist)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}

	return s, nil
}

func (s *Store) String() string {
	return fmt.Sprintf("%d snapshots over %d frames", len(s.index), s.length)
}

// Interval returns the retention interval.
func (s *Store) Interval() int {
	return s.Prefs.Interval.Get().(int)
}

// Len returns one more than the highest frame number recorded. When the store
// is in sync with the emulation this is the current frame number plus one.
func (s *Store) Len() int {
	return s.length
}

// Latest returns the frame number of the most recent snapshot. Returns -1 if
// there are no snapshots.
func (s *Store) Latest() int {
	return s.latest
}

// Retained returns the sorted list of frame numbers that have a snapshot.
func (s *Store) Retained() []int {
	r := make([]int, len(s.index))
	copy(r, s.index)
	return r
}

// Reset forgets all snapshots.
func (s *Store) Reset() {
	s.entries = make(map[int]*frame.Output)
	s.index = s.index[:0]
	s.length = 0
	s.latest = -1
}

// Record the output for the frame. A copy of the output is retained, subject
// to the retention policy. A nil output records an empty entry.
//
// The snapshot of the previous most recent frame is forgotten if it is not a
// multiple of the retention interval. This happens only when out is not nil.
func (s *Store) Record(frameNum int, out *frame.Output) {
	if frameNum < 0 {
		return
	}

	if frameNum >= s.length {
		s.length = frameNum + 1
	}

	if out == nil {
		return
	}

	if s.latest >= 0 && s.latest != frameNum && s.latest%s.Interval() != 0 {
		s.forget(s.latest)
	}

	if _, ok := s.entries[frameNum]; !ok {
		i := sort.SearchInts(s.index, frameNum)
		s.index = append(s.index, 0)
		copy(s.index[i+1:], s.index[i:])
		s.index[i] = frameNum
	}
	s.entries[frameNum] = out.Clone()

	s.latest = frameNum

	s.limit()
}

func (s *Store) forget(frameNum int) {
	if _, ok := s.entries[frameNum]; !ok {
		return
	}
	delete(s.entries, frameNum)
	i := sort.SearchInts(s.index, frameNum)
	s.index = append(s.index[:i], s.index[i+1:]...)
}

// forget the earliest snapshots until the number of snapshots is within the
// limit. the most recent snapshot is never forgotten, even if it is not the
// highest numbered snapshot
func (s *Store) limit() {
	maxSnapshots := s.Prefs.MaxSnapshots.Get().(int)
	if maxSnapshots <= 0 {
		return
	}

	i := 0
	for len(s.index) > maxSnapshots && i < len(s.index) {
		f := s.index[i]
		if f == s.latest {
			i++
			continue
		}
		delete(s.entries, f)
		s.index = append(s.index[:i], s.index[i+1:]...)
		logger.Logf(logger.Verbose, "history", "forgetting snapshot for frame %d", f)
	}
}

// Get returns the snapshot for the frame. Returns nil if the frame has no
// snapshot. The returned Output must not be modified.
func (s *Store) Get(frameNum int) *frame.Output {
	return s.entries[frameNum]
}

// FindPreviousNonEmpty returns the frame number of the most recent snapshot
// strictly before frame.
func (s *Store) FindPreviousNonEmpty(frameNum int) (int, error) {
	i := sort.SearchInts(s.index, frameNum) - 1
	if i < 0 {
		return -1, curated.Errorf(NotFound, fmt.Sprintf("no snapshot before frame %d", frameNum))
	}
	return s.index[i], nil
}

// FindNextNonEmpty returns the frame number of the earliest snapshot at or
// after frame.
func (s *Store) FindNextNonEmpty(frameNum int) (int, error) {
	i := sort.SearchInts(s.index, frameNum)
	if i >= len(s.index) || s.index[i] >= s.length {
		return -1, curated.Errorf(NotFound, fmt.Sprintf("no snapshot at or after frame %d", frameNum))
	}
	return s.index[i], nil
}

// TruncateAfter forgets every entry after the frame. Used when the emulation
// is resumed from an earlier frame and the future is no longer valid.
func (s *Store) TruncateAfter(frameNum int) {
	if frameNum+1 >= s.length {
		return
	}

	i := sort.SearchInts(s.index, frameNum+1)
	for _, f := range s.index[i:] {
		delete(s.entries, f)
	}
	s.index = s.index[:i]

	s.length = frameNum + 1
	if frameNum < 0 {
		s.length = 0
	}

	s.latest = -1
	if len(s.index) > 0 {
		s.latest = s.index[len(s.index)-1]
	}
}

// summary of a snapshot for Visualise()
type visualSnapshot struct {
	Frame     int
	StateSize int
	Header    []byte
}

type visualStore struct {
	Interval  int
	Len       int
	Latest    int
	Snapshots []visualSnapshot
}

// Visualise writes a graphviz description of the store to w. Only a summary
// of each snapshot is included.
func (s *Store) Visualise(w io.Writer) {
	v := visualStore{
		Interval: s.Interval(),
		Len:      s.length,
		Latest:   s.latest,
	}
	for _, f := range s.index {
		e := s.entries[f]
		hdr := e.State
		if len(hdr) > 8 {
			hdr = hdr[:8]
		}
		v.Snapshots = append(v.Snapshots, visualSnapshot{
			Frame:     f,
			StateSize: len(e.State),
			Header:    hdr,
		})
	}
	memviz.Map(w, &v)
}
