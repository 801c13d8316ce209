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

package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/gopher800/gopher800/statelayout"
)

// Layout of the raw output record. The state blob begins at StateOffset and
// runs to the end of the record.
const (
	HeaderSize  = 8
	VideoOffset = HeaderSize
	AudioOffset = VideoOffset + VideoSize
	StateOffset = AudioOffset + AudioSize
)

// Output is the record written by the core at the end of every frame.
type Output struct {
	FrameNumber   uint32
	FrameFinished bool
	BreakpointHit bool

	Video [VideoSize]uint8
	Audio [AudioSize]uint8

	// opaque state of the core. see the statelayout package
	State []byte
}

func (out *Output) String() string {
	return fmt.Sprintf("frame %d (state %d bytes)", out.FrameNumber, len(out.State))
}

// Clone returns a deep copy of the Output.
func (out *Output) Clone() *Output {
	c := *out
	c.State = make([]byte, len(out.State))
	copy(c.State, out.State)
	return &c
}

// Segments returns the descriptors of the video and audio buffers relative
// to the start of the raw output record.
func (out *Output) Segments() []statelayout.Segment {
	return []statelayout.Segment{
		{Start: VideoOffset, End: VideoOffset + VideoSize, Depth: 0, Label: "Video Frame"},
		{Start: AudioOffset, End: AudioOffset + AudioSize, Depth: 0, Label: "Audio Data"},
	}
}

// MarshalBinary encodes the Output as a raw output record.
func (out *Output) MarshalBinary() ([]byte, error) {
	b := make([]byte, StateOffset+len(out.State))
	binary.LittleEndian.PutUint32(b, out.FrameNumber)
	if out.FrameFinished {
		b[4] = 1
	}
	if out.BreakpointHit {
		b[5] = 1
	}
	copy(b[VideoOffset:], out.Video[:])
	copy(b[AudioOffset:], out.Audio[:])
	copy(b[StateOffset:], out.State)
	return b, nil
}

// UnmarshalBinary decodes a raw output record into the Output.
func (out *Output) UnmarshalBinary(b []byte) error {
	if len(b) < StateOffset {
		return fmt.Errorf("frame: output record too short (%d bytes)", len(b))
	}
	out.FrameNumber = binary.LittleEndian.Uint32(b)
	out.FrameFinished = b[4] != 0
	out.BreakpointHit = b[5] != 0
	copy(out.Video[:], b[VideoOffset:AudioOffset])
	copy(out.Audio[:], b[AudioOffset:StateOffset])
	out.State = make([]byte, len(b)-StateOffset)
	copy(out.State, b[StateOffset:])
	return nil
}
