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

package display

import (
	"image"
	"sort"
	"strings"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/television/colourgen"
)

// Capability flags advertised by a Sink.
type Capability int

// List of valid Capability flags.
const (
	// the sink accepts indexed video and decodes the colours itself using
	// the colour table in the frame
	CapIndexed Capability = 1 << iota

	// the sink needs RGBA pixels
	CapRGBA

	// the sink consumes the audio buffer
	CapAudio

	// the sink produces input events. it must implement InputSource
	CapInput
)

// Has returns true if all the flags in f are present.
func (c Capability) Has(f Capability) bool {
	return c&f == f
}

func (c Capability) String() string {
	var s []string
	if c.Has(CapIndexed) {
		s = append(s, "indexed")
	}
	if c.Has(CapRGBA) {
		s = append(s, "rgba")
	}
	if c.Has(CapAudio) {
		s = append(s, "audio")
	}
	if c.Has(CapInput) {
		s = append(s, "input")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, "|")
}

// Frame is the information presented to a Sink once per tick. Fields that
// the sink has not asked for are left empty.
//
// The Indexed and Audio slices refer to the live output record and are only
// valid until the next tick.
type Frame struct {
	Number int
	Width  int
	Height int

	Indexed []uint8
	Table   *colourgen.Table

	RGBA *image.RGBA

	Audio []uint8
}

// Sink is implemented by anything that presents frames.
type Sink interface {
	Capabilities() Capability
	Present(Frame) error
	Close() error
}

// InputSource is implemented by sinks that advertise CapInput.
type InputSource interface {
	// Poll returns the events that have happened since the last call to
	// Poll(). Events are in the order they happened.
	Poll() []Event
}

// Prepare the Frame for a sink with the capabilities.
func Prepare(out *frame.Output, tab *colourgen.Table, caps Capability) (Frame, error) {
	fr := Frame{
		Number: int(out.FrameNumber),
		Width:  frame.VideoWidth,
		Height: frame.VideoHeight,
	}

	if caps.Has(CapIndexed) {
		fr.Indexed = out.Video[:]
		fr.Table = tab
	}

	if caps.Has(CapRGBA) {
		img, err := tab.Image(out.Video[:], frame.VideoWidth, frame.VideoHeight)
		if err != nil {
			return Frame{}, curated.Errorf("display: %v", err)
		}
		fr.RGBA = img
	}

	if caps.Has(CapAudio) {
		fr.Audio = out.Audio[:]
	}

	return fr, nil
}

// Config is passed to the Creator of a Sink. Not every field is meaningful
// to every sink.
type Config struct {
	Title string
	Scale int

	// the directory or file that output is written to
	Path string

	// present only every nth frame. zero or one means every frame
	Every int

	// frame rate of the emulated machine
	FramesPerSecond float64
}

// Creator is a function that creates a Sink.
type Creator func(Config) (Sink, error)

// UnknownSink is returned by New() for an unregistered name.
const UnknownSink = "unknown display: %v"

var registry = map[string]Creator{}

// Register a Creator under the name. Names are not case sensitive.
// Registering the same name twice will panic.
func Register(name string, create Creator) {
	name = strings.ToLower(name)
	if _, ok := registry[name]; ok {
		panic("display: sink registered twice: " + name)
	}
	registry[name] = create
}

// New creates the sink registered under the name.
func New(name string, cfg Config) (Sink, error) {
	create, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, curated.Errorf(UnknownSink, name)
	}
	snk, err := create(cfg)
	if err != nil {
		return nil, curated.Errorf("display: %v", err)
	}
	return snk, nil
}

// Names returns the registered sink names in alphabetical order.
func Names() []string {
	n := make([]string, 0, len(registry))
	for k := range registry {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
