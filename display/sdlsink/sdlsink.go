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

//go:build sdl

package sdlsink

import (
	"runtime"
	"unsafe"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/logger"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	display.Register("sdl", func(cfg display.Config) (display.Sink, error) {
		return New(cfg)
	})
}

// SDLSink implements the display.Sink and display.InputSource interfaces.
type SDLSink struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	input  *Input
	events []display.Event
}

// New is the preferred method of initialisation for the SDLSink type.
func New(cfg display.Config) (*SDLSink, error) {
	runtime.LockOSThread()

	scale := cfg.Scale
	if scale < 1 {
		scale = 2
	}
	title := cfg.Title
	if title == "" {
		title = "Gopher800"
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlsink: %v", err)
	}

	snk := &SDLSink{
		input: NewInput(),
	}

	snk.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(frame.VideoWidth*scale), int32(frame.VideoHeight*scale),
		sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("sdlsink: %v", err)
	}

	snk.renderer, err = sdl.CreateRenderer(snk.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("sdlsink: %v", err)
	}

	// the byte order of image.RGBA pixels is the same as an ABGR8888 texture
	// on a little endian machine
	snk.texture, err = snk.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		sdl.TEXTUREACCESS_STREAMING,
		int32(frame.VideoWidth), int32(frame.VideoHeight))
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("sdlsink: %v", err)
	}

	sdl.StartTextInput()

	logger.Logf(logger.Allow, "sdlsink", "window opened at scale %d", scale)

	return snk, nil
}

func (snk *SDLSink) destroy() {
	if snk.texture != nil {
		_ = snk.texture.Destroy()
		snk.texture = nil
	}
	if snk.renderer != nil {
		_ = snk.renderer.Destroy()
		snk.renderer = nil
	}
	if snk.window != nil {
		_ = snk.window.Destroy()
		snk.window = nil
	}
	sdl.Quit()
}

// Capabilities implements the display.Sink interface.
func (snk *SDLSink) Capabilities() display.Capability {
	return display.CapRGBA | display.CapInput
}

// Present implements the display.Sink interface.
func (snk *SDLSink) Present(fr display.Frame) error {
	if fr.RGBA == nil {
		return curated.Errorf("sdlsink: frame %d has no RGBA image", fr.Number)
	}

	snk.pump()

	err := snk.texture.Update(nil, unsafe.Pointer(&fr.RGBA.Pix[0]), fr.RGBA.Stride)
	if err != nil {
		return curated.Errorf("sdlsink: %v", err)
	}

	_ = snk.renderer.SetDrawColor(0, 0, 0, 255)
	_ = snk.renderer.Clear()
	err = snk.renderer.Copy(snk.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlsink: %v", err)
	}
	snk.renderer.Present()

	return nil
}

func (snk *SDLSink) pump() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		snk.events = append(snk.events, snk.input.Translate(ev)...)
	}
}

// Poll implements the display.InputSource interface.
func (snk *SDLSink) Poll() []display.Event {
	snk.pump()
	ev := snk.events
	snk.events = nil
	return ev
}

// Close implements the display.Sink interface.
func (snk *SDLSink) Close() error {
	sdl.StopTextInput()
	snk.destroy()
	return nil
}
