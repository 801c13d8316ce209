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

package glsink

import (
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/display/sdlsink"
	"github.com/gopher800/gopher800/frame"
	"github.com/gopher800/gopher800/logger"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	display.Register("gl", func(cfg display.Config) (display.Sink, error) {
		return New(cfg)
	})
}

// GLSink implements the display.Sink and display.InputSource interfaces.
type GLSink struct {
	window    *sdl.Window
	glContext sdl.GLContext

	texture       uint32
	createTexture bool

	input  *sdlsink.Input
	events []display.Event
}

// New is the preferred method of initialisation for the GLSink type.
func New(cfg display.Config) (*GLSink, error) {
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
		return nil, curated.Errorf("glsink: %v", err)
	}

	snk := &GLSink{
		input:         sdlsink.NewInput(),
		createTexture: true,
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	snk.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(frame.VideoWidth*scale), int32(frame.VideoHeight*scale),
		sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("glsink: %v", err)
	}

	snk.glContext, err = snk.window.GLCreateContext()
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("glsink: %v", err)
	}

	err = snk.window.GLMakeCurrent(snk.glContext)
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("glsink: %v", err)
	}

	err = gl.Init()
	if err != nil {
		snk.destroy()
		return nil, curated.Errorf("glsink: %v", err)
	}

	_ = sdl.GLSetSwapInterval(1)

	gl.Enable(gl.TEXTURE_2D)
	gl.GenTextures(1, &snk.texture)
	gl.BindTexture(gl.TEXTURE_2D, snk.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	sdl.StartTextInput()

	logger.Logf(logger.Allow, "glsink", "%s", gl.GoStr(gl.GetString(gl.VERSION)))

	return snk, nil
}

func (snk *GLSink) destroy() {
	if snk.texture != 0 {
		gl.DeleteTextures(1, &snk.texture)
		snk.texture = 0
	}
	if snk.glContext != nil {
		sdl.GLDeleteContext(snk.glContext)
		snk.glContext = nil
	}
	if snk.window != nil {
		_ = snk.window.Destroy()
		snk.window = nil
	}
	sdl.Quit()
}

// Capabilities implements the display.Sink interface.
func (snk *GLSink) Capabilities() display.Capability {
	return display.CapRGBA | display.CapInput
}

// Present implements the display.Sink interface.
func (snk *GLSink) Present(fr display.Frame) error {
	if fr.RGBA == nil {
		return curated.Errorf("glsink: frame %d has no RGBA image", fr.Number)
	}

	snk.pump()

	w, h := snk.window.GLGetDrawableSize()
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.BindTexture(gl.TEXTURE_2D, snk.texture)

	sz := fr.RGBA.Bounds().Size()
	if snk.createTexture {
		snk.createTexture = false
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(sz.X), int32(sz.Y), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(fr.RGBA.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(sz.X), int32(sz.Y),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(fr.RGBA.Pix))
	}

	// texture coordinates are flipped vertically because the first row of
	// the image is the top of the screen
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.End()

	snk.window.GLSwap()

	return nil
}

func (snk *GLSink) pump() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		snk.events = append(snk.events, snk.input.Translate(ev)...)
	}
}

// Poll implements the display.InputSource interface.
func (snk *GLSink) Poll() []display.Event {
	snk.pump()
	ev := snk.events
	snk.events = nil
	return ev
}

// Close implements the display.Sink interface.
func (snk *GLSink) Close() error {
	sdl.StopTextInput()
	snk.destroy()
	return nil
}
