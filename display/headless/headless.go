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

// Package headless is a display sink with no user-visible output. It counts
// the frames presented to it and optionally writes a BMP snapshot of every
// nth frame to a directory.
//
// It is registered with the display package under the name "headless".
package headless

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/gopher800/gopher800/curated"
	"github.com/gopher800/gopher800/display"
	"github.com/gopher800/gopher800/logger"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

func init() {
	display.Register("headless", func(cfg display.Config) (display.Sink, error) {
		return New(cfg)
	})
}

// Headless implements the display.Sink interface.
type Headless struct {
	dir   string
	every int
	scale int

	presented int
	snapshots []string
}

// New is the preferred method of initialisation for the Headless type.
// Snapshots are written to the Path directory of the config, every Every
// frames. No snapshots are written if Every is zero.
func New(cfg display.Config) (*Headless, error) {
	hl := &Headless{
		dir:   cfg.Path,
		every: cfg.Every,
		scale: cfg.Scale,
	}

	if hl.scale < 1 {
		hl.scale = 1
	}

	if hl.every > 0 {
		if hl.dir == "" {
			hl.dir = "."
		}
		err := os.MkdirAll(hl.dir, 0700)
		if err != nil {
			return nil, curated.Errorf("headless: %v", err)
		}
	}

	return hl, nil
}

// Capabilities implements the display.Sink interface.
func (hl *Headless) Capabilities() display.Capability {
	if hl.every > 0 {
		return display.CapRGBA
	}
	return 0
}

// Present implements the display.Sink interface.
func (hl *Headless) Present(fr display.Frame) error {
	hl.presented++

	if hl.every <= 0 || fr.Number%hl.every != 0 {
		return nil
	}
	if fr.RGBA == nil {
		return curated.Errorf("headless: frame %d has no RGBA image", fr.Number)
	}

	err := hl.snapshot(fr)
	if err != nil {
		return curated.Errorf("headless: %v", err)
	}

	return nil
}

func (hl *Headless) snapshot(fr display.Frame) (rerr error) {
	var img image.Image = fr.RGBA
	if hl.scale > 1 {
		b := fr.RGBA.Bounds()
		scaled := image.NewRGBA(image.Rect(0, 0, b.Dx()*hl.scale, b.Dy()*hl.scale))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), fr.RGBA, b, draw.Src, nil)
		img = scaled
	}

	fn := filepath.Join(hl.dir, fmt.Sprintf("frame_%06d.bmp", fr.Number))
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = err
		}
	}()

	err = bmp.Encode(f, img)
	if err != nil {
		return err
	}

	hl.snapshots = append(hl.snapshots, fn)
	logger.Logf(logger.Verbose, "headless", "snapshot: %s", fn)

	return nil
}

// Presented returns the number of frames presented to the sink.
func (hl *Headless) Presented() int {
	return hl.presented
}

// Snapshots returns the filenames of the snapshots written so far.
func (hl *Headless) Snapshots() []string {
	return hl.snapshots
}

// Close implements the display.Sink interface.
func (hl *Headless) Close() error {
	if len(hl.snapshots) > 0 {
		logger.Logf(logger.Allow, "headless", "%d frames presented. %d snapshots written to %s", hl.presented, len(hl.snapshots), hl.dir)
	}
	return nil
}
