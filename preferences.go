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

package main

import (
	"github.com/gopher800/gopher800/paths"
	"github.com/gopher800/gopher800/prefs"
)

// preferences for the frontend. values given on the command line take
// precedence.
type frontendPrefs struct {
	dsk *prefs.Disk

	Display  prefs.String
	Scale    prefs.Int
	Uncapped prefs.Bool

	// multiplier of the television frame rate
	Speed prefs.Float
}

func newFrontendPrefs(persist bool) (*frontendPrefs, error) {
	p := &frontendPrefs{}

	p.Scale.SetRange(1, 8)

	err := p.setDefaults()
	if err != nil {
		return nil, err
	}

	if !persist {
		return p, nil
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("display.name", &p.Display)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("display.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.uncapped", &p.Uncapped)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("run.speed", &p.Speed)
	if err != nil {
		return nil, err
	}

	return p, p.dsk.Load(true)
}

func (p *frontendPrefs) setDefaults() error {
	if err := p.Display.Set("terminal"); err != nil {
		return err
	}
	if err := p.Scale.Set(2); err != nil {
		return err
	}
	if err := p.Uncapped.Set(false); err != nil {
		return err
	}
	return p.Speed.Set(1.0)
}

// the frame rate for the limiter. a zero or negative speed is treated as
// normal speed
func (p *frontendPrefs) fps(televisionFPS float64) float64 {
	speed := p.Speed.Get().(float64)
	if speed <= 0 {
		return televisionFPS
	}
	return televisionFPS * speed
}

func (p *frontendPrefs) save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}
