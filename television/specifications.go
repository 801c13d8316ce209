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

package television

import (
	"strings"

	"github.com/gopher800/gopher800/curated"
)

// Specification is used to define the two television specifications.
type Specification struct {
	ID string

	// the number of CPU cycles per scanline is the same for both
	// specifications. the number of scanlines differs
	CyclesPerScanline int
	ScanlinesTotal    int
	CyclesPerFrame    int

	// the nominal frame rate of the real machine
	FramesPerSecond float64

	// the ratio by which pixels should be widened to approximate the shape of
	// the image on a real television
	AspectBias float64
}

// SpecNTSC is the specification for NTSC television types.
var SpecNTSC *Specification

// SpecPAL is the specification for PAL television types.
var SpecPAL *Specification

// UnknownSpec is returned by GetSpec() for an unrecognised ID.
const UnknownSpec = "unknown television specification: %v"

func init() {
	SpecNTSC = new(Specification)
	SpecNTSC.ID = "NTSC"
	SpecNTSC.CyclesPerScanline = 114
	SpecNTSC.ScanlinesTotal = 262
	SpecNTSC.CyclesPerFrame = SpecNTSC.CyclesPerScanline * SpecNTSC.ScanlinesTotal
	SpecNTSC.FramesPerSecond = 59.92
	SpecNTSC.AspectBias = 0.86

	SpecPAL = new(Specification)
	SpecPAL.ID = "PAL"
	SpecPAL.CyclesPerScanline = 114
	SpecPAL.ScanlinesTotal = 312
	SpecPAL.CyclesPerFrame = SpecPAL.CyclesPerScanline * SpecPAL.ScanlinesTotal
	SpecPAL.FramesPerSecond = 49.86
	SpecPAL.AspectBias = 1.04
}

// GetSpec returns the specification with the ID. The ID is not case
// sensitive. An empty ID returns the NTSC specification.
func GetSpec(id string) (*Specification, error) {
	switch strings.ToUpper(id) {
	case "", "NTSC":
		return SpecNTSC, nil
	case "PAL":
		return SpecPAL, nil
	}
	return nil, curated.Errorf(UnknownSpec, id)
}
