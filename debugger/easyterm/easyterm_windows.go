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

//go:build windows

package easyterm

import (
	"fmt"
	"os"
)

// TermGeometry is the size of the terminal in characters.
type TermGeometry struct {
	Rows uint16
	Cols uint16
}

// Terminal switches the debugger's terminal between line and character
// modes.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise the terminal.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}
	pt.input = inputFile
	pt.output = outputFile
	return nil
}

// CleanUp does nothing on Windows.
func (pt *Terminal) CleanUp() {
}

// UpdateGeometry does nothing on Windows.
func (pt *Terminal) UpdateGeometry() error {
	return nil
}

// Geometry returns a standard size on Windows.
func (pt *Terminal) Geometry() TermGeometry {
	return TermGeometry{Rows: 25, Cols: 80}
}

// CanonicalMode does nothing on Windows.
func (pt *Terminal) CanonicalMode() {
}

// CBreakMode does nothing on Windows.
func (pt *Terminal) CBreakMode() {
}

// Flush does nothing on Windows.
func (pt *Terminal) Flush() error {
	return nil
}
