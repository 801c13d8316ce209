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
	"github.com/gopher800/gopher800/curated"
)

// Core is the part of the emulation core used by the Exchange.
type Core interface {
	// advance exactly one frame. the core reads the input and writes the
	// output
	NextFrame(*Input, *Output) error

	// deliver the input to the core outside of the normal frame cycle.
	// used to request entry into the monitor
	Halt(*Input) error

	// rewrite the state blob of the output to reflect the current state of
	// the core
	CurrentState(*Output) error

	// restore the core to the state recorded in the output
	RestoreState(*Output) error
}

// Exchange stages input for the core and holds the live output.
type Exchange struct {
	core   Core
	input  Input
	output *Output
}

// NewExchange is the preferred method of initialisation for the Exchange
// type. The output is the record returned by the core when it was started.
func NewExchange(core Core, output *Output) *Exchange {
	if output == nil {
		output = &Output{}
	}
	return &Exchange{
		core:   core,
		input:  NewInput(),
		output: output,
	}
}

// Submit stages input for the next step. Any previously staged input is
// overwritten.
func (ex *Exchange) Submit(in Input) {
	ex.input = in
}

// Input returns the staged input. Changes to the returned Input are seen by
// the next step.
func (ex *Exchange) Input() *Input {
	return &ex.input
}

// Step advances the core exactly one frame and returns the live output.
func (ex *Exchange) Step() (*Output, error) {
	err := ex.core.NextFrame(&ex.input, ex.output)
	if err != nil {
		return nil, curated.Errorf("frame: %v", err)
	}
	return ex.output, nil
}

// Output returns the live output.
func (ex *Exchange) Output() *Output {
	return ex.output
}

// Halt delivers the staged input to the core outside of the frame cycle.
func (ex *Exchange) Halt() error {
	err := ex.core.Halt(&ex.input)
	if err != nil {
		return curated.Errorf("frame: %v", err)
	}
	return nil
}

// Refresh asks the core to rewrite the state blob of the live output.
func (ex *Exchange) Refresh() error {
	err := ex.core.CurrentState(ex.output)
	if err != nil {
		return curated.Errorf("frame: %v", err)
	}
	return nil
}

// Restore the core to the state in the output. The live output becomes a
// copy of the supplied output.
func (ex *Exchange) Restore(out *Output) error {
	err := ex.core.RestoreState(out)
	if err != nil {
		return curated.Errorf("frame: %v", err)
	}
	*ex.output = *out.Clone()
	return nil
}
