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
	"errors"

	"github.com/gopher800/gopher800/curated"
)

// Multi presents the same frame to more than one sink.
type Multi struct {
	sinks []Sink
}

// NewMulti is the preferred method of initialisation for the Multi type.
func NewMulti(sinks ...Sink) *Multi {
	return &Multi{sinks: sinks}
}

// Add another sink.
func (m *Multi) Add(snk Sink) {
	m.sinks = append(m.sinks, snk)
}

// Len returns the number of sinks.
func (m *Multi) Len() int {
	return len(m.sinks)
}

// Capabilities implements the Sink interface. The result is the union of the
// capabilities of every sink.
func (m *Multi) Capabilities() Capability {
	var c Capability
	for _, s := range m.sinks {
		c |= s.Capabilities()
	}
	return c
}

// Present implements the Sink interface. A sink that returns an error does
// not prevent the frame being presented to the other sinks.
func (m *Multi) Present(fr Frame) error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.Present(fr))
	}
	if err := errors.Join(errs...); err != nil {
		return curated.Errorf("display: %v", err)
	}
	return nil
}

// Poll implements the InputSource interface.
func (m *Multi) Poll() []Event {
	var ev []Event
	for _, s := range m.sinks {
		if !s.Capabilities().Has(CapInput) {
			continue
		}
		if src, ok := s.(InputSource); ok {
			ev = append(ev, src.Poll()...)
		}
	}
	return ev
}

// Close implements the Sink interface. Every sink is closed.
func (m *Multi) Close() error {
	var errs []error
	for _, s := range m.sinks {
		errs = append(errs, s.Close())
	}
	if err := errors.Join(errs...); err != nil {
		return curated.Errorf("display: %v", err)
	}
	return nil
}
