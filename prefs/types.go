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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value is the underlying Go value of a preference.
type Value any

// every preference type must satisfy the pref interface to be added to a
// Disk.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooks are embedded in every preference type.
type hooks struct {
	hookPost func(value Value) error
}

// SetHookPost sets the function that is called after every successful Set(),
// whether the value changed or not.
func (h *hooks) SetHookPost(f func(value Value) error) {
	h.hookPost = f
}

// store the value and run the post hook.
func (h *hooks) store(a *atomic.Value, v Value) error {
	a.Store(v)
	if h.hookPost == nil {
		return nil
	}
	return h.hookPost(v)
}

// load returns the stored value or the zero value of T.
func load[T any](a *atomic.Value) T {
	if v, ok := a.Load().(T); ok {
		return v
	}
	var zero T
	return zero
}

func conversionError(v Value, to string, err error) error {
	if err != nil {
		return fmt.Errorf("prefs: cannot convert %T to prefs.%s: %w", v, to, err)
	}
	return fmt.Errorf("prefs: cannot convert %T to prefs.%s", v, to)
}

// Bool is a boolean preference.
type Bool struct {
	hooks
	value atomic.Value
}

func (p *Bool) String() string {
	return strconv.FormatBool(load[bool](&p.value))
}

// Set accepts a bool or a string. Any string other than "true", regardless
// of case, is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(&p.value, v)
	case string:
		return p.store(&p.value, strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return conversionError(v, "Bool", nil)
}

// Get returns the current value as a bool.
func (p *Bool) Get() Value {
	return load[bool](&p.value)
}

// Reset to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String is a string preference.
type String struct {
	hooks
	value atomic.Value
}

func (p *String) String() string {
	return load[string](&p.value)
}

// Set accepts any value. Values that are not strings are formatted with the
// %v verb.
func (p *String) Set(v Value) error {
	return p.store(&p.value, fmt.Sprintf("%v", v))
}

// Get returns the current value as a string.
func (p *String) Get() Value {
	return load[string](&p.value)
}

// Reset to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int is an integer preference with an optional range.
type Int struct {
	hooks
	value atomic.Value

	// zero for both limits means the range is not checked
	min int
	max int
}

// SetRange limits the values accepted by Set(). Both limits are inclusive.
func (p *Int) SetRange(min, max int) {
	p.min = min
	p.max = max
}

func (p *Int) String() string {
	return strconv.Itoa(load[int](&p.value))
}

// Set accepts any integer type or a string.
func (p *Int) Set(v Value) error {
	var nv int
	switch v := v.(type) {
	case int:
		nv = v
	case int32:
		nv = int(v)
	case int64:
		nv = int(v)
	case string:
		var err error
		nv, err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return conversionError(v, "Int", err)
		}
	default:
		return conversionError(v, "Int", nil)
	}

	if (p.min != 0 || p.max != 0) && (nv < p.min || nv > p.max) {
		return fmt.Errorf("prefs: value %d outside of range %d to %d", nv, p.min, p.max)
	}

	return p.store(&p.value, nv)
}

// Get returns the current value as an int.
func (p *Int) Get() Value {
	return load[int](&p.value)
}

// Reset to zero. Reset fails if zero is outside of the range.
func (p *Int) Reset() error {
	return p.Set(0)
}

// Float is a floating point preference.
type Float struct {
	hooks
	value atomic.Value
}

func (p *Float) String() string {
	return strconv.FormatFloat(load[float64](&p.value), 'f', 3, 64)
}

// Set accepts a float, an int or a string.
func (p *Float) Set(v Value) error {
	var nv float64
	switch v := v.(type) {
	case float64:
		nv = v
	case float32:
		nv = float64(v)
	case int:
		nv = float64(v)
	case string:
		var err error
		nv, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return conversionError(v, "Float", err)
		}
	default:
		return conversionError(v, "Float", nil)
	}
	return p.store(&p.value, nv)
}

// Get returns the current value as a float64.
func (p *Float) Get() Value {
	return load[float64](&p.value)
}

// Reset to zero.
func (p *Float) Reset() error {
	return p.Set(0.0)
}
