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

package statelayout

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"
)

//go:embed schemas/atari800.yaml
var atari800YAML []byte

var atari800 struct {
	once sync.Once
	sch  *Schema
	err  error
}

// Atari800 returns the schema of the Atari 800 state blob. The schema is
// parsed once and the same instance is returned on every call. The returned
// Schema must not be modified.
func Atari800() (*Schema, error) {
	atari800.once.Do(func() {
		atari800.sch, atari800.err = LoadSchema(bytes.NewReader(atari800YAML))
		if atari800.err != nil {
			atari800.err = fmt.Errorf("statelayout: embedded atari800 schema: %w", atari800.err)
		}
	})
	return atari800.sch, atari800.err
}
