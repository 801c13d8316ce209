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
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Type of a Field.
type Type string

// List of valid field types.
const (
	// single byte
	UByte Type = "ubyte"

	// two byte little-endian value
	UWord Type = "uword"

	// four byte little-endian value
	ULong Type = "ulong"

	// opaque run of bytes. the length is given by Size or by CountFrom
	Bytes Type = "bytes"

	// a named group of Fields
	Struct Type = "struct"

	// a repeated element. the element is either a leaf of Size bytes or, if
	// Fields is not empty, a struct
	Array Type = "array"
)

// leafSize returns the size of the fixed size types. returns zero for all
// other types.
func (t Type) leafSize() int {
	switch t {
	case UByte:
		return 1
	case UWord:
		return 2
	case ULong:
		return 4
	}
	return 0
}

// Field describes one part of the state blob.
type Field struct {
	Name string `yaml:"name"`
	Type Type   `yaml:"type"`

	// size in bytes of a Bytes field or of a leaf array element. leaf array
	// elements default to one byte
	Size int `yaml:"size,omitempty"`

	// number of elements in an Array
	Count int `yaml:"count,omitempty"`

	// fully-qualified name of an earlier leaf. its value multiplied by
	// CountScale is the number of elements of an Array or the number of
	// bytes of a Bytes field
	CountFrom  string `yaml:"countFrom,omitempty"`
	CountScale int    `yaml:"countScale,omitempty"`

	// the members of a Struct or the members of each Array element
	Fields []Field `yaml:"fields,omitempty"`
}

func (f Field) scale() int {
	if f.CountScale == 0 {
		return 1
	}
	return f.CountScale
}

// Schema is a versioned description of a state blob.
type Schema struct {
	Name    string  `yaml:"name"`
	Version string  `yaml:"version"`
	Fields  []Field `yaml:"fields"`
}

func (sch *Schema) String() string {
	return fmt.Sprintf("%s (v%s)", sch.Name, sch.Version)
}

// LoadSchema reads a YAML schema and validates it.
func LoadSchema(r io.Reader) (*Schema, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	sch := &Schema{}
	err := dec.Decode(sch)
	if err != nil {
		return nil, fmt.Errorf("statelayout: %w", err)
	}

	err = sch.Validate()
	if err != nil {
		return nil, err
	}

	return sch, nil
}

// LoadSchemaFile reads the YAML schema in the named file.
func LoadSchemaFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("statelayout: %w", err)
	}
	defer f.Close()
	return LoadSchema(f)
}

// Validate checks the schema for errors that can be detected without a blob.
// Whether a CountFrom field refers to an earlier leaf is checked by Decode().
func (sch *Schema) Validate() error {
	if sch.Name == "" {
		return fmt.Errorf("statelayout: schema has no name")
	}
	if len(sch.Fields) == 0 {
		return fmt.Errorf("statelayout: %s: schema has no fields", sch.Name)
	}
	return validateFields(sch.Name, sch.Fields)
}

func validateFields(context string, fields []Field) error {
	names := make(map[string]bool)

	for _, f := range fields {
		if f.Name == "" {
			return fmt.Errorf("statelayout: %s: field has no name", context)
		}
		if strings.ContainsAny(f.Name, ".[] ") {
			return fmt.Errorf("statelayout: %s: illegal field name (%s)", context, f.Name)
		}
		if names[f.Name] {
			return fmt.Errorf("statelayout: %s: duplicate field name (%s)", context, f.Name)
		}
		names[f.Name] = true

		if f.CountScale < 0 {
			return fmt.Errorf("statelayout: %s.%s: negative count scale", context, f.Name)
		}

		switch f.Type {
		case UByte, UWord, ULong:
			if len(f.Fields) > 0 {
				return fmt.Errorf("statelayout: %s.%s: %s field cannot have members", context, f.Name, f.Type)
			}
		case Bytes:
			if f.Size <= 0 && f.CountFrom == "" {
				return fmt.Errorf("statelayout: %s.%s: bytes field needs a size or a countFrom", context, f.Name)
			}
		case Struct:
			if len(f.Fields) == 0 {
				return fmt.Errorf("statelayout: %s.%s: struct has no members", context, f.Name)
			}
			err := validateFields(fmt.Sprintf("%s.%s", context, f.Name), f.Fields)
			if err != nil {
				return err
			}
		case Array:
			if f.Count <= 0 && f.CountFrom == "" {
				return fmt.Errorf("statelayout: %s.%s: array needs a count or a countFrom", context, f.Name)
			}
			if f.Size < 0 {
				return fmt.Errorf("statelayout: %s.%s: negative element size", context, f.Name)
			}
			if len(f.Fields) > 0 {
				err := validateFields(fmt.Sprintf("%s.%s", context, f.Name), f.Fields)
				if err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("statelayout: %s.%s: unknown type (%s)", context, f.Name, f.Type)
		}
	}

	return nil
}
