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
	"encoding/binary"
	"fmt"
	"sort"
	"strings"

	"github.com/gopher800/gopher800/curated"
)

// Sentinal error patterns.
const (
	LayoutMismatch = "layout mismatch: %v"
	NameNotFound   = "name not found: %v"
)

// Segment describes the extent of a named aggregate within the state blob.
// Segments are intended for inspection tools only.
type Segment struct {
	// Start is inclusive, End is exclusive
	Start int
	End   int

	// nesting depth of the aggregate. top-level fields have a depth of zero
	Depth int

	Label string
}

func (seg Segment) String() string {
	return fmt.Sprintf("%s%s [%#06x, %#06x)", strings.Repeat("  ", seg.Depth), seg.Label, seg.Start, seg.End)
}

// Len returns the number of bytes in the segment.
func (seg Segment) Len() int {
	return seg.End - seg.Start
}

// Layout is the result of decoding a state blob with a Schema. A Layout is
// immutable and can be reused for every blob that passes Verify().
type Layout struct {
	// name and version of the schema used to create the layout
	Schema string

	// offset of every leaf keyed by its fully-qualified name
	Offsets map[string]int

	// sorted list of the keys in Offsets
	Names []string

	// every aggregate in document order
	Segments []Segment

	// total size of a blob with this layout
	Size int

	// size of every leaf
	sizes map[string]int

	// the values of every leaf used as a countFrom field
	counts map[string]int
}

// walker traverses the schema fields. if blob is nil then the counts map is
// consulted for countFrom values
type walker struct {
	layout *Layout
	blob   []byte
	counts map[string]int
	offset int
}

func newLayout(sch *Schema) *Layout {
	return &Layout{
		Schema:  sch.String(),
		Offsets: make(map[string]int),
		sizes:   make(map[string]int),
		counts:  make(map[string]int),
	}
}

// Decode the blob using the schema. The returned Layout is complete or an
// error is returned. All errors are LayoutMismatch errors.
func Decode(sch *Schema, blob []byte) (*Layout, error) {
	if sch == nil {
		return nil, curated.Errorf(LayoutMismatch, "no schema")
	}

	err := sch.Validate()
	if err != nil {
		return nil, curated.Errorf(LayoutMismatch, err)
	}

	w := &walker{
		layout: newLayout(sch),
		blob:   blob,
	}

	err = w.walk("", 0, sch.Fields)
	if err != nil {
		return nil, curated.Errorf(LayoutMismatch, err)
	}

	if w.offset != len(blob) {
		return nil, curated.Errorf(LayoutMismatch, fmt.Errorf("blob is %d bytes, %s requires %d", len(blob), w.layout.Schema, w.offset))
	}

	w.layout.Size = w.offset
	w.layout.finalise()
	return w.layout, nil
}

// Plan creates a Layout without a blob. Any countFrom values are taken from
// the counts map, with a missing entry counting as zero. A Layout created in
// this way can be used to construct a blob that Decode() will accept, as long
// as the countFrom values are written into the blob.
func Plan(sch *Schema, counts map[string]int) (*Layout, error) {
	if sch == nil {
		return nil, fmt.Errorf("statelayout: no schema")
	}

	err := sch.Validate()
	if err != nil {
		return nil, err
	}

	w := &walker{
		layout: newLayout(sch),
		counts: counts,
	}

	err = w.walk("", 0, sch.Fields)
	if err != nil {
		return nil, fmt.Errorf("statelayout: %w", err)
	}

	w.layout.Size = w.offset
	w.layout.finalise()
	return w.layout, nil
}

func (l *Layout) finalise() {
	l.Names = make([]string, 0, len(l.Offsets))
	for n := range l.Offsets {
		l.Names = append(l.Names, n)
	}
	sort.Strings(l.Names)
}

func join(prefix string, name string) string {
	if prefix == "" {
		return name
	}
	return fmt.Sprintf("%s.%s", prefix, name)
}

func (w *walker) walk(prefix string, depth int, fields []Field) error {
	for _, f := range fields {
		name := join(prefix, f.Name)

		switch f.Type {
		case UByte, UWord, ULong:
			err := w.leaf(name, f.Type.leafSize())
			if err != nil {
				return err
			}

		case Bytes:
			n := f.Size
			if f.CountFrom != "" {
				var err error
				n, err = w.count(name, f)
				if err != nil {
					return err
				}
			}
			seg := w.open(name, depth)
			err := w.leaf(name, n)
			if err != nil {
				return err
			}
			w.close(seg)

		case Struct:
			seg := w.open(name, depth)
			err := w.walk(name, depth+1, f.Fields)
			if err != nil {
				return err
			}
			w.close(seg)

		case Array:
			n := f.Count
			if f.CountFrom != "" {
				var err error
				n, err = w.count(name, f)
				if err != nil {
					return err
				}
			}

			seg := w.open(name, depth)
			for i := 0; i < n; i++ {
				el := fmt.Sprintf("%s[%d]", name, i)
				if len(f.Fields) > 0 {
					elseg := w.open(el, depth+1)
					err := w.walk(el, depth+2, f.Fields)
					if err != nil {
						return err
					}
					w.close(elseg)
				} else {
					sz := f.Size
					if sz == 0 {
						sz = 1
					}
					err := w.leaf(el, sz)
					if err != nil {
						return err
					}
				}
			}
			w.close(seg)

		default:
			return fmt.Errorf("%s: unknown type (%s)", name, f.Type)
		}
	}

	return nil
}

// open a segment at the current offset. returns the index of the segment so
// that it can be closed once the size of the aggregate is known
func (w *walker) open(label string, depth int) int {
	w.layout.Segments = append(w.layout.Segments, Segment{
		Start: w.offset,
		End:   w.offset,
		Depth: depth,
		Label: label,
	})
	return len(w.layout.Segments) - 1
}

func (w *walker) close(idx int) {
	w.layout.Segments[idx].End = w.offset
}

func (w *walker) leaf(name string, size int) error {
	if _, ok := w.layout.Offsets[name]; ok {
		return fmt.Errorf("duplicate name (%s)", name)
	}
	if size < 0 {
		return fmt.Errorf("%s: negative size", name)
	}
	if w.blob != nil && w.offset+size > len(w.blob) {
		return fmt.Errorf("blob is %d bytes, %s extends beyond it", len(w.blob), name)
	}
	w.layout.Offsets[name] = w.offset
	w.layout.sizes[name] = size
	w.offset += size
	return nil
}

func (w *walker) count(name string, f Field) (int, error) {
	o, ok := w.layout.Offsets[f.CountFrom]
	if !ok {
		return 0, fmt.Errorf("%s: unresolvable countFrom (%s)", name, f.CountFrom)
	}

	var v int
	if w.blob == nil {
		v = w.counts[f.CountFrom]
	} else {
		var err error
		v, err = readLE(w.blob[o : o+w.layout.sizes[f.CountFrom]])
		if err != nil {
			return 0, fmt.Errorf("%s: countFrom %s: %w", name, f.CountFrom, err)
		}
	}

	w.layout.counts[f.CountFrom] = v
	return v * f.scale(), nil
}

func readLE(b []byte) (int, error) {
	switch len(b) {
	case 1:
		return int(b[0]), nil
	case 2:
		return int(binary.LittleEndian.Uint16(b)), nil
	case 4:
		return int(binary.LittleEndian.Uint32(b)), nil
	}
	return 0, fmt.Errorf("value of %d bytes cannot be used as a count", len(b))
}

// Verify checks that the blob has the same shape as the blob the Layout was
// created from: the length is the same and every count value is the same.
func (l *Layout) Verify(blob []byte) error {
	if len(blob) != l.Size {
		return curated.Errorf(LayoutMismatch, fmt.Errorf("blob is %d bytes, %s requires %d", len(blob), l.Schema, l.Size))
	}
	for n, c := range l.counts {
		o := l.Offsets[n]
		v, _ := readLE(blob[o : o+l.sizes[n]])
		if v != c {
			return curated.Errorf(LayoutMismatch, fmt.Errorf("%s has changed from %d to %d", n, c, v))
		}
	}
	return nil
}

// LeafSize returns the size in bytes of the named leaf.
func (l *Layout) LeafSize(name string) (int, bool) {
	sz, ok := l.sizes[name]
	return sz, ok
}

// Slice returns the bytes of the named leaf. The returned slice shares memory
// with the blob.
func (l *Layout) Slice(blob []byte, name string) ([]byte, error) {
	o, ok := l.Offsets[name]
	if !ok {
		return nil, curated.Errorf(NameNotFound, name)
	}
	sz := l.sizes[name]
	if o+sz > len(blob) {
		return nil, curated.Errorf(LayoutMismatch, fmt.Errorf("blob is %d bytes, %s extends beyond it", len(blob), name))
	}
	return blob[o : o+sz], nil
}

func (l *Layout) sized(blob []byte, name string, size int) ([]byte, error) {
	b, err := l.Slice(blob, name)
	if err != nil {
		return nil, err
	}
	if len(b) < size {
		return nil, fmt.Errorf("statelayout: %s is %d bytes, not %d", name, len(b), size)
	}
	return b[:size], nil
}

// Byte returns the first byte of the named leaf.
func (l *Layout) Byte(blob []byte, name string) (uint8, error) {
	b, err := l.sized(blob, name, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Word returns the little-endian 16 bit value at the start of the named leaf.
func (l *Layout) Word(blob []byte, name string) (uint16, error) {
	b, err := l.sized(blob, name, 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Long returns the little-endian 32 bit value at the start of the named leaf.
func (l *Layout) Long(blob []byte, name string) (uint32, error) {
	b, err := l.sized(blob, name, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// PutByte writes v to the named leaf.
func (l *Layout) PutByte(blob []byte, name string, v uint8) error {
	b, err := l.sized(blob, name, 1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// PutWord writes v to the named leaf in little-endian order.
func (l *Layout) PutWord(blob []byte, name string, v uint16) error {
	b, err := l.sized(blob, name, 2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

// PutLong writes v to the named leaf in little-endian order.
func (l *Layout) PutLong(blob []byte, name string, v uint32) error {
	b, err := l.sized(blob, name, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}
