/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package nbt

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"
)

// An Encoder writes tags to an output stream.
//
// Output is buffered and flushed at the end of every Encode call. If Encode
// fails, part of the document may already have reached the underlying writer;
// its contents are undefined and should be discarded.
type Encoder struct {
	out     *bufio.Writer
	scratch []byte
}

// NewEncoder returns an Encoder writing to out.
func NewEncoder(out io.Writer) *Encoder {
	return &Encoder{out: bufio.NewWriter(out)}
}

// Marshal encodes t as an unnamed root entry.
func Marshal(t Tag) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes t as a root entry with an empty name.
func (e *Encoder) Encode(t Tag) error {
	return e.EncodeNamed("", t)
}

// EncodeNamed writes t as a root entry with the given name.
func (e *Encoder) EncodeNamed(name string, t Tag) error {
	if err := e.writeEntry(name, name, t); err != nil {
		return err
	}
	if err := e.out.Flush(); err != nil {
		return &IOError{err}
	}
	return nil
}

// writeEntry writes [id][name+trailer][payload].
func (e *Encoder) writeEntry(path, name string, t Tag) error {
	if isNil(t) {
		return nilTagError(path)
	}
	if strings.Contains(name, suffixSep) {
		return &EncodeError{path, &UnsupportedTagError{t.Type(), fmt.Sprintf("name %q contains %q", name, suffixSep)}}
	}

	elem := NoType
	if l, ok := t.(*ListTag); ok {
		elem = l.ElemType()
	}

	if err := e.writeByte(byte(WireID(t.Type()))); err != nil {
		return err
	}
	if err := e.writeString(formatEntryName(name, t.Type(), elem)); err != nil {
		return e.wrap(path, err)
	}
	return e.writePayload(path, t)
}

func (e *Encoder) writePayload(path string, t Tag) error {
	if isNil(t) {
		return nilTagError(path)
	}

	switch t := t.(type) {
	case *BoolTag:
		if t.value {
			return e.writeByte(1)
		}
		return e.writeByte(0)

	case *ByteTag:
		return e.writeByte(byte(t.value))

	case *ShortTag:
		return e.writeUint16(uint16(t.value))

	case *IntTag:
		return e.writeUint32(uint32(t.value))

	case *LongTag:
		return e.writeUint64(uint64(t.value))

	case *FloatTag:
		return e.writeUint32(math.Float32bits(t.value))

	case *DoubleTag:
		return e.writeUint64(math.Float64bits(t.value))

	case *CharTag:
		if !utf8.ValidRune(t.value) {
			return &EncodeError{path, &UsageError{"Encoder.Encode", fmt.Sprintf("invalid char %U", t.value)}}
		}
		return e.wrap(path, e.writeString(string(t.value)))

	case *StringTag:
		return e.wrap(path, e.writeString(t.value))

	case *CharArrayTag:
		for _, r := range t.values {
			if !utf8.ValidRune(r) {
				return &EncodeError{path, &UsageError{"Encoder.Encode", fmt.Sprintf("invalid char %U", r)}}
			}
		}
		return e.wrap(path, e.writeString(string(t.values)))

	case *ByteArrayTag:
		if err := e.writeUint32(uint32(len(t.values))); err != nil {
			return err
		}
		return e.write(t.values)

	case *IntArrayTag:
		if err := e.writeUint32(uint32(len(t.values))); err != nil {
			return err
		}
		for _, v := range t.values {
			if err := e.writeUint32(uint32(v)); err != nil {
				return err
			}
		}
		return nil

	case *LongArrayTag:
		if err := e.writeUint32(uint32(len(t.values))); err != nil {
			return err
		}
		for _, v := range t.values {
			if err := e.writeUint64(uint64(v)); err != nil {
				return err
			}
		}
		return nil

	case *BoolArrayTag:
		return e.writeBoolArray(path, t)

	case *ShortArrayTag:
		if err := e.writeArrayHeader(IDShort, len(t.values)); err != nil {
			return err
		}
		for _, v := range t.values {
			if err := e.writeUint16(uint16(v)); err != nil {
				return err
			}
		}
		return nil

	case *FloatArrayTag:
		if err := e.writeArrayHeader(IDFloat, len(t.values)); err != nil {
			return err
		}
		for _, v := range t.values {
			if err := e.writeUint32(math.Float32bits(v)); err != nil {
				return err
			}
		}
		return nil

	case *DoubleArrayTag:
		if err := e.writeArrayHeader(IDDouble, len(t.values)); err != nil {
			return err
		}
		for _, v := range t.values {
			if err := e.writeUint64(math.Float64bits(v)); err != nil {
				return err
			}
		}
		return nil

	case *StringArrayTag:
		if err := e.writeArrayHeader(IDString, len(t.values)); err != nil {
			return err
		}
		for i, v := range t.values {
			if err := e.writeString(v); err != nil {
				return e.wrap(indexPath(path, i), err)
			}
		}
		return nil

	case *CompoundArrayTag:
		if err := e.writeArrayHeader(IDCompound, len(t.values)); err != nil {
			return err
		}
		for i, c := range t.values {
			if c == nil {
				return nilTagError(indexPath(path, i))
			}
			if err := e.writeCompound(indexPath(path, i), c); err != nil {
				return err
			}
		}
		return nil

	case *MapArrayTag:
		if err := e.writeArrayHeader(IDList, len(t.values)); err != nil {
			return err
		}
		for i, m := range t.values {
			if m == nil {
				return nilTagError(indexPath(path, i))
			}
			if err := e.writeMap(indexPath(path, i), m); err != nil {
				return err
			}
		}
		return nil

	case *ListTag:
		return e.writeList(path, t)

	case *CompoundTag:
		return e.writeCompound(path, t)

	case *MapTag:
		return e.writeMap(path, t)
	}

	return &EncodeError{path, &UnsupportedTagError{t.Type(), fmt.Sprintf("%T has no wire representation", t)}}
}

// writeBoolArray writes [byte-count+2:4][element-count:2][packed bits], eight
// elements per byte, least significant bit first.
func (e *Encoder) writeBoolArray(path string, t *BoolArrayTag) error {
	n := len(t.values)
	if n > math.MaxUint16 {
		return &EncodeError{path, &UsageError{"Encoder.Encode", fmt.Sprintf("bool array of %d elements is too long", n)}}
	}

	packed := make([]byte, boolArrayBytes(n))
	for i, v := range t.values {
		if v {
			packed[i/8] |= 1 << (uint(i) % 8)
		}
	}

	if err := e.writeUint32(uint32(len(packed) + 2)); err != nil {
		return err
	}
	if err := e.writeUint16(uint16(n)); err != nil {
		return err
	}
	return e.write(packed)
}

func (e *Encoder) writeArrayHeader(id TypeID, n int) error {
	if err := e.writeByte(byte(id)); err != nil {
		return err
	}
	return e.writeUint32(uint32(n))
}

// writeList writes [element-id:1][count:4][payloads]. An empty list is written
// with the end id.
func (e *Encoder) writeList(path string, l *ListTag) error {
	elem := l.ElemType()
	if elem == NoType {
		return e.writeArrayHeader(IDEnd, 0)
	}

	// Only the outermost list entry has a name to carry a $List$ trailer, so
	// the element type of a nested list must be recoverable from its id.
	if elem == ListType {
		for i, inner := range l.elems {
			if it := inner.(*ListTag).ElemType(); IsExtension(it) {
				return &EncodeError{indexPath(path, i), &UnsupportedTagError{ListType,
					fmt.Sprintf("a list of %v nested in a list cannot be represented", it)}}
			}
		}
	}

	if err := e.writeArrayHeader(WireID(elem), len(l.elems)); err != nil {
		return err
	}
	for i, t := range l.elems {
		if err := e.writePayload(indexPath(path, i), t); err != nil {
			return err
		}
	}
	return nil
}

// writeCompound writes each entry followed by an end marker. Keys are written
// in sorted order.
func (e *Encoder) writeCompound(path string, c *CompoundTag) error {
	for _, k := range c.Keys() {
		if err := e.writeEntry(keyPath(path, k), k, c.entries[k]); err != nil {
			return err
		}
	}
	return e.writeByte(byte(IDEnd))
}

// writeMap writes a map as a list of compounds, each holding a key entry and a
// value entry.
func (e *Encoder) writeMap(path string, m *MapTag) error {
	if err := e.writeArrayHeader(IDCompound, len(m.entries)); err != nil {
		return err
	}
	for i, entry := range m.entries {
		p := indexPath(path, i)
		if err := e.writeEntry(keyPath(p, mapKeyName), mapKeyName, entry.Key); err != nil {
			return err
		}
		if err := e.writeEntry(keyPath(p, mapValueName), mapValueName, entry.Value); err != nil {
			return err
		}
		if err := e.writeByte(byte(IDEnd)); err != nil {
			return err
		}
	}
	return nil
}

// writeString writes a length-prefixed modified UTF-8 string.
func (e *Encoder) writeString(s string) error {
	n := mutf8Len(s)
	if n > maxStringLen {
		return &UsageError{"Encoder.Encode", fmt.Sprintf("encoded string is %d bytes, at most %d fit", n, maxStringLen)}
	}
	e.scratch = appendMUTF8(e.scratch[:0], s)
	if err := e.writeUint16(uint16(n)); err != nil {
		return err
	}
	return e.write(e.scratch)
}

func (e *Encoder) writeByte(b byte) error {
	if err := e.out.WriteByte(b); err != nil {
		return &IOError{err}
	}
	return nil
}

func (e *Encoder) writeUint16(v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	return e.write(buf[:])
}

func (e *Encoder) writeUint32(v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	return e.write(buf[:])
}

func (e *Encoder) writeUint64(v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return e.write(buf[:])
}

func (e *Encoder) write(b []byte) error {
	if _, err := e.out.Write(b); err != nil {
		return &IOError{err}
	}
	return nil
}

// wrap attaches path to a usage error raised while writing a value.
func (e *Encoder) wrap(path string, err error) error {
	if _, ok := err.(*UsageError); ok {
		return &EncodeError{path, err}
	}
	return err
}

func nilTagError(path string) error {
	return &EncodeError{path, &UsageError{"Encoder.Encode", "nil tag"}}
}

func keyPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}
