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
	"unicode/utf8"
)

// DefaultMaxDepth is the maximum depth used by NewDecoder. It is effectively
// unbounded; decoders reading untrusted input should pick a real limit with
// NewDecoderMaxDepth.
const DefaultMaxDepth = math.MaxInt32

// Names of the synthetic key and value entries a MapTag is framed with.
const (
	mapKeyName   = "key"
	mapValueName = "value"
)

// allocChunk caps how many elements are preallocated from a length prefix,
// so a forged length cannot force a huge allocation before any data is read.
const allocChunk = 1024

// A Decoder reads tags from an input stream.
//
// The root tag is at depth 0 and every container (compound, list, map, compound
// array, map array) holds its children one level deeper. Reading a container
// deeper than the maximum depth fails with a *DepthError. Scalars and
// primitive arrays are never checked, so {x: 1} decodes with a maximum depth
// of 0; only the nesting of containers is bounded.
type Decoder struct {
	in       *bufio.Reader
	pos      uint64
	maxDepth int
}

// NewDecoder returns a Decoder reading from in with DefaultMaxDepth.
func NewDecoder(in io.Reader) *Decoder {
	return NewDecoderMaxDepth(in, DefaultMaxDepth)
}

// NewDecoderMaxDepth returns a Decoder reading from in that refuses input nested
// deeper than maxDepth. A negative maxDepth is treated as zero.
func NewDecoderMaxDepth(in io.Reader, maxDepth int) *Decoder {
	if maxDepth < 0 {
		maxDepth = 0
	}
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Decoder{in: br, maxDepth: maxDepth}
}

// Unmarshal decodes the single root tag held in data.
func Unmarshal(data []byte) (Tag, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// Pos returns the number of bytes consumed so far.
func (d *Decoder) Pos() uint64 {
	return d.pos
}

// Decode reads the next root entry and returns its tag, discarding its name.
func (d *Decoder) Decode() (Tag, error) {
	_, t, err := d.DecodeNamed()
	return t, err
}

// DecodeNamed reads the next root entry and returns its name and tag.
func (d *Decoder) DecodeNamed() (string, Tag, error) {
	e, ok, err := d.readEntry()
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, &SyntaxError{"there is no more data to read", d.pos - 1}
	}

	t, err := d.readPayload(e, 0)
	if err != nil {
		return "", nil, err
	}
	return e.name, t, nil
}

// readEntry reads an entry header. It returns false if it read an end marker.
func (d *Decoder) readEntry() (entryName, bool, error) {
	off := d.pos
	c, err := d.readByte()
	if err != nil {
		return entryName{}, false, err
	}

	id := TypeID(c)
	if id == IDEnd {
		return entryName{}, false, nil
	}
	if _, ok := typeForID(id); !ok {
		return entryName{}, false, &UnknownTypeError{ID: id, Offset: off}
	}

	raw, err := d.readString()
	if err != nil {
		return entryName{}, false, err
	}

	e, err := parseEntryName(id, raw)
	if err != nil {
		switch err := err.(type) {
		case *UnknownTypeError:
			err.Offset = off
		case *UnknownSuffixError:
			err.Offset = off
		}
		return entryName{}, false, err
	}
	return e, true, nil
}

// readPayload reads the payload of an entry of type e.typ at the given depth.
func (d *Decoder) readPayload(e entryName, depth int) (Tag, error) {
	if IsContainer(e.typ) && depth > d.maxDepth {
		return nil, &DepthError{Max: d.maxDepth, Offset: d.pos}
	}

	switch e.typ {
	case BoolType:
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return NewBool(c != 0), nil

	case ByteType:
		c, err := d.readByte()
		if err != nil {
			return nil, err
		}
		return NewByte(int8(c)), nil

	case ShortType:
		v, err := d.readUint16()
		if err != nil {
			return nil, err
		}
		return NewShort(int16(v)), nil

	case IntType:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return NewInt(int32(v)), nil

	case LongType:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return NewLong(int64(v)), nil

	case FloatType:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return NewFloat(math.Float32frombits(v)), nil

	case DoubleType:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return NewDouble(math.Float64frombits(v)), nil

	case CharType:
		off := d.pos
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(s) != 1 {
			msg := fmt.Sprintf("char %q must be exactly one character, got %q", e.name, s)
			return nil, &SyntaxError{msg, off}
		}
		r, _ := utf8.DecodeRuneInString(s)
		return NewChar(r), nil

	case StringType:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil

	case CharArrayType:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return NewCharArray([]rune(s)...), nil

	case ByteArrayType:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		bs, err := d.readN(n)
		if err != nil {
			return nil, err
		}
		return &ByteArrayTag{array[byte]{bs}}, nil

	case IntArrayType:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		values := make([]int32, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			v, err := d.readUint32()
			if err != nil {
				return nil, err
			}
			values = append(values, int32(v))
		}
		return &IntArrayTag{array[int32]{values}}, nil

	case LongArrayType:
		n, err := d.readLength()
		if err != nil {
			return nil, err
		}
		values := make([]int64, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			v, err := d.readUint64()
			if err != nil {
				return nil, err
			}
			values = append(values, int64(v))
		}
		return &LongArrayTag{array[int64]{values}}, nil

	case BoolArrayType:
		return d.readBoolArray(e)

	case ShortArrayType:
		n, err := d.readArrayHeader(e, IDShort)
		if err != nil {
			return nil, err
		}
		values := make([]int16, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			v, err := d.readUint16()
			if err != nil {
				return nil, err
			}
			values = append(values, int16(v))
		}
		return &ShortArrayTag{array[int16]{values}}, nil

	case FloatArrayType:
		n, err := d.readArrayHeader(e, IDFloat)
		if err != nil {
			return nil, err
		}
		values := make([]float32, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			v, err := d.readUint32()
			if err != nil {
				return nil, err
			}
			values = append(values, math.Float32frombits(v))
		}
		return &FloatArrayTag{array[float32]{values}}, nil

	case DoubleArrayType:
		n, err := d.readArrayHeader(e, IDDouble)
		if err != nil {
			return nil, err
		}
		values := make([]float64, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			v, err := d.readUint64()
			if err != nil {
				return nil, err
			}
			values = append(values, math.Float64frombits(v))
		}
		return &DoubleArrayTag{array[float64]{values}}, nil

	case StringArrayType:
		n, err := d.readArrayHeader(e, IDString)
		if err != nil {
			return nil, err
		}
		values := make([]string, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			s, err := d.readString()
			if err != nil {
				return nil, err
			}
			values = append(values, s)
		}
		return &StringArrayTag{array[string]{values}}, nil

	case CompoundArrayType:
		n, err := d.readArrayHeader(e, IDCompound)
		if err != nil {
			return nil, err
		}
		values := make([]*CompoundTag, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			t, err := d.readPayload(entryName{name: e.name, typ: CompoundType}, depth+1)
			if err != nil {
				return nil, err
			}
			values = append(values, t.(*CompoundTag))
		}
		return &CompoundArrayTag{array[*CompoundTag]{values}}, nil

	case MapArrayType:
		n, err := d.readArrayHeader(e, IDList)
		if err != nil {
			return nil, err
		}
		values := make([]*MapTag, 0, minInt(n, allocChunk))
		for i := 0; i < n; i++ {
			t, err := d.readPayload(entryName{name: e.name, typ: MapType}, depth+1)
			if err != nil {
				return nil, err
			}
			values = append(values, t.(*MapTag))
		}
		return &MapArrayTag{array[*MapTag]{values}}, nil

	case ListType:
		return d.readList(e, depth)

	case CompoundType:
		return d.readCompound(depth)

	case MapType:
		return d.readMap(e, depth)
	}

	return nil, &SyntaxError{fmt.Sprintf("cannot read a %v payload for %q", e.typ, e.name), d.pos}
}

// readBoolArray reads [byte-count+2:4][element-count:2][packed bits].
func (d *Decoder) readBoolArray(e entryName) (Tag, error) {
	off := d.pos
	size, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	count, err := d.readUint16()
	if err != nil {
		return nil, err
	}

	packed := int64(int32(size)) - 2
	if packed != int64(boolArrayBytes(int(count))) {
		msg := fmt.Sprintf("bool array %q declares %d bytes for %d elements", e.name, packed, count)
		return nil, &SyntaxError{msg, off}
	}

	bs, err := d.readN(int(packed))
	if err != nil {
		return nil, err
	}

	values := make([]bool, count)
	for i := range values {
		values[i] = bs[i/8]&(1<<(uint(i)%8)) != 0
	}
	return &BoolArrayTag{array[bool]{values}}, nil
}

// readArrayHeader reads the [element-id:1][count:4] header of an array that
// reuses the list wire shape. An end element id yields a zero count.
func (d *Decoder) readArrayHeader(e entryName, want TypeID) (int, error) {
	off := d.pos
	c, err := d.readByte()
	if err != nil {
		return 0, err
	}
	n, err := d.readLength()
	if err != nil {
		return 0, err
	}

	id := TypeID(c)
	if id == IDEnd {
		return 0, nil
	}
	if id != want {
		return 0, &ElementTypeError{Name: e.name, Type: e.typ, Expected: want, Found: id, Offset: off}
	}
	return n, nil
}

func (d *Decoder) readList(e entryName, depth int) (Tag, error) {
	off := d.pos
	c, err := d.readByte()
	if err != nil {
		return nil, err
	}
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}

	id := TypeID(c)
	l := &ListTag{}
	if n == 0 || id == IDEnd {
		return l, nil
	}

	elem := e.elem
	if elem == NoType {
		t, ok := typeForID(id)
		if !ok {
			return nil, &UnknownTypeError{ID: id, Name: e.name, Offset: off}
		}
		elem = t
	} else if WireID(elem) != id {
		return nil, &ElementTypeError{Name: e.name, Type: ListType, Expected: WireID(elem), Found: id, Offset: off}
	}

	l.elemType = elem
	l.elems = make([]Tag, 0, minInt(n, allocChunk))
	child := entryName{name: e.name, typ: elem}
	for i := 0; i < n; i++ {
		t, err := d.readPayload(child, depth+1)
		if err != nil {
			return nil, err
		}
		l.elems = append(l.elems, t)
	}
	return l, nil
}

func (d *Decoder) readCompound(depth int) (Tag, error) {
	c := NewCompound()
	for {
		off := d.pos
		e, ok, err := d.readEntry()
		if err != nil {
			return nil, err
		}
		if !ok {
			return c, nil
		}

		t, err := d.readPayload(e, depth+1)
		if err != nil {
			return nil, err
		}
		if err := c.Add(e.name, t); err != nil {
			return nil, &SyntaxError{err.(*UsageError).Msg, off}
		}
	}
}

// readMap reads a map framed as a list of compounds, each holding exactly a
// key entry and a value entry.
func (d *Decoder) readMap(e entryName, depth int) (Tag, error) {
	off := d.pos
	c, err := d.readByte()
	if err != nil {
		return nil, err
	}
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}

	m := NewMap()
	id := TypeID(c)
	if n == 0 || id == IDEnd {
		return m, nil
	}
	if id != IDCompound {
		return nil, &ElementTypeError{Name: e.name, Type: MapType, Expected: IDCompound, Found: id, Offset: off}
	}

	for i := 0; i < n; i++ {
		off = d.pos
		key, err := d.readMapSlot(e, mapKeyName, depth)
		if err != nil {
			return nil, err
		}
		value, err := d.readMapSlot(e, mapValueName, depth)
		if err != nil {
			return nil, err
		}

		end, err := d.readByte()
		if err != nil {
			return nil, err
		}
		if TypeID(end) != IDEnd {
			msg := fmt.Sprintf("map %q entry %d has more than a key and a value", e.name, i)
			return nil, &SyntaxError{msg, d.pos - 1}
		}

		if err := m.Add(key, value); err != nil {
			return nil, &SyntaxError{err.(*UsageError).Msg, off}
		}
	}
	return m, nil
}

func (d *Decoder) readMapSlot(e entryName, slot string, depth int) (Tag, error) {
	off := d.pos
	se, ok, err := d.readEntry()
	if err != nil {
		return nil, err
	}
	if !ok || se.name != slot {
		msg := fmt.Sprintf("map %q entry is missing its %v", e.name, slot)
		return nil, &SyntaxError{msg, off}
	}
	return d.readPayload(se, depth+1)
}

// readLength reads a signed 32-bit length prefix.
func (d *Decoder) readLength() (int, error) {
	off := d.pos
	v, err := d.readUint32()
	if err != nil {
		return 0, err
	}
	n := int32(v)
	if n < 0 {
		return 0, &SyntaxError{fmt.Sprintf("negative length %d", n), off}
	}
	return int(n), nil
}

// readString reads a length-prefixed modified UTF-8 string.
func (d *Decoder) readString() (string, error) {
	off := d.pos
	n, err := d.readUint16()
	if err != nil {
		return "", err
	}
	bs, err := d.readN(int(n))
	if err != nil {
		return "", err
	}
	s, err := decodeMUTF8(bs)
	if err != nil {
		return "", &SyntaxError{err.Error(), off}
	}
	return s, nil
}

func (d *Decoder) readByte() (byte, error) {
	c, err := d.in.ReadByte()
	if err != nil {
		return 0, d.wrapErr(err)
	}
	d.pos++
	return c, nil
}

func (d *Decoder) readUint16() (uint16, error) {
	var buf [2]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func (d *Decoder) readUint32() (uint32, error) {
	var buf [4]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func (d *Decoder) readUint64() (uint64, error) {
	var buf [8]byte
	if err := d.readFull(buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// readN reads exactly n bytes, growing the buffer as data actually arrives.
func (d *Decoder) readN(n int) ([]byte, error) {
	if n <= allocChunk*allocChunk {
		bs := make([]byte, n)
		if err := d.readFull(bs); err != nil {
			return nil, err
		}
		return bs, nil
	}

	var buf bytes.Buffer
	read, err := buf.ReadFrom(io.LimitReader(d.in, int64(n)))
	d.pos += uint64(read)
	if err != nil {
		return nil, &IOError{err}
	}
	if read != int64(n) {
		return nil, &UnexpectedEOFError{d.pos}
	}
	return buf.Bytes(), nil
}

func (d *Decoder) readFull(b []byte) error {
	n, err := io.ReadFull(d.in, b)
	d.pos += uint64(n)
	if err != nil {
		return d.wrapErr(err)
	}
	return nil
}

func (d *Decoder) wrapErr(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return &UnexpectedEOFError{d.pos}
	}
	return &IOError{err}
}

func boolArrayBytes(n int) int {
	return (n + 7) / 8
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
