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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wire builds expected encodings by hand.
type wire struct {
	bytes.Buffer
}

func (w *wire) id(id TypeID) *wire {
	w.WriteByte(byte(id))
	return w
}

func (w *wire) u8(v byte) *wire {
	w.WriteByte(v)
	return w
}

func (w *wire) u16(v uint16) *wire {
	_ = binary.Write(w, binary.BigEndian, v)
	return w
}

func (w *wire) u32(v uint32) *wire {
	_ = binary.Write(w, binary.BigEndian, v)
	return w
}

func (w *wire) u64(v uint64) *wire {
	_ = binary.Write(w, binary.BigEndian, v)
	return w
}

// str writes an ASCII string with its length prefix.
func (w *wire) str(s string) *wire {
	w.u16(uint16(len(s)))
	w.WriteString(s)
	return w
}

func (w *wire) raw(bs ...byte) *wire {
	w.Write(bs)
	return w
}

func fmtbytes(bs []byte) string {
	buf := strings.Builder{}
	buf.WriteByte('[')
	for i, b := range bs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(fmt.Sprintf("%02X", b))
	}
	buf.WriteByte(']')
	return buf.String()
}

func testEncode(t *testing.T, name string, tag Tag, eval []byte) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewEncoder(&buf).EncodeNamed(name, tag))
	if !bytes.Equal(eval, buf.Bytes()) {
		t.Errorf("expected %v, got %v", fmtbytes(eval), fmtbytes(buf.Bytes()))
	}
}

func TestEncodeScalars(t *testing.T) {
	testEncode(t, "a", NewInt(5), new(wire).id(IDInt).str("a").u32(5).Bytes())
	testEncode(t, "b", NewByte(-1), new(wire).id(IDByte).str("b").u8(0xFF).Bytes())
	testEncode(t, "s", NewShort(-2), new(wire).id(IDShort).str("s").u16(0xFFFE).Bytes())
	testEncode(t, "l", NewLong(1<<40), new(wire).id(IDLong).str("l").u64(1<<40).Bytes())
	testEncode(t, "f", NewFloat(1), new(wire).id(IDFloat).str("f").u32(0x3F800000).Bytes())
	testEncode(t, "d", NewDouble(1), new(wire).id(IDDouble).str("d").u64(0x3FF0000000000000).Bytes())
	testEncode(t, "", NewString("hi"), new(wire).id(IDString).str("").str("hi").Bytes())
	testEncode(t, "A", NewBool(true), new(wire).id(IDByte).str("A$Boolean").u8(1).Bytes())
	testEncode(t, "A", NewBool(false), new(wire).id(IDByte).str("A$Boolean").u8(0).Bytes())
	testEncode(t, "c", NewChar('x'), new(wire).id(IDString).str("c$char").str("x").Bytes())
}

func TestEncodeArrays(t *testing.T) {
	testEncode(t, "b", NewByteArray(1, 2),
		new(wire).id(IDByteArray).str("b").u32(2).raw(1, 2).Bytes())
	testEncode(t, "i", NewIntArray(1, -1),
		new(wire).id(IDIntArray).str("i").u32(2).u32(1).u32(0xFFFFFFFF).Bytes())
	testEncode(t, "l", NewLongArray(7),
		new(wire).id(IDLongArray).str("l").u32(1).u64(7).Bytes())
	testEncode(t, "s", NewShortArray(1, 2),
		new(wire).id(IDList).str("s$short[]").id(IDShort).u32(2).u16(1).u16(2).Bytes())
	testEncode(t, "s", NewShortArray(),
		new(wire).id(IDList).str("s$short[]").id(IDShort).u32(0).Bytes())
	testEncode(t, "f", NewFloatArray(1),
		new(wire).id(IDList).str("f$float[]").id(IDFloat).u32(1).u32(0x3F800000).Bytes())
	testEncode(t, "d", NewDoubleArray(1),
		new(wire).id(IDList).str("d$double[]").id(IDDouble).u32(1).u64(0x3FF0000000000000).Bytes())
	testEncode(t, "t", NewStringArray("a", "bc"),
		new(wire).id(IDList).str("t$string[]").id(IDString).u32(2).str("a").str("bc").Bytes())
	testEncode(t, "c", NewCharArray('h', 'i'),
		new(wire).id(IDString).str("c$char[]").str("hi").Bytes())

	ca, err := NewCompoundArray(NewCompound(), NewCompound())
	require.NoError(t, err)
	testEncode(t, "x", ca,
		new(wire).id(IDList).str("x$compound[]").id(IDCompound).u32(2).id(IDEnd).id(IDEnd).Bytes())

	ma, err := NewMapArray(NewMap())
	require.NoError(t, err)
	testEncode(t, "y", ma,
		new(wire).id(IDList).str("y$map[]").id(IDList).u32(1).id(IDCompound).u32(0).Bytes())
}

func TestEncodeBoolArray(t *testing.T) {
	test := func(n int) {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			values := make([]bool, n)
			for i := range values {
				values[i] = i%3 == 0
			}

			packed := make([]byte, (n+7)/8)
			for i, v := range values {
				if v {
					packed[i/8] |= 1 << (i % 8)
				}
			}

			eval := new(wire).id(IDByteArray).str("b$boolean[]").
				u32(uint32(len(packed) + 2)).u16(uint16(n)).raw(packed...).Bytes()
			testEncode(t, "b", NewBoolArray(values...), eval)

			val, err := Unmarshal(eval)
			require.NoError(t, err)
			assert.Equal(t, values, val.(*BoolArrayTag).Get())
		})
	}

	for _, n := range []int{0, 1, 7, 8, 9, 16} {
		test(n)
	}

	// Byte i holds elements 8i through 8i+7, least significant bit first.
	testEncode(t, "b", NewBoolArray(true, false, false, false, false, false, false, false, false, true),
		new(wire).id(IDByteArray).str("b$boolean[]").u32(4).u16(10).raw(0x01, 0x02).Bytes())
}

func TestEncodeContainers(t *testing.T) {
	testEncode(t, "l", &ListTag{},
		new(wire).id(IDList).str("l").id(IDEnd).u32(0).Bytes())

	ints, _ := NewList(NewInt(5), NewInt(6))
	testEncode(t, "l", ints,
		new(wire).id(IDList).str("l").id(IDInt).u32(2).u32(5).u32(6).Bytes())

	bools, _ := NewList(NewBool(true), NewBool(false))
	testEncode(t, "l", bools,
		new(wire).id(IDList).str("l$List$Boolean").id(IDByte).u32(2).u8(1).u8(0).Bytes())

	chars, _ := NewList(NewChar('a'))
	testEncode(t, "l", chars,
		new(wire).id(IDList).str("l$List$char").id(IDString).u32(1).str("a").Bytes())

	m := NewMap()
	require.NoError(t, m.Put(NewInt(1), NewBool(true)))
	testEncode(t, "m", m,
		new(wire).id(IDList).str("m$map").id(IDCompound).u32(1).
			id(IDInt).str("key").u32(1).
			id(IDByte).str("value$Boolean").u8(1).
			id(IDEnd).Bytes())

	c := NewCompound()
	require.NoError(t, c.PutInt("b", 2))
	require.NoError(t, c.PutInt("a", 1))
	testEncode(t, "", c,
		new(wire).id(IDCompound).str("").
			id(IDInt).str("a").u32(1).
			id(IDInt).str("b").u32(2).
			id(IDEnd).Bytes())
}

func TestEncodeDocument(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.PutBool("A", true))
	require.NoError(t, c.Put("B", NewIntArray(1, 2, 3)))
	list, _ := NewList(NewInt(5), NewInt(6))
	require.NoError(t, c.Put("C", list))

	eval := new(wire).id(IDCompound).str("").
		id(IDByte).str("A$Boolean").u8(1).
		id(IDIntArray).str("B").u32(3).u32(1).u32(2).u32(3).
		id(IDList).str("C").id(IDInt).u32(2).u32(5).u32(6).
		id(IDEnd).Bytes()

	val, err := Marshal(c)
	require.NoError(t, err)
	if !bytes.Equal(eval, val) {
		t.Fatalf("expected %v, got %v", fmtbytes(eval), fmtbytes(val))
	}

	root, err := Unmarshal(val)
	require.NoError(t, err)
	assert.True(t, Equal(c, root))

	got, ok := root.(*CompoundTag).GetList("C")
	require.True(t, ok)
	assert.Equal(t, IntType, got.ElemType())
	assert.Error(t, got.Add(NewString("x")))
	assert.Equal(t, 2, got.Len())
}

func TestEncodeErrors(t *testing.T) {
	var encErr *EncodeError
	var unsupported *UnsupportedTagError
	var usage *UsageError

	_, err := Marshal(nil)
	require.ErrorAs(t, err, &encErr)
	require.ErrorAs(t, err, &usage)

	c := NewCompound()
	require.NoError(t, c.PutInt("a$b", 1))
	_, err = Marshal(c)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "a$b", encErr.Path)
	require.ErrorAs(t, err, &unsupported)

	inner, _ := NewList(NewBool(true))
	outer, _ := NewList(inner)
	c = NewCompound()
	require.NoError(t, c.Put("outer", outer))
	_, err = Marshal(c)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "outer[0]", encErr.Path)
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, ListType, unsupported.Type)

	c = NewCompound()
	require.NoError(t, c.PutString("s", strings.Repeat("a", maxStringLen+1)))
	_, err = Marshal(c)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "s", encErr.Path)
	require.ErrorAs(t, err, &usage)

	// Two bytes per NUL pushes this one over the limit.
	c = NewCompound()
	require.NoError(t, c.PutString("s", strings.Repeat("\x00", maxStringLen/2+1)))
	_, err = Marshal(c)
	require.ErrorAs(t, err, &usage)

	require.NoError(t, c.PutString("s", strings.Repeat("a", maxStringLen)))
	_, err = Marshal(c)
	assert.NoError(t, err)

	nested := NewCompound()
	require.NoError(t, nested.PutChar("c", 0xD800))
	c = NewCompound()
	require.NoError(t, c.Put("n", nested))
	_, err = Marshal(c)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "n.c", encErr.Path)

	sa := NewStringArray("ok", strings.Repeat("a", maxStringLen+1))
	_, err = Marshal(sa)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "[1]", encErr.Path)
}

func TestEncodeNilTags(t *testing.T) {
	var encErr *EncodeError
	var usage *UsageError

	_, err := Marshal((*IntTag)(nil))
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "", encErr.Path)
	require.ErrorAs(t, err, &usage)

	// Elements of the backing slice can be cleared behind the tag's back.
	ca, err := NewCompoundArray(NewCompound(), NewCompound())
	require.NoError(t, err)
	ca.Get()[1] = nil
	c := NewCompound()
	require.NoError(t, c.Put("list", ca))
	_, err = Marshal(c)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "list[1]", encErr.Path)
	require.ErrorAs(t, err, &usage)

	ma, err := NewMapArray(NewMap())
	require.NoError(t, err)
	ma.Get()[0] = nil
	_, err = Marshal(ma)
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, "[0]", encErr.Path)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestEncodeIOError(t *testing.T) {
	err := NewEncoder(failingWriter{}).Encode(NewInt(1))
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.True(t, errors.Is(err, errWrite))
}
