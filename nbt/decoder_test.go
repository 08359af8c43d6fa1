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
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeNamed(t *testing.T) {
	in := new(wire).id(IDByte).str("flag$Boolean").u8(2).Bytes()

	d := NewDecoder(bytes.NewReader(in))
	name, val, err := d.DecodeNamed()
	require.NoError(t, err)
	assert.Equal(t, "flag", name)
	assert.True(t, Equal(NewBool(true), val))
	assert.Equal(t, uint64(len(in)), d.Pos())

	_, _, err = d.DecodeNamed()
	var eof *UnexpectedEOFError
	require.ErrorAs(t, err, &eof)
}

func TestDecodeSequence(t *testing.T) {
	in := new(wire).
		id(IDInt).str("a").u32(1).
		id(IDInt).str("b").u32(2).Bytes()

	d := NewDecoder(bytes.NewReader(in))
	for _, eval := range []int32{1, 2} {
		val, err := d.Decode()
		require.NoError(t, err)
		assert.Equal(t, eval, val.(*IntTag).Get())
	}
}

func TestDecodeEndAtRoot(t *testing.T) {
	_, err := Unmarshal([]byte{0})
	var syntax *SyntaxError
	require.ErrorAs(t, err, &syntax)
	assert.Equal(t, uint64(0), syntax.Offset)
}

func TestDecodeUnknownType(t *testing.T) {
	_, err := Unmarshal(new(wire).id(14).str("x").Bytes())
	var typeErr *UnknownTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, TypeID(14), typeErr.ID)

	_, err = Unmarshal(new(wire).id(IDUnknown).str("x").Bytes())
	require.ErrorAs(t, err, &typeErr)

	// Unknown element id in a plain list.
	_, err = Unmarshal(new(wire).id(IDList).str("l").id(13).u32(1).Bytes())
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "l", typeErr.Name)
}

func TestDecodeUnknownSuffix(t *testing.T) {
	test := func(name string, in []byte, suffix string) {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(in)
			var suffixErr *UnknownSuffixError
			require.ErrorAs(t, err, &suffixErr)
			assert.Equal(t, suffix, suffixErr.Suffix)
		})
	}

	test("unregistered", new(wire).id(IDByte).str("x$foo").u8(0).Bytes(), "foo")
	test("wrong id", new(wire).id(IDInt).str("x$Boolean").u32(0).Bytes(), "Boolean")
	test("array on string", new(wire).id(IDString).str("x$short[]").str("").Bytes(), "short[]")
	test("empty", new(wire).id(IDByte).str("x$").u8(0).Bytes(), "")
	test("separator in name", new(wire).id(IDByte).str("a$b$Boolean").u8(1).Bytes(), "b$Boolean")
	test("separator in list name", new(wire).id(IDList).str("a$b$List$Boolean").id(IDByte).u32(0).Bytes(), "b$List$Boolean")
	test("nested in compound",
		new(wire).id(IDCompound).str("").id(IDByte).str("a$b$Boolean").u8(1).id(IDEnd).Bytes(), "b$Boolean")
}

func TestDecodeAcceptsOnlyEncodableNames(t *testing.T) {
	// Whatever the decoder accepts, the encoder writes back unchanged.
	in := new(wire).id(IDCompound).str("").
		id(IDByte).str("a$Boolean").u8(1).
		id(IDList).str("b$List$Boolean").id(IDByte).u32(1).u8(0).
		id(IDEnd).Bytes()

	tag, err := Unmarshal(in)
	require.NoError(t, err)
	out, err := Marshal(tag)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeElementTypeMismatch(t *testing.T) {
	test := func(name string, in []byte, expected, found TypeID) {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(in)
			var elemErr *ElementTypeError
			require.ErrorAs(t, err, &elemErr)
			assert.Equal(t, expected, elemErr.Expected)
			assert.Equal(t, found, elemErr.Found)
		})
	}

	test("short array", new(wire).id(IDList).str("s$short[]").id(IDInt).u32(1).u32(1).Bytes(), IDShort, IDInt)
	test("float array", new(wire).id(IDList).str("f$float[]").id(IDDouble).u32(1).u64(1).Bytes(), IDFloat, IDDouble)
	test("compound array", new(wire).id(IDList).str("c$compound[]").id(IDList).u32(0).Bytes(), IDCompound, IDList)
	test("map", new(wire).id(IDList).str("m$map").id(IDString).u32(1).str("x").Bytes(), IDCompound, IDString)
	test("list of bools", new(wire).id(IDList).str("l$List$Boolean").id(IDInt).u32(1).u32(1).Bytes(), IDByte, IDInt)
}

func TestDecodeEmptyArrays(t *testing.T) {
	// Arrays that reuse the list shape accept an end element id.
	val, err := Unmarshal(new(wire).id(IDList).str("s$short[]").id(IDEnd).u32(0).Bytes())
	require.NoError(t, err)
	assert.True(t, Equal(NewShortArray(), val))

	val, err = Unmarshal(new(wire).id(IDList).str("s$string[]").id(IDEnd).u32(5).Bytes())
	require.NoError(t, err)
	assert.True(t, Equal(NewStringArray(), val))

	val, err = Unmarshal(new(wire).id(IDList).str("l").id(IDEnd).u32(0).Bytes())
	require.NoError(t, err)
	assert.Equal(t, 0, val.(*ListTag).Len())
	assert.Equal(t, NoType, val.(*ListTag).ElemType())

	// A zero count wins over the element id.
	val, err = Unmarshal(new(wire).id(IDList).str("l").id(IDInt).u32(0).Bytes())
	require.NoError(t, err)
	assert.Equal(t, NoType, val.(*ListTag).ElemType())

	val, err = Unmarshal(new(wire).id(IDList).str("m$map").id(IDEnd).u32(0).Bytes())
	require.NoError(t, err)
	assert.True(t, Equal(NewMap(), val))
}

func TestDecodeChar(t *testing.T) {
	var syntax *SyntaxError

	_, err := Unmarshal(new(wire).id(IDString).str("c$char").str("").Bytes())
	require.ErrorAs(t, err, &syntax)

	_, err = Unmarshal(new(wire).id(IDString).str("c$char").str("ab").Bytes())
	require.ErrorAs(t, err, &syntax)

	val, err := Unmarshal(new(wire).id(IDString).str("c$char").str("a").Bytes())
	require.NoError(t, err)
	assert.Equal(t, 'a', val.(*CharTag).Get())

	in := new(wire).id(IDString).str("c$char").u16(6).raw(0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80).Bytes()
	val, err = Unmarshal(in)
	require.NoError(t, err)
	assert.Equal(t, '\U0001F600', val.(*CharTag).Get())

	_, err = Unmarshal(new(wire).id(IDList).str("l$List$char").id(IDString).u32(2).str("a").str("bc").Bytes())
	require.ErrorAs(t, err, &syntax)
}

// nested returns a compound whose innermost compound sits at the given depth.
func nested(depth int) *CompoundTag {
	root := NewCompound()
	c := root
	for i := 0; i < depth; i++ {
		child := NewCompound()
		_ = c.Put("a", child)
		c = child
	}
	return root
}

func TestDecodeMaxDepth(t *testing.T) {
	test := func(depth, max int, ok bool) {
		in, err := Marshal(nested(depth))
		require.NoError(t, err)

		val, err := NewDecoderMaxDepth(bytes.NewReader(in), max).Decode()
		if ok {
			require.NoError(t, err, "depth %d, max %d", depth, max)
			assert.True(t, Equal(nested(depth), val))
		} else {
			var depthErr *DepthError
			require.ErrorAs(t, err, &depthErr, "depth %d, max %d", depth, max)
			assert.Equal(t, max, depthErr.Max)
		}
	}

	test(0, 0, true)
	test(1, 0, false)
	test(3, 2, false)
	test(3, 3, true)
	test(3, 10, true)
	test(20, 19, false)
	test(20, DefaultMaxDepth, true)

	// Scalars are never depth checked.
	val, err := NewDecoderMaxDepth(bytes.NewReader(new(wire).id(IDInt).str("").u32(1).Bytes()), 0).Decode()
	require.NoError(t, err)
	assert.Equal(t, int32(1), val.(*IntTag).Get())

	// Nor are the scalar children of a container at the limit.
	c := NewCompound()
	require.NoError(t, c.PutInt("x", 1))
	require.NoError(t, c.Put("a", NewIntArray(1, 2)))
	in, err := Marshal(c)
	require.NoError(t, err)
	val, err = NewDecoderMaxDepth(bytes.NewReader(in), 0).Decode()
	require.NoError(t, err)
	assert.True(t, Equal(c, val))

	// A negative maximum behaves like zero.
	in, _ = Marshal(nested(0))
	_, err = NewDecoderMaxDepth(bytes.NewReader(in), -5).Decode()
	assert.NoError(t, err)
}

func TestDecodeMaxDepthLists(t *testing.T) {
	inner, _ := NewList(NewInt(1))
	outer, _ := NewList(inner)
	in, err := Marshal(outer)
	require.NoError(t, err)

	_, err = NewDecoderMaxDepth(bytes.NewReader(in), 0).Decode()
	var depthErr *DepthError
	require.ErrorAs(t, err, &depthErr)

	_, err = NewDecoderMaxDepth(bytes.NewReader(in), 1).Decode()
	assert.NoError(t, err)

	m := NewMap()
	require.NoError(t, m.Put(NewString("k"), NewCompound()))
	in, err = Marshal(m)
	require.NoError(t, err)

	_, err = NewDecoderMaxDepth(bytes.NewReader(in), 0).Decode()
	require.ErrorAs(t, err, &depthErr)

	_, err = NewDecoderMaxDepth(bytes.NewReader(in), 1).Decode()
	assert.NoError(t, err)
}

func TestDecodeTruncated(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.PutString("name", "value"))
	require.NoError(t, c.Put("ints", NewIntArray(1, 2)))
	require.NoError(t, c.Put("bools", NewBoolArray(true, false, true)))
	m := NewMap()
	require.NoError(t, m.Put(NewLong(1), NewDoubleArray(2)))
	require.NoError(t, c.Put("map", m))

	in, err := Marshal(c)
	require.NoError(t, err)

	for i := 0; i < len(in); i++ {
		_, err := Unmarshal(in[:i])
		var eof *UnexpectedEOFError
		require.ErrorAs(t, err, &eof, "prefix of %d bytes", i)
		assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
		assert.Equal(t, uint64(i), eof.Offset)
	}
}

func TestDecodeIOError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewDecoder(iotest.ErrReader(boom)).Decode()

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.True(t, errors.Is(err, boom))
}

func TestDecodeMalformed(t *testing.T) {
	test := func(name string, in []byte) {
		t.Run(name, func(t *testing.T) {
			_, err := Unmarshal(in)
			var syntax *SyntaxError
			require.ErrorAs(t, err, &syntax)
		})
	}

	test("duplicate key", new(wire).id(IDCompound).str("").
		id(IDInt).str("a").u32(1).
		id(IDInt).str("a").u32(2).
		id(IDEnd).Bytes())
	test("empty key", new(wire).id(IDCompound).str("").
		id(IDInt).str("").u32(1).
		id(IDEnd).Bytes())
	test("negative length", new(wire).id(IDIntArray).str("i").u32(0xFFFFFFFF).Bytes())
	test("negative list length", new(wire).id(IDList).str("l").id(IDInt).u32(0x80000000).Bytes())
	test("bool array size", new(wire).id(IDByteArray).str("b$boolean[]").u32(5).u16(9).raw(0, 0, 0).Bytes())
	test("bool array underflow", new(wire).id(IDByteArray).str("b$boolean[]").u32(1).u16(0).Bytes())
	test("nul in string", new(wire).id(IDString).str("s").u16(1).raw(0).Bytes())
	test("nul in name", new(wire).id(IDInt).u16(1).raw(0).u32(0).Bytes())

	entry := func(w *wire) *wire {
		return w.id(IDList).str("m$map").id(IDCompound).u32(1)
	}
	test("map missing value", entry(new(wire)).
		id(IDInt).str("key").u32(1).
		id(IDEnd).Bytes())
	test("map slots swapped", entry(new(wire)).
		id(IDInt).str("value").u32(1).
		id(IDInt).str("key").u32(1).
		id(IDEnd).Bytes())
	test("map extra slot", entry(new(wire)).
		id(IDInt).str("key").u32(1).
		id(IDInt).str("value").u32(1).
		id(IDInt).str("more").u32(1).
		id(IDEnd).Bytes())
	test("map duplicate key", new(wire).id(IDList).str("m$map").id(IDCompound).u32(2).
		id(IDInt).str("key").u32(1).id(IDInt).str("value").u32(1).id(IDEnd).
		id(IDInt).str("key").u32(1).id(IDInt).str("value").u32(2).id(IDEnd).Bytes())
}

func TestDecodeForgedLength(t *testing.T) {
	// The declared length is far larger than the input; decoding must fail
	// cleanly instead of allocating for it up front.
	_, err := Unmarshal(new(wire).id(IDByteArray).str("b").u32(0x7FFFFFFF).raw(1, 2, 3).Bytes())
	var eof *UnexpectedEOFError
	require.ErrorAs(t, err, &eof)

	_, err = Unmarshal(new(wire).id(IDLongArray).str("l").u32(0x7FFFFFFF).u64(1).Bytes())
	require.ErrorAs(t, err, &eof)
}
