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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListKindLock(t *testing.T) {
	l := &ListTag{}
	assert.Equal(t, NoType, l.ElemType())

	require.NoError(t, l.Add(NewInt(1)))
	assert.Equal(t, IntType, l.ElemType())

	var usage *UsageError
	require.ErrorAs(t, l.Add(NewString("x")), &usage)
	require.ErrorAs(t, l.Insert(0, NewLong(1)), &usage)
	require.ErrorAs(t, l.Set(0, NewShort(1)), &usage)
	require.ErrorAs(t, l.Add(nil), &usage)
	assert.Equal(t, 1, l.Len())

	require.NoError(t, l.Insert(0, NewInt(0)))
	require.NoError(t, l.Set(1, NewInt(2)))
	assert.Equal(t, int32(0), l.At(0).(*IntTag).Get())
	assert.Equal(t, int32(2), l.At(1).(*IntTag).Get())

	require.NoError(t, l.Remove(0))
	require.NoError(t, l.Remove(0))
	assert.Equal(t, NoType, l.ElemType())

	// An emptied list can be seeded with a new kind.
	require.NoError(t, l.Add(NewString("x")))
	assert.Equal(t, StringType, l.ElemType())

	l.Clear()
	require.NoError(t, l.Add(NewCompound()))
	assert.Equal(t, CompoundType, l.ElemType())
}

func TestListBounds(t *testing.T) {
	l, err := NewList(NewByte(1))
	require.NoError(t, err)

	assert.Error(t, l.Insert(2, NewByte(2)))
	assert.Error(t, l.Set(1, NewByte(2)))
	assert.Error(t, l.Remove(1))
	assert.Error(t, l.Remove(-1))
	assert.Equal(t, 1, l.Len())
}

func TestListSetAll(t *testing.T) {
	l, err := NewList(NewInt(1), NewInt(2))
	require.NoError(t, err)

	assert.Error(t, l.SetAll([]Tag{NewInt(1), NewLong(2)}))
	assert.Error(t, l.SetAll([]Tag{NewInt(1), nil}))
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, IntType, l.ElemType())

	require.NoError(t, l.SetAll([]Tag{NewFloat(1)}))
	assert.Equal(t, FloatType, l.ElemType())

	elems := l.Elems()
	elems[0] = NewFloat(2)
	assert.Equal(t, float32(1), l.At(0).(*FloatTag).Get())

	_, err = NewList(NewInt(1), NewString("x"))
	assert.Error(t, err)
}

func TestCompound(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.Put("b", NewInt(1)))
	require.NoError(t, c.Put("a", NewInt(2)))
	require.NoError(t, c.Put("b", NewInt(3)))
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	assert.Equal(t, int32(3), c.GetInt("b", 0))

	var usage *UsageError
	require.ErrorAs(t, c.Add("a", NewInt(4)), &usage)
	assert.Equal(t, int32(2), c.GetInt("a", 0))

	require.ErrorAs(t, c.Put("", NewInt(1)), &usage)
	require.ErrorAs(t, c.Put("x", nil), &usage)
	require.ErrorAs(t, c.Add("", NewInt(1)), &usage)
	assert.False(t, c.Has(""))
	assert.False(t, c.Has("x"))

	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))
	assert.Equal(t, 1, c.Len())

	assert.Error(t, c.Set(map[string]Tag{"ok": NewInt(1), "": NewInt(2)}))
	assert.Equal(t, []string{"b"}, c.Keys())

	require.NoError(t, c.Set(map[string]Tag{"x": NewInt(1), "y": NewInt(2)}))
	assert.Equal(t, []string{"x", "y"}, c.Keys())

	m := c.Map()
	delete(m, "x")
	assert.True(t, c.Has("x"))
}

func TestCompoundZeroValue(t *testing.T) {
	var c CompoundTag
	assert.Equal(t, 0, c.Len())
	_, ok := c.Get("a")
	assert.False(t, ok)
	require.NoError(t, c.Add("a", NewBool(true)))
	assert.True(t, c.GetBool("a", false))
}

func TestMap(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Put(NewString("a"), NewInt(1)))
	require.NoError(t, m.Put(NewInt(7), NewCompound()))
	require.NoError(t, m.Put(NewBool(true), NewStringArray("x", "y")))
	assert.Equal(t, 3, m.Len())

	v, ok := m.Get(NewInt(7))
	require.True(t, ok)
	assert.Equal(t, CompoundType, v.Type())

	// Keys compare by value and type.
	_, ok = m.Get(NewLong(7))
	assert.False(t, ok)

	require.NoError(t, m.Put(NewString("a"), NewInt(2)))
	assert.Equal(t, 3, m.Len())
	v, _ = m.Get(NewString("a"))
	assert.Equal(t, int32(2), v.(*IntTag).Get())

	var usage *UsageError
	require.ErrorAs(t, m.Add(NewString("a"), NewInt(3)), &usage)
	require.ErrorAs(t, m.Put(nil, NewInt(3)), &usage)
	require.ErrorAs(t, m.Put(NewInt(3), nil), &usage)

	assert.True(t, m.Remove(NewString("a")))
	assert.False(t, m.Remove(NewString("a")))
	assert.False(t, m.Remove(nil))

	entries := m.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, IntType, entries[0].Key.Type())
	assert.Equal(t, BoolType, entries[1].Key.Type())

	// Indexes are rebuilt after a removal.
	v, ok = m.Get(NewBool(true))
	require.True(t, ok)
	assert.Equal(t, StringArrayType, v.Type())
}

func TestMapContainerKeys(t *testing.T) {
	k1 := NewCompound()
	require.NoError(t, k1.PutInt("x", 1))
	require.NoError(t, k1.PutInt("y", 2))

	k2 := NewCompound()
	require.NoError(t, k2.PutInt("y", 2))
	require.NoError(t, k2.PutInt("x", 1))

	m := NewMap()
	require.NoError(t, m.Add(k1, NewString("point")))
	assert.Error(t, m.Add(k2, NewString("again")))

	v, ok := m.Get(k2)
	require.True(t, ok)
	assert.Equal(t, "point", v.(*StringTag).Get())
}

func TestMapSet(t *testing.T) {
	m := NewMap()
	require.NoError(t, m.Put(NewInt(1), NewInt(1)))

	err := m.Set([]MapEntry{
		{NewInt(2), NewInt(2)},
		{NewInt(2), NewInt(3)},
	})
	assert.Error(t, err)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Set([]MapEntry{{NewInt(2), NewInt(2)}, {NewInt(3), NewInt(3)}}))
	assert.Equal(t, 2, m.Len())
	_, ok := m.Get(NewInt(1))
	assert.False(t, ok)
}

func TestTypedNilTags(t *testing.T) {
	var usage *UsageError

	c := NewCompound()
	require.ErrorAs(t, c.Put("a", (*IntTag)(nil)), &usage)
	require.ErrorAs(t, c.Add("a", (*CompoundTag)(nil)), &usage)
	require.ErrorAs(t, c.Set(map[string]Tag{"a": (*StringTag)(nil)}), &usage)
	assert.Equal(t, 0, c.Len())

	l := &ListTag{}
	require.ErrorAs(t, l.Add((*IntTag)(nil)), &usage)
	assert.Equal(t, NoType, l.ElemType())
	_, err := NewList(NewInt(1), (*IntTag)(nil))
	require.ErrorAs(t, err, &usage)

	m := NewMap()
	require.ErrorAs(t, m.Put((*IntTag)(nil), NewInt(1)), &usage)
	require.ErrorAs(t, m.Put(NewInt(1), (*IntTag)(nil)), &usage)
	assert.Equal(t, 0, m.Len())

	_, ok := m.Get((*IntTag)(nil))
	assert.False(t, ok)
	assert.False(t, m.Remove((*IntTag)(nil)))
}
