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
	"fmt"
	"sort"
)

// A ListTag is an ordered sequence of tags that all share the same Type. The
// element type is fixed by the first tag added and released again when the
// list becomes empty.
type ListTag struct {
	elemType Type
	elems    []Tag
}

// NewList returns a ListTag holding elems, which must all share the same Type.
func NewList(elems ...Tag) (*ListTag, error) {
	l := &ListTag{}
	if err := l.SetAll(elems); err != nil {
		return nil, err
	}
	return l, nil
}

// Type returns ListType.
func (l *ListTag) Type() Type { return ListType }

func (l *ListTag) String() string { return textString(l) }
func (l *ListTag) isTag()         {}

// ElemType returns the type every element shares, or NoType if the list is empty.
func (l *ListTag) ElemType() Type {
	if len(l.elems) == 0 {
		return NoType
	}
	return l.elemType
}

// Len returns the number of elements.
func (l *ListTag) Len() int {
	return len(l.elems)
}

// At returns the element at index i. It panics if i is out of range.
func (l *ListTag) At(i int) Tag {
	return l.elems[i]
}

// Elems returns a copy of the elements.
func (l *ListTag) Elems() []Tag {
	out := make([]Tag, len(l.elems))
	copy(out, l.elems)
	return out
}

// Add appends t.
func (l *ListTag) Add(t Tag) error {
	return l.Insert(len(l.elems), t)
}

// Insert inserts t before index i; i may equal Len to append.
func (l *ListTag) Insert(i int, t Tag) error {
	if err := l.accept("ListTag.Insert", t); err != nil {
		return err
	}
	if i < 0 || i > len(l.elems) {
		return &UsageError{"ListTag.Insert", fmt.Sprintf("index %d out of range [0:%d]", i, len(l.elems))}
	}
	l.elems = append(l.elems, nil)
	copy(l.elems[i+1:], l.elems[i:])
	l.elems[i] = t
	l.elemType = t.Type()
	return nil
}

// Set replaces the element at index i.
func (l *ListTag) Set(i int, t Tag) error {
	if err := l.accept("ListTag.Set", t); err != nil {
		return err
	}
	if i < 0 || i >= len(l.elems) {
		return &UsageError{"ListTag.Set", fmt.Sprintf("index %d out of range [0:%d]", i, len(l.elems))}
	}
	l.elems[i] = t
	return nil
}

// Remove removes the element at index i. Removing the last element releases the
// element type.
func (l *ListTag) Remove(i int) error {
	if i < 0 || i >= len(l.elems) {
		return &UsageError{"ListTag.Remove", fmt.Sprintf("index %d out of range [0:%d]", i, len(l.elems))}
	}
	copy(l.elems[i:], l.elems[i+1:])
	l.elems[len(l.elems)-1] = nil
	l.elems = l.elems[:len(l.elems)-1]
	if len(l.elems) == 0 {
		l.elemType = NoType
	}
	return nil
}

// Clear removes all elements and releases the element type.
func (l *ListTag) Clear() {
	l.elems = nil
	l.elemType = NoType
}

// SetAll replaces the contents of the list with elems. On error the list is
// left unchanged.
func (l *ListTag) SetAll(elems []Tag) error {
	t := NoType
	for i, e := range elems {
		if isNil(e) {
			return &UsageError{"ListTag.SetAll", fmt.Sprintf("nil element at index %d", i)}
		}
		if t == NoType {
			t = e.Type()
		} else if e.Type() != t {
			return &UsageError{"ListTag.SetAll", fmt.Sprintf("element %d is a %v, list holds %v", i, e.Type(), t)}
		}
	}
	l.elems = make([]Tag, len(elems))
	copy(l.elems, elems)
	l.elemType = t
	return nil
}

func (l *ListTag) accept(api string, t Tag) error {
	if isNil(t) {
		return &UsageError{api, "nil tag"}
	}
	if len(l.elems) > 0 && t.Type() != l.elemType {
		return &UsageError{api, fmt.Sprintf("list only supports %v tags, got %v", l.elemType, t.Type())}
	}
	return nil
}

// A CompoundTag maps string keys to tags. Entry order is not significant.
type CompoundTag struct {
	entries map[string]Tag
}

// NewCompound returns an empty CompoundTag.
func NewCompound() *CompoundTag {
	return &CompoundTag{entries: map[string]Tag{}}
}

// Type returns CompoundType.
func (c *CompoundTag) Type() Type { return CompoundType }

func (c *CompoundTag) String() string { return textString(c) }
func (c *CompoundTag) isTag()         {}

// Len returns the number of entries.
func (c *CompoundTag) Len() int {
	return len(c.entries)
}

// Keys returns the keys in sorted order.
func (c *CompoundTag) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the tag stored under key.
func (c *CompoundTag) Get(key string) (Tag, bool) {
	t, ok := c.entries[key]
	return t, ok
}

// Has reports whether key is present.
func (c *CompoundTag) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Put stores t under key, replacing any previous entry.
func (c *CompoundTag) Put(key string, t Tag) error {
	if err := checkEntry("CompoundTag.Put", key, t); err != nil {
		return err
	}
	c.lazyInit()
	c.entries[key] = t
	return nil
}

// Add stores t under key, failing if key is already present.
func (c *CompoundTag) Add(key string, t Tag) error {
	if err := checkEntry("CompoundTag.Add", key, t); err != nil {
		return err
	}
	if _, ok := c.entries[key]; ok {
		return &UsageError{"CompoundTag.Add", fmt.Sprintf("duplicate key %q", key)}
	}
	c.lazyInit()
	c.entries[key] = t
	return nil
}

// Remove deletes the entry under key, reporting whether it was present.
func (c *CompoundTag) Remove(key string) bool {
	_, ok := c.entries[key]
	delete(c.entries, key)
	return ok
}

// Map returns a copy of the entries.
func (c *CompoundTag) Map() map[string]Tag {
	out := make(map[string]Tag, len(c.entries))
	for k, v := range c.entries {
		out[k] = v
	}
	return out
}

// Set replaces all entries with those in m. On error the compound is left unchanged.
func (c *CompoundTag) Set(m map[string]Tag) error {
	entries := make(map[string]Tag, len(m))
	for k, v := range m {
		if err := checkEntry("CompoundTag.Set", k, v); err != nil {
			return err
		}
		entries[k] = v
	}
	c.entries = entries
	return nil
}

func (c *CompoundTag) lazyInit() {
	if c.entries == nil {
		c.entries = map[string]Tag{}
	}
}

func checkEntry(api, key string, t Tag) error {
	if key == "" {
		return &UsageError{api, "empty key"}
	}
	if isNil(t) {
		return &UsageError{api, fmt.Sprintf("nil tag for key %q", key)}
	}
	return nil
}

// A MapEntry is a single key/value pair of a MapTag.
type MapEntry struct {
	Key   Tag
	Value Tag
}

// A MapTag maps tags to tags; both keys and values may be of any type and may
// vary from entry to entry. Keys are compared with Equal. Mutating a tag after
// using it as a key leaves the map unable to find it.
type MapTag struct {
	entries []MapEntry
	index   map[uint64][]int
}

// NewMap returns an empty MapTag.
func NewMap() *MapTag {
	return &MapTag{index: map[uint64][]int{}}
}

// Type returns MapType.
func (m *MapTag) Type() Type { return MapType }

func (m *MapTag) String() string { return textString(m) }
func (m *MapTag) isTag()         {}

// Len returns the number of entries.
func (m *MapTag) Len() int {
	return len(m.entries)
}

// Entries returns a copy of the entries in insertion order.
func (m *MapTag) Entries() []MapEntry {
	out := make([]MapEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Get returns the value stored under a key Equal to key.
func (m *MapTag) Get(key Tag) (Tag, bool) {
	if isNil(key) {
		return nil, false
	}
	if i := m.find(key); i >= 0 {
		return m.entries[i].Value, true
	}
	return nil, false
}

// Put stores value under key, replacing the value of an existing Equal key.
func (m *MapTag) Put(key, value Tag) error {
	if err := checkMapEntry("MapTag.Put", key, value); err != nil {
		return err
	}
	if i := m.find(key); i >= 0 {
		m.entries[i].Value = value
		return nil
	}
	m.insert(key, value)
	return nil
}

// Add stores value under key, failing if an Equal key is already present.
func (m *MapTag) Add(key, value Tag) error {
	if err := checkMapEntry("MapTag.Add", key, value); err != nil {
		return err
	}
	if m.find(key) >= 0 {
		return &UsageError{"MapTag.Add", fmt.Sprintf("duplicate key %v", key)}
	}
	m.insert(key, value)
	return nil
}

// Remove deletes the entry under a key Equal to key, reporting whether it was present.
func (m *MapTag) Remove(key Tag) bool {
	if isNil(key) {
		return false
	}
	i := m.find(key)
	if i < 0 {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.reindex()
	return true
}

// Set replaces all entries. Keys must be unique. On error the map is left unchanged.
func (m *MapTag) Set(entries []MapEntry) error {
	staged := NewMap()
	for _, e := range entries {
		if err := staged.Add(e.Key, e.Value); err != nil {
			return &UsageError{"MapTag.Set", err.(*UsageError).Msg}
		}
	}
	m.entries, m.index = staged.entries, staged.index
	return nil
}

func (m *MapTag) find(key Tag) int {
	for _, i := range m.index[Hash(key)] {
		if Equal(m.entries[i].Key, key) {
			return i
		}
	}
	return -1
}

func (m *MapTag) insert(key, value Tag) {
	if m.index == nil {
		m.index = map[uint64][]int{}
	}
	h := Hash(key)
	m.index[h] = append(m.index[h], len(m.entries))
	m.entries = append(m.entries, MapEntry{Key: key, Value: value})
}

func (m *MapTag) reindex() {
	m.index = make(map[uint64][]int, len(m.entries))
	for i, e := range m.entries {
		h := Hash(e.Key)
		m.index[h] = append(m.index[h], i)
	}
}

func checkMapEntry(api string, key, value Tag) error {
	if isNil(key) {
		return &UsageError{api, "a nil key isn't supported"}
	}
	if isNil(value) {
		return &UsageError{api, "a nil value isn't supported"}
	}
	return nil
}
