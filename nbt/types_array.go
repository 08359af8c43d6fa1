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

import "fmt"

// An array is the storage shared by all array tags: a single homogeneous slice
// whose length is the reported Len. Inserts and removals reallocate; arrays are
// expected to be read far more often than they are resized.
type array[T any] struct {
	values []T
}

func newArray[T any](values []T) array[T] {
	out := make([]T, len(values))
	copy(out, values)
	return array[T]{values: out}
}

// Len returns the number of elements.
func (a *array[T]) Len() int {
	return len(a.values)
}

// At returns the element at index i. Like indexing a slice, it panics if i is
// out of range.
func (a *array[T]) At(i int) T {
	return a.values[i]
}

// Get returns the backing slice. Changes to its elements are visible to the tag.
func (a *array[T]) Get() []T {
	return a.values
}

// Set replaces all elements with a copy of values.
func (a *array[T]) Set(values []T) {
	a.values = newArray(values).values
}

// SetAt replaces the element at index i.
func (a *array[T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(a.values) {
		return indexError("SetAt", i, len(a.values))
	}
	a.values[i] = v
	return nil
}

// InsertAt inserts v before index i; i may equal Len to append.
func (a *array[T]) InsertAt(i int, v T) error {
	if i < 0 || i > len(a.values) {
		return indexError("InsertAt", i, len(a.values))
	}
	out := make([]T, len(a.values)+1)
	copy(out, a.values[:i])
	out[i] = v
	copy(out[i+1:], a.values[i:])
	a.values = out
	return nil
}

// Add appends v.
func (a *array[T]) Add(v T) {
	_ = a.InsertAt(len(a.values), v)
}

// AddFirst inserts v before the first element.
func (a *array[T]) AddFirst(v T) {
	_ = a.InsertAt(0, v)
}

// RemoveAt removes the element at index i.
func (a *array[T]) RemoveAt(i int) error {
	if i < 0 || i >= len(a.values) {
		return indexError("RemoveAt", i, len(a.values))
	}
	out := make([]T, len(a.values)-1)
	copy(out, a.values[:i])
	copy(out[i:], a.values[i+1:])
	a.values = out
	return nil
}

// Boxed returns a copy of the elements where each element is addressable and
// may be set to nil, for callers that need a nullable view.
func (a *array[T]) Boxed() []*T {
	out := make([]*T, len(a.values))
	for i := range a.values {
		v := a.values[i]
		out[i] = &v
	}
	return out
}

// SetBoxed replaces all elements with the values in boxed, substituting def for
// nil elements.
func (a *array[T]) SetBoxed(boxed []*T, def T) {
	out := make([]T, len(boxed))
	for i, p := range boxed {
		if p == nil {
			out[i] = def
		} else {
			out[i] = *p
		}
	}
	a.values = out
}

func (a *array[T]) equal(b *array[T], eq func(x, y T) bool) bool {
	if len(a.values) != len(b.values) {
		return false
	}
	for i := range a.values {
		if !eq(a.values[i], b.values[i]) {
			return false
		}
	}
	return true
}

func indexError(api string, i, n int) error {
	return &UsageError{"Array." + api, fmt.Sprintf("index %d out of range [0:%d]", i, n)}
}

// A BoolArrayTag holds a sequence of booleans, bit-packed on the wire.
type BoolArrayTag struct{ array[bool] }

// NewBoolArray returns a BoolArrayTag holding a copy of values.
func NewBoolArray(values ...bool) *BoolArrayTag {
	return &BoolArrayTag{newArray(values)}
}

// Type returns BoolArrayType.
func (t *BoolArrayTag) Type() Type { return BoolArrayType }

func (t *BoolArrayTag) String() string { return textString(t) }
func (t *BoolArrayTag) isTag()         {}

// A ByteArrayTag holds a sequence of bytes.
type ByteArrayTag struct{ array[byte] }

// NewByteArray returns a ByteArrayTag holding a copy of values.
func NewByteArray(values ...byte) *ByteArrayTag {
	return &ByteArrayTag{newArray(values)}
}

// Type returns ByteArrayType.
func (t *ByteArrayTag) Type() Type { return ByteArrayType }

func (t *ByteArrayTag) String() string { return textString(t) }
func (t *ByteArrayTag) isTag()         {}

// A ShortArrayTag holds a sequence of signed 16-bit integers.
type ShortArrayTag struct{ array[int16] }

// NewShortArray returns a ShortArrayTag holding a copy of values.
func NewShortArray(values ...int16) *ShortArrayTag {
	return &ShortArrayTag{newArray(values)}
}

// Type returns ShortArrayType.
func (t *ShortArrayTag) Type() Type { return ShortArrayType }

func (t *ShortArrayTag) String() string { return textString(t) }
func (t *ShortArrayTag) isTag()         {}

// An IntArrayTag holds a sequence of signed 32-bit integers.
type IntArrayTag struct{ array[int32] }

// NewIntArray returns an IntArrayTag holding a copy of values.
func NewIntArray(values ...int32) *IntArrayTag {
	return &IntArrayTag{newArray(values)}
}

// Type returns IntArrayType.
func (t *IntArrayTag) Type() Type { return IntArrayType }

func (t *IntArrayTag) String() string { return textString(t) }
func (t *IntArrayTag) isTag()         {}

// A LongArrayTag holds a sequence of signed 64-bit integers.
type LongArrayTag struct{ array[int64] }

// NewLongArray returns a LongArrayTag holding a copy of values.
func NewLongArray(values ...int64) *LongArrayTag {
	return &LongArrayTag{newArray(values)}
}

// Type returns LongArrayType.
func (t *LongArrayTag) Type() Type { return LongArrayType }

func (t *LongArrayTag) String() string { return textString(t) }
func (t *LongArrayTag) isTag()         {}

// A FloatArrayTag holds a sequence of single-precision floats.
type FloatArrayTag struct{ array[float32] }

// NewFloatArray returns a FloatArrayTag holding a copy of values.
func NewFloatArray(values ...float32) *FloatArrayTag {
	return &FloatArrayTag{newArray(values)}
}

// Type returns FloatArrayType.
func (t *FloatArrayTag) Type() Type { return FloatArrayType }

func (t *FloatArrayTag) String() string { return textString(t) }
func (t *FloatArrayTag) isTag()         {}

// A DoubleArrayTag holds a sequence of double-precision floats.
type DoubleArrayTag struct{ array[float64] }

// NewDoubleArray returns a DoubleArrayTag holding a copy of values.
func NewDoubleArray(values ...float64) *DoubleArrayTag {
	return &DoubleArrayTag{newArray(values)}
}

// Type returns DoubleArrayType.
func (t *DoubleArrayTag) Type() Type { return DoubleArrayType }

func (t *DoubleArrayTag) String() string { return textString(t) }
func (t *DoubleArrayTag) isTag()         {}

// A CharArrayTag holds a sequence of code points. It is written as one string.
type CharArrayTag struct{ array[rune] }

// NewCharArray returns a CharArrayTag holding a copy of values.
func NewCharArray(values ...rune) *CharArrayTag {
	return &CharArrayTag{newArray(values)}
}

// Type returns CharArrayType.
func (t *CharArrayTag) Type() Type { return CharArrayType }

func (t *CharArrayTag) String() string { return textString(t) }
func (t *CharArrayTag) isTag()         {}

// A StringArrayTag holds a sequence of strings.
type StringArrayTag struct{ array[string] }

// NewStringArray returns a StringArrayTag holding a copy of values.
func NewStringArray(values ...string) *StringArrayTag {
	return &StringArrayTag{newArray(values)}
}

// Type returns StringArrayType.
func (t *StringArrayTag) Type() Type { return StringArrayType }

func (t *StringArrayTag) String() string { return textString(t) }
func (t *StringArrayTag) isTag()         {}

// A CompoundArrayTag holds a sequence of compounds. Nil elements are rejected.
type CompoundArrayTag struct{ array[*CompoundTag] }

// NewCompoundArray returns a CompoundArrayTag holding the given compounds.
func NewCompoundArray(values ...*CompoundTag) (*CompoundArrayTag, error) {
	if err := checkNonNil("NewCompoundArray", values); err != nil {
		return nil, err
	}
	return &CompoundArrayTag{newArray(values)}, nil
}

// Set replaces all elements with the given compounds.
func (t *CompoundArrayTag) Set(values []*CompoundTag) error {
	if err := checkNonNil("CompoundArrayTag.Set", values); err != nil {
		return err
	}
	t.array.Set(values)
	return nil
}

// SetAt replaces the compound at index i.
func (t *CompoundArrayTag) SetAt(i int, v *CompoundTag) error {
	if v == nil {
		return &UsageError{"CompoundArrayTag.SetAt", "nil compound"}
	}
	return t.array.SetAt(i, v)
}

// InsertAt inserts a compound before index i.
func (t *CompoundArrayTag) InsertAt(i int, v *CompoundTag) error {
	if v == nil {
		return &UsageError{"CompoundArrayTag.InsertAt", "nil compound"}
	}
	return t.array.InsertAt(i, v)
}

// Add appends a compound.
func (t *CompoundArrayTag) Add(v *CompoundTag) error {
	return t.InsertAt(t.Len(), v)
}

// AddFirst inserts a compound before the first element.
func (t *CompoundArrayTag) AddFirst(v *CompoundTag) error {
	return t.InsertAt(0, v)
}

// SetBoxed replaces all elements, substituting def for nil elements.
func (t *CompoundArrayTag) SetBoxed(boxed []**CompoundTag, def *CompoundTag) error {
	return setBoxedNonNil(&t.array, "CompoundArrayTag.SetBoxed", boxed, def)
}

// Type returns CompoundArrayType.
func (t *CompoundArrayTag) Type() Type { return CompoundArrayType }

func (t *CompoundArrayTag) String() string { return textString(t) }
func (t *CompoundArrayTag) isTag()         {}

// A MapArrayTag holds a sequence of maps. Nil elements are rejected.
type MapArrayTag struct{ array[*MapTag] }

// NewMapArray returns a MapArrayTag holding the given maps.
func NewMapArray(values ...*MapTag) (*MapArrayTag, error) {
	if err := checkNonNil("NewMapArray", values); err != nil {
		return nil, err
	}
	return &MapArrayTag{newArray(values)}, nil
}

// Set replaces all elements with the given maps.
func (t *MapArrayTag) Set(values []*MapTag) error {
	if err := checkNonNil("MapArrayTag.Set", values); err != nil {
		return err
	}
	t.array.Set(values)
	return nil
}

// SetAt replaces the map at index i.
func (t *MapArrayTag) SetAt(i int, v *MapTag) error {
	if v == nil {
		return &UsageError{"MapArrayTag.SetAt", "nil map"}
	}
	return t.array.SetAt(i, v)
}

// InsertAt inserts a map before index i.
func (t *MapArrayTag) InsertAt(i int, v *MapTag) error {
	if v == nil {
		return &UsageError{"MapArrayTag.InsertAt", "nil map"}
	}
	return t.array.InsertAt(i, v)
}

// Add appends a map.
func (t *MapArrayTag) Add(v *MapTag) error {
	return t.InsertAt(t.Len(), v)
}

// AddFirst inserts a map before the first element.
func (t *MapArrayTag) AddFirst(v *MapTag) error {
	return t.InsertAt(0, v)
}

// SetBoxed replaces all elements, substituting def for nil elements.
func (t *MapArrayTag) SetBoxed(boxed []**MapTag, def *MapTag) error {
	return setBoxedNonNil(&t.array, "MapArrayTag.SetBoxed", boxed, def)
}

// Type returns MapArrayType.
func (t *MapArrayTag) Type() Type { return MapArrayType }

func (t *MapArrayTag) String() string { return textString(t) }
func (t *MapArrayTag) isTag()         {}

func checkNonNil[T any](api string, values []*T) error {
	for i, v := range values {
		if v == nil {
			return &UsageError{api, fmt.Sprintf("nil element at index %d", i)}
		}
	}
	return nil
}

func setBoxedNonNil[T any](a *array[*T], api string, boxed []**T, def *T) error {
	if def == nil {
		return &UsageError{api, "nil default"}
	}
	var staged array[*T]
	staged.SetBoxed(boxed, def)
	if err := checkNonNil(api, staged.values); err != nil {
		return err
	}
	a.values = staged.values
	return nil
}
