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
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// A Tag is a node in a document tree. The set of implementations is closed:
// every Type has exactly one pointer type implementing Tag, and code that
// switches over a Tag's concrete type can rely on that.
type Tag interface {
	// Type returns the concrete kind of the tag.
	Type() Type

	// String returns a human-readable rendering of the tag.
	String() string

	isTag()
}

var (
	_ Tag = &BoolTag{}
	_ Tag = &ByteTag{}
	_ Tag = &ShortTag{}
	_ Tag = &IntTag{}
	_ Tag = &LongTag{}
	_ Tag = &FloatTag{}
	_ Tag = &DoubleTag{}
	_ Tag = &CharTag{}
	_ Tag = &StringTag{}
	_ Tag = &BoolArrayTag{}
	_ Tag = &ByteArrayTag{}
	_ Tag = &ShortArrayTag{}
	_ Tag = &IntArrayTag{}
	_ Tag = &LongArrayTag{}
	_ Tag = &FloatArrayTag{}
	_ Tag = &DoubleArrayTag{}
	_ Tag = &CharArrayTag{}
	_ Tag = &StringArrayTag{}
	_ Tag = &CompoundArrayTag{}
	_ Tag = &MapArrayTag{}
	_ Tag = &ListTag{}
	_ Tag = &CompoundTag{}
	_ Tag = &MapTag{}
)

// isNil reports whether t is nil or a nil pointer of one of the tag types.
func isNil(t Tag) bool {
	return t == nil || reflect.ValueOf(t).IsNil()
}

// Equal reports whether a and b are the same kind of tag holding equal values.
// Containers are compared deeply; floating-point values are compared by their
// bit patterns, so a NaN equals an identical NaN.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch av := a.(type) {
	case *BoolTag:
		return av.value == b.(*BoolTag).value
	case *ByteTag:
		return av.value == b.(*ByteTag).value
	case *ShortTag:
		return av.value == b.(*ShortTag).value
	case *IntTag:
		return av.value == b.(*IntTag).value
	case *LongTag:
		return av.value == b.(*LongTag).value
	case *FloatTag:
		return math.Float32bits(av.value) == math.Float32bits(b.(*FloatTag).value)
	case *DoubleTag:
		return math.Float64bits(av.value) == math.Float64bits(b.(*DoubleTag).value)
	case *CharTag:
		return av.value == b.(*CharTag).value
	case *StringTag:
		return av.value == b.(*StringTag).value

	case *BoolArrayTag:
		return av.equal(&b.(*BoolArrayTag).array, eqComparable[bool])
	case *ByteArrayTag:
		return av.equal(&b.(*ByteArrayTag).array, eqComparable[byte])
	case *ShortArrayTag:
		return av.equal(&b.(*ShortArrayTag).array, eqComparable[int16])
	case *IntArrayTag:
		return av.equal(&b.(*IntArrayTag).array, eqComparable[int32])
	case *LongArrayTag:
		return av.equal(&b.(*LongArrayTag).array, eqComparable[int64])
	case *FloatArrayTag:
		return av.equal(&b.(*FloatArrayTag).array, func(x, y float32) bool {
			return math.Float32bits(x) == math.Float32bits(y)
		})
	case *DoubleArrayTag:
		return av.equal(&b.(*DoubleArrayTag).array, func(x, y float64) bool {
			return math.Float64bits(x) == math.Float64bits(y)
		})
	case *CharArrayTag:
		return av.equal(&b.(*CharArrayTag).array, eqComparable[rune])
	case *StringArrayTag:
		return av.equal(&b.(*StringArrayTag).array, eqComparable[string])
	case *CompoundArrayTag:
		return av.equal(&b.(*CompoundArrayTag).array, func(x, y *CompoundTag) bool {
			return Equal(x, y)
		})
	case *MapArrayTag:
		return av.equal(&b.(*MapArrayTag).array, func(x, y *MapTag) bool {
			return Equal(x, y)
		})

	case *ListTag:
		bv := b.(*ListTag)
		if len(av.elems) != len(bv.elems) {
			return false
		}
		for i := range av.elems {
			if !Equal(av.elems[i], bv.elems[i]) {
				return false
			}
		}
		return true

	case *CompoundTag:
		bv := b.(*CompoundTag)
		if len(av.entries) != len(bv.entries) {
			return false
		}
		for k, v := range av.entries {
			if !Equal(v, bv.entries[k]) {
				return false
			}
		}
		return true

	case *MapTag:
		bv := b.(*MapTag)
		if av.Len() != bv.Len() {
			return false
		}
		for _, e := range av.entries {
			other, ok := bv.Get(e.Key)
			if !ok || !Equal(e.Value, other) {
				return false
			}
		}
		return true
	}

	return false
}

func eqComparable[T comparable](x, y T) bool {
	return x == y
}

// Hash returns a hash of t's value that is consistent with Equal: tags that are
// Equal hash identically. MapTag uses it to index its keys.
func Hash(t Tag) uint64 {
	d := xxhash.New()
	hashTag(d, t)
	return d.Sum64()
}

func hashTag(d *xxhash.Digest, t Tag) {
	var buf [9]byte
	buf[0] = byte(t.Type())

	put := func(v uint64) {
		binary.BigEndian.PutUint64(buf[1:], v)
		_, _ = d.Write(buf[:])
	}

	switch v := t.(type) {
	case *BoolTag:
		put(boolBits(v.value))
	case *ByteTag:
		put(uint64(v.value))
	case *ShortTag:
		put(uint64(v.value))
	case *IntTag:
		put(uint64(v.value))
	case *LongTag:
		put(uint64(v.value))
	case *FloatTag:
		put(uint64(math.Float32bits(v.value)))
	case *DoubleTag:
		put(math.Float64bits(v.value))
	case *CharTag:
		put(uint64(v.value))
	case *StringTag:
		put(uint64(len(v.value)))
		_, _ = d.WriteString(v.value)

	case *BoolArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(boolBits(x))
		}
	case *ByteArrayTag:
		put(uint64(v.Len()))
		_, _ = d.Write(v.values)
	case *ShortArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(uint64(x))
		}
	case *IntArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(uint64(x))
		}
	case *LongArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(uint64(x))
		}
	case *FloatArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(uint64(math.Float32bits(x)))
		}
	case *DoubleArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(math.Float64bits(x))
		}
	case *CharArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(uint64(x))
		}
	case *StringArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			put(uint64(len(x)))
			_, _ = d.WriteString(x)
		}
	case *CompoundArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			hashTag(d, x)
		}
	case *MapArrayTag:
		put(uint64(v.Len()))
		for _, x := range v.values {
			hashTag(d, x)
		}

	case *ListTag:
		put(uint64(len(v.elems)))
		for _, e := range v.elems {
			hashTag(d, e)
		}

	case *CompoundTag, *MapTag:
		// Entry order is not part of the value, so combine the per-entry
		// hashes with an order-independent sum.
		var sum uint64
		n := 0
		if c, ok := v.(*CompoundTag); ok {
			for k, e := range c.entries {
				sum += entryHash(NewString(k), e)
			}
			n = len(c.entries)
		} else {
			m := v.(*MapTag)
			for _, e := range m.entries {
				sum += entryHash(e.Key, e.Value)
			}
			n = len(m.entries)
		}
		put(uint64(n))
		put(sum)
	}
}

func entryHash(k, v Tag) uint64 {
	d := xxhash.New()
	hashTag(d, k)
	hashTag(d, v)
	return d.Sum64()
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Clone returns a deep copy of t.
func Clone(t Tag) Tag {
	switch v := t.(type) {
	case nil:
		return nil
	case *BoolTag:
		return NewBool(v.value)
	case *ByteTag:
		return NewByte(v.value)
	case *ShortTag:
		return NewShort(v.value)
	case *IntTag:
		return NewInt(v.value)
	case *LongTag:
		return NewLong(v.value)
	case *FloatTag:
		return NewFloat(v.value)
	case *DoubleTag:
		return NewDouble(v.value)
	case *CharTag:
		return NewChar(v.value)
	case *StringTag:
		return NewString(v.value)
	case *BoolArrayTag:
		return NewBoolArray(v.values...)
	case *ByteArrayTag:
		return NewByteArray(v.values...)
	case *ShortArrayTag:
		return NewShortArray(v.values...)
	case *IntArrayTag:
		return NewIntArray(v.values...)
	case *LongArrayTag:
		return NewLongArray(v.values...)
	case *FloatArrayTag:
		return NewFloatArray(v.values...)
	case *DoubleArrayTag:
		return NewDoubleArray(v.values...)
	case *CharArrayTag:
		return NewCharArray(v.values...)
	case *StringArrayTag:
		return NewStringArray(v.values...)
	case *CompoundArrayTag:
		out := &CompoundArrayTag{}
		out.values = make([]*CompoundTag, len(v.values))
		for i, c := range v.values {
			out.values[i] = Clone(c).(*CompoundTag)
		}
		return out
	case *MapArrayTag:
		out := &MapArrayTag{}
		out.values = make([]*MapTag, len(v.values))
		for i, m := range v.values {
			out.values[i] = Clone(m).(*MapTag)
		}
		return out
	case *ListTag:
		out := &ListTag{elemType: v.elemType, elems: make([]Tag, len(v.elems))}
		for i, e := range v.elems {
			out.elems[i] = Clone(e)
		}
		return out
	case *CompoundTag:
		out := NewCompound()
		for k, e := range v.entries {
			out.entries[k] = Clone(e)
		}
		return out
	case *MapTag:
		out := NewMap()
		for _, e := range v.entries {
			out.insert(Clone(e.Key), Clone(e.Value))
		}
		return out
	default:
		panic("nbt: unknown tag implementation")
	}
}
