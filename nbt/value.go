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

// FromValue converts a plain Go value to a Tag.
//
//	bool, int8, int16, int32, int64, float32, float64, string  -> scalar tags
//	[]bool, []byte, []int16, []int32, []int64,
//	[]float32, []float64, []string                              -> array tags
//	[]*CompoundTag, []*MapTag                                   -> compound/map arrays
//	map[string]interface{}                                      -> CompoundTag
//	map[interface{}]interface{}                                 -> MapTag
//	[]interface{}                                               -> ListTag
//
// A Tag is returned unchanged. Runes are int32 in Go and therefore become
// IntTags; build a CharTag with NewChar.
func FromValue(v interface{}) (Tag, error) {
	switch v := v.(type) {
	case Tag:
		return v, nil
	case bool:
		return NewBool(v), nil
	case int8:
		return NewByte(v), nil
	case int16:
		return NewShort(v), nil
	case int32:
		return NewInt(v), nil
	case int64:
		return NewLong(v), nil
	case float32:
		return NewFloat(v), nil
	case float64:
		return NewDouble(v), nil
	case string:
		return NewString(v), nil
	case []bool:
		return NewBoolArray(v...), nil
	case []byte:
		return NewByteArray(v...), nil
	case []int16:
		return NewShortArray(v...), nil
	case []int32:
		return NewIntArray(v...), nil
	case []int64:
		return NewLongArray(v...), nil
	case []float32:
		return NewFloatArray(v...), nil
	case []float64:
		return NewDoubleArray(v...), nil
	case []string:
		return NewStringArray(v...), nil
	case []*CompoundTag:
		return NewCompoundArray(v...)
	case []*MapTag:
		return NewMapArray(v...)

	case map[string]interface{}:
		c := NewCompound()
		for k, e := range v {
			t, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			if err := c.Put(k, t); err != nil {
				return nil, err
			}
		}
		return c, nil

	case map[interface{}]interface{}:
		m := NewMap()
		for k, e := range v {
			kt, err := FromValue(k)
			if err != nil {
				return nil, err
			}
			vt, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			if err := m.Put(kt, vt); err != nil {
				return nil, err
			}
		}
		return m, nil

	case []interface{}:
		l := &ListTag{}
		for _, e := range v {
			t, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			if err := l.Add(t); err != nil {
				return nil, err
			}
		}
		return l, nil
	}

	return nil, &UsageError{"FromValue", fmt.Sprintf("unsupported value type %T", v)}
}

// ToValue converts a Tag to a plain Go value. Scalars and arrays become their
// underlying Go values (arrays are copied), a CharTag becomes a rune, a
// CompoundTag a map[string]interface{}, a ListTag an []interface{} and a
// MapTag an ordered []MapEntry, since tag keys are not comparable Go values.
// CompoundArrayTag and MapArrayTag become []interface{} of converted elements.
func ToValue(t Tag) interface{} {
	switch t := t.(type) {
	case *BoolTag:
		return t.value
	case *ByteTag:
		return t.value
	case *ShortTag:
		return t.value
	case *IntTag:
		return t.value
	case *LongTag:
		return t.value
	case *FloatTag:
		return t.value
	case *DoubleTag:
		return t.value
	case *CharTag:
		return t.value
	case *StringTag:
		return t.value
	case *BoolArrayTag:
		return newArray(t.values).values
	case *ByteArrayTag:
		return newArray(t.values).values
	case *ShortArrayTag:
		return newArray(t.values).values
	case *IntArrayTag:
		return newArray(t.values).values
	case *LongArrayTag:
		return newArray(t.values).values
	case *FloatArrayTag:
		return newArray(t.values).values
	case *DoubleArrayTag:
		return newArray(t.values).values
	case *CharArrayTag:
		return newArray(t.values).values
	case *StringArrayTag:
		return newArray(t.values).values
	case *CompoundArrayTag:
		out := make([]interface{}, len(t.values))
		for i, c := range t.values {
			out[i] = ToValue(c)
		}
		return out
	case *MapArrayTag:
		out := make([]interface{}, len(t.values))
		for i, m := range t.values {
			out[i] = ToValue(m)
		}
		return out
	case *ListTag:
		out := make([]interface{}, len(t.elems))
		for i, e := range t.elems {
			out[i] = ToValue(e)
		}
		return out
	case *CompoundTag:
		out := make(map[string]interface{}, len(t.entries))
		for k, e := range t.entries {
			out[k] = ToValue(e)
		}
		return out
	case *MapTag:
		return t.Entries()
	default:
		return nil
	}
}
