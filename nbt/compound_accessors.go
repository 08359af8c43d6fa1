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

import "math"

// The numeric accessors read any numeric tag and convert it to the requested
// width: integers are truncated or sign-extended, floating-point values are
// truncated toward zero and clamped to the target range (NaN becomes zero).
// They return def when the key is absent or holds a non-numeric tag. The
// Lookup variants report that case with false instead.

// GetBool returns the value of the BoolTag under key, or def.
func (c *CompoundTag) GetBool(key string, def bool) bool {
	if t, ok := c.entries[key].(*BoolTag); ok {
		return t.value
	}
	return def
}

// GetChar returns the value of the CharTag under key, or def.
func (c *CompoundTag) GetChar(key string, def rune) rune {
	if t, ok := c.entries[key].(*CharTag); ok {
		return t.value
	}
	return def
}

// GetString returns the value of the StringTag under key, or def.
func (c *CompoundTag) GetString(key string, def string) string {
	if t, ok := c.entries[key].(*StringTag); ok {
		return t.value
	}
	return def
}

// GetByte returns the numeric tag under key narrowed to an int8, or def.
func (c *CompoundTag) GetByte(key string, def int8) int8 {
	if v, ok := intValue(c.entries[key]); ok {
		return int8(v)
	}
	return def
}

// GetShort returns the numeric tag under key narrowed to an int16, or def.
func (c *CompoundTag) GetShort(key string, def int16) int16 {
	if v, ok := intValue(c.entries[key]); ok {
		return int16(v)
	}
	return def
}

// GetInt returns the numeric tag under key converted to an int32, or def.
func (c *CompoundTag) GetInt(key string, def int32) int32 {
	if v, ok := intValue(c.entries[key]); ok {
		return v
	}
	return def
}

// GetLong returns the numeric tag under key converted to an int64, or def.
func (c *CompoundTag) GetLong(key string, def int64) int64 {
	if v, ok := longValue(c.entries[key]); ok {
		return v
	}
	return def
}

// GetFloat returns the numeric tag under key converted to a float32, or def.
func (c *CompoundTag) GetFloat(key string, def float32) float32 {
	if v, ok := floatValue(c.entries[key]); ok {
		return float32(v)
	}
	return def
}

// GetDouble returns the numeric tag under key converted to a float64, or def.
func (c *CompoundTag) GetDouble(key string, def float64) float64 {
	if v, ok := floatValue(c.entries[key]); ok {
		return v
	}
	return def
}

// LookupBool returns the value of the BoolTag under key.
func (c *CompoundTag) LookupBool(key string) (bool, bool) {
	t, ok := c.entries[key].(*BoolTag)
	if !ok {
		return false, false
	}
	return t.value, true
}

// LookupChar returns the value of the CharTag under key.
func (c *CompoundTag) LookupChar(key string) (rune, bool) {
	t, ok := c.entries[key].(*CharTag)
	if !ok {
		return 0, false
	}
	return t.value, true
}

// LookupByte returns the numeric tag under key narrowed to an int8.
func (c *CompoundTag) LookupByte(key string) (int8, bool) {
	v, ok := intValue(c.entries[key])
	return int8(v), ok
}

// LookupShort returns the numeric tag under key narrowed to an int16.
func (c *CompoundTag) LookupShort(key string) (int16, bool) {
	v, ok := intValue(c.entries[key])
	return int16(v), ok
}

// LookupInt returns the numeric tag under key converted to an int32.
func (c *CompoundTag) LookupInt(key string) (int32, bool) {
	return intValue(c.entries[key])
}

// LookupLong returns the numeric tag under key converted to an int64.
func (c *CompoundTag) LookupLong(key string) (int64, bool) {
	return longValue(c.entries[key])
}

// LookupFloat returns the numeric tag under key converted to a float32.
func (c *CompoundTag) LookupFloat(key string) (float32, bool) {
	v, ok := floatValue(c.entries[key])
	return float32(v), ok
}

// LookupDouble returns the numeric tag under key converted to a float64.
func (c *CompoundTag) LookupDouble(key string) (float64, bool) {
	return floatValue(c.entries[key])
}

// GetCompound returns the CompoundTag under key.
func (c *CompoundTag) GetCompound(key string) (*CompoundTag, bool) {
	t, ok := c.entries[key].(*CompoundTag)
	return t, ok
}

// GetList returns the ListTag under key.
func (c *CompoundTag) GetList(key string) (*ListTag, bool) {
	t, ok := c.entries[key].(*ListTag)
	return t, ok
}

// GetMap returns the MapTag under key.
func (c *CompoundTag) GetMap(key string) (*MapTag, bool) {
	t, ok := c.entries[key].(*MapTag)
	return t, ok
}

// GetValue returns the plain Go value of the tag under key, as ToValue would.
func (c *CompoundTag) GetValue(key string) (interface{}, bool) {
	t, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return ToValue(t), true
}

// PutBool stores a BoolTag under key.
func (c *CompoundTag) PutBool(key string, v bool) error { return c.Put(key, NewBool(v)) }

// PutChar stores a CharTag under key.
func (c *CompoundTag) PutChar(key string, v rune) error { return c.Put(key, NewChar(v)) }

// PutByte stores a ByteTag under key.
func (c *CompoundTag) PutByte(key string, v int8) error { return c.Put(key, NewByte(v)) }

// PutShort stores a ShortTag under key.
func (c *CompoundTag) PutShort(key string, v int16) error { return c.Put(key, NewShort(v)) }

// PutInt stores an IntTag under key.
func (c *CompoundTag) PutInt(key string, v int32) error { return c.Put(key, NewInt(v)) }

// PutLong stores a LongTag under key.
func (c *CompoundTag) PutLong(key string, v int64) error { return c.Put(key, NewLong(v)) }

// PutFloat stores a FloatTag under key.
func (c *CompoundTag) PutFloat(key string, v float32) error { return c.Put(key, NewFloat(v)) }

// PutDouble stores a DoubleTag under key.
func (c *CompoundTag) PutDouble(key string, v float64) error { return c.Put(key, NewDouble(v)) }

// PutString stores a StringTag under key.
func (c *CompoundTag) PutString(key string, v string) error { return c.Put(key, NewString(v)) }

// PutValue converts v with FromValue and stores the result under key.
func (c *CompoundTag) PutValue(key string, v interface{}) error {
	t, err := FromValue(v)
	if err != nil {
		return err
	}
	return c.Put(key, t)
}

// intValue converts a numeric tag to an int32 the way a 32-bit narrowing would.
func intValue(t Tag) (int32, bool) {
	switch t := t.(type) {
	case *ByteTag:
		return int32(t.value), true
	case *ShortTag:
		return int32(t.value), true
	case *IntTag:
		return t.value, true
	case *LongTag:
		return int32(t.value), true
	case *FloatTag:
		return clampInt32(float64(t.value)), true
	case *DoubleTag:
		return clampInt32(t.value), true
	default:
		return 0, false
	}
}

func longValue(t Tag) (int64, bool) {
	switch t := t.(type) {
	case *ByteTag:
		return int64(t.value), true
	case *ShortTag:
		return int64(t.value), true
	case *IntTag:
		return int64(t.value), true
	case *LongTag:
		return t.value, true
	case *FloatTag:
		return clampInt64(float64(t.value)), true
	case *DoubleTag:
		return clampInt64(t.value), true
	default:
		return 0, false
	}
}

func floatValue(t Tag) (float64, bool) {
	switch t := t.(type) {
	case *ByteTag:
		return float64(t.value), true
	case *ShortTag:
		return float64(t.value), true
	case *IntTag:
		return float64(t.value), true
	case *LongTag:
		return float64(t.value), true
	case *FloatTag:
		return float64(t.value), true
	case *DoubleTag:
		return t.value, true
	default:
		return 0, false
	}
}

func clampInt32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(f)
	}
}

func clampInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
