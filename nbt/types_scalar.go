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

// A BoolTag holds a boolean. It is written as a byte of 0 or 1.
type BoolTag struct {
	value bool
}

// NewBool returns a BoolTag holding v.
func NewBool(v bool) *BoolTag {
	return &BoolTag{value: v}
}

// Get returns the value.
func (t *BoolTag) Get() bool { return t.value }

// Set replaces the value.
func (t *BoolTag) Set(v bool) { t.value = v }

// Type returns BoolType.
func (t *BoolTag) Type() Type { return BoolType }

func (t *BoolTag) String() string { return textString(t) }
func (t *BoolTag) isTag()         {}

// A ByteTag holds a signed 8-bit integer.
type ByteTag struct {
	value int8
}

// NewByte returns a ByteTag holding v.
func NewByte(v int8) *ByteTag {
	return &ByteTag{value: v}
}

// Get returns the value.
func (t *ByteTag) Get() int8 { return t.value }

// Set replaces the value.
func (t *ByteTag) Set(v int8) { t.value = v }

// Type returns ByteType.
func (t *ByteTag) Type() Type { return ByteType }

func (t *ByteTag) String() string { return textString(t) }
func (t *ByteTag) isTag()         {}

// A ShortTag holds a signed 16-bit integer.
type ShortTag struct {
	value int16
}

// NewShort returns a ShortTag holding v.
func NewShort(v int16) *ShortTag {
	return &ShortTag{value: v}
}

// Get returns the value.
func (t *ShortTag) Get() int16 { return t.value }

// Set replaces the value.
func (t *ShortTag) Set(v int16) { t.value = v }

// Type returns ShortType.
func (t *ShortTag) Type() Type { return ShortType }

func (t *ShortTag) String() string { return textString(t) }
func (t *ShortTag) isTag()         {}

// An IntTag holds a signed 32-bit integer.
type IntTag struct {
	value int32
}

// NewInt returns an IntTag holding v.
func NewInt(v int32) *IntTag {
	return &IntTag{value: v}
}

// Get returns the value.
func (t *IntTag) Get() int32 { return t.value }

// Set replaces the value.
func (t *IntTag) Set(v int32) { t.value = v }

// Type returns IntType.
func (t *IntTag) Type() Type { return IntType }

func (t *IntTag) String() string { return textString(t) }
func (t *IntTag) isTag()         {}

// A LongTag holds a signed 64-bit integer.
type LongTag struct {
	value int64
}

// NewLong returns a LongTag holding v.
func NewLong(v int64) *LongTag {
	return &LongTag{value: v}
}

// Get returns the value.
func (t *LongTag) Get() int64 { return t.value }

// Set replaces the value.
func (t *LongTag) Set(v int64) { t.value = v }

// Type returns LongType.
func (t *LongTag) Type() Type { return LongType }

func (t *LongTag) String() string { return textString(t) }
func (t *LongTag) isTag()         {}

// A FloatTag holds a single-precision floating-point value.
type FloatTag struct {
	value float32
}

// NewFloat returns a FloatTag holding v.
func NewFloat(v float32) *FloatTag {
	return &FloatTag{value: v}
}

// Get returns the value.
func (t *FloatTag) Get() float32 { return t.value }

// Set replaces the value.
func (t *FloatTag) Set(v float32) { t.value = v }

// Type returns FloatType.
func (t *FloatTag) Type() Type { return FloatType }

func (t *FloatTag) String() string { return textString(t) }
func (t *FloatTag) isTag()         {}

// A DoubleTag holds a double-precision floating-point value.
type DoubleTag struct {
	value float64
}

// NewDouble returns a DoubleTag holding v.
func NewDouble(v float64) *DoubleTag {
	return &DoubleTag{value: v}
}

// Get returns the value.
func (t *DoubleTag) Get() float64 { return t.value }

// Set replaces the value.
func (t *DoubleTag) Set(v float64) { t.value = v }

// Type returns DoubleType.
func (t *DoubleTag) Type() Type { return DoubleType }

func (t *DoubleTag) String() string { return textString(t) }
func (t *DoubleTag) isTag()         {}

// A CharTag holds a single Unicode code point. It is written as a one
// character string.
type CharTag struct {
	value rune
}

// NewChar returns a CharTag holding v.
func NewChar(v rune) *CharTag {
	return &CharTag{value: v}
}

// Get returns the value.
func (t *CharTag) Get() rune { return t.value }

// Set replaces the value.
func (t *CharTag) Set(v rune) { t.value = v }

// Type returns CharType.
func (t *CharTag) Type() Type { return CharType }

func (t *CharTag) String() string { return textString(t) }
func (t *CharTag) isTag()         {}

// A StringTag holds a string.
type StringTag struct {
	value string
}

// NewString returns a StringTag holding v.
func NewString(v string) *StringTag {
	return &StringTag{value: v}
}

// Get returns the value.
func (t *StringTag) Get() string { return t.value }

// Set replaces the value.
func (t *StringTag) Set(v string) { t.value = v }

// Type returns StringType.
func (t *StringTag) Type() Type { return StringType }

func (t *StringTag) String() string { return textString(t) }
func (t *StringTag) isTag()         {}
