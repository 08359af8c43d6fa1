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

// A Type represents the concrete kind of a Tag.
type Type uint8

const (
	// NoType is the type of nothing. An empty ListTag reports it as its element type.
	NoType Type = iota

	// BoolType is the type of a BoolTag.
	BoolType

	// ByteType is the type of a ByteTag, a signed 8-bit integer.
	ByteType

	// ShortType is the type of a ShortTag, a signed 16-bit integer.
	ShortType

	// IntType is the type of an IntTag, a signed 32-bit integer.
	IntType

	// LongType is the type of a LongTag, a signed 64-bit integer.
	LongType

	// FloatType is the type of a FloatTag, an IEEE 754 single-precision value.
	FloatType

	// DoubleType is the type of a DoubleTag, an IEEE 754 double-precision value.
	DoubleType

	// CharType is the type of a CharTag, a single Unicode code point.
	CharType

	// StringType is the type of a StringTag.
	StringType

	// BoolArrayType is the type of a BoolArrayTag.
	BoolArrayType

	// ByteArrayType is the type of a ByteArrayTag.
	ByteArrayType

	// ShortArrayType is the type of a ShortArrayTag.
	ShortArrayType

	// IntArrayType is the type of an IntArrayTag.
	IntArrayType

	// LongArrayType is the type of a LongArrayTag.
	LongArrayType

	// FloatArrayType is the type of a FloatArrayTag.
	FloatArrayType

	// DoubleArrayType is the type of a DoubleArrayTag.
	DoubleArrayType

	// CharArrayType is the type of a CharArrayTag.
	CharArrayType

	// StringArrayType is the type of a StringArrayTag.
	StringArrayType

	// CompoundArrayType is the type of a CompoundArrayTag.
	CompoundArrayType

	// MapArrayType is the type of a MapArrayTag.
	MapArrayType

	// ListType is the type of a ListTag, an ordered sequence of tags that all
	// share the same Type.
	ListType

	// CompoundType is the type of a CompoundTag, a mapping from string keys to tags.
	CompoundType

	// MapType is the type of a MapTag, a mapping from tags to tags.
	MapType

	numTypes
)

// String implements fmt.Stringer for Type.
func (t Type) String() string {
	switch t {
	case NoType:
		return "<no type>"
	case BoolType:
		return "bool"
	case ByteType:
		return "byte"
	case ShortType:
		return "short"
	case IntType:
		return "int"
	case LongType:
		return "long"
	case FloatType:
		return "float"
	case DoubleType:
		return "double"
	case CharType:
		return "char"
	case StringType:
		return "string"
	case BoolArrayType:
		return "bool[]"
	case ByteArrayType:
		return "byte[]"
	case ShortArrayType:
		return "short[]"
	case IntArrayType:
		return "int[]"
	case LongArrayType:
		return "long[]"
	case FloatArrayType:
		return "float[]"
	case DoubleArrayType:
		return "double[]"
	case CharArrayType:
		return "char[]"
	case StringArrayType:
		return "string[]"
	case CompoundArrayType:
		return "compound[]"
	case MapArrayType:
		return "map[]"
	case ListType:
		return "list"
	case CompoundType:
		return "compound"
	case MapType:
		return "map"
	default:
		return fmt.Sprintf("<unknown type %v>", uint8(t))
	}
}

// IsScalar determines if the type holds exactly one primitive or string value.
func IsScalar(t Type) bool {
	return BoolType <= t && t <= StringType
}

// IsArray determines if the type is one of the array tag types.
func IsArray(t Type) bool {
	return BoolArrayType <= t && t <= MapArrayType
}

// IsContainer determines if the type holds other tags. Decoding a container
// counts against the decoder's maximum depth.
func IsContainer(t Type) bool {
	switch t {
	case ListType, CompoundType, MapType, CompoundArrayType, MapArrayType:
		return true
	default:
		return false
	}
}

// IsNumeric determines if the type is one of the numeric scalar types that the
// typed accessors of CompoundTag will convert between.
func IsNumeric(t Type) bool {
	return ByteType <= t && t <= DoubleType
}
