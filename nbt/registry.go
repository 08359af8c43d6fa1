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

// A TypeID is the 1-byte wire discriminator written in front of every entry.
type TypeID uint8

// The classic type space. Extension types reuse one of these ids and are told
// apart by a suffix on the entry name.
const (
	IDEnd       TypeID = 0
	IDByte      TypeID = 1
	IDShort     TypeID = 2
	IDInt       TypeID = 3
	IDLong      TypeID = 4
	IDFloat     TypeID = 5
	IDDouble    TypeID = 6
	IDByteArray TypeID = 7
	IDString    TypeID = 8
	IDList      TypeID = 9
	IDCompound  TypeID = 10
	IDIntArray  TypeID = 11
	IDLongArray TypeID = 12
	IDUnknown   TypeID = 13
)

// String implements fmt.Stringer for TypeID.
func (id TypeID) String() string {
	switch id {
	case IDEnd:
		return "end"
	case IDByte:
		return "byte"
	case IDShort:
		return "short"
	case IDInt:
		return "int"
	case IDLong:
		return "long"
	case IDFloat:
		return "float"
	case IDDouble:
		return "double"
	case IDByteArray:
		return "byte_array"
	case IDString:
		return "string"
	case IDList:
		return "list"
	case IDCompound:
		return "compound"
	case IDIntArray:
		return "int_array"
	case IDLongArray:
		return "long_array"
	case IDUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("<invalid id %v>", uint8(id))
	}
}

// A registration binds a Type to the wire id it is written with and, for
// types outside the classic type space, the name suffix that identifies it.
type registration struct {
	id     TypeID
	suffix string
}

// registry is indexed by Type. Every Type except NoType has exactly one entry.
var registry = [numTypes]registration{
	ByteType:      {id: IDByte},
	ShortType:     {id: IDShort},
	IntType:       {id: IDInt},
	LongType:      {id: IDLong},
	FloatType:     {id: IDFloat},
	DoubleType:    {id: IDDouble},
	ByteArrayType: {id: IDByteArray},
	StringType:    {id: IDString},
	ListType:      {id: IDList},
	CompoundType:  {id: IDCompound},
	IntArrayType:  {id: IDIntArray},
	LongArrayType: {id: IDLongArray},

	BoolType:          {id: IDByte, suffix: "Boolean"},
	BoolArrayType:     {id: IDByteArray, suffix: "boolean[]"},
	ShortArrayType:    {id: IDList, suffix: "short[]"},
	FloatArrayType:    {id: IDList, suffix: "float[]"},
	DoubleArrayType:   {id: IDList, suffix: "double[]"},
	StringArrayType:   {id: IDList, suffix: "string[]"},
	CompoundArrayType: {id: IDList, suffix: "compound[]"},
	CharType:          {id: IDString, suffix: "char"},
	CharArrayType:     {id: IDString, suffix: "char[]"},
	MapType:           {id: IDList, suffix: "map"},
	MapArrayType:      {id: IDList, suffix: "map[]"},
}

// byID maps the classic ids back to the Type they denote when no suffix is present.
var byID = map[TypeID]Type{}

// bySuffix maps a name suffix to the extension Type it denotes.
var bySuffix = map[string]Type{}

func init() {
	for t := BoolType; t < numTypes; t++ {
		reg := registry[t]
		if reg.suffix == "" {
			byID[reg.id] = t
		} else {
			bySuffix[reg.suffix] = t
		}
	}
}

// WireID returns the id t is written with on the wire.
func WireID(t Type) TypeID {
	if t <= NoType || t >= numTypes {
		return IDUnknown
	}
	return registry[t].id
}

// Suffix returns the name suffix of an extension type, or "" for a classic one.
func Suffix(t Type) string {
	if t <= NoType || t >= numTypes {
		return ""
	}
	return registry[t].suffix
}

// IsExtension determines if t is written by reusing a classic wire shape.
func IsExtension(t Type) bool {
	return Suffix(t) != ""
}

// typeForID returns the classic Type for the given id.
func typeForID(id TypeID) (Type, bool) {
	t, ok := byID[id]
	return t, ok
}

// typeForSuffix returns the extension Type registered under the given suffix.
func typeForSuffix(suffix string) (Type, bool) {
	t, ok := bySuffix[suffix]
	return t, ok
}
