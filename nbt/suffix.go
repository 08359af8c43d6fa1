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

import "strings"

const (
	suffixSep  = "$"
	listMarker = "List"
)

// An entryName is an entry name with its type trailer resolved.
//
//	name              classic type, taken from the id
//	name$suffix       extension type
//	name$List$suffix  list whose elements are of an extension type
type entryName struct {
	name string
	typ  Type

	// elem is the element type announced by a $List$ trailer, NoType otherwise.
	elem Type
}

// parseEntryName splits the trailer off raw and resolves the semantic type of
// an entry written with the given wire id.
func parseEntryName(id TypeID, raw string) (entryName, error) {
	classic, ok := typeForID(id)
	if !ok {
		return entryName{}, &UnknownTypeError{ID: id, Name: raw}
	}

	i := strings.LastIndex(raw, suffixSep)
	if i < 0 {
		return entryName{name: raw, typ: classic}, nil
	}

	suffix := raw[i+1:]
	name := raw[:i]

	t, ok := typeForSuffix(suffix)
	if !ok {
		return entryName{}, &UnknownSuffixError{Suffix: suffix, Name: raw, ID: id}
	}

	e := entryName{name: name, typ: t}
	if id == IDList && strings.HasSuffix(name, suffixSep+listMarker) {
		e = entryName{
			name: strings.TrimSuffix(name, suffixSep+listMarker),
			typ:  ListType,
			elem: t,
		}
	} else if registry[t].id != id {
		return entryName{}, &UnknownSuffixError{Suffix: suffix, Name: raw, ID: id}
	}

	// Names never carry the separator themselves, so anything left over is
	// a trailer that did not resolve.
	if j := strings.Index(e.name, suffixSep); j >= 0 {
		return entryName{}, &UnknownSuffixError{Suffix: raw[j+1:], Name: raw, ID: id}
	}
	return e, nil
}

// formatEntryName appends the trailer that lets parseEntryName recover t
// (and, for a list, its element type) from an entry named name.
func formatEntryName(name string, t Type, elem Type) string {
	if t == ListType {
		if s := Suffix(elem); s != "" {
			return name + suffixSep + listMarker + suffixSep + s
		}
		return name
	}
	if s := Suffix(t); s != "" {
		return name + suffixSep + s
	}
	return name
}
