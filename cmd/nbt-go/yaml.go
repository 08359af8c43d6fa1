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

package main

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/lanternpowered/nbt-go/nbt"
)

// Types without a natural yaml counterpart are marked with a local tag, so a
// reader can tell a byte 1 from an int 1:
//
//	!byte !short !long !float !char       scalars
//	!bool-array !byte-array ...           arrays, in flow style
//	!char-array                           a string
//	!map                                  a sequence of {key, value} mappings
//	!compound-array !map-array            sequences of compounds and maps
//
// int, double, bool, string, list and compound use the plain yaml types.

// documentNode returns a document holding a single mapping from name to t.
func documentNode(name string, t nbt.Tag) *yaml.Node {
	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, strNode(name), valueNode(t))
	return &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}
}

func valueNode(t nbt.Tag) *yaml.Node {
	switch t := t.(type) {
	case *nbt.BoolTag:
		return scalarNode("!!bool", strconv.FormatBool(t.Get()))
	case *nbt.ByteTag:
		return scalarNode("!byte", strconv.FormatInt(int64(t.Get()), 10))
	case *nbt.ShortTag:
		return scalarNode("!short", strconv.FormatInt(int64(t.Get()), 10))
	case *nbt.IntTag:
		return scalarNode("!!int", strconv.FormatInt(int64(t.Get()), 10))
	case *nbt.LongTag:
		return scalarNode("!long", strconv.FormatInt(t.Get(), 10))
	case *nbt.FloatTag:
		return scalarNode("!float", formatFloat(float64(t.Get()), 32))
	case *nbt.DoubleTag:
		return scalarNode("!!float", formatFloat(t.Get(), 64))
	case *nbt.CharTag:
		return scalarNode("!char", string(t.Get()))
	case *nbt.StringTag:
		return strNode(t.Get())

	case *nbt.BoolArrayTag:
		return arrayNode("!bool-array", t.Get(), strconv.FormatBool)
	case *nbt.ByteArrayTag:
		return arrayNode("!byte-array", t.Get(), func(v byte) string { return strconv.FormatInt(int64(int8(v)), 10) })
	case *nbt.ShortArrayTag:
		return arrayNode("!short-array", t.Get(), func(v int16) string { return strconv.FormatInt(int64(v), 10) })
	case *nbt.IntArrayTag:
		return arrayNode("!int-array", t.Get(), func(v int32) string { return strconv.FormatInt(int64(v), 10) })
	case *nbt.LongArrayTag:
		return arrayNode("!long-array", t.Get(), func(v int64) string { return strconv.FormatInt(v, 10) })
	case *nbt.FloatArrayTag:
		return arrayNode("!float-array", t.Get(), func(v float32) string { return formatFloat(float64(v), 32) })
	case *nbt.DoubleArrayTag:
		return arrayNode("!double-array", t.Get(), func(v float64) string { return formatFloat(v, 64) })
	case *nbt.CharArrayTag:
		return scalarNode("!char-array", string(t.Get()))
	case *nbt.StringArrayTag:
		return arrayNode("!string-array", t.Get(), func(v string) string { return v })

	case *nbt.CompoundArrayTag:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!compound-array"}
		for _, c := range t.Get() {
			n.Content = append(n.Content, valueNode(c))
		}
		return n
	case *nbt.MapArrayTag:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!map-array"}
		for _, m := range t.Get() {
			n.Content = append(n.Content, valueNode(m))
		}
		return n

	case *nbt.ListTag:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range t.Elems() {
			n.Content = append(n.Content, valueNode(e))
		}
		return n

	case *nbt.CompoundTag:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range t.Keys() {
			v, _ := t.Get(k)
			n.Content = append(n.Content, strNode(k), valueNode(v))
		}
		return n

	case *nbt.MapTag:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!map"}
		for _, e := range t.Entries() {
			entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			entry.Content = append(entry.Content,
				strNode("key"), valueNode(e.Key),
				strNode("value"), valueNode(e.Value))
			n.Content = append(n.Content, entry)
		}
		return n
	}

	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func strNode(s string) *yaml.Node {
	return scalarNode("!!str", s)
}

func arrayNode[T any](tag string, values []T, format func(T) string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: tag, Style: yaml.FlowStyle}
	for _, v := range values {
		e := &yaml.Node{Kind: yaml.ScalarNode, Value: format(v)}
		if _, ok := any(v).(string); ok {
			e.Tag = "!!str"
		}
		n.Content = append(n.Content, e)
	}
	return n
}

// formatFloat spells non-finite values the way yaml does.
func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	default:
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
}
