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

// Package nbt implements a reader and writer for named binary tags, a compact,
// self-describing binary format for trees of typed values.
//
// A document is a single named root entry. Every entry is written as
//
//	[type id:1][name length:2][name:modified UTF-8][payload]
//
// and compounds are sequences of entries closed by an end id (0). All numbers
// are big-endian.
//
// Beyond the twelve classic tag types, this package supports booleans, chars,
// short, float, double, char, string, compound and map arrays, and maps whose
// keys are themselves tags. These extension types reuse a structurally
// compatible classic id and carry a suffix on the entry name, so
//
//	"enabled$Boolean"     is a bool written as a byte
//	"points$float[]"      is a float array written as a list of floats
//	"flags$List$Boolean"  is a list of bools written as a list of bytes
//
// A reader that knows nothing of the extensions still sees a valid classic
// document. The suffixes are stripped on read and added on write; callers
// only ever see bare names.
//
// Reading
//
//	tag, err := nbt.NewDecoderMaxDepth(r, 512).Decode()
//
// Writing
//
//	c := nbt.NewCompound()
//	c.PutBool("A", true)
//	err := nbt.NewEncoder(w).EncodeNamed("root", c)
//
// Compression is not handled here; wrap the stream first.
package nbt
