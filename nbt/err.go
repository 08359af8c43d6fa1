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
	"fmt"
	"io"
)

// A UsageError is returned when a tag is mutated in a way that would break one
// of its invariants, e.g. inserting a nil tag or a list element of the wrong type.
type UsageError struct {
	API string
	Msg string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("nbt: usage error in %v: %v", e.API, e.Msg)
}

// An IOError is returned when there is an error reading from or writing to an
// underlying io.Reader or io.Writer.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("nbt: i/o error: %v", e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// A SyntaxError is returned when a Decoder encounters invalid input for which no
// more specific error type is defined.
type SyntaxError struct {
	Msg    string
	Offset uint64
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("nbt: syntax error: %v (offset %v)", e.Msg, e.Offset)
}

// An UnexpectedEOFError is returned when the input ends in the middle of a tag.
type UnexpectedEOFError struct {
	Offset uint64
}

func (e *UnexpectedEOFError) Error() string {
	return fmt.Sprintf("nbt: unexpected end of input (offset %v)", e.Offset)
}

func (e *UnexpectedEOFError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// An UnknownTypeError is returned when a Decoder reads a type id outside of the
// classic type space.
type UnknownTypeError struct {
	ID     TypeID
	Name   string
	Offset uint64
}

func (e *UnknownTypeError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("nbt: unknown type id %d (offset %v)", uint8(e.ID), e.Offset)
	}
	return fmt.Sprintf("nbt: unknown type id %d for %q (offset %v)", uint8(e.ID), e.Name, e.Offset)
}

// An UnknownSuffixError is returned when an entry name carries a type suffix that
// is not registered, or that is registered for a different wire id.
type UnknownSuffixError struct {
	Suffix string
	Name   string
	ID     TypeID
	Offset uint64
}

func (e *UnknownSuffixError) Error() string {
	return fmt.Sprintf("nbt: unknown suffix %q on %v entry %q (offset %v)", e.Suffix, e.ID, e.Name, e.Offset)
}

// An ElementTypeError is returned when the element id embedded in a list-shaped
// payload does not match the type announced for the entry.
type ElementTypeError struct {
	Name     string
	Type     Type
	Expected TypeID
	Found    TypeID
	Offset   uint64
}

func (e *ElementTypeError) Error() string {
	return fmt.Sprintf("nbt: %v entry %q expects %v elements, found %v (offset %v)",
		e.Type, e.Name, e.Expected, e.Found, e.Offset)
}

// A DepthError is returned when a Decoder descends past its maximum depth.
type DepthError struct {
	Max    int
	Offset uint64
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("nbt: exceeded the maximum depth of %v (offset %v)", e.Max, e.Offset)
}

// An UnsupportedTagError is returned when an Encoder meets a tag that the wire
// format cannot describe.
type UnsupportedTagError struct {
	Type Type
	Msg  string
}

func (e *UnsupportedTagError) Error() string {
	return fmt.Sprintf("nbt: unsupported %v tag: %v", e.Type, e.Msg)
}

// An EncodeError is returned when encoding fails, naming the path of the entry
// that could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("nbt: error while serializing key %q: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
