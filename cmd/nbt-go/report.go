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
	"errors"
	"fmt"
	"io"

	"github.com/lanternpowered/nbt-go/nbt"
)

type errortype uint8

const (
	read errortype = iota
	write
)

func (e errortype) String() string {
	switch e {
	case read:
		return "READ"
	case write:
		return "WRITE"
	default:
		panic(fmt.Sprintf("unknown errortype %d", e))
	}
}

// ErrorReport is a report of errors that occur during processing, one compound
// per line in text form.
type ErrorReport struct {
	w   io.Writer
	len int
}

// NewErrorReport creates a new ErrorReport.
func NewErrorReport(w io.Writer) *ErrorReport {
	return &ErrorReport{w: w}
}

// Append appends an error to this report.
func (r *ErrorReport) Append(typ errortype, cause error, loc string) error {
	r.len++

	desc := nbt.NewCompound()
	if err := desc.PutString("error_type", typ.String()); err != nil {
		return err
	}
	if err := desc.PutString("message", cause.Error()); err != nil {
		return err
	}
	if err := desc.PutString("location", loc); err != nil {
		return err
	}
	if off, ok := errorOffset(cause); ok {
		if err := desc.PutLong("offset", int64(off)); err != nil {
			return err
		}
	}

	if err := nbt.NewTextWriter(r.w).Write(desc); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.w)
	return err
}

// Len returns the number of errors appended so far.
func (r *ErrorReport) Len() int {
	return r.len
}

// errorOffset extracts the input offset a decoding error occurred at.
func errorOffset(err error) (uint64, bool) {
	var (
		syntax *nbt.SyntaxError
		eof    *nbt.UnexpectedEOFError
		typ    *nbt.UnknownTypeError
		suffix *nbt.UnknownSuffixError
		elem   *nbt.ElementTypeError
		depth  *nbt.DepthError
	)
	switch {
	case errors.As(err, &syntax):
		return syntax.Offset, true
	case errors.As(err, &eof):
		return eof.Offset, true
	case errors.As(err, &typ):
		return typ.Offset, true
	case errors.As(err, &suffix):
		return suffix.Offset, true
	case errors.As(err, &elem):
		return elem.Offset, true
	case errors.As(err, &depth):
		return depth.Offset, true
	default:
		return 0, false
	}
}
