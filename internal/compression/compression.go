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

// Package compression sniffs and applies the stream framing that documents are
// commonly stored with.
package compression

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// A Format is a stream framing.
type Format uint8

const (
	// None is an uncompressed stream.
	None Format = iota
	// Gzip is a gzip (RFC 1952) stream.
	Gzip
	// Zlib is a zlib (RFC 1950) stream.
	Zlib
)

func (f Format) String() string {
	switch f {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return fmt.Sprintf("<unknown format %d>", uint8(f))
	}
}

// ParseFormat parses a format name as printed by Format.String.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "none", "raw":
		return None, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zlib":
		return Zlib, nil
	default:
		return None, fmt.Errorf("unknown compression format %q", s)
	}
}

// Detect peeks at the first two bytes of r without consuming them. Input that
// is too short to carry a header is reported as None.
func Detect(r *bufio.Reader) (Format, error) {
	magic, err := r.Peek(2)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return None, nil
		}
		return None, err
	}

	switch {
	case magic[0] == 0x1f && magic[1] == 0x8b:
		return Gzip, nil
	case magic[0] == 0x78 && (magic[1] == 0x01 || magic[1] == 0x5e || magic[1] == 0x9c || magic[1] == 0xda):
		return Zlib, nil
	default:
		return None, nil
	}
}

// NewReader detects the framing of r and returns a reader over the unwrapped
// stream. Closing it releases the decompressor but does not close r.
func NewReader(r io.Reader) (io.ReadCloser, Format, error) {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	f, err := Detect(br)
	if err != nil {
		return nil, None, err
	}

	switch f {
	case Gzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("gzip header: %w", err)
		}
		return zr, f, nil
	case Zlib:
		zr, err := zlib.NewReader(br)
		if err != nil {
			return nil, f, fmt.Errorf("zlib header: %w", err)
		}
		return zr, f, nil
	default:
		return io.NopCloser(br), None, nil
	}
}

// NewWriter returns a writer that frames everything written to it with f.
// Close must be called to flush the trailer; it does not close w.
func NewWriter(w io.Writer, f Format) (io.WriteCloser, error) {
	switch f {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return gzip.NewWriter(w), nil
	case Zlib:
		return zlib.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown compression format %v", f)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}
