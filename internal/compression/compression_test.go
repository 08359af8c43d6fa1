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

package compression

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	payload := []byte{10, 0, 0, 3, 0, 1, 'a', 0, 0, 0, 5, 0}

	for _, f := range []Format{None, Gzip, Zlib} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			w, err := NewWriter(&buf, f)
			require.NoError(t, err)
			_, err = w.Write(payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			detected, err := Detect(bufio.NewReader(bytes.NewReader(buf.Bytes())))
			require.NoError(t, err)
			assert.Equal(t, f, detected)

			r, got, err := NewReader(&buf)
			require.NoError(t, err)
			assert.Equal(t, f, got)

			val, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, val)
		})
	}
}

func TestDetect(t *testing.T) {
	test := func(name string, in []byte, eval Format) {
		t.Run(name, func(t *testing.T) {
			br := bufio.NewReader(bytes.NewReader(in))
			f, err := Detect(br)
			require.NoError(t, err)
			assert.Equal(t, eval, f)

			// Nothing is consumed.
			rest, err := io.ReadAll(br)
			require.NoError(t, err)
			assert.Equal(t, len(in), len(rest))
		})
	}

	test("empty", nil, None)
	test("one byte", []byte{0x1f}, None)
	test("gzip", []byte{0x1f, 0x8b, 0x08}, Gzip)
	test("zlib default", []byte{0x78, 0x9c}, Zlib)
	test("zlib best", []byte{0x78, 0xda}, Zlib)
	test("zlib fast", []byte{0x78, 0x01}, Zlib)
	test("raw compound", []byte{0x0a, 0x00, 0x00}, None)
	test("almost zlib", []byte{0x78, 0x00}, None)
}

func TestBadHeader(t *testing.T) {
	_, f, err := NewReader(bytes.NewReader([]byte{0x1f, 0x8b}))
	assert.Error(t, err)
	assert.Equal(t, Gzip, f)
}

func TestParseFormat(t *testing.T) {
	test := func(s string, eval Format) {
		f, err := ParseFormat(s)
		require.NoError(t, err, s)
		assert.Equal(t, eval, f)
	}

	test("none", None)
	test("raw", None)
	test("gzip", Gzip)
	test("gz", Gzip)
	test("zlib", Zlib)

	_, err := ParseFormat("lz4")
	assert.Error(t, err)

	_, err = NewWriter(io.Discard, Format(9))
	assert.Error(t, err)
	assert.Equal(t, "<unknown format 9>", Format(9).String())
}
