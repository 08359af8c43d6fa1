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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModifiedUTF8(t *testing.T) {
	test := func(str string, eval []byte) {
		t.Run(str, func(t *testing.T) {
			assert.Equal(t, len(eval), mutf8Len(str))
			assert.Equal(t, eval, appendMUTF8(nil, str))

			val, err := decodeMUTF8(eval)
			require.NoError(t, err)
			assert.Equal(t, str, val)
		})
	}

	test("", nil)
	test("hello", []byte("hello"))
	test("\x00", []byte{0xC0, 0x80})
	test("a\x00b", []byte{'a', 0xC0, 0x80, 'b'})
	test("é", []byte{0xC3, 0xA9})
	test("€", []byte{0xE2, 0x82, 0xAC})
	test("\U0001F600", []byte{0xED, 0xA0, 0xBD, 0xED, 0xB8, 0x80})
}

func TestModifiedUTF8Malformed(t *testing.T) {
	test := func(name string, in []byte) {
		t.Run(name, func(t *testing.T) {
			_, err := decodeMUTF8(in)
			assert.Equal(t, errMalformedString, err)
		})
	}

	test("raw nul", []byte{'a', 0x00})
	test("truncated pair", []byte{0xC3})
	test("truncated triple", []byte{0xE2, 0x82})
	test("bad continuation", []byte{0xE2, 0x02, 0xAC})
	test("four byte form", []byte{0xF0, 0x9F, 0x98, 0x80})
	test("lone continuation", []byte{0x80})
}
