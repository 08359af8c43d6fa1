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
	"errors"
	"unicode/utf16"
	"unicode/utf8"
)

// Strings are written in modified UTF-8: a big-endian uint16 byte count followed
// by the UTF-16 code units of the string, each encoded like UTF-8 except that
// U+0000 takes two bytes (C0 80) and supplementary characters are written as two
// three-byte surrogates rather than one four-byte sequence.

// maxStringLen is the largest encoded length the uint16 prefix can carry.
const maxStringLen = 0xFFFF

var errMalformedString = errors.New("malformed modified UTF-8 string")

// mutf8Len pre-calculates the encoded length, in bytes, of s.
func mutf8Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

// appendMUTF8 appends the modified UTF-8 encoding of s to b. It does not write
// the length prefix.
func appendMUTF8(b []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			b = append(b, 0xC0, 0x80)
		case r < 0x80:
			b = append(b, byte(r))
		case r < 0x800:
			b = append(b, 0xC0|byte(r>>6), 0x80|byte(r&0x3F))
		case r < 0x10000:
			b = appendUnit(b, uint16(r))
		default:
			hi, lo := utf16.EncodeRune(r)
			b = appendUnit(b, uint16(hi))
			b = appendUnit(b, uint16(lo))
		}
	}
	return b
}

// appendUnit appends the three-byte form of a single UTF-16 code unit.
func appendUnit(b []byte, u uint16) []byte {
	return append(b, 0xE0|byte(u>>12), 0x80|byte((u>>6)&0x3F), 0x80|byte(u&0x3F))
}

// decodeMUTF8 decodes a modified UTF-8 payload (without its length prefix).
// Unpaired surrogates decode to utf8.RuneError.
func decodeMUTF8(b []byte) (string, error) {
	ascii := true
	for _, c := range b {
		if c == 0 || c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), nil
	}

	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			if c == 0 {
				return "", errMalformedString
			}
			units = append(units, uint16(c))
			i++

		case c&0xE0 == 0xC0:
			if i+1 >= len(b) || b[i+1]&0xC0 != 0x80 {
				return "", errMalformedString
			}
			units = append(units, uint16(c&0x1F)<<6|uint16(b[i+1]&0x3F))
			i += 2

		case c&0xF0 == 0xE0:
			if i+2 >= len(b) || b[i+1]&0xC0 != 0x80 || b[i+2]&0xC0 != 0x80 {
				return "", errMalformedString
			}
			units = append(units, uint16(c&0x0F)<<12|uint16(b[i+1]&0x3F)<<6|uint16(b[i+2]&0x3F))
			i += 3

		default:
			return "", errMalformedString
		}
	}

	runes := utf16.Decode(units)
	out := make([]byte, 0, len(b))
	for _, r := range runes {
		out = utf8.AppendRune(out, r)
	}
	return string(out), nil
}
