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
	"io"
	"strconv"
	"strings"
)

// TextWriterOpts defines a set of bit flag options for text writers.
type TextWriterOpts uint8

const (
	// TextWriterPretty enables pretty-printing mode: one entry per line,
	// indented by nesting depth.
	TextWriterPretty TextWriterOpts = 1
)

// A TextToken classifies a fragment of text output so a Colorizer can style it.
type TextToken uint8

const (
	// TokenPunct is brackets, separators and array prefixes.
	TokenPunct TextToken = iota
	// TokenKey is a compound key.
	TokenKey
	// TokenNumber is a numeric value including its type letter.
	TokenNumber
	// TokenString is a quoted string or char.
	TokenString
	// TokenBool is true or false.
	TokenBool
)

// A Colorizer decorates a fragment of output, typically with terminal escapes.
type Colorizer func(tok TextToken, s string) string

// A TextWriter renders tags in a compact, SNBT-flavoured notation:
//
//	{a: 1b, b: [I; 1, 2], c: ["x", "y"], d: #{1 = 'c'}}
//
// Numbers carry their type letter (b, s, L, f, d; int has none), arrays a type
// prefix, chars single quotes, and maps are written #{key = value, ...}.
type TextWriter struct {
	out    io.Writer
	opts   TextWriterOpts
	color  Colorizer
	indent int
	err    error
}

// NewTextWriter returns a compact TextWriter writing to out.
func NewTextWriter(out io.Writer) *TextWriter {
	return NewTextWriterOpts(out, 0, nil)
}

// NewTextWriterOpts returns a TextWriter with the given options. color may be nil.
func NewTextWriterOpts(out io.Writer, opts TextWriterOpts, color Colorizer) *TextWriter {
	return &TextWriter{out: out, opts: opts, color: color}
}

// Write renders t. Once a write fails, every later call returns the same error.
func (w *TextWriter) Write(t Tag) error {
	if w.err != nil {
		return w.err
	}
	w.writeTag(t)
	return w.err
}

// WriteNamed renders t prefixed with name, as a root entry.
func (w *TextWriter) WriteNamed(name string, t Tag) error {
	if w.err != nil {
		return w.err
	}
	w.emit(TokenKey, quoteKey(name))
	w.emit(TokenPunct, ": ")
	w.writeTag(t)
	return w.err
}

func textString(t Tag) string {
	var sb strings.Builder
	_ = NewTextWriter(&sb).Write(t)
	return sb.String()
}

func (w *TextWriter) pretty() bool {
	return w.opts&TextWriterPretty != 0
}

func (w *TextWriter) writeTag(t Tag) {
	switch t := t.(type) {
	case nil:
		w.emit(TokenPunct, "null")
	case *BoolTag:
		w.emit(TokenBool, strconv.FormatBool(t.value))
	case *ByteTag:
		w.emit(TokenNumber, strconv.FormatInt(int64(t.value), 10)+"b")
	case *ShortTag:
		w.emit(TokenNumber, strconv.FormatInt(int64(t.value), 10)+"s")
	case *IntTag:
		w.emit(TokenNumber, strconv.FormatInt(int64(t.value), 10))
	case *LongTag:
		w.emit(TokenNumber, strconv.FormatInt(t.value, 10)+"L")
	case *FloatTag:
		w.emit(TokenNumber, strconv.FormatFloat(float64(t.value), 'g', -1, 32)+"f")
	case *DoubleTag:
		w.emit(TokenNumber, strconv.FormatFloat(t.value, 'g', -1, 64)+"d")
	case *CharTag:
		w.emit(TokenString, strconv.QuoteRune(t.value))
	case *StringTag:
		w.emit(TokenString, strconv.Quote(t.value))

	case *BoolArrayTag:
		writeArray(w, "Z", t.values, func(v bool) (TextToken, string) {
			return TokenBool, strconv.FormatBool(v)
		})
	case *ByteArrayTag:
		writeArray(w, "B", t.values, func(v byte) (TextToken, string) {
			return TokenNumber, strconv.FormatInt(int64(int8(v)), 10) + "b"
		})
	case *ShortArrayTag:
		writeArray(w, "S", t.values, func(v int16) (TextToken, string) {
			return TokenNumber, strconv.FormatInt(int64(v), 10) + "s"
		})
	case *IntArrayTag:
		writeArray(w, "I", t.values, func(v int32) (TextToken, string) {
			return TokenNumber, strconv.FormatInt(int64(v), 10)
		})
	case *LongArrayTag:
		writeArray(w, "L", t.values, func(v int64) (TextToken, string) {
			return TokenNumber, strconv.FormatInt(v, 10) + "L"
		})
	case *FloatArrayTag:
		writeArray(w, "F", t.values, func(v float32) (TextToken, string) {
			return TokenNumber, strconv.FormatFloat(float64(v), 'g', -1, 32) + "f"
		})
	case *DoubleArrayTag:
		writeArray(w, "D", t.values, func(v float64) (TextToken, string) {
			return TokenNumber, strconv.FormatFloat(v, 'g', -1, 64) + "d"
		})
	case *CharArrayTag:
		writeArray(w, "C", t.values, func(v rune) (TextToken, string) {
			return TokenString, strconv.QuoteRune(v)
		})
	case *StringArrayTag:
		writeArray(w, "String", t.values, func(v string) (TextToken, string) {
			return TokenString, strconv.Quote(v)
		})

	case *CompoundArrayTag:
		w.writeSeq("[Compound; ", "]", len(t.values), func(i int) { w.writeTag(t.values[i]) })
	case *MapArrayTag:
		w.writeSeq("[Map; ", "]", len(t.values), func(i int) { w.writeTag(t.values[i]) })
	case *ListTag:
		w.writeSeq("[", "]", len(t.elems), func(i int) { w.writeTag(t.elems[i]) })

	case *CompoundTag:
		keys := t.Keys()
		w.writeSeq("{", "}", len(keys), func(i int) {
			w.emit(TokenKey, quoteKey(keys[i]))
			w.emit(TokenPunct, ": ")
			w.writeTag(t.entries[keys[i]])
		})

	case *MapTag:
		w.writeSeq("#{", "}", len(t.entries), func(i int) {
			w.writeTag(t.entries[i].Key)
			w.emit(TokenPunct, " = ")
			w.writeTag(t.entries[i].Value)
		})
	}
}

// writeArray writes a primitive array on a single line, even in pretty mode.
func writeArray[T any](w *TextWriter, prefix string, values []T, format func(T) (TextToken, string)) {
	w.emit(TokenPunct, "["+prefix+";")
	for i, v := range values {
		if i > 0 {
			w.emit(TokenPunct, ",")
		}
		w.emit(TokenPunct, " ")
		w.emit(format(v))
	}
	w.emit(TokenPunct, "]")
}

// writeSeq writes a container of n children, one per line in pretty mode.
func (w *TextWriter) writeSeq(open, close string, n int, child func(i int)) {
	if n == 0 {
		w.emit(TokenPunct, strings.TrimRight(open, " ")+close)
		return
	}

	w.emit(TokenPunct, open)
	w.indent++
	for i := 0; i < n; i++ {
		if i > 0 {
			w.emit(TokenPunct, ",")
			if !w.pretty() {
				w.emit(TokenPunct, " ")
			}
		}
		w.newline()
		child(i)
	}
	w.indent--
	w.newline()
	w.emit(TokenPunct, close)
}

func (w *TextWriter) newline() {
	if w.pretty() {
		w.raw("\n" + strings.Repeat("  ", w.indent))
	}
}

func (w *TextWriter) emit(tok TextToken, s string) {
	if w.color != nil {
		s = w.color(tok, s)
	}
	w.raw(s)
}

func (w *TextWriter) raw(s string) {
	if w.err != nil {
		return
	}
	if _, err := io.WriteString(w.out, s); err != nil {
		w.err = &IOError{err}
	}
}

// quoteKey leaves keys made of letters, digits, '_', '-', '.' and '+' bare and
// quotes everything else.
func quoteKey(k string) string {
	if k == "" {
		return `""`
	}
	for _, r := range k {
		bare := r == '_' || r == '-' || r == '.' || r == '+' ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9')
		if !bare {
			return strconv.Quote(k)
		}
	}
	return k
}
