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
	"io"
	"os"
)

// OpenInput opens the named input, or def for "" and "-".
func OpenInput(in string, def io.Reader) (io.ReadCloser, error) {
	if in == "" || in == "-" {
		return uncloseable{r: def}, nil
	}
	r, err := os.Open(in)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// OpenOutput opens the named output, or def for "" and "-".
func OpenOutput(outf string, def io.Writer) (io.WriteCloser, error) {
	if outf == "" || outf == "-" {
		return uncloseable{w: def}, nil
	}
	return os.OpenFile(outf, os.O_RDWR|os.O_TRUNC|os.O_CREATE, 0644)
}

type uncloseable struct {
	r io.Reader
	w io.Writer
}

func (u uncloseable) Read(bs []byte) (int, error) {
	return u.r.Read(bs)
}

func (u uncloseable) Write(bs []byte) (int, error) {
	return u.w.Write(bs)
}

func (u uncloseable) Close() error {
	return nil
}

// displayName names an input in logs and reports.
func displayName(in string) string {
	if in == "" || in == "-" {
		return "stdin"
	}
	return in
}
