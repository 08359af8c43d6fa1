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
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/lanternpowered/nbt-go/nbt"
)

// useColor resolves a --color mode for output written to w.
func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		f, ok := w.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("unrecognized color mode %q", mode)
	}
}

// newColorizer returns a Colorizer that styles keys and values for a terminal.
// Punctuation is left alone.
func newColorizer() nbt.Colorizer {
	palette := map[nbt.TextToken]*color.Color{
		nbt.TokenKey:    color.New(color.FgBlue, color.Bold),
		nbt.TokenNumber: color.New(color.FgCyan),
		nbt.TokenString: color.New(color.FgGreen),
		nbt.TokenBool:   color.New(color.FgMagenta),
	}
	for _, c := range palette {
		// The decision was made by useColor; don't let the package-level
		// NoColor detection override it.
		c.EnableColor()
	}

	return func(tok nbt.TextToken, s string) string {
		if c, ok := palette[tok]; ok {
			return c.Sprint(s)
		}
		return s
	}
}
