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

// nbt-go inspects and converts named binary tag documents.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lanternpowered/nbt-go/nbt"
)

// Set at build time with -ldflags "-X main.gitCommit=... -X main.buildTime=...".
var (
	gitCommit = "unknown-commit"
	buildTime = "unknown-buildtime"
)

// main is the main entry point for nbt-go.
func main() {
	if len(os.Args) <= 1 {
		printHelp(os.Stdout)
		return
	}

	var err error

	switch os.Args[1] {
	case "help", "--help", "-h":
		printHelp(os.Stdout)

	case "version", "--version":
		err = printVersion(os.Stdout)

	case "dump":
		err = dump(os.Args[2:], os.Stdout, os.Stderr)

	case "convert":
		err = convert(os.Args[2:], os.Stdout, os.Stderr)

	default:
		err = errors.New("unrecognized command \"" + os.Args[1] + "\"")
		printHelp(os.Stderr)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// printHelp prints the help message for the program.
func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  nbt-go help")
	fmt.Fprintln(w, "  nbt-go version")
	fmt.Fprintln(w, "  nbt-go dump [args] [files]")
	fmt.Fprintln(w, "  nbt-go convert [args] file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  help       Prints this help message.")
	fmt.Fprintln(w, "  version    Prints version information about this tool.")
	fmt.Fprintln(w, "  dump       Decodes the given files (or stdin) and prints them as text or yaml.")
	fmt.Fprintln(w, "  convert    Decodes a file and re-encodes it with the chosen compression.")
}

// printVersion prints the version info for this tool as a tag.
func printVersion(w io.Writer) error {
	info := nbt.NewCompound()
	if err := info.PutString("version", gitCommit); err != nil {
		return err
	}
	if err := info.PutString("build_time", buildTime); err != nil {
		return err
	}

	if err := nbt.NewTextWriterOpts(w, nbt.TextWriterPretty, nil).Write(info); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

// newLogger returns the logger commands report progress and failures to.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
