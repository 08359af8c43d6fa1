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
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/lanternpowered/nbt-go/internal/compression"
	"github.com/lanternpowered/nbt-go/nbt"
)

const defaultMaxDepth = 512

// A docWriter renders decoded documents in one output format.
type docWriter interface {
	WriteDoc(name string, t nbt.Tag) error
	Close() error
}

// dump decodes each input (stdin when none are named) and prints it in the
// requested format. Inputs that fail to decode are recorded in the error
// report and skipped.
func dump(args []string, stdout, stderr io.Writer) error {
	d, err := newDumper(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	return d.run(stdout, stderr)
}

type dumper struct {
	infs     []string
	outf     string
	errf     string
	format   string
	color    string
	maxDepth int

	log *slog.Logger
}

func newDumper(args []string, stderr io.Writer) (*dumper, error) {
	ret := &dumper{}

	fs := pflag.NewFlagSet("dump", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&ret.outf, "output", "o", "", "file to write to (default stdout)")
	fs.StringVarP(&ret.format, "format", "f", "pretty", "output format: text, pretty, yaml or none")
	fs.StringVarP(&ret.errf, "error-report", "e", "", "file to write the error report to (default stderr)")
	fs.StringVar(&ret.color, "color", "auto", "colorize text output: auto, always or never")
	fs.IntVar(&ret.maxDepth, "max-depth", defaultMaxDepth, "maximum container nesting depth")
	verbose := fs.BoolP("verbose", "v", false, "log each input as it is processed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	ret.infs = fs.Args()
	if len(ret.infs) == 0 {
		ret.infs = []string{"-"}
	}
	ret.log = newLogger(stderr, *verbose)

	return ret, nil
}

func (d *dumper) run(stdout, stderr io.Writer) (deferredErr error) {
	outf, err := OpenOutput(d.outf, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := outf.Close(); deferredErr == nil {
			deferredErr = closeErr
		}
	}()

	out, err := d.newDocWriter(outf, stdout)
	if err != nil {
		return err
	}

	errf, err := OpenOutput(d.errf, stderr)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := errf.Close(); deferredErr == nil {
			deferredErr = closeErr
		}
	}()
	report := NewErrorReport(errf)

	for _, in := range d.infs {
		if err := d.dumpOne(in, out, report); err != nil {
			return err
		}
	}

	if err := out.Close(); err != nil {
		return err
	}

	if n := report.Len(); n > 0 {
		return fmt.Errorf("%d of %d inputs failed", n, len(d.infs))
	}
	return nil
}

// dumpOne decodes a single input. Decoding failures go to the report; only a
// failure to write output or the report itself is returned.
func (d *dumper) dumpOne(in string, out docWriter, report *ErrorReport) error {
	loc := displayName(in)

	name, t, _, err := decodeFile(in, os.Stdin, d.maxDepth, d.log)
	if err != nil {
		d.log.Debug("decode failed", "input", loc, "error", err)
		return report.Append(read, err, loc)
	}

	if err := out.WriteDoc(name, t); err != nil {
		if rerr := report.Append(write, err, loc); rerr != nil {
			return rerr
		}
		return err
	}
	return nil
}

func (d *dumper) newDocWriter(w io.Writer, stdout io.Writer) (docWriter, error) {
	var opts nbt.TextWriterOpts

	switch d.format {
	case "", "pretty":
		opts = nbt.TextWriterPretty
	case "text":
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlDocWriter{enc: enc}, nil
	case "none":
		return nopDocWriter{}, nil
	default:
		return nil, errors.New("unrecognized output format \"" + d.format + "\"")
	}

	// Only the real stdout can be a terminal.
	target := w
	if d.outf == "" || d.outf == "-" {
		target = stdout
	}
	colored, err := useColor(d.color, target)
	if err != nil {
		return nil, err
	}
	var colorizer nbt.Colorizer
	if colored {
		colorizer = newColorizer()
	}

	return &textDocWriter{out: w, w: nbt.NewTextWriterOpts(w, opts, colorizer)}, nil
}

// decodeFile opens in (stdin for "" and "-"), undoes any compression and
// decodes one named tag. It also reports the compression it found.
func decodeFile(in string, stdin io.Reader, maxDepth int, log *slog.Logger) (string, nbt.Tag, compression.Format, error) {
	f, err := OpenInput(in, stdin)
	if err != nil {
		return "", nil, compression.None, err
	}
	defer f.Close()

	r, format, err := compression.NewReader(f)
	if err != nil {
		return "", nil, format, err
	}
	defer r.Close()

	dec := nbt.NewDecoderMaxDepth(r, maxDepth)
	name, t, err := dec.DecodeNamed()
	if err != nil {
		return "", nil, format, err
	}

	log.Debug("decoded",
		"input", displayName(in),
		"compression", format,
		"bytes", dec.Pos(),
		"type", t.Type())
	return name, t, format, nil
}

type textDocWriter struct {
	out io.Writer
	w   *nbt.TextWriter
}

func (t *textDocWriter) WriteDoc(name string, tag nbt.Tag) error {
	if err := t.w.WriteNamed(name, tag); err != nil {
		return err
	}
	_, err := fmt.Fprintln(t.out)
	return err
}

func (t *textDocWriter) Close() error {
	return nil
}

type yamlDocWriter struct {
	enc *yaml.Encoder
}

func (y *yamlDocWriter) WriteDoc(name string, tag nbt.Tag) error {
	return y.enc.Encode(documentNode(name, tag))
}

func (y *yamlDocWriter) Close() error {
	return y.enc.Close()
}

type nopDocWriter struct{}

func (nopDocWriter) WriteDoc(string, nbt.Tag) error { return nil }

func (nopDocWriter) Close() error { return nil }

// convert decodes a single input and re-encodes it with the chosen
// compression, keeping the root name.
func convert(args []string, stdout, stderr io.Writer) error {
	return convertFrom(args, os.Stdin, stdout, stderr)
}

func convertFrom(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var (
		outf     string
		comp     string
		maxDepth int
	)

	fs := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&outf, "output", "o", "", "file to write to (default stdout)")
	fs.StringVarP(&comp, "compression", "c", "", "output compression: none, gzip or zlib (default: same as the input)")
	fs.IntVar(&maxDepth, "max-depth", defaultMaxDepth, "maximum container nesting depth")
	verbose := fs.BoolP("verbose", "v", false, "log the conversion")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("convert takes exactly one input file")
	}
	in := fs.Arg(0)
	log := newLogger(stderr, *verbose)

	var dst compression.Format
	if comp != "" {
		f, err := compression.ParseFormat(comp)
		if err != nil {
			return err
		}
		dst = f
	}

	name, t, src, err := decodeFile(in, stdin, maxDepth, log)
	if err != nil {
		return err
	}
	if comp == "" {
		dst = src
	}

	return writeFile(outf, stdout, dst, name, t, func() {
		log.Info("converted", "input", displayName(in), "from", src, "to", dst)
	})
}

func writeFile(outf string, stdout io.Writer, f compression.Format, name string, t nbt.Tag, done func()) (deferredErr error) {
	out, err := OpenOutput(outf, stdout)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); deferredErr == nil {
			deferredErr = closeErr
		}
	}()

	w, err := compression.NewWriter(out, f)
	if err != nil {
		return err
	}
	if err := nbt.NewEncoder(w).EncodeNamed(name, t); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	done()
	return nil
}
