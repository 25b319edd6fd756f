// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package report formats and emits Monolith search results: one JSON line
// per monolith to stdout, a trailing summary line, and an optional
// snappy-compressed NDJSON manifest file.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"

	"github.com/monolithium/monolithium/world"
)

// Line is the JSON record emitted for a single monolith.
type Line struct {
	Seed uint64 `json:"seed"`
	Area uint64 `json:"area"`
	MinX int32  `json:"minx"`
	MinZ int32  `json:"minz"`
	MaxX int32  `json:"maxx"`
	MaxZ int32  `json:"maxz"`
}

func lineOf(m world.Monolith) Line {
	return Line{Seed: m.Seed, Area: m.Area, MinX: m.MinX, MinZ: m.MinZ, MaxX: m.MaxX, MaxZ: m.MaxZ}
}

// Reporter writes monolith records to stdout as they are found, and
// optionally mirrors them to a compressed manifest file.
type Reporter struct {
	out      io.Writer
	manifest io.WriteCloser
	count    int
}

// NewReporter builds a Reporter writing JSON lines to out. If manifestPath
// is non-empty, every emitted line is also appended to that file, snappy
// compressed when compress is true.
func NewReporter(out io.Writer, manifestPath string, compress bool) (*Reporter, error) {
	r := &Reporter{out: out}
	if manifestPath == "" {
		return r, nil
	}

	f, err := os.Create(manifestPath)
	if err != nil {
		return nil, errors.Wrap(err, "create manifest")
	}
	if compress {
		r.manifest = &snappyWriteCloser{w: snappy.NewBufferedWriter(f), f: f}
	} else {
		r.manifest = f
	}
	return r, nil
}

// snappyWriteCloser pairs a buffered snappy.Writer with the backing file so
// Close flushes the compressor before closing the file handle.
type snappyWriteCloser struct {
	w *snappy.Writer
	f *os.File
}

func (s *snappyWriteCloser) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *snappyWriteCloser) Close() error {
	if err := s.w.Close(); err != nil {
		return errors.WithStack(err)
	}
	return s.f.Close()
}

// Emit writes one monolith as a JSON line to stdout and, if configured, to
// the manifest file.
func (r *Reporter) Emit(m world.Monolith) error {
	buf, err := json.Marshal(lineOf(m))
	if err != nil {
		return errors.Wrap(err, "marshal monolith")
	}
	buf = append(buf, '\n')

	if _, err := r.out.Write(buf); err != nil {
		return errors.Wrap(err, "write stdout")
	}
	if r.manifest != nil {
		if _, err := r.manifest.Write(buf); err != nil {
			return errors.Wrap(err, "write manifest")
		}
	}
	r.count++
	return nil
}

// EmitAll emits every monolith in ms in order.
func (r *Reporter) EmitAll(ms []world.Monolith) error {
	for _, m := range ms {
		if err := r.Emit(m); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes the trailing "Found N Monoliths" line.
func (r *Reporter) Summary() error {
	_, err := fmt.Fprintf(r.out, "Found %d Monoliths\n", r.count)
	return errors.Wrap(err, "write summary")
}

// Close closes the manifest file, if one was opened.
func (r *Reporter) Close() error {
	if r.manifest == nil {
		return nil
	}
	return r.manifest.Close()
}
