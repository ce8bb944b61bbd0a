// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app holds the floatparse CLI's logic, kept separate from
// main so it can be tested without invoking cobra.
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/db47h/floatparse"
)

var verbose bool

// SetVerbose toggles debug-level logging of every parse.
func SetVerbose(v bool) {
	verbose = v
	if v {
		log.SetLevel(log.DebugLevel)
	}
}

// Options mirrors the parse subcommand's flags; bench sets only Bits.
type Options struct {
	Bits      int
	Strict    bool
	TrimSpace bool
}

func (o Options) parseOptions() floatparse.ParseOptions {
	return floatparse.ParseOptions{StrictGrammar: o.Strict, TrimSpace: o.TrimSpace}
}

// ParseLine parses a single literal and formats the result the way the
// CLI's "parse" subcommand prints one line of output.
func ParseLine(s string, opts Options) string {
	po := opts.parseOptions()
	if opts.Bits == 32 {
		v, r := floatparse.ParseFloat32([]byte(s), po)
		if verbose {
			log.WithField("input", s).Debugf("parsed float32 = %v (status=%v ptr=%d)", v, r.Status, r.Ptr)
		}
		return fmt.Sprintf("%s\t%v\t%v\tptr=%d", s, v, r.Status, r.Ptr)
	}
	v, r := floatparse.ParseFloat64([]byte(s), po)
	if verbose {
		log.WithField("input", s).Debugf("parsed float64 = %v (status=%v ptr=%d)", v, r.Status, r.Ptr)
	}
	return fmt.Sprintf("%s\t%v\t%v\tptr=%d", s, v, r.Status, r.Ptr)
}

// ParseStream parses one literal per line of r and writes one result
// line per input line to w.
func ParseStream(r io.Reader, w io.Writer, opts Options) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fmt.Fprintln(w, ParseLine(sc.Text(), opts))
	}
	return sc.Err()
}

// Bench reads every line of the named file into memory, then parses
// all of them across workers goroutines (GOMAXPROCS if workers <= 0)
// using an errgroup.Group, demonstrating spec.md §5's claim that
// parses may run in parallel without synchronisation. It logs
// throughput via logrus on completion.
func Bench(path string, opts Options, workers int) error {
	lines, err := readLines(path)
	if err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var parsed int64
	start := time.Now()

	g := new(errgroup.Group)
	chunk := (len(lines) + workers - 1) / workers
	if chunk == 0 {
		chunk = 1
	}
	for i := 0; i < len(lines); i += chunk {
		end := i + chunk
		if end > len(lines) {
			end = len(lines)
		}
		lo, hi := i, end
		g.Go(func() error {
			n := runChunk(lines[lo:hi], opts)
			atomic.AddInt64(&parsed, int64(n))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	elapsed := time.Since(start)
	log.WithFields(log.Fields{
		"lines":    len(lines),
		"workers":  workers,
		"elapsed":  elapsed,
		"per_line": elapsed / time.Duration(max64(parsed, 1)),
	}).Info("bench complete")
	return nil
}

func runChunk(lines []string, opts Options) int {
	po := opts.parseOptions()
	n := 0
	for _, s := range lines {
		if opts.Bits == 32 {
			floatparse.ParseFloat32([]byte(s), po)
		} else {
			floatparse.ParseFloat64([]byte(s), po)
		}
		n++
	}
	return n
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
