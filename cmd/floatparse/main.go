// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command floatparse is a small CLI front end for
// github.com/db47h/floatparse: it parses float literals given on the
// command line or one per line of stdin, and benchmarks the parser
// by parsing a file's lines concurrently.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/db47h/floatparse/cmd/floatparse/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "floatparse",
		Short: "Parse and benchmark IEEE-754 float literals",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.SetVerbose(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each parse at debug level")

	root.AddCommand(newParseCmd())
	root.AddCommand(newBenchCmd())
	return root
}

func newParseCmd() *cobra.Command {
	var (
		bits      int
		strict    bool
		trimSpace bool
	)
	cmd := &cobra.Command{
		Use:   "parse [literal...]",
		Short: "Parse one or more float literals and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.Options{Strict: strict, TrimSpace: trimSpace, Bits: bits}
			w := bufio.NewWriter(cmd.OutOrStdout())
			defer w.Flush()
			if len(args) == 0 {
				return app.ParseStream(os.Stdin, w, opts)
			}
			for _, a := range args {
				line := app.ParseLine(a, opts)
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 64, "target format: 32 or 64")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject a bare trailing '.' with no fractional digit")
	cmd.Flags().BoolVar(&trimSpace, "trim-space", false, "skip leading ASCII whitespace")
	return cmd
}

func newBenchCmd() *cobra.Command {
	var (
		bits    int
		workers int
	)
	cmd := &cobra.Command{
		Use:   "bench <file>",
		Short: "Parse every line of a file concurrently and report throughput",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Bench(args[0], app.Options{Bits: bits}, workers)
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 64, "target format: 32 or 64")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	return cmd
}
