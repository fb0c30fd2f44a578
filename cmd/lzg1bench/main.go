// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

// Command lzg1bench round-trips a file through the codec and reports
// microsecond timings for encode and decode, mirroring liblzg's
// src/tools/benchmark.c surface.
//
// Usage: lzg1bench [-1..-9] [-v] file
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lzg1/lzg1"
)

func main() {
	level := flag.Int("level", 5, "compression level, 1..9")
	for l := 1; l <= 9; l++ {
		l := l
		flag.BoolFunc(fmt.Sprintf("%d", l), "shorthand for -level="+fmt.Sprint(l), func(string) error {
			*level = l
			return nil
		})
	}
	verbose := flag.Bool("v", false, "also print the compression ratio")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-1..-9] [-v] file\n", os.Args[0])
		os.Exit(0)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read %q: %v\n", flag.Arg(0), err)
		os.Exit(0)
	}

	cfg := &lzg1.EncoderConfig{Level: *level, Fast: true}

	encStart := time.Now()
	encoded, err := lzg1.Encode(data, cfg)
	encElapsed := time.Since(encStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compression failed: %v\n", err)
		os.Exit(0)
	}

	decStart := time.Now()
	decoded, err := lzg1.Decode(encoded, len(data))
	decElapsed := time.Since(decStart)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decompression failed: %v\n", err)
		os.Exit(0)
	}

	ok := bytes.Equal(decoded, data)
	fmt.Fprintf(os.Stderr, "%s: %d -> %d bytes (level %d), encode %dus, decode %dus, round-trip ok=%v\n",
		flag.Arg(0), len(data), len(encoded), *level,
		encElapsed.Microseconds(), decElapsed.Microseconds(), ok)

	if *verbose {
		fmt.Fprintf(os.Stderr, "  ratio: %.2f%%\n", 100*float64(len(encoded))/float64(max(len(data), 1)))
	}
}
