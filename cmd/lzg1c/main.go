// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

// Command lzg1c encodes a file to an LZG1 container.
//
// Usage: lzg1c infile [outfile]
//
// If outfile is omitted, the container is written to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/lzg1/lzg1"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s infile [outfile]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "If no output file is given, stdout is used for output.")
		return
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read %q: %v\n", os.Args[1], err)
		return
	}

	out, err := lzg1.Encode(data, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compression failed: %v\n", err)
		return
	}

	if len(os.Args) == 3 {
		if err := os.WriteFile(os.Args[2], out, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to write %q: %v\n", os.Args[2], err)
		}
		return
	}

	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to stdout: %v\n", err)
	}
}
