// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

// Command lzg1d decodes an LZG1 container back into its raw body.
//
// Usage: lzg1d infile outfile
package main

import (
	"fmt"
	"os"

	"github.com/lzg1/lzg1"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s infile outfile\n", os.Args[0])
		return
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to read %q: %v\n", os.Args[1], err)
		return
	}

	n := lzg1.DecodedSize(data)
	out, err := lzg1.Decode(data, int(n))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Decompression failed: %v\n", err)
		return
	}

	if err := os.WriteFile(os.Args[2], out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to write %q: %v\n", os.Args[2], err)
	}
}
