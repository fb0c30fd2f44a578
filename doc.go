// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

/*
Package lzg1 implements the LZG1 byte-stream codec: a single-shot,
buffer-to-buffer, LZ77-class compressor and decompressor. The decoder is a
small, branch-light state machine over a history window; it needs no
auxiliary memory beyond the input and output buffers.

# Encode

Config may be nil (uses DefaultEncoderConfig, level 5):

	out, err := lzg1.Encode(data, nil)
	out, err := lzg1.Encode(data, &lzg1.EncoderConfig{Level: 9, Fast: false})

MaxEncodedSize reports the guaranteed upper bound on the encoded size for a
given input length, for callers that want to preallocate:

	buf := make([]byte, lzg1.MaxEncodedSize(len(data)))

# Decode

DecodedSize parses only the header (cheap, no checksum verification) so
callers can size an output buffer before a full Decode:

	n := lzg1.DecodedSize(container)
	out, err := lzg1.Decode(container, int(n))

Decode performs full validation (magic, method, size, checksum) and returns
the decoded bytes, or an error describing which invariant failed.
*/
package lzg1
