// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

import "errors"

// Sentinel errors for container parsing, decoding, and encoding.
var (
	// ErrBadMagic is returned when the first three header bytes are not "LZG".
	ErrBadMagic = errors.New("lzg1: bad magic")
	// ErrBadMethod is returned when the header's method byte is not 0 (COPY) or 1 (LZG1).
	ErrBadMethod = errors.New("lzg1: bad method")
	// ErrTruncatedHeader is returned when the input is shorter than the 16-byte header.
	ErrTruncatedHeader = errors.New("lzg1: truncated header")
	// ErrSizeMismatch is returned when the header's encodedSize disagrees with the buffer length.
	ErrSizeMismatch = errors.New("lzg1: encoded size mismatch")
	// ErrChecksumMismatch is returned when the computed checksum disagrees with the header's.
	ErrChecksumMismatch = errors.New("lzg1: checksum mismatch")
	// ErrShortOutput is returned when the output capacity is smaller than decodedSize.
	ErrShortOutput = errors.New("lzg1: output buffer too small")
	// ErrTruncatedInput is returned when a payload read would overrun the payload end.
	ErrTruncatedInput = errors.New("lzg1: truncated input")
	// ErrBackrefUnderflow is returned when a back-reference's offset exceeds the bytes emitted so far.
	ErrBackrefUnderflow = errors.New("lzg1: back-reference underflow")
	// ErrOverflow is returned when a decode write would overrun the output. Encode does not return it:
	// an LZG1 pass that would overflow falls back to a COPY container instead.
	ErrOverflow = errors.New("lzg1: buffer overflow")
	// ErrLengthMismatch is returned when the decoder's final emitted count does not equal decodedSize.
	ErrLengthMismatch = errors.New("lzg1: length mismatch")
	// ErrAllocationFailure names a failure to obtain the encoder's search-accelerator tables.
	// No function in this package returns it.
	ErrAllocationFailure = errors.New("lzg1: allocation failure")
	// ErrBadConfig names nil buffers or out-of-range size arguments to Encode. No function in
	// this package returns it: Encode accepts nil input and a nil config, and clamps Level.
	ErrBadConfig = errors.New("lzg1: bad config")
)
