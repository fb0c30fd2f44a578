// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

import "encoding/binary"

// header is the parsed form of the 16-byte container header.
type header struct {
	decodedSize uint32
	encodedSize uint32
	checksum    uint32
	method      byte
}

// writeHeader serialises hdr into buf[0:16]. Callers must size buf to at
// least headerSize; the payload starts at buf[headerSize:].
func writeHeader(buf []byte, hdr header) {
	buf[0], buf[1], buf[2] = magic[0], magic[1], magic[2]
	binary.BigEndian.PutUint32(buf[3:7], hdr.decodedSize)
	binary.BigEndian.PutUint32(buf[7:11], hdr.encodedSize)
	binary.BigEndian.PutUint32(buf[11:15], hdr.checksum)
	buf[15] = hdr.method
}

// readHeader validates and parses the 16-byte container header out of buf.
// It does not inspect the payload beyond computing its checksum.
func readHeader(buf []byte) (header, error) {
	if len(buf) < headerSize {
		return header{}, ErrTruncatedHeader
	}

	if buf[0] != magic[0] || buf[1] != magic[1] || buf[2] != magic[2] {
		return header{}, ErrBadMagic
	}

	hdr := header{
		decodedSize: binary.BigEndian.Uint32(buf[3:7]),
		encodedSize: binary.BigEndian.Uint32(buf[7:11]),
		checksum:    binary.BigEndian.Uint32(buf[11:15]),
		method:      buf[15],
	}

	if hdr.method != methodCopy && hdr.method != methodLZG1 {
		return header{}, ErrBadMethod
	}

	if int(hdr.encodedSize) != len(buf)-headerSize {
		return header{}, ErrSizeMismatch
	}

	if checksum(buf[headerSize:]) != hdr.checksum {
		return header{}, ErrChecksumMismatch
	}

	return hdr, nil
}

// peekHeader parses only the fields DecodedSize needs (magic + decodedSize),
// without validating encodedSize or checksum against a payload. Mirrors
// LZG_DecodedSize's "7 bytes is enough to answer" contract.
func peekHeader(buf []byte) (decodedSize uint32, ok bool) {
	if len(buf) < 7 {
		return 0, false
	}
	if buf[0] != magic[0] || buf[1] != magic[1] || buf[2] != magic[2] {
		return 0, false
	}
	return binary.BigEndian.Uint32(buf[3:7]), true
}
