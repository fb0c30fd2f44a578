// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// DecodedSize parses only the container header (no checksum verification)
// and returns the embedded decoded size, or 0 if the header cannot be read
// at all (fewer than 7 bytes, or a bad magic). Full validation is deferred
// to Decode.
func DecodedSize(input []byte) uint32 {
	n, ok := peekHeader(input)
	if !ok {
		return 0
	}
	return n
}

// Decode validates input's container header and reconstructs the original
// bytes into a buffer of the given capacity. It returns the decoded bytes
// (decodedSize of them), or a nil slice and an error naming which invariant
// failed.
func Decode(input []byte, outputCapacity int) ([]byte, error) {
	hdr, err := readHeader(input)
	if err != nil {
		return nil, err
	}

	if outputCapacity < int(hdr.decodedSize) {
		return nil, ErrShortOutput
	}

	payload := input[headerSize:]
	out := make([]byte, hdr.decodedSize)

	if hdr.method == methodCopy {
		if hdr.encodedSize != hdr.decodedSize {
			return nil, ErrSizeMismatch
		}
		copy(out, payload)
		return out, nil
	}

	n, err := decodeLZG1(payload, out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}

// decodeLZG1 runs the marker-dispatch state machine over payload (which
// starts with the four marker bytes) and writes reconstructed bytes into
// out. Returns the number of bytes emitted.
func decodeLZG1(payload []byte, out []byte) (int, error) {
	if len(payload) < 4 {
		return 0, ErrTruncatedInput
	}
	ms := newMarkerSet(payload[0], payload[1], payload[2], payload[3])

	src := 4
	emitted := 0
	decodedSize := len(out)

	for src < len(payload) {
		s := payload[src]
		src++

		if !ms.isMarker[s] {
			if emitted >= decodedSize {
				return 0, ErrOverflow
			}
			out[emitted] = s
			emitted++
			continue
		}

		if src >= len(payload) {
			return 0, ErrTruncatedInput
		}
		b := payload[src]
		src++

		if b == 0 {
			if emitted >= decodedSize {
				return 0, ErrOverflow
			}
			out[emitted] = s
			emitted++
			continue
		}

		length, dist, n, err := decodeBackref(ms, s, b, payload, src)
		if err != nil {
			return 0, err
		}
		src = n

		if dist < 1 || dist > emitted {
			return 0, ErrBackrefUnderflow
		}
		if emitted+length > decodedSize {
			return 0, ErrOverflow
		}

		// Byte-wise, never a block memcpy: when dist < length the bytes
		// this token is writing become valid source for its own tail
		// (RLE / pattern-extension semantics).
		srcIdx := emitted - dist
		for i := 0; i < length; i++ {
			out[emitted] = out[srcIdx]
			emitted++
			srcIdx++
		}
	}

	if emitted != decodedSize {
		return 0, ErrLengthMismatch
	}
	return emitted, nil
}

// decodeBackref decodes the (length, distance) pair for the shape whose
// marker byte is s, given the follow byte b already read at payload[pos-1].
// It returns the new payload read cursor.
func decodeBackref(ms markerSet, s, b byte, payload []byte, pos int) (length, dist, newPos int, err error) {
	switch s {
	case ms.m1:
		if pos+2 > len(payload) {
			return 0, 0, 0, ErrTruncatedInput
		}
		b2, b3 := payload[pos], payload[pos+1]
		pos += 2
		length = lenDecodeLUT[b&0x1f]
		dist = (int(b&0xE0)<<11 | int(b2)<<8 | int(b3)) + m1OffsetBias
		return length, dist, pos, nil

	case ms.m2:
		if pos+1 > len(payload) {
			return 0, 0, 0, ErrTruncatedInput
		}
		b2 := payload[pos]
		pos++
		length = lenDecodeLUT[b&0x1f]
		dist = (int(b&0xE0)<<3 | int(b2)) + m2OffsetBias
		return length, dist, pos, nil

	case ms.m3:
		length = int(b>>6) + 3
		dist = int(b&0x3f) + m3OffsetBias
		return length, dist, pos, nil

	default: // ms.m4
		length = lenDecodeLUT[b&0x1f]
		dist = int(b>>5) + 1
		return length, dist, pos, nil
	}
}
