// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// MaxEncodedSize returns the guaranteed upper bound on Encode's output size
// for an input of length n: the container always fits in 16 + n bytes,
// because any LZG1 pass that would exceed that falls back to COPY.
func MaxEncodedSize(n int) int {
	return headerSize + n
}

// Encode compresses input per cfg (nil uses DefaultEncoderConfig) and
// returns a complete container: header plus either an LZG1 token stream or,
// if that would overflow MaxEncodedSize, a verbatim COPY body.
func Encode(input []byte, cfg *EncoderConfig) ([]byte, error) {
	if cfg == nil {
		cfg = DefaultEncoderConfig()
	}

	out := make([]byte, headerSize, MaxEncodedSize(len(input)))

	body, ok := encodeLZG1(input, cfg, out)
	if !ok {
		body = append(out[:headerSize], input...)
		writeHeader(body, header{
			decodedSize: uint32(len(input)),
			encodedSize: uint32(len(input)),
			checksum:    checksum(input),
			method:      methodCopy,
		})
		return body, nil
	}

	writeHeader(body, header{
		decodedSize: uint32(len(input)),
		encodedSize: uint32(len(body) - headerSize),
		checksum:    checksum(body[headerSize:]),
		method:      methodLZG1,
	})
	return body, nil
}

// encodeLZG1 runs the marker-selection, search, and cost-model passes and
// appends the LZG1 token stream to out (which already holds the 16 reserved
// header bytes). ok is false if the stream would exceed MaxEncodedSize, in
// which case the caller must fall back to COPY.
func encodeLZG1(input []byte, cfg *EncoderConfig, out []byte) (_ []byte, ok bool) {
	limit := MaxEncodedSize(len(input))

	if headerSize+4 > limit {
		return nil, false
	}

	m1, m2, m3, m4 := selectMarkers(input)
	ms := newMarkerSet(m1, m2, m3, m4)
	out = append(out, m1, m2, m3, m4)

	accel := newSearchAccel(input, cfg.window(), cfg.Fast)

	n := len(input)
	lastPercent := -1
	for p := 0; p < n; {
		if cfg.Progress != nil {
			percent := 100 * p / n
			if percent != lastPercent {
				cfg.Progress(percent, cfg.Userdata)
				lastPercent = percent
			}
		}

		accel.update(p)

		length, dist, found := findMatch(accel, input, ms, p)
		if found {
			var emitOK bool
			out, emitOK = emitBackref(out, ms, length, dist, limit)
			if !emitOK {
				return nil, false
			}

			for i := 1; i < length; i++ {
				accel.update(p + i)
			}
			p += length
			continue
		}

		if len(out) >= limit {
			return nil, false
		}
		out = append(out, input[p])
		if ms.isMarker[input[p]] {
			if len(out) >= limit {
				return nil, false
			}
			out = append(out, 0)
		}
		p++
	}

	if cfg.Progress != nil && lastPercent != 100 {
		cfg.Progress(100, cfg.Userdata)
	}

	return out, true
}

// emitBackref appends the cheapest shape's token for (length, dist) to out,
// returning ok=false if doing so would grow out past limit (an absolute
// byte count from the start of the container, including the header).
func emitBackref(out []byte, ms markerSet, length, dist int, limit int) ([]byte, bool) {
	sh, shOK := cheapestShape(length, dist)
	if !shOK {
		return out, false
	}

	if len(out)+sh.tokenBytes() > limit {
		return out, false
	}

	_, field := quantizeLength(length)

	switch sh {
	case shapeM3:
		marker := ms.m3
		b := byte((length-3)<<6) | byte(dist-m3OffsetBias)
		out = append(out, marker, b)

	case shapeM4:
		marker := ms.m4
		b := byte(field) | byte(dist-1)<<5
		out = append(out, marker, b)

	case shapeM2:
		marker := ms.m2
		raw := dist - m2OffsetBias
		b := byte(field) | byte((raw>>3)&0xE0)
		b2 := byte(raw)
		out = append(out, marker, b, b2)

	default: // shapeM1
		marker := ms.m1
		raw := dist - m1OffsetBias
		b := byte(field) | byte((raw>>11)&0xE0)
		b2 := byte(raw >> 8)
		b3 := byte(raw)
		out = append(out, marker, b, b2, b3)
	}

	return out, true
}
