// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// shape identifies which of the four back-reference encodings a (length,
// offset) pair would use.
type shape int

const (
	shapeM3 shape = iota // "Short": 2 bytes
	shapeM4              // "Near/RLE": 2 bytes
	shapeM2              // "Medium": 3 bytes
	shapeM1              // "Distant": 4 bytes
)

// tokenBytes is the number of bytes a shape's token occupies, including the
// introducing marker byte.
func (s shape) tokenBytes() int {
	switch s {
	case shapeM3, shapeM4:
		return 2
	case shapeM2:
		return 3
	default:
		return 4
	}
}

// cheapestShape returns the least expensive shape that can represent a
// back-reference of the given length and distance, or ok=false if no shape
// covers it (distance out of the format's representable range entirely).
func cheapestShape(length, dist int) (s shape, ok bool) {
	if dist >= m3OffsetMin && dist <= m3OffsetMax && length >= minMatchLen && length <= m3LenMax {
		return shapeM3, true
	}
	if dist >= m4OffsetMin && dist <= m4OffsetMax {
		return shapeM4, true
	}
	if dist >= m2OffsetMin && dist <= m2OffsetMax {
		return shapeM2, true
	}
	if dist >= m1OffsetMin && dist <= m1OffsetMax {
		return shapeM1, true
	}
	return 0, false
}

// literalCost is the encoded byte cost of emitting input[p] as a literal:
// 1 normally, 2 if it collides with a marker and needs a 0x00 escape.
func literalCost(ms markerSet, b byte) int {
	if ms.isMarker[b] {
		return 2
	}
	return 1
}

// findMatch walks accel's candidates for position p, newest first, and
// returns the (length, distance) back-reference with the greatest net byte
// saving over emitting input[p] as a literal, or ok=false if none beats a
// literal.
func findMatch(accel *searchAccel, input []byte, ms markerSet, p int) (length, dist int, ok bool) {
	if p >= len(input) {
		return 0, 0, false
	}

	inEnd := len(input)
	litCost := literalCost(ms, input[p])

	bestWin := 0
	bestLen, bestDist := 0, 0
	found := false

	accel.walk(p, func(q int) bool {
		matchLen := 0
		limit := inEnd - p
		if limit > maxMatchLen {
			limit = maxMatchLen
		}
		for matchLen < limit && input[p+matchLen] == input[q+matchLen] {
			matchLen++
		}

		qLen, _ := quantizeLength(matchLen)
		if qLen < minMatchLen {
			return true // keep walking; this candidate is too short to help
		}

		sh, shOK := cheapestShape(qLen, p-q)
		if !shOK {
			return true
		}

		win := qLen + litCost - sh.tokenBytes()
		if win > bestWin {
			bestWin = win
			bestLen, bestDist = qLen, p-q
			found = true

			if qLen == maxMatchLen {
				return false // exact top-bucket hit: nothing further can improve on this
			}
		}

		return true
	})

	if !found || bestWin <= 0 {
		return 0, 0, false
	}
	return bestLen, bestDist, true
}
