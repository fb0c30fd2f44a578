// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// Container header layout: 16 bytes, big-endian multi-byte fields.
const (
	headerSize = 16

	methodCopy = 0
	methodLZG1 = 1
)

var magic = [3]byte{'L', 'Z', 'G'}

// Back-reference bounds shared by the cost model and the emitter.
const (
	minMatchLen = 3
	maxMatchLen = 128

	// M1 "Distant". Bit width of the packed offset field is 19 bits
	// (3 from the follow byte, 8 from b2, 8 from b3), so the field's true
	// capacity starts right after M2's ends (2055): at 2056, not 2057.
	m1OffsetMin  = 2056
	m1OffsetMax  = 526343
	m1OffsetBias = 2056

	// M2 "Medium". Packed offset field is 11 bits (3 from the follow byte,
	// 8 from b2); its top end is one below M1's bias so the two shapes
	// tile the offset space without a gap or overlap.
	m2OffsetMin  = 9
	m2OffsetMax  = 2055
	m2OffsetBias = 8

	// M3 "Short"
	m3OffsetMin  = 9
	m3OffsetMax  = 71
	m3OffsetBias = 8
	m3LenMax     = 6

	// M4 "Near/RLE"
	m4OffsetMin = 1
	m4OffsetMax = 8
)

// lenDecodeLUT maps a 5-bit length field (0..31) to an effective copy length.
// Index 0 (length 2) is unreachable in a valid stream since L >= minMatchLen.
var lenDecodeLUT = [32]int{
	2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17,
	18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 35, 48, 72, 128,
}

// lenEncodeLUT maps an intended raw match length (0..128) down to the
// nearest representable bucket and returns its 5-bit field. Built once from
// lenDecodeLUT so the two tables can never drift apart.
var lenEncodeLUT = buildLenEncodeLUT()

func buildLenEncodeLUT() [maxMatchLen + 1]int {
	var enc [maxMatchLen + 1]int
	field := 0
	for length := 0; length <= maxMatchLen; length++ {
		for field < len(lenDecodeLUT)-1 && lenDecodeLUT[field+1] <= length {
			field++
		}
		enc[length] = field
	}
	return enc
}

// quantizeLength rounds a raw match length down to the length the LUT can
// represent, returning both the decoded length and its 5-bit field.
func quantizeLength(raw int) (length int, field int) {
	if raw > maxMatchLen {
		raw = maxMatchLen
	}
	field = lenEncodeLUT[raw]
	return lenDecodeLUT[field], field
}
