// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// markerSet names the four byte values reserved as back-reference
// introducers in one LZG1 stream, plus a 256-entry membership table built
// once so the hot encode/decode loops can test marker-ness with a single
// array load instead of four comparisons.
type markerSet struct {
	m1, m2, m3, m4 byte
	isMarker       [256]bool
}

func newMarkerSet(m1, m2, m3, m4 byte) markerSet {
	ms := markerSet{m1: m1, m2: m2, m3: m3, m4: m4}
	// Colliding marker values simply share a table slot; a correct encoder
	// never emits the shape whose marker lost the collision.
	ms.isMarker[m1] = true
	ms.isMarker[m2] = true
	ms.isMarker[m3] = true
	ms.isMarker[m4] = true
	return ms
}

// selectMarkers returns the four byte values with the lowest occurrence
// counts in input, breaking ties by lower byte value first so two encoders
// run on the same input agree bit-exactly. If input is empty any four
// distinct values are acceptable since the decoder never reads them.
func selectMarkers(input []byte) (m1, m2, m3, m4 byte) {
	var hist [256]int
	for _, b := range input {
		hist[b]++
	}

	order := make([]int, 256)
	for i := range order {
		order[i] = i
	}

	// Stable, deterministic sort by (count, value): insertion sort is fine
	// here since the slice is always exactly 256 elements.
	for i := 1; i < len(order); i++ {
		j := i
		for j > 0 && less(hist, order[j], order[j-1]) {
			order[j], order[j-1] = order[j-1], order[j]
			j--
		}
	}

	return byte(order[0]), byte(order[1]), byte(order[2]), byte(order[3])
}

func less(hist [256]int, a, b int) bool {
	if hist[a] != hist[b] {
		return hist[a] < hist[b]
	}
	return a < b
}
