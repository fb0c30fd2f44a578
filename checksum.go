// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// checksumMod is the largest prime below 2^16, the same modulus used by
// Adler-32 and other small running-sum checksums to keep the two
// accumulators from overflowing for a long time between reductions.
const checksumMod = 65521

// checksum computes a deterministic 32-bit integrity value over data. It is
// a two-accumulator running sum (Adler-32 shaped): a catches single-byte
// substitutions and truncation, b (the sum of the running a values) makes
// the result sensitive to byte order, so transpositions and single-bit
// flips change the output. checksum(nil) == 0.
func checksum(data []byte) uint32 {
	const nMax = 5552 // largest n such that 255*n*(n+1)/2 + (n+1)*(mod-1) <= 2^32-1

	a, b := uint32(1), uint32(0)
	for len(data) > 0 {
		chunk := data
		if len(chunk) > nMax {
			chunk = chunk[:nMax]
		}
		for _, c := range chunk {
			a += uint32(c)
			b += a
		}
		a %= checksumMod
		b %= checksumMod
		data = data[len(chunk):]
	}

	if a == 1 && b == 0 {
		return 0
	}
	return b<<16 | a
}
