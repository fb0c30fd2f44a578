// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// searchAccel is a hash-chain keyed on a short prefix at each input
// position: "give me recent occurrences of the prefix at position p,
// walking backward through the window". Positions, not pointers, are
// stored, so the tables never depend on the input slice's backing array.
type searchAccel struct {
	input  []byte
	window int
	keyLen int // 2 (default) or 3 ("fast" mode)

	last  []int32 // hash -> most recent position + 1 (0 == none)
	chain []int32 // p % window -> previous position sharing last[hash(p)] + 1
}

// newSearchAccel allocates the tables for a search over input with the
// given window (power of two) and key width. Both tables are released by
// the garbage collector once the encoder call returns; there is no
// explicit Close because Go has no manual free.
func newSearchAccel(input []byte, window int, fast bool) *searchAccel {
	keyLen := 2
	lastSize := 1 << 16
	if fast {
		keyLen = 3
		lastSize = 1 << 24
	}

	return &searchAccel{
		input:  input,
		window: window,
		keyLen: keyLen,
		last:   make([]int32, lastSize),
		chain:  make([]int32, window),
	}
}

// prefixHash hashes input[p:p+keyLen]. For the 2-byte key this is the raw
// 16-bit value; for the 3-byte key it is the raw 24-bit value, which fills
// the "fast" last table exactly. Neither key width has collisions.
func (s *searchAccel) prefixHash(p int) int {
	if s.keyLen == 2 {
		return int(s.input[p])<<8 | int(s.input[p+1])
	}
	return int(s.input[p])<<16 | int(s.input[p+1])<<8 | int(s.input[p+2])
}

// update records position p as the most recent occurrence of its prefix.
// It is a no-op if p+keyLen would run past the end of input.
func (s *searchAccel) update(p int) {
	if p+s.keyLen > len(s.input) {
		return
	}

	h := s.prefixHash(p)
	s.chain[p%s.window] = s.last[h]
	s.last[h] = int32(p) + 1
}

// walk calls visit for each prior position q with p-window <= q < p,
// newest first, stopping early if visit returns false. It must be called
// after update(p): update(p) has already moved the hash bucket's previous
// occupant into chain[p%window], which is exactly the first position this
// walk should see (last[hash(p)] itself now names p, not a prior position).
func (s *searchAccel) walk(p int, visit func(q int) bool) {
	if p+s.keyLen > len(s.input) {
		return
	}

	minPos := 0
	if p >= s.window {
		minPos = p - s.window
	}

	q := int(s.chain[p%s.window]) - 1
	for q >= minPos && q < p {
		if !visit(q) {
			return
		}

		prev := int(s.chain[q%s.window]) - 1
		if prev >= q {
			// A stale slot (overwritten ring entry) pointing forward or at
			// itself would spin forever; treat it as a chain end.
			return
		}
		q = prev
	}
}
