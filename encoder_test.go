package lzg1

import (
	"bytes"
	"testing"
)

func TestMaxEncodedSize(t *testing.T) {
	if got := MaxEncodedSize(0); got != headerSize {
		t.Errorf("MaxEncodedSize(0) = %d, want %d", got, headerSize)
	}
	if got := MaxEncodedSize(100); got != headerSize+100 {
		t.Errorf("MaxEncodedSize(100) = %d, want %d", got, headerSize+100)
	}
}

func TestEncode_EmptyInput(t *testing.T) {
	out, err := Encode(nil, nil)
	if err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	if len(out) < headerSize {
		t.Fatalf("Encode(nil) produced %d bytes, want at least the header", len(out))
	}
	if n := DecodedSize(out); n != 0 {
		t.Fatalf("DecodedSize = %d, want 0", n)
	}
}

func TestEncode_NilConfigUsesDefault(t *testing.T) {
	data := bytes.Repeat([]byte("hello world "), 20)
	out, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(out, len(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("round trip mismatch with default config")
	}
}

func TestEncode_NeverExceedsMaxEncodedSize(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0x00},
		bytes.Repeat([]byte{0xAA}, 5),
		[]byte("the quick brown fox jumps over the lazy dog"),
		randomish(4096),
	}
	for _, in := range inputs {
		out, err := Encode(in, nil)
		if err != nil {
			t.Fatalf("Encode(%d bytes): %v", len(in), err)
		}
		if len(out) > MaxEncodedSize(len(in)) {
			t.Fatalf("Encode(%d bytes) produced %d bytes, exceeds MaxEncodedSize %d",
				len(in), len(out), MaxEncodedSize(len(in)))
		}
	}
}

func TestEncode_IncompressibleFallsBackToCopy(t *testing.T) {
	// Pseudo-random input (no 3-byte sequence repeats, so no back-reference
	// can win) makes the LZG1 pass overflow header+input, exercising the
	// COPY fallback path.
	data := randomish(2000)
	out, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if out[15] != methodCopy {
		t.Fatalf("method = %d, want methodCopy (%d)", out[15], methodCopy)
	}
	decoded, err := Decode(out, len(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("round trip mismatch on incompressible input")
	}
}

func TestEncode_ProgressCallbackReachesCompletion(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 500)
	var percents []int
	cfg := &EncoderConfig{Level: 5, Fast: true, Progress: func(p int, _ any) {
		percents = append(percents, p)
	}}
	if _, err := Encode(data, cfg); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(percents) == 0 {
		t.Fatal("progress callback was never invoked")
	}
	if percents[len(percents)-1] != 100 {
		t.Fatalf("final progress report = %d, want 100", percents[len(percents)-1])
	}
}

func TestEmitBackref_RespectsLimit(t *testing.T) {
	ms := newMarkerSet(1, 2, 3, 4)
	out := make([]byte, 5)
	if _, ok := emitBackref(out, ms, 10, 5, 6); ok {
		t.Fatal("emitBackref should fail when the token would exceed limit")
	}
	if _, ok := emitBackref(out, ms, 10, 5, 7); !ok {
		t.Fatal("emitBackref should succeed when the token exactly fits limit")
	}
}

func TestEmitBackref_RejectsUnrepresentableDistance(t *testing.T) {
	ms := newMarkerSet(1, 2, 3, 4)
	out := make([]byte, 0, 16)
	if _, ok := emitBackref(out, ms, 3, 0, 1000); ok {
		t.Fatal("emitBackref should reject distance 0")
	}
}

// randomish returns a deterministic pseudo-random byte slice with no
// internal repeats long enough to match, for exercising the COPY fallback.
func randomish(n int) []byte {
	out := make([]byte, n)
	state := uint32(0x2545F491)
	for i := range out {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		out[i] = byte(state)
	}
	return out
}
