package lzg1

import (
	"bytes"
	"testing"
)

// seedScenarios exercises the named end-to-end shapes a conforming encoder
// and decoder must agree on: empty input, single byte, long RLE runs that
// force M4, medium-distance repeats that force M2/M1, and a histogram
// dense enough to push marker selection across all 256 byte values.
func seedScenarios() map[string][]byte {
	scenarios := map[string][]byte{
		"empty":        {},
		"one byte":     {0x7F},
		"all same byte": bytes.Repeat([]byte{0x00}, 500),
		"short repeat":  bytes.Repeat([]byte("ab"), 200),
		"long distance repeat": append(
			append([]byte("the quick brown fox jumps over the lazy dog "), bytes.Repeat([]byte{'.'}, 3000)...),
			[]byte("the quick brown fox jumps over the lazy dog ")...),
		"every byte value once": func() []byte {
			b := make([]byte, 256)
			for i := range b {
				b[i] = byte(i)
			}
			return b
		}(),
		"every byte value plus one extra": func() []byte {
			b := make([]byte, 257)
			for i := 0; i < 256; i++ {
				b[i] = byte(i)
			}
			b[256] = 0x41
			return b
		}(),
	}
	return scenarios
}

func TestRoundTrip_SeedScenarios(t *testing.T) {
	for name, data := range seedScenarios() {
		t.Run(name, func(t *testing.T) {
			for level := 1; level <= 9; level++ {
				cfg := &EncoderConfig{Level: level, Fast: level%2 == 0}
				encoded, err := Encode(data, cfg)
				if err != nil {
					t.Fatalf("Encode(level=%d): %v", level, err)
				}
				if len(encoded) > MaxEncodedSize(len(data)) {
					t.Fatalf("Encode(level=%d) exceeded MaxEncodedSize", level)
				}

				n := DecodedSize(encoded)
				if int(n) != len(data) {
					t.Fatalf("DecodedSize(level=%d) = %d, want %d", level, n, len(data))
				}

				decoded, err := Decode(encoded, int(n))
				if err != nil {
					t.Fatalf("Decode(level=%d): %v", level, err)
				}
				if !bytes.Equal(decoded, data) {
					t.Fatalf("Decode(level=%d) round-trip mismatch", level)
				}
			}
		})
	}
}

func TestRoundTrip_NearMaxMatchLengthBoundary(t *testing.T) {
	// 130 repeats of a byte forces the encoder through the lenDecodeLUT's
	// top bucket (128) plus a short remainder, exercising the chunking at
	// the quantizer's boundary.
	data := bytes.Repeat([]byte{0x55}, 130)
	encoded, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(encoded, len(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Fatal("round trip mismatch at maxMatchLen boundary")
	}
}

func TestRoundTrip_CorruptionIsDetected(t *testing.T) {
	data := bytes.Repeat([]byte("corruption detection payload "), 50)
	encoded, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for i := headerSize; i < len(encoded); i++ {
		mutated := append([]byte(nil), encoded...)
		mutated[i] ^= 0xFF
		if _, err := Decode(mutated, len(data)); err == nil {
			t.Fatalf("flipping byte %d went undetected", i)
		}
	}
}

func TestRoundTrip_HeaderMutationRejected(t *testing.T) {
	data := []byte("small payload")
	encoded, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	mutated := append([]byte(nil), encoded...)
	mutated[0] = 'X' // corrupt magic
	if _, err := Decode(mutated, len(data)); err != ErrBadMagic {
		t.Fatalf("Decode with corrupt magic = %v, want ErrBadMagic", err)
	}
}

func TestRoundTrip_OutputCapacityExactlyDecodedSize(t *testing.T) {
	data := []byte("exact capacity test")
	encoded, err := Encode(data, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	n := DecodedSize(encoded)
	if _, err := Decode(encoded, int(n)); err != nil {
		t.Fatalf("Decode with exact capacity: %v", err)
	}
	if _, err := Decode(encoded, int(n)-1); err != ErrShortOutput {
		t.Fatalf("Decode with capacity-1 = %v, want ErrShortOutput", err)
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, data := range seedScenarios() {
		f.Add(data)
	}
	f.Add([]byte("the quick brown fox"))

	f.Fuzz(func(t *testing.T, data []byte) {
		encoded, err := Encode(data, nil)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if len(encoded) > MaxEncodedSize(len(data)) {
			t.Fatalf("Encode exceeded MaxEncodedSize: %d > %d", len(encoded), MaxEncodedSize(len(data)))
		}

		n := DecodedSize(encoded)
		decoded, err := Decode(encoded, int(n))
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("round trip mismatch for %d-byte input", len(data))
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Encode(data, nil); err != nil {
			b.Fatalf("Encode: %v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog "), 200)
	encoded, err := Encode(data, nil)
	if err != nil {
		b.Fatalf("Encode: %v", err)
	}
	n := int(DecodedSize(encoded))

	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(encoded, n); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}
