// SPDX-License-Identifier: MIT
// Source: github.com/lzg1/lzg1

package lzg1

// windowSizes maps Level (1..9) to the search window in bytes. Out-of-range
// levels clamp to this table's bounds.
var windowSizes = [9]int{
	2048, 4096, 8192, 16384, 32768, 65536, 131072, 262144, 524288,
}

// ProgressFunc is invoked from the encoder driver whenever the integer
// progress percentage changes. It must not mutate the buffers passed to
// Encode; Encode does not recover a panic it raises, so the panic aborts the
// encode and propagates to Encode's caller.
type ProgressFunc func(percent int, userdata any)

// EncoderConfig configures Encode.
type EncoderConfig struct {
	// Level selects the search window from windowSizes; 1..9, clamped.
	Level int
	// Fast selects a 3-byte hash key (more memory, faster/weaker search)
	// instead of a 2-byte key. DefaultEncoderConfig sets it to true.
	Fast bool
	// Progress, if non-nil, is called synchronously as encoding advances.
	Progress ProgressFunc
	// Userdata is passed through to Progress unmodified.
	Userdata any
}

// DefaultEncoderConfig returns the package defaults: level 5, 3-byte hash
// keys (Fast), no progress callback.
func DefaultEncoderConfig() *EncoderConfig {
	return &EncoderConfig{Level: 5, Fast: true}
}

// window returns the clamped search window size in bytes for cfg.
func (cfg *EncoderConfig) window() int {
	level := cfg.Level
	if level < 1 {
		level = 1
	}
	if level > len(windowSizes) {
		level = len(windowSizes)
	}
	return windowSizes[level-1]
}
