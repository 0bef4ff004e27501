package hashing

import (
	"fmt"

	"github.com/zeebo/blake3"
)

// OutputSize is the native BLAKE3 digest length in bytes.
const OutputSize = 32

// KeySize is the key length required for keyed hashing.
const KeySize = 32

// Engine is an incremental BLAKE3 hasher. The initialization mode
// (plain, keyed, or derive-key) is fixed when the engine is created
// and survives Reset.
type Engine struct {
	h *blake3.Hasher
}

// NewEngine creates a plain-digest engine.
func NewEngine() *Engine {
	return &Engine{h: blake3.New()}
}

// NewKeyedEngine creates an engine in keyed (MAC) mode.
// The key must be exactly KeySize bytes.
func NewKeyedEngine(key []byte) (*Engine, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("keyed mode requires a %d-byte key, got %d", KeySize, len(key))
	}
	h, err := blake3.NewKeyed(key)
	if err != nil {
		return nil, err
	}
	return &Engine{h: h}, nil
}

// NewDeriveKeyEngine creates an engine in key-derivation mode for the
// given context string.
func NewDeriveKeyEngine(context string) *Engine {
	return &Engine{h: blake3.NewDeriveKey(context)}
}

// Update absorbs p into the hash state. Chunk boundaries are not
// observable: any split of the input yields the same digest.
func (e *Engine) Update(p []byte) {
	// Hasher.Write never returns an error.
	_, _ = e.h.Write(p)
}

// Finalize returns n bytes of output without mutating the state, so
// it may be called repeatedly, with differing lengths (extensible
// output). n <= 0 selects the native OutputSize.
func (e *Engine) Finalize(n int) []byte {
	if n <= 0 {
		n = OutputSize
	}
	out := make([]byte, n)
	// Digest returns an independent output reader over the current
	// state; the reader's stream is unbounded and Read never fails.
	_, _ = e.h.Digest().Read(out)
	return out
}

// Reset clears accumulated input while preserving the mode chosen at
// construction time.
func (e *Engine) Reset() {
	e.h.Reset()
}
