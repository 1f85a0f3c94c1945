// Package blakeout provides a pure-Go implementation of the Blakeout hash,
// a sequential, memory-dependent digest built on top of BLAKE2s.
//
// Every digest fills a 2 MiB scratchpad one 32-byte slot at a time, each
// slot hashed from the two slots right before it, and then hashes the
// whole scratchpad forwards and reversed.
//
// Example usage:
//
//	hasher, err := blakeout.New(blakeout.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hasher.Update([]byte("block data"))
//	fmt.Println(hasher.ResultHex())
//
// Successive Update calls on one hasher are chained: each digest depends on
// every input fed since construction or the last Reset.
package blakeout

import (
	"errors"
	"fmt"
	"hash"

	"github.com/opd-ai/go-blakeout/internal"
)

const (
	// SlotSize is the size of one scratchpad slot in bytes.
	SlotSize = 32

	// SlotCount is the number of slots in the scratchpad.
	SlotCount = 65536

	// ScratchpadSize is the total scratchpad size in bytes (2 MiB).
	ScratchpadSize = SlotSize * SlotCount

	// Size is the size of a Blakeout digest in bytes.
	Size = SlotSize
)

// ErrOutputSize is returned when a block hash primitive does not produce
// exactly SlotSize bytes.
var ErrOutputSize = errors.New("blakeout: block hash output size must be 32 bytes")

// Primitive selects the block hash the scratchpad is built with.
type Primitive int

const (
	// Blake2s256 is unkeyed BLAKE2s with a 32-byte output.
	// This is the primitive Blakeout is defined over and the default.
	Blake2s256 Primitive = iota

	// Blake2b256 is unkeyed BLAKE2b with a 32-byte output.
	// Digests are not compatible with Blake2s256.
	Blake2b256
)

// String returns the string representation of the primitive.
func (p Primitive) String() string {
	switch p {
	case Blake2s256:
		return "Blake2s256"
	case Blake2b256:
		return "Blake2b256"
	default:
		return fmt.Sprintf("Primitive(%d)", p)
	}
}

// Config specifies the configuration for a Blakeout hasher.
// The zero value selects BLAKE2s-256.
type Config struct {
	// Primitive selects a built-in block hash. Ignored when BlockHash is set.
	Primitive Primitive

	// BlockHash, if set, returns a fresh accumulator for every independent
	// hash computed during a mixing pass. Its Size must be SlotSize.
	BlockHash func() hash.Hash
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	_, err := c.blockHash()
	return err
}

// blockHash resolves the accumulator factory and checks its output size.
func (c *Config) blockHash() (func() hash.Hash, error) {
	newHash := c.BlockHash
	if newHash == nil {
		switch c.Primitive {
		case Blake2s256:
			newHash = internal.NewBlake2s256
		case Blake2b256:
			newHash = internal.NewBlake2b256
		default:
			return nil, fmt.Errorf("blakeout: invalid primitive: %v", c.Primitive)
		}
	}

	h := newHash()
	if h == nil {
		return nil, errors.New("blakeout: block hash factory returned nil")
	}
	if h.Size() != SlotSize {
		return nil, fmt.Errorf("%w: got %d", ErrOutputSize, h.Size())
	}

	return newHash, nil
}

// Hasher computes Blakeout digests. It owns a 2 MiB scratchpad.
//
// A Hasher is not safe for concurrent use; goroutines hashing in parallel
// must each use their own Hasher (or Sum256, which pools them).
type Hasher struct {
	newHash func() hash.Hash
	buffer  []byte
	result  []byte
	chained bool
}

// New creates a new Blakeout hasher with the specified configuration.
// The scratchpad starts zeroed and the hasher is not chained.
func New(config Config) (*Hasher, error) {
	newHash, err := config.blockHash()
	if err != nil {
		return nil, err
	}

	return &Hasher{
		newHash: newHash,
		buffer:  allocateScratchpad(),
	}, nil
}

// Update mixes data into the hasher and computes a new digest.
//
// After the first Update, every later call feeds the previous digest to
// the first slot before data, so the digest covers all inputs since the
// last Reset. Update overwrites the entire scratchpad.
func (h *Hasher) Update(data []byte) {
	var prev []byte
	if h.chained {
		prev = h.result
	}

	traceSeparator("mixing pass")
	traceLog("chained = %v, input = %d bytes", h.chained, len(data))

	h.result = mix(h.newHash, h.buffer, prev, data, h.result[:0])
	h.chained = true

	traceBytes("digest", h.result)
}

// Result returns a copy of the most recent digest.
// It returns nil if Update has never been called.
func (h *Hasher) Result() []byte {
	if h.result == nil {
		return nil
	}
	return append([]byte(nil), h.result...)
}

// ResultHex returns the most recent digest as lowercase hex.
// It returns an empty string if Update has never been called.
func (h *Hasher) ResultHex() string {
	return EncodeHex(h.result)
}

// Reset starts a new chain: the scratchpad is zeroed and the next Update
// will not include the previous digest.
//
// The previous digest stays readable through Result until the next Update
// replaces it.
func (h *Hasher) Reset() {
	h.chained = false
	zeroBytes(h.buffer)
}

// Chained reports whether the next Update folds in the previous digest.
func (h *Hasher) Chained() bool {
	return h.chained
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int {
	return Size
}
