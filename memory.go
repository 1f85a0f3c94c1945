package blakeout

import (
	"sync"
)

// Global pool for one-shot hashing to minimize 2 MiB allocations

var hasherPool = sync.Pool{
	New: func() interface{} {
		h, err := New(Config{})
		if err != nil {
			// The default primitive always validates.
			panic(err)
		}
		return h
	},
}

// poolGetHasher retrieves a default hasher from the pool, ready for a new chain.
func poolGetHasher() *Hasher {
	h := hasherPool.Get().(*Hasher)
	if h.chained {
		h.Reset()
	}
	return h
}

// poolPutHasher returns a hasher to the pool for reuse.
func poolPutHasher(h *Hasher) {
	if h != nil {
		hasherPool.Put(h)
	}
}

// allocateScratchpad returns a zeroed scratchpad buffer.
func allocateScratchpad() []byte {
	return make([]byte, ScratchpadSize)
}

// zeroBytes clears a byte slice.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
