package blakeout

import (
	"hash"
	"slices"
)

// mix runs one mixing pass over buf and appends the 32-byte digest to out.
//
// Slot 0 is the hash of prev followed by data. Each later slot is the hash
// of the (up to) two slots immediately before it, so the fill must run in
// slot order. The digest is the hash of the filled scratchpad followed by
// the same scratchpad reversed; buf is left reversed.
func mix(newHash func() hash.Hash, buf, prev, data, out []byte) []byte {
	d := newHash()
	if len(prev) > 0 {
		d.Write(prev)
	}
	d.Write(data)
	d.Sum(buf[:0])

	traceBytes("slot 0", buf[:SlotSize])

	fillScratchpad(newHash, buf)

	traceBytes("last slot", buf[len(buf)-SlotSize:])

	d = newHash()
	d.Write(buf)
	slices.Reverse(buf)
	d.Write(buf)

	return d.Sum(out)
}

// fillScratchpad derives slots 1..n-1 of buf from their preceding window.
// Slot 0 must already be set.
func fillScratchpad(newHash func() hash.Hash, buf []byte) {
	for x := SlotSize; x < len(buf); x += SlotSize {
		start := x - 2*SlotSize
		if start < 0 {
			start = 0
		}

		d := newHash()
		d.Write(buf[start:x])
		// Sum appends in place: buf[x:x] has room for the slot.
		d.Sum(buf[x:x])
	}
}
