package blakeout

// Sum256 returns the Blakeout digest of data computed on a fresh
// BLAKE2s-256 hasher. It is safe for concurrent use.
func Sum256(data []byte) [Size]byte {
	h := poolGetHasher()
	defer poolPutHasher(h)

	h.Update(data)

	var sum [Size]byte
	copy(sum[:], h.result)
	return sum
}

// SumHex returns the Blakeout digest of data as lowercase hex.
func SumHex(data []byte) string {
	sum := Sum256(data)
	return EncodeHex(sum[:])
}
