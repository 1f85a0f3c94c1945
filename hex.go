package blakeout

import "encoding/hex"

// EncodeHex returns the lowercase hex encoding of b, two digits per byte
// with no separators. An empty slice encodes to an empty string.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
