package ratelimiter

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// KeyFunc maps a raw identifier, such as a client address, to a storage key.
type KeyFunc func(identifier string) string

// PlainKey returns the identifier unchanged.
func PlainKey(identifier string) string {
	return identifier
}

// HashedKey returns a KeyFunc producing a keyed BLAKE2b-128 digest of the
// identifier, hex encoded. With an empty secret it falls back to PlainKey.
func HashedKey(secret []byte) KeyFunc {
	if len(secret) == 0 {
		return PlainKey
	}
	if len(secret) > blake2b.Size {
		sum := blake2b.Sum256(secret)
		secret = sum[:]
	}

	return func(identifier string) string {
		if identifier == "" {
			return ""
		}
		// Key length is bounded above, so New cannot fail.
		h, _ := blake2b.New(16, secret)
		h.Write([]byte(identifier))
		return hex.EncodeToString(h.Sum(nil))
	}
}
