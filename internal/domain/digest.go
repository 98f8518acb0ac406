package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// DigestBytes computes the content digest of a source document. Documents
// with equal bytes share a digest regardless of filename.
func DigestBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DigestText computes the digest of exact input text, used to key
// embedding-cache entries.
func DigestText(text string) string {
	return DigestBytes([]byte(text))
}
