package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// Calculator computes content checksums.
type Calculator interface {
	// CalculateRaw hashes the content as is.
	CalculateRaw(content []byte) string

	// CalculateNormalized hashes the content with line endings unified and
	// a leading byte order mark removed, so the same article saved by
	// different editors hashes the same.
	CalculateNormalized(content []byte) string
}

// SHA256 implements Calculator with SHA-256. It is a zero-size type and is
// safe for concurrent use.
type SHA256 struct{}

func New() SHA256 {
	return SHA256{}
}

func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

func (c SHA256) CalculateNormalized(content []byte) string {
	return c.CalculateRaw(normalize(content))
}

var bom = []byte("\xef\xbb\xbf")

func normalize(content []byte) []byte {
	content = bytes.TrimPrefix(content, bom)
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(content, []byte("\r"), []byte("\n"))
}
