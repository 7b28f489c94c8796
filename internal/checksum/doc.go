// Package checksum fingerprints document content so reports can tell
// whether two packages carry the same article bytes.
package checksum
