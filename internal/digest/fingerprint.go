// Package digest fingerprints lookup results.
//
// Two lookups that returned the same payload share a fingerprint, which makes
// a repeated lookup easy to compare by eye.
package digest

import (
	"encoding/binary"
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/blake2b"

	"biblia/internal/domain"
)

// Fingerprint returns a short hex fingerprint of r.
//
// It hashes the kind and every payload line with BLAKE2b-256 and truncates
// to 10 bytes (20 hex chars). Lines are length-prefixed so ["ab"] and
// ["a","b"] differ.
func Fingerprint(r domain.Result) string {
	h, _ := blake2b.New256(nil) // nil key never errors
	writeField(h, r.Kind.String())
	for _, line := range r.Lines() {
		writeField(h, line)
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}

func writeField(h hash.Hash, s string) {
	_, _ = h.Write(binary.LittleEndian.AppendUint64(nil, uint64(len(s))))
	_, _ = h.Write([]byte(s))
}
