package identity

import (
	"crypto/sha256"
	"encoding/hex"
)

// SubjectID derives the storage key for a contact address: a hex-encoded
// SHA-256 digest. Deterministic and one-way, so the raw address is never
// persisted alongside the OTP record.
func SubjectID(contact string) string {
	sum := sha256.Sum256([]byte(contact))
	return hex.EncodeToString(sum[:])
}
