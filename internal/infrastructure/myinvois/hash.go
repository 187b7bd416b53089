package myinvois

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// HashDocument computes the SHA-256 content hash (lowercase hex) over the
// document's canonical JSON form. Key order is fixed by struct declaration
// order, so semantically identical inputs always hash identically; the hash
// is used for audit and integrity comparison, not as a cryptographic
// signature.
func HashDocument(doc *InvoiceDocument) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("myinvois: nil document")
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("myinvois: marshaling document for hashing: %w", err)
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}
