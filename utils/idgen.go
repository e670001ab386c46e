package utils

import (
	"fmt"
	"math/rand"
)

const idAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// idSuffixLength is the number of random characters after the prefix,
// giving a 62^16 keyspace.
const idSuffixLength = 16

// MaxIDAttempts bounds the collision-retry loop around GenerateID.
const MaxIDAttempts = 5

// GenerateID produces an opaque identifier of the form
// {prefix}_{16 random alphanumeric chars}, e.g. order_Fj3kPq81xLm2ZwQa.
func GenerateID(prefix string) string {
	buf := make([]byte, idSuffixLength)
	for i := range buf {
		buf[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return fmt.Sprintf("%s_%s", prefix, buf)
}

// GenerateUniqueID mints IDs until exists reports the candidate as unused.
// Collisions are vanishingly rare, but the contract is a bounded retry loop,
// not a single-shot assumption of uniqueness. The store's unique primary key
// remains the authoritative guard against insert races.
func GenerateUniqueID(prefix string, exists func(id string) bool) (string, error) {
	for attempt := 0; attempt < MaxIDAttempts; attempt++ {
		id := GenerateID(prefix)
		if !exists(id) {
			return id, nil
		}
		LogError("ID collision for prefix %q on attempt %d", prefix, attempt+1)
	}
	return "", fmt.Errorf("failed to generate a unique %s id after %d attempts", prefix, MaxIDAttempts)
}
