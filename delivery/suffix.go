package delivery

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// suffixBytes is the amount of randomness in a name suffix. Eight bytes
// hex-encode to sixteen characters, short enough to fit inside every AWS
// name limit the pipeline deals with.
const suffixBytes = 8

var suffixPattern = regexp.MustCompile(`^[0-9a-f]{16}$`)

// NewSuffix returns a fresh random name suffix: sixteen lowercase hex
// characters.
func NewSuffix() (string, error) {
	raw := make([]byte, suffixBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating name suffix: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// validateSuffix checks that a pinned suffix has the same shape a generated
// one would have.
func validateSuffix(suffix string) error {
	if !suffixPattern.MatchString(suffix) {
		return fmt.Errorf("%q must be 16 lowercase hex characters", suffix)
	}
	return nil
}
