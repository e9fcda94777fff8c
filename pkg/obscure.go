package pkg

import (
	"fmt"

	"github.com/mr-tron/base58"
)

// Encode obfuscates a field value before it is written to the database.
// This is reversible encoding, not encryption; it only keeps values from
// being readable in plain text.
func Encode(text string) string {
	return base58.Encode([]byte(text))
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	raw, err := base58.Decode(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode stored value: %v", err)
	}
	return string(raw), nil
}
