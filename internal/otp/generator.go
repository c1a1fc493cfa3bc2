package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeLength is the number of digits in a generated code.
const CodeLength = 6

var codeSpace = big.NewInt(1000000)

// GenerateCode returns a random 6-digit numeric code, zero-padded,
// drawn uniformly from a cryptographically secure source.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
