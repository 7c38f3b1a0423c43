package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// twoFACodeSpan covers the six-digit range [100000, 999999].
const (
	twoFACodeMin  = 100000
	twoFACodeSpan = 900000
)

// GenerateTwoFACode draws a uniform six-digit verification code from the OS
// CSPRNG. The lower bound keeps the leading digit non-zero so every code is
// exactly six characters.
//
// Returns the code as a string, or an error if the random read fails.
func GenerateTwoFACode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(twoFACodeSpan))
	if err != nil {
		return "", fmt.Errorf("error generating verification code: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+twoFACodeMin), nil
}
