package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// CodeGenerator produces email verification codes.
type CodeGenerator interface {
	Generate() (string, error)
}

// RandomCodeGenerator draws six-digit codes in 100000..999999 from crypto/rand.
type RandomCodeGenerator struct{}

var codeRange = big.NewInt(900000)

// Generate implements CodeGenerator.
func (RandomCodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, codeRange)
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
