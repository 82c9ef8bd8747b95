package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/tharanikumar/medvault/domain"
)

// CodeGeneratorImpl implements domain.CodeGenerator using crypto/rand.
// Each digit is drawn independently, so leading zeros are possible.
type CodeGeneratorImpl struct{}

// NewCodeGenerator creates a new code generator
func NewCodeGenerator() domain.CodeGenerator {
	return &CodeGeneratorImpl{}
}

// Generate implements domain.CodeGenerator
func (g *CodeGeneratorImpl) Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid code length %d", length)
	}

	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}
