package mocks

import (
	"github.com/tharanikumar/medvault/domain"
)

// MockCodeGenerator implements domain.CodeGenerator interface for testing
type MockCodeGenerator struct {
	GenerateFunc func(length int) (string, error)
}

// NewMockCodeGenerator creates a new MockCodeGenerator with default behaviors
func NewMockCodeGenerator() *MockCodeGenerator {
	return &MockCodeGenerator{}
}

// Generate produces a numeric one-time code
func (m *MockCodeGenerator) Generate(length int) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(length)
	}
	// Default behavior: deterministic code of the requested length
	code := make([]byte, length)
	for i := range code {
		code[i] = byte('1' + i%9)
	}
	return string(code), nil
}

// Compile-time interface compliance verification
var _ domain.CodeGenerator = (*MockCodeGenerator)(nil)
