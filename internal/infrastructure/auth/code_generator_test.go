package auth

import (
	"testing"
)

func TestCodeGeneratorImpl_Generate(t *testing.T) {
	gen := NewCodeGenerator()

	tests := []struct {
		name      string
		length    int
		expectErr bool
	}{
		{"six digit code", 6, false},
		{"four digit code", 4, false},
		{"zero length rejected", 0, true},
		{"negative length rejected", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := gen.Generate(tt.length)

			if tt.expectErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(code) != tt.length {
				t.Errorf("expected length %d, got %d", tt.length, len(code))
			}
			for _, c := range code {
				if c < '0' || c > '9' {
					t.Errorf("expected numeric code, got %q", code)
					break
				}
			}
		})
	}
}

func TestCodeGeneratorImpl_GenerateVaries(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		code, err := gen.Generate(6)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen[code] = true
	}
	// 20 identical six-digit draws would mean a broken entropy source
	if len(seen) == 1 {
		t.Error("expected generated codes to vary")
	}
}
