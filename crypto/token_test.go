package crypto

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestGenerateToken_Length(t *testing.T) {
	tests := []struct {
		name           string
		byteLength     []int
		expectedLength int
	}{
		{name: "default", byteLength: nil, expectedLength: DefaultTokenLength},
		{name: "zero uses default", byteLength: []int{0}, expectedLength: DefaultTokenLength},
		{name: "negative uses default", byteLength: []int{-10}, expectedLength: DefaultTokenLength},
		{name: "16 bytes", byteLength: []int{16}, expectedLength: 16},
		{name: "64 bytes", byteLength: []int{64}, expectedLength: 64},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			token, err := GenerateToken(test.byteLength...)

			// Assert
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}
			decoded, err := base64.RawURLEncoding.DecodeString(token)
			if err != nil {
				t.Fatalf("failed to decode token: %v", err)
			}
			if len(decoded) != test.expectedLength {
				t.Errorf("token length = %d bytes, want %d", len(decoded), test.expectedLength)
			}
			// Verify URL-safe characters
			if strings.ContainsAny(token, "+/= ") {
				t.Errorf("token contains URL-unsafe characters: %q", token)
			}
		})
	}
}

func TestGenerateToken_TooManyArgs(t *testing.T) {
	// Act
	_, err := GenerateToken(16, 32)

	// Assert
	if err != ErrTooManyArgs {
		t.Errorf("GenerateToken(16, 32) error = %v, want ErrTooManyArgs", err)
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	// Arrange
	tokens := make(map[string]bool)
	iterations := 1000

	// Act
	for i := 0; i < iterations; i++ {
		token, err := GenerateToken()
		if err != nil {
			t.Fatalf("GenerateToken() error = %v", err)
		}
		if tokens[token] {
			t.Fatalf("GenerateToken() produced duplicate token after %d iterations", i)
		}
		tokens[token] = true
	}
}
