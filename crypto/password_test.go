package crypto

import (
	"strings"
	"testing"
)

func TestBcrypt_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "success", password: "testPassword123", wantErr: false},
		{name: "empty password", password: "", wantErr: false},
		{name: "unicode", password: "パスワード🔐", wantErr: false},
		{name: "special chars", password: "p@ssw0rd!#$%", wantErr: false},
		{name: "too long for bcrypt", password: strings.Repeat("a", 128), wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := NewBcrypt()

			// Act
			hash, err := b.Hash(test.password)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("Hash() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr {
				if hash == "" {
					t.Error("Hash() returned empty hash")
				}
				if !strings.HasPrefix(hash, "$2") {
					t.Errorf("Hash() = %q, want bcrypt format", hash)
				}
			}
		})
	}
}

func TestBcrypt_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	b := NewBcrypt()
	password := "samePassword"

	// Act
	hash1, _ := b.Hash(password)
	hash2, _ := b.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

func TestBcrypt_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "correctPassword", attempt: "correctPassword", wantOk: true},
		{name: "wrong password", password: "correctPassword", attempt: "wrongPassword", wantOk: false},
		{name: "case sensitive", password: "correctPassword", attempt: "correctpassword", wantOk: false},
		{name: "extra character", password: "correctPassword", attempt: "correctPassword1", wantOk: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			b := NewBcrypt()
			hash, err := b.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			ok := b.Verify(hash, test.attempt)

			// Assert
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}

// Requirement: a malformed stored hash verifies false and leaks nothing about
// whether the format or the password was wrong.
func TestPasswordHandlers_Verify_MalformedHash(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{name: "empty", hash: ""},
		{name: "garbage", hash: "not-a-hash"},
		{name: "truncated argon2", hash: "$argon2id$v=19$m=65536"},
		{name: "wrong algorithm", hash: "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{name: "bad salt encoding", hash: "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
		{name: "bad params", hash: "$argon2id$v=19$m=x,t=y,p=z$c2FsdA$aGFzaA"},
	}

	handlers := map[string]PasswordHandler{
		"bcrypt": NewBcrypt(),
		"argon2": NewArgon2(),
	}

	for handlerName, handler := range handlers {
		for _, test := range tests {
			t.Run(handlerName+"/"+test.name, func(t *testing.T) {
				if handler.Verify(test.hash, "anyPassword") {
					t.Errorf("Verify(%q) = true, want false", test.hash)
				}
			})
		}
	}
}

func TestArgon2_Hash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "success", password: "testPassword123"},
		{name: "empty password", password: ""},
		{name: "long password", password: strings.Repeat("a", 128)},
		{name: "null byte", password: "pass\x00word"},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()

			// Act
			hash, err := a.Hash(test.password)

			// Assert
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if !strings.HasPrefix(hash, "$argon2id$") {
				t.Error("Hash() should start with $argon2id$")
			}
			if len(strings.Split(hash, "$")) != 6 {
				t.Error("Hash() should have 6 parts")
			}
		})
	}
}

func TestArgon2_Hash_UniqueSalts(t *testing.T) {
	// Arrange
	a := NewArgon2()
	password := "samePassword"

	// Act
	hash1, _ := a.Hash(password)
	hash2, _ := a.Hash(password)

	// Assert
	if hash1 == hash2 {
		t.Error("Hash() should generate different hashes with unique salts")
	}
}

func TestArgon2_Verify(t *testing.T) {
	tests := []struct {
		name     string
		password string
		attempt  string
		wantOk   bool
	}{
		{name: "correct password", password: "correctPassword", attempt: "correctPassword", wantOk: true},
		{name: "wrong password", password: "correctPassword", attempt: "wrongPassword", wantOk: false},
		{name: "case sensitive", password: "correctPassword", attempt: "correctpassword", wantOk: false},
		{name: "single char difference", password: "thisIsAVeryLongPasswordToTestSingleCharDiff", attempt: "thisIsAVeryLongPasswordXoTestSingleCharDiff", wantOk: false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			a := NewArgon2()
			hash, err := a.Hash(test.password)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}

			// Act
			ok := a.Verify(hash, test.attempt)

			// Assert
			if ok != test.wantOk {
				t.Errorf("Verify() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}
