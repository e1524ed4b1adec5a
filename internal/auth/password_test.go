package auth

import (
	"strings"
	"testing"
)

func TestHashPassword_PHCFormat(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,p=1$") {
		t.Errorf("hash = %q, want Argon2id PHC prefix", hash)
	}
	if parts := strings.Split(hash, "$"); len(parts) != 6 {
		t.Errorf("hash has %d $-delimited parts, want 6", len(parts))
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	second, err := HashPassword("same password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("swordfish")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	ok, err := VerifyPassword("swordfish", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("VerifyPassword(correct) = false, want true")
	}

	ok, err = VerifyPassword("marlin", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Error("VerifyPassword(wrong) = true, want false")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=1$onlyfiveparts",
		"$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=1$!!!$aGFzaA",
	}

	for _, hash := range cases {
		if _, err := VerifyPassword("anything", hash); err == nil {
			t.Errorf("VerifyPassword(%q) expected error, got nil", hash)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"q", "moneypenny", "agent.007", "m-branch_1", strings.Repeat("a", 64)}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}

	invalid := []string{"", "has space", "naughty!", strings.Repeat("a", 65), "tab\tchar"}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func TestIsValidPassword(t *testing.T) {
	if IsValidPassword("short") {
		t.Error("IsValidPassword(short) = true, want false")
	}
	if !IsValidPassword("longenough") {
		t.Error("IsValidPassword(longenough) = false, want true")
	}
}
