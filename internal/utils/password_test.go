package utils

import (
	"errors"
	"strings"
	"testing"
)

func TestHashPassword_Roundtrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("неожиданный формат дайджеста: %s", hash)
	}

	ok, err := CheckPasswordHash("secret1", hash)
	if err != nil {
		t.Fatalf("ошибка проверки: %v", err)
	}
	if !ok {
		t.Fatal("верный пароль не прошёл проверку")
	}

	ok, err = CheckPasswordHash("secret2", hash)
	if err != nil {
		t.Fatalf("ошибка проверки: %v", err)
	}
	if ok {
		t.Fatal("неверный пароль прошёл проверку")
	}
}

func TestHashPassword_SaltUnique(t *testing.T) {
	h1, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	h2, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if h1 == h2 {
		t.Fatal("два хеша одного пароля совпали — соль не случайная")
	}
}

func TestCheckPasswordHash_Malformed(t *testing.T) {
	cases := []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$not-base64!$aGFzaA",
		"$argon2id$v=19$bad-params$c2FsdA$aGFzaA",
	}
	for _, digest := range cases {
		if _, err := CheckPasswordHash("secret1", digest); !errors.Is(err, ErrMalformedHash) {
			t.Errorf("дайджест %q: ожидалась ErrMalformedHash, получено %v", digest, err)
		}
	}
}
