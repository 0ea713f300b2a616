package models

import (
	"errors"
	"testing"
)

func TestSessionKey_Roundtrip(t *testing.T) {
	key := SessionKey{Owner: "alice", Nonce: "8f14e45f-ceea-467f-a187-6c76b7e2b9a1"}

	parsed, err := ParseSessionKey(key.String())
	if err != nil {
		t.Fatalf("ошибка разбора ключа: %v", err)
	}
	if parsed != key {
		t.Fatalf("ключ после разбора изменился: %+v != %+v", parsed, key)
	}
}

func TestParseSessionKey_Invalid(t *testing.T) {
	cases := []string{
		"",
		"alice",
		"sess:alice",
		"sess::nonce",
		"sess:alice:",
		"token:alice:nonce",
	}
	for _, raw := range cases {
		if _, err := ParseSessionKey(raw); !errors.Is(err, ErrBadSessionKey) {
			t.Errorf("ключ %q: ожидалась ErrBadSessionKey, получено %v", raw, err)
		}
	}
}

func TestSessionPattern(t *testing.T) {
	if got := SessionPattern("alice"); got != "sess:alice:*" {
		t.Fatalf("неожиданный шаблон: %s", got)
	}
}
