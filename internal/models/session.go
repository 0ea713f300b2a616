package models

import (
	"errors"
	"fmt"
	"strings"
)

const sessionKeyPrefix = "sess"

// SessionKey — структурированный идентификатор сессии: владелец + случайный nonce.
// Кодируется как sess:<owner>:<nonce>, поэтому все сессии пользователя
// перечисляются по префиксу sess:<owner>:.
type SessionKey struct {
	Owner string
	Nonce string
}

var ErrBadSessionKey = errors.New("некорректный ключ сессии")

func (k SessionKey) String() string {
	return fmt.Sprintf("%s:%s:%s", sessionKeyPrefix, k.Owner, k.Nonce)
}

// IsZero — ключ не заполнен (сессия не создавалась).
func (k SessionKey) IsZero() bool {
	return k.Owner == "" && k.Nonce == ""
}

// SessionPattern — шаблон для перебора всех сессий пользователя.
func SessionPattern(owner string) string {
	return fmt.Sprintf("%s:%s:*", sessionKeyPrefix, owner)
}

// ParseSessionKey разбирает строковую форму ключа. Owner не может содержать
// двоеточие — это гарантируется валидацией username при регистрации.
func ParseSessionKey(s string) (SessionKey, error) {
	parts := strings.SplitN(s, ":", 3)
	if len(parts) != 3 || parts[0] != sessionKeyPrefix || parts[1] == "" || parts[2] == "" {
		return SessionKey{}, ErrBadSessionKey
	}
	return SessionKey{Owner: parts[1], Nonce: parts[2]}, nil
}
