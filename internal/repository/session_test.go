package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"authbox/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func setupRedisTest(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("не удалось запустить miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestSessionRepository_RegisterAndOwner(t *testing.T) {
	client, _ := setupRedisTest(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	key, err := repo.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}
	if key.Owner != "alice" || key.Nonce == "" {
		t.Fatalf("неожиданный ключ сессии: %+v", key)
	}

	owner, err := repo.Owner(ctx, key)
	if err != nil {
		t.Fatalf("ошибка проверки сессии: %v", err)
	}
	if owner != "alice" {
		t.Fatalf("неожиданный владелец: %s", owner)
	}
}

func TestSessionRepository_RevokeAll(t *testing.T) {
	client, _ := setupRedisTest(t)
	repo := NewSessionRepository(client, time.Hour)
	ctx := context.Background()

	var aliceKeys []models.SessionKey
	for i := 0; i < 3; i++ {
		key, err := repo.Register(ctx, "alice")
		if err != nil {
			t.Fatalf("ошибка создания сессии: %v", err)
		}
		aliceKeys = append(aliceKeys, key)
	}
	bobKey, err := repo.Register(ctx, "bob")
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}

	count, err := repo.RevokeAll(ctx, "alice")
	if err != nil {
		t.Fatalf("ошибка отзыва сессий: %v", err)
	}
	if count != 3 {
		t.Fatalf("ожидалось 3 отозванных сессии, получено %d", count)
	}

	for _, key := range aliceKeys {
		if _, err := repo.Owner(ctx, key); !errors.Is(err, ErrNotFound) {
			t.Errorf("сессия %s пережила отзыв: %v", key, err)
		}
	}

	// Чужие сессии не трогаем
	if owner, err := repo.Owner(ctx, bobKey); err != nil || owner != "bob" {
		t.Fatalf("сессия bob пострадала: %s, %v", owner, err)
	}
}

func TestSessionRepository_RevokeAbsent(t *testing.T) {
	client, _ := setupRedisTest(t)
	repo := NewSessionRepository(client, time.Hour)

	key := models.SessionKey{Owner: "ghost", Nonce: "nonce"}
	if err := repo.Revoke(context.Background(), key); err != nil {
		t.Fatalf("отзыв несуществующей сессии должен быть успешным: %v", err)
	}
}

func TestSessionRepository_Expiry(t *testing.T) {
	client, mr := setupRedisTest(t)
	repo := NewSessionRepository(client, 10*time.Minute)
	ctx := context.Background()

	key, err := repo.Register(ctx, "alice")
	if err != nil {
		t.Fatalf("ошибка создания сессии: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	if _, err := repo.Owner(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("просроченная сессия всё ещё жива: %v", err)
	}
}

func TestResetTokenRepository_ConsumeOnce(t *testing.T) {
	client, _ := setupRedisTest(t)
	repo := NewResetTokenRepository(client)
	ctx := context.Background()

	if err := repo.Save(ctx, "digest-1", "alice", 10*time.Minute); err != nil {
		t.Fatalf("ошибка сохранения токена: %v", err)
	}

	username, err := repo.Consume(ctx, "digest-1")
	if err != nil {
		t.Fatalf("ошибка чтения токена: %v", err)
	}
	if username != "alice" {
		t.Fatalf("неожиданный владелец токена: %s", username)
	}

	// Повторное чтение — токен уже погашен
	if _, err := repo.Consume(ctx, "digest-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ожидалась ErrNotFound, получено %v", err)
	}
}

func TestResetTokenRepository_Expiry(t *testing.T) {
	client, mr := setupRedisTest(t)
	repo := NewResetTokenRepository(client)
	ctx := context.Background()

	if err := repo.Save(ctx, "digest-2", "alice", 10*time.Minute); err != nil {
		t.Fatalf("ошибка сохранения токена: %v", err)
	}

	mr.FastForward(11 * time.Minute)

	if _, err := repo.Consume(ctx, "digest-2"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("просроченный токен всё ещё читается: %v", err)
	}
}
