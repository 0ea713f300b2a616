package config

import (
	"strings"
	"testing"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_NAME", "app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_USER", "noreply@example.com")
	t.Setenv("SITEURL", "https://example.com")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("ошибка загрузки конфига: %v", err)
	}

	// Порт подставляется ещё при загрузке, пустым он быть не может
	if cfg.Port != "8080" {
		t.Errorf("ожидался порт по умолчанию 8080, получен %q", cfg.Port)
	}
	if cfg.DbSSLMode != "disable" {
		t.Errorf("ожидался sslmode по умолчанию disable, получен %q", cfg.DbSSLMode)
	}
	if cfg.SessionTTL != "12h" || cfg.ResetTokenTTL != "10m" || cfg.PasswordMinLen != "8" {
		t.Errorf("неожиданные дефолты TTL/политики: %q %q %q", cfg.SessionTTL, cfg.ResetTokenTTL, cfg.PasswordMinLen)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("корректный конфиг не прошёл валидацию: %v", err)
	}
	for _, warn := range warnings {
		if strings.Contains(warn, "PORT") {
			t.Errorf("лишнее предупреждение о порте: %q", warn)
		}
	}
}

func TestValidate_IncompleteDB(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DB_HOST", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("ошибка загрузки конфига: %v", err)
	}
	if _, err := cfg.Validate(); err == nil {
		t.Fatal("конфиг без DB_HOST обязан быть фатальным")
	}
}

func TestValidate_Warnings(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SMTP_HOST", "")
	t.Setenv("SITEURL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("ошибка загрузки конфига: %v", err)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		t.Fatalf("неполный SMTP не должен быть фатальным: %v", err)
	}

	var smtp, siteURL bool
	for _, warn := range warnings {
		if strings.Contains(warn, "SMTP") {
			smtp = true
		}
		if strings.Contains(warn, "SITEURL") {
			siteURL = true
		}
	}
	if !smtp || !siteURL {
		t.Fatalf("ожидались предупреждения про SMTP и SITEURL, получено %v", warnings)
	}
}
