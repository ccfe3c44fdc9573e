package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 30, cfg.Auth.AccessTokenExpireMinutes)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, 8081, cfg.Worker.Port)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:   &AuthConfig{AccessTokenExpireMinutes: 5},
		Gemini: &GeminiConfig{Model: "gemini-2.0-flash", Timeout: time.Second},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Worker.Port = 9000

	applyDefaults(cfg)

	assert.Equal(t, 9000, cfg.Worker.Port)

	assert.Equal(t, "1MB", cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, 5, cfg.Auth.AccessTokenExpireMinutes)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, time.Second, cfg.Gemini.Timeout)
}

func TestAuthConfig_AccessTokenTTL(t *testing.T) {
	var nilCfg *AuthConfig
	assert.Equal(t, 30*time.Minute, nilCfg.AccessTokenTTL())
	assert.Equal(t, 30*time.Minute, (&AuthConfig{}).AccessTokenTTL())
	assert.Equal(t, 45*time.Minute, (&AuthConfig{AccessTokenExpireMinutes: 45}).AccessTokenTTL())
}
