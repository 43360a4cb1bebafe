package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db?sslmode=disable")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("MAIL_USER", "shop@example.com")
	t.Setenv("MAIL_PASSWORD", "pw")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, `"Barbershop" <shop@example.com>`, cfg.Mail.From)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins())
	assert.False(t, cfg.AvatarsEnabled())
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_MalformedPort(t *testing.T) {
	setRequired(t)
	t.Setenv("SMTP_PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	setRequired(t)
	t.Setenv("BCRYPT_COST", "2")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BCRYPT_COST")
}

func TestLoad_S3RequiresCredentials(t *testing.T) {
	setRequired(t)
	t.Setenv("S3_BUCKET", "avatars")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("S3_ACCESS_KEY", "ak")
	t.Setenv("S3_SECRET_KEY", "sk")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AvatarsEnabled())
}

func TestCORSOrigins_Split(t *testing.T) {
	c := &Config{CORSAllowedOrigins: " https://a.com, ,https://b.com "}
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, c.CORSOrigins())
}
