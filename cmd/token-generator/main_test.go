package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/taskdeck-api/internal/config"
	"github.com/phrazzld/taskdeck-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintToken(t *testing.T) {
	cfg := config.AuthConfig{
		JWTSecret:            "0123456789abcdef0123456789abcdef",
		TokenLifetimeMinutes: 30,
	}
	userID := uuid.New()

	var out bytes.Buffer
	require.NoError(t, printToken(context.Background(), cfg, userID, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "User ID: "+userID.String(), lines[0])

	token := strings.TrimPrefix(lines[1], "Token: ")
	svc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), claims.ExpiresAt, time.Minute)
}

func TestPrintToken_InvalidSecret(t *testing.T) {
	var out bytes.Buffer
	err := printToken(context.Background(), config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 30}, uuid.New(), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_InvalidUserID(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-user", "not-a-uuid"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID")
}
