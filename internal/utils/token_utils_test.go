package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	"github.com/SscSPs/printshop_pos/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestJWTRoundTrip(t *testing.T) {
	actor := domain.Actor{ID: "E1", Name: "Lan", Role: domain.RoleStaff}
	now := time.Now()
	token, expiresAt, err := utils.GenerateJWT(actor, secret, time.Hour, "printshop-pos", now)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), expiresAt, time.Second)

	claims, err := utils.ParseAndValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, actor, claims.Actor())
	assert.Equal(t, "printshop-pos", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	actor := domain.Actor{ID: "E1", Name: "Lan", Role: domain.RoleAdmin}

	expired, _, err := utils.GenerateJWT(actor, secret, time.Minute, "x", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(expired, secret)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	valid, _, err := utils.GenerateJWT(actor, secret, time.Hour, "x", time.Now())
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(valid, "other-secret")
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)

	noRole, _, err := utils.GenerateJWT(domain.Actor{ID: "E1"}, secret, time.Hour, "x", time.Now())
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(noRole, secret)
	assert.Error(t, err)
}
