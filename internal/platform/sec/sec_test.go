// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/platform/sec"
)

func newService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKey(key, issuer)
}

/*
TestTokenService_RoundTrip mints a token and verifies it with the same key pair.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newService(t, "querylab.test")

	token, err := service.GenerateAccessToken("ops", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

/*
TestTokenService_Rejects covers expired tokens, foreign keys and foreign issuers.
*/
func TestTokenService_Rejects(t *testing.T) {
	service := newService(t, "querylab.test")

	expired, err := service.GenerateAccessToken("ops", sec.RoleAdmin, -time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(expired)
	assert.Error(t, err)

	foreign, err := newService(t, "querylab.test").GenerateAccessToken("ops", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(foreign)
	assert.Error(t, err)

	shared := mustKey(t)
	token, err := sec.NewTokenServiceFromKey(shared, "elsewhere").GenerateAccessToken("ops", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)
	_, err = sec.NewTokenServiceFromKey(shared, "querylab.test").VerifyToken(token)
	assert.Error(t, err)
}

/*
TestUserRole_AtLeast checks the role hierarchy.
*/
func TestUserRole_AtLeast(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleEditor))
	assert.True(t, sec.RoleEditor.AtLeast(sec.RoleEditor))
	assert.False(t, sec.RoleViewer.AtLeast(sec.RoleEditor))
	assert.False(t, sec.UserRole("guest").AtLeast(sec.RoleViewer))

	role, err := sec.ParseRole("editor")
	require.NoError(t, err)
	assert.Equal(t, sec.RoleEditor, role)

	_, err = sec.ParseRole("root")
	assert.Error(t, err)
}

func mustKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}
