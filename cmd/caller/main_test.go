// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

// run executes the caller against the seeded in-memory store and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for key, value := range map[string]string{
		"STORE_DRIVER":         "memory",
		"SEED_FIXTURES":        "true",
		"DATABASE_URL":         "",
		"REDIS_URL":            "",
		"JWT_PRIVATE_KEY_PATH": "",
		"JWT_PUBLIC_KEY_PATH":  "",
	} {
		t.Setenv(key, value)
	}

	var stdout bytes.Buffer
	rootCmd := newRootCmd(io.Discard)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}

/*
TestCaller_Reports prints reports computed from the fixtures.
*/
func TestCaller_Reports(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"top_director", []string{"cinema", "top-director"}, "Top Director: Christopher Nolan, movies: 2.\n"},
		{"popular_locations", []string{"catalog", "popular-locations"}, "Sofia: 3 listings\nPlovdiv: 1 listings\n"},
		{"search_without_flags", []string{"press", "search-authors"}, "\n"},
		{"ban_unknown", []string{"press", "ban-author", "--email", "nobody@example.com"}, "No authors banned.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

/*
TestCaller_PriceRange passes float flags through to the catalog helper.
*/
func TestCaller_PriceRange(t *testing.T) {
	out, err := run(t, "catalog", "listings-in-price-range", "--min", "50000", "--max", "100000")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, out, "Apartment in Sofia: 85000.00 (2 bedrooms)")
	assert.Contains(t, out, "Apartment in Plovdiv: 60000.00 (2 bedrooms)")
}

/*
TestCaller_Artifacts renames an artifact and prints the stored record.
*/
func TestCaller_Artifacts(t *testing.T) {
	out, err := run(t, "artifacts", "rename", "1", "Excalibur")
	require.NoError(t, err)

	var renamed artifact.Artifact
	require.NoError(t, json.Unmarshal([]byte(out), &renamed))
	assert.Equal(t, "Excalibur", renamed.Name)

	_, err = run(t, "artifacts", "rename", "abc", "Excalibur")
	assert.Error(t, err)
}

/*
TestCaller_Token mints a token that the API key pair verifies.
*/
func TestCaller_Token(t *testing.T) {
	_, err := run(t, "token")
	assert.ErrorIs(t, err, sec.ErrNoSigningKey)

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "private.pem")
	encoded := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)})
	require.NoError(t, os.WriteFile(path, encoded, 0o600))
	t.Setenv("JWT_PRIVATE_KEY_PATH", path)

	var stdout bytes.Buffer
	rootCmd := newRootCmd(io.Discard)
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"token", "--role", "editor"})
	require.NoError(t, rootCmd.Execute())

	claims, err := sec.NewTokenServiceFromKey(key, constants.AuthIssuer).VerifyToken(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, string(sec.RoleEditor), claims.Role)
	assert.Equal(t, "caller", claims.Subject)
}

/*
TestCaller_MigrateRequiresDatabase refuses to migrate without a DSN.
*/
func TestCaller_MigrateRequiresDatabase(t *testing.T) {
	_, err := run(t, "migrate", "version")
	assert.ErrorIs(t, err, errNoDatabase)
}
