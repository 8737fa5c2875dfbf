// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides the token primitives guarding mutating endpoints.
//
// # Architecture
//
// The API only verifies tokens (public key). The caller CLI mints them (private key).
// Neither side talks to a user store: the role travels inside the signed claims.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrNoSigningKey is returned when minting without a private key.
	ErrNoSigningKey = errors.New("sec: no private key configured")
	// ErrNoVerifyKey is returned when verifying without a public key.
	ErrNoVerifyKey = errors.New("sec: no public key configured")
)

// AuthClaims represents the payload embedded inside an access token.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID string `json:"uid"`
	Role   string `json:"rol"`
}

// TokenService handles generation and verification of RS256 tokens.
type TokenService struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	issuer     string
}

// NewTokenService reads whichever PEM keys are configured.
//
// At least one path must be set; an empty path leaves that half of the service disabled.
func NewTokenService(privateKeyPath, publicKeyPath, issuer string) (*TokenService, error) {
	if privateKeyPath == "" && publicKeyPath == "" {
		return nil, errors.New("sec: neither private nor public key path configured")
	}

	service := &TokenService{issuer: issuer}

	if privateKeyPath != "" {
		data, err := os.ReadFile(privateKeyPath)
		if err != nil {
			return nil, fmt.Errorf("sec: failed to read private key from %s: %w", privateKeyPath, err)
		}
		if service.privateKey, err = jwt.ParseRSAPrivateKeyFromPEM(data); err != nil {
			return nil, fmt.Errorf("sec: failed to parse private key: %w", err)
		}
		service.publicKey = &service.privateKey.PublicKey
	}

	if publicKeyPath != "" {
		data, err := os.ReadFile(publicKeyPath)
		if err != nil {
			return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
		}
		if service.publicKey, err = jwt.ParseRSAPublicKeyFromPEM(data); err != nil {
			return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
		}
	}

	return service, nil
}

// NewTokenServiceFromKey builds a service around an in-memory key pair.
func NewTokenServiceFromKey(privateKey *rsa.PrivateKey, issuer string) *TokenService {
	return &TokenService{privateKey: privateKey, publicKey: &privateKey.PublicKey, issuer: issuer}
}

// GenerateAccessToken mints a signed token for subject with the given role.
func (service *TokenService) GenerateAccessToken(subject string, role UserRole, timeToLive time.Duration) (string, error) {
	if service.privateKey == nil {
		return "", ErrNoSigningKey
	}

	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: subject,
		Role:   string(role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(service.privateKey)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature, issuer and expiry of a token string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	if service.publicKey == nil {
		return nil, ErrNoVerifyKey
	}

	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	}, jwt.WithIssuer(service.issuer))
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
