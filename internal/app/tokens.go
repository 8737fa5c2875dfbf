// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package app

import (
	"github.com/taibuivan/querylab/internal/platform/config"
	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

// Tokens loads the configured JWT keys.
//
// It returns nil without error when no key path is set: the API then treats every request as
// anonymous and the role-guarded routes answer 401.
func Tokens(cfg *config.Config) (*sec.TokenService, error) {
	if cfg.JWTPrivKeyPath == "" && cfg.JWTPubKeyPath == "" {
		return nil, nil
	}
	return sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
}
