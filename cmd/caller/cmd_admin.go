// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/querylab/internal/app"
	"github.com/taibuivan/querylab/internal/platform/constants"
	"github.com/taibuivan/querylab/internal/platform/migration"
	"github.com/taibuivan/querylab/internal/platform/sec"
)

// # Token

func newTokenCmd(s *session) *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the API write endpoints",
		Long: `Mint an RS256 token signed with JWT_PRIVATE_KEY_PATH.

Roles:
  editor - may create records
  admin  - may also run bulk updates and destructive operations`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			roleName, _ := cmd.Flags().GetString("role")
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			role, err := sec.ParseRole(roleName)
			if err != nil {
				return err
			}

			tokens, err := app.Tokens(s.cfg)
			if err != nil {
				return err
			}
			if tokens == nil {
				return sec.ErrNoSigningKey
			}

			token, err := tokens.GenerateAccessToken(subject, role, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	tokenCmd.Flags().String("role", string(sec.RoleAdmin), "Role carried by the token (admin, editor, viewer)")
	tokenCmd.Flags().String("subject", "caller", "Subject claim")
	tokenCmd.Flags().Duration("ttl", constants.AdminTokenTTL, "Token lifetime")
	return tokenCmd
}

// # Migrate

var errNoDatabase = errors.New("migrate: DATABASE_URL is not set")

func newMigrateCmd(s *session) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the PostgreSQL schema",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if root := cmd.Root(); root.PersistentPreRunE != nil {
				if err := root.PersistentPreRunE(cmd, args); err != nil {
					return err
				}
			}
			if s.cfg.DatabaseURL == "" {
				return errNoDatabase
			}
			return nil
		},
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply every pending migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migration.RunUp(s.cfg.DatabaseURL, s.cfg.MigrationPath, s.logger)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				steps = parsed
			}
			return migration.RunDown(s.cfg.DatabaseURL, s.cfg.MigrationPath, steps, s.logger)
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			version, dirty, err := migration.Version(s.cfg.DatabaseURL, s.cfg.MigrationPath, s.logger)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %t)\n", version, dirty)
			return err
		},
	}

	migrateCmd.AddCommand(upCmd, downCmd, versionCmd)
	return migrateCmd
}
