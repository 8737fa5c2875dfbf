// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command caller runs the exercise query helpers from the terminal and prints their reports.
//
// It opens the same runtime as the API (STORE_DRIVER, DATABASE_URL, REDIS_URL), so a report
// printed here is the report the API would serve. On the in-memory driver every invocation
// starts from the demo fixtures.
//
// # Usage
//
//	caller cinema top-director
//	caller catalog listings-in-price-range --min 50000 --max 100000
//	caller token --role admin
//	caller migrate up
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/taibuivan/querylab/internal/app"
	"github.com/taibuivan/querylab/internal/platform/config"
	"github.com/taibuivan/querylab/internal/platform/constants"
)

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// session carries what every subcommand shares: configuration, logger and the lazily opened runtime.
type session struct {
	verbose bool
	logs    io.Writer

	cfg     *config.Config
	logger  *slog.Logger
	runtime *app.Runtime
}

// newRootCmd builds the command tree. Logs go to logs, reports to the command's stdout.
func newRootCmd(logs io.Writer) *cobra.Command {
	s := &session{logs: logs}

	rootCmd := &cobra.Command{
		Use:           "caller",
		Short:         "Run the query exercises and print their reports",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if s.verbose {
				level = slog.LevelDebug
			}
			s.logger = slog.New(slog.NewJSONHandler(s.logs, &slog.HandlerOptions{Level: level})).
				With(slog.String("app", constants.AppName))

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			s.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if s.runtime != nil {
				s.runtime.Close()
				s.runtime = nil
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	rootCmd.AddCommand(
		newCinemaCmd(s),
		newShopCmd(s),
		newPressCmd(s),
		newCatalogCmd(s),
		newMediaCmd(s),
		newPricingCmd(s),
		newHeroesCmd(s),
		newArtifactsCmd(s),
		newTokenCmd(s),
		newMigrateCmd(s),
	)
	return rootCmd
}

// services opens the runtime on first use.
func (s *session) services(ctx context.Context) (*app.Services, error) {
	if s.runtime == nil {
		startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
		defer cancel()

		runtime, err := app.Open(startupCtx, s.cfg, s.logger)
		if err != nil {
			return nil, err
		}
		s.runtime = runtime
	}
	return s.runtime.Services, nil
}

// # Command Builders

// reportFunc computes one report from the exercise services. Flags are read from cmd.
type reportFunc func(cmd *cobra.Command, services *app.Services, args []string) (string, error)

// reportCmd builds a leaf command that prints a single report string.
func reportCmd(s *session, use, short string, positional cobra.PositionalArgs, run reportFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := s.services(cmd.Context())
			if err != nil {
				return err
			}
			report, err := run(cmd, services, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), report)
			return err
		},
	}
}

// printJSON writes value as indented JSON, for helpers that return records instead of text.
func printJSON(cmd *cobra.Command, value any) error {
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return err
}

// optionalFlag returns the flag value, or nil when the flag was not given.
func optionalFlag(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, _ := cmd.Flags().GetString(name)
	return &value
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
