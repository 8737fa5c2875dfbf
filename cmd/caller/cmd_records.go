// Copyright (c) 2026 Querylab. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taibuivan/querylab/internal/app"
	"github.com/taibuivan/querylab/internal/core/artifact"
	"github.com/taibuivan/querylab/pkg/pagination"
)

// recordsCmd builds a leaf command that prints records as JSON.
func recordsCmd(s *session, use, short string, positional cobra.PositionalArgs, run func(cmd *cobra.Command, services *app.Services, args []string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  positional,
		RunE: func(cmd *cobra.Command, args []string) error {
			services, err := s.services(cmd.Context())
			if err != nil {
				return err
			}
			records, err := run(cmd, services, args)
			if err != nil {
				return err
			}
			return printJSON(cmd, records)
		},
	}
}

// # Media

func newMediaCmd(s *session) *cobra.Command {
	mediaCmd := &cobra.Command{Use: "media", Short: "Books, movies, music and customers"}

	mediaCmd.AddCommand(
		recordsCmd(s, "books", "List books, newest first", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (any, error) {
				return services.Media.ListBooks(cmd.Context())
			}),
		recordsCmd(s, "movies", "List movies, newest first", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (any, error) {
				return services.Media.ListMovies(cmd.Context())
			}),
		recordsCmd(s, "music", "List music, newest first", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (any, error) {
				return services.Media.ListMusic(cmd.Context())
			}),
		recordsCmd(s, "customer <id>", "Show one customer", cobra.ExactArgs(1),
			func(cmd *cobra.Command, services *app.Services, args []string) (any, error) {
				id, err := parseID(args[0])
				if err != nil {
					return nil, err
				}
				return services.Media.GetCustomer(cmd.Context(), id)
			}),
	)
	return mediaCmd
}

// # Heroes

func newHeroesCmd(s *session) *cobra.Command {
	heroesCmd := &cobra.Command{Use: "heroes", Short: "Hero energy and abilities"}

	heroesCmd.AddCommand(
		reportCmd(s, "use <hero-id> <ability>", "Use an ability (swing_from_buildings or run_at_super_speed)", cobra.ExactArgs(2),
			func(cmd *cobra.Command, services *app.Services, args []string) (string, error) {
				id, err := parseID(args[0])
				if err != nil {
					return "", err
				}
				return services.Hero.UseAbility(cmd.Context(), id, args[1])
			}),
		recordsCmd(s, "recharge <hero-id> <amount>", "Recharge energy, capped at the maximum", cobra.ExactArgs(2),
			func(cmd *cobra.Command, services *app.Services, args []string) (any, error) {
				id, err := parseID(args[0])
				if err != nil {
					return nil, err
				}
				amount, err := strconv.Atoi(args[1])
				if err != nil {
					return nil, fmt.Errorf("invalid amount %q", args[1])
				}
				return services.Hero.RechargeEnergy(cmd.Context(), id, amount)
			}),
	)
	return heroesCmd
}

// # Artifacts

func newArtifactsCmd(s *session) *cobra.Command {
	artifactsCmd := &cobra.Command{Use: "artifacts", Short: "Artifact collection operations"}

	create := reportCmd(s, "create", "Store an artifact", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
			flags := cmd.Flags()
			item := &artifact.Artifact{}
			item.Name, _ = flags.GetString("name")
			item.Origin, _ = flags.GetString("origin")
			item.Age, _ = flags.GetInt("age")
			item.Description, _ = flags.GetString("description")
			item.IsMagical, _ = flags.GetBool("magical")
			return services.Artifact.CreateArtifact(cmd.Context(), item)
		})
	create.Flags().String("name", "", "Artifact name")
	create.Flags().String("origin", "", "Place of origin")
	create.Flags().Int("age", 0, "Age in years")
	create.Flags().String("description", "", "Free text description")
	create.Flags().Bool("magical", false, "Whether the artifact is magical")

	list := recordsCmd(s, "list", "List artifacts ordered by name", cobra.NoArgs,
		func(cmd *cobra.Command, services *app.Services, _ []string) (any, error) {
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")
			artifacts, _, err := services.Artifact.ListArtifacts(cmd.Context(), pagination.Params{Page: page, Limit: limit})
			return artifacts, err
		})
	list.Flags().Int("page", pagination.DefaultPage, "Page number")
	list.Flags().Int("limit", pagination.MaxLimit, "Artifacts per page")

	artifactsCmd.AddCommand(
		create,
		list,
		recordsCmd(s, "rename <id> <name>", "Rename an old magical artifact", cobra.ExactArgs(2),
			func(cmd *cobra.Command, services *app.Services, args []string) (any, error) {
				id, err := parseID(args[0])
				if err != nil {
					return nil, err
				}
				return services.Artifact.RenameArtifact(cmd.Context(), id, args[1])
			}),
		reportCmd(s, "delete-all", "Delete every artifact", cobra.NoArgs,
			func(cmd *cobra.Command, services *app.Services, _ []string) (string, error) {
				deleted, err := services.Artifact.DeleteAllArtifacts(cmd.Context())
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("%d artifacts deleted", deleted), nil
			}),
	)
	return artifactsCmd
}
