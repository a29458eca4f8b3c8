// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
)

func newCollectCmd(c *cli) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "collect",
		Short: "Print the change-set the next push would send, without sending it",
		Long:  "Print the change-set the next push would send, without sending it.\n\n" +
			"Nothing is written to the local database: on a fresh database the key\n" +
			"material is generated for this run only and a later push creates its own.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, false, func(ctx context.Context, a *client.App) error {
				cs, err := a.Services.SyncService.Collect(ctx, force)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), cs)
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Include every item regardless of synced flag and checkpoint")

	return cmd
}

func newPushCmd(c *cli) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Collect, encrypt and push local changes to the sync server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				res, err := a.Services.SyncService.Push(ctx, force)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), res)
			})
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Resend every item regardless of synced flag and checkpoint")

	return cmd
}

func newWatchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Push periodically and whenever the local database changes",
		Long: `watch runs until interrupted. A push is attempted every sync interval and,
for a SQLite database, after the database file has been quiet for the watch
debounce period.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, true, func(ctx context.Context, a *client.App) error {
				return a.Run(ctx)
			})
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
