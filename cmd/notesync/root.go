// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const appName = "notesync"

// cli carries the flag values shared by all subcommands.
type cli struct {
	flagCfg *config.StructuredConfig
	verbose bool
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	c := &cli{}

	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	c.flagCfg = config.BindFlags(fs)

	root := &cobra.Command{
		Use:   appName,
		Short: "Collect, encrypt and push local note changes to a sync server",
		Long: `notesync keeps a local note database in step with a remote sync endpoint.
It selects items changed since the last successful synchronization, encrypts
them into envelopes and pushes them together with tombstones for local-only
items.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().AddGoFlagSet(fs)
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newCollectCmd(c),
		newPushCmd(c),
		newWatchCmd(c),
		newImportCmd(c),
		newNotebookCmd(c),
		newVersionCmd(info),
	)

	return root
}

// open resolves configuration and wires the application. remote demands a
// configured sync server.
func (c *cli) open(ctx context.Context, remote bool) (*client.App, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(c.flagCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error getting configs: %w", err)
	}
	if remote {
		if err = cfg.RequireRemote(); err != nil {
			return nil, nil, fmt.Errorf("sync server is not configured: %w", err)
		}
	}

	log := c.newLogger(cfg)

	a, err := client.NewApp(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return a, log, nil
}

func (c *cli) newLogger(cfg *config.ClientConfig) *logger.Logger {
	// stdout is reserved for command output
	log := logger.New(appName, os.Stderr)
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger(appName, cfg.App.LogFile)
	}
	if c.verbose {
		return log
	}
	return log.AtLevel(zerolog.InfoLevel)
}

// withApp runs fn against a freshly opened app and closes it afterwards.
func (c *cli) withApp(cmd *cobra.Command, remote bool, fn func(ctx context.Context, a *client.App) error) error {
	ctx := cmd.Context()
	a, log, err := c.open(ctx, remote)
	if err != nil {
		return err
	}

	err = fn(ctx, a)
	if closeErr := a.Close(); closeErr != nil {
		log.Err(closeErr).Msg("error closing storage")
	}
	return err
}
