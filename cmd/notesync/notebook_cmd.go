// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

func newNotebookCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notebook",
		Short: "Edit notebook topics and note membership in the local database",
	}

	topic := &cobra.Command{Use: "topic", Short: "Manage notebook topics"}
	topic.AddCommand(
		notebookEdit(c, "add NOTEBOOK TOPIC", "Add a topic to a notebook", 2,
			func(ctx context.Context, repo store.NotebookRepository, args []string) error {
				return repo.AddTopic(ctx, args[0], args[1])
			}),
		notebookEdit(c, "rm NOTEBOOK TOPIC", "Delete a topic and detach its notes", 2,
			func(ctx context.Context, repo store.NotebookRepository, args []string) error {
				return repo.DeleteTopic(ctx, args[0], args[1])
			}),
	)

	note := &cobra.Command{Use: "note", Short: "Manage notes filed under topics"}
	note.AddCommand(
		notebookEdit(c, "add NOTEBOOK TOPIC NOTE", "File a note under a topic", 3,
			func(ctx context.Context, repo store.NotebookRepository, args []string) error {
				return repo.AddNoteToTopic(ctx, args[0], args[1], args[2])
			}),
		notebookEdit(c, "rm NOTEBOOK TOPIC NOTE", "Remove a note from a topic", 3,
			func(ctx context.Context, repo store.NotebookRepository, args []string) error {
				return repo.DeleteNoteFromTopic(ctx, args[0], args[1], args[2])
			}),
	)

	cmd.AddCommand(topic, note)
	return cmd
}

type notebookEditFunc func(ctx context.Context, repo store.NotebookRepository, args []string) error

func notebookEdit(c *cli, use, short string, nargs int, fn notebookEditFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withApp(cmd, false, func(ctx context.Context, a *client.App) error {
				if err := fn(ctx, a.Services.Notebooks, args); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return nil
			})
		},
	}
}
