// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-sync/internal/client"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/validators"
	"github.com/MKhiriev/go-note-sync/models"
)

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Load items into the local database from a JSON export",
		Long: `import reads a JSON object keyed by collection name. Keyed collections hold
arrays of items, "settings" holds a single object:

  {"note": [{"id": "n1", "dateModified": 1700000000000, "title": "hi"}],
   "settings": {"dateModified": 1700000000000, "theme": "dark"}}

Items replace stored items with the same collection and id. Pass "-" to read
standard input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			export, err := parseExport(data)
			if err != nil {
				return err
			}
			if err = export.validate(cmd.Context(), validators.NewItemValidator()); err != nil {
				return fmt.Errorf("invalid import file: %w", err)
			}

			return c.withApp(cmd, false, func(ctx context.Context, a *client.App) error {
				n, err := export.save(ctx, a.Storages.Collections)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d items\n", n)
				return nil
			})
		},
	}
}

// export is a decoded import file.
type export struct {
	items    map[models.Collection][]models.Item
	settings *models.Settings
}

func parseExport(data []byte) (*export, error) {
	var raw map[models.Collection]json.RawMessage
	if err := unmarshalNumbers(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid import file: %w", err)
	}

	out := &export{items: make(map[models.Collection][]models.Item)}
	for kind, body := range raw {
		switch {
		case kind == models.CollectionSettings:
			var fields models.Item
			if err := unmarshalNumbers(body, &fields); err != nil {
				return nil, fmt.Errorf("invalid settings: %w", err)
			}
			out.settings = &models.Settings{Fields: fields}
		case kind.Valid():
			var items []models.Item
			if err := unmarshalNumbers(body, &items); err != nil {
				return nil, fmt.Errorf("invalid %s items: %w", kind, err)
			}
			out.items[kind] = slices.DeleteFunc(items, func(item models.Item) bool { return item == nil })
		default:
			return nil, fmt.Errorf("%w: %q", store.ErrUnknownCollection, kind)
		}
	}

	return out, nil
}

func (e *export) validate(ctx context.Context, v validators.Validator) error {
	for _, kind := range models.KeyedCollections {
		if len(e.items[kind]) == 0 {
			continue
		}
		if err := v.Validate(ctx, e.items[kind]); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
	}
	if e.settings != nil {
		return v.Validate(ctx, e.settings)
	}
	return nil
}

// save writes keyed collections in processing order, settings last.
func (e *export) save(ctx context.Context, repo store.CollectionRepository) (int, error) {
	var n int
	for _, kind := range models.KeyedCollections {
		items := e.items[kind]
		if len(items) == 0 {
			continue
		}
		if err := repo.SaveItems(ctx, kind, items...); err != nil {
			return n, fmt.Errorf("import %s: %w", kind, err)
		}
		n += len(items)
	}

	if e.settings != nil {
		if err := repo.SaveSettings(ctx, *e.settings); err != nil {
			return n, fmt.Errorf("import settings: %w", err)
		}
		n++
	}

	return n, nil
}

// unmarshalNumbers keeps numbers as json.Number so that large epoch
// timestamps survive unchanged.
func unmarshalNumbers(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return data, nil
}
