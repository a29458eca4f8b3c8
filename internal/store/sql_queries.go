// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-note-sync/models"
)

const (
	itemsTable = "items"
	metaTable  = "sync_meta"

	upsertItemSuffix = `ON CONFLICT (collection, id) DO UPDATE SET
		date_modified = excluded.date_modified,
		synced = excluded.synced,
		local_only = excluded.local_only,
		failed = excluded.failed,
		data = excluded.data`

	upsertMetaSuffix = `ON CONFLICT (name) DO UPDATE SET value = excluded.value`
)

var itemColumns = []string{"collection", "id", "date_modified", "synced", "local_only", "data"}

// itemRow is the stored form of one item.
type itemRow struct {
	Collection   models.Collection
	ID           string
	Seq          int64
	DateModified int64
	Synced       bool
	LocalOnly    bool
	Failed       bool
	Data         string
}

// buildSnapshotQuery selects every syncable item. Attachments whose upload
// failed are kept back until the upload is repaired.
func buildSnapshotQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"failed": false}).
		OrderBy("seq", "id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetItemQuery(b sq.StatementBuilderType, kind models.Collection, id string) (string, []any, error) {
	query, args, err := b.
		Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"collection": string(kind), "id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertItemQuery inserts or replaces an item. seq is only written on
// insert so that snapshot order stays the insertion order.
func buildUpsertItemQuery(b sq.StatementBuilderType, row itemRow) (string, []any, error) {
	query, args, err := b.
		Insert(itemsTable).
		Columns("collection", "id", "seq", "date_modified", "synced", "local_only", "failed", "data").
		Values(string(row.Collection), row.ID, row.Seq, row.DateModified, row.Synced, row.LocalOnly, row.Failed, row.Data).
		Suffix(upsertItemSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildMarkSyncedQuery flips synced for one item, provided it was not
// modified after the change-set was collected.
func buildMarkSyncedQuery(b sq.StatementBuilderType, kind models.Collection, ref models.ItemRef) (string, []any, error) {
	query, args, err := b.
		Update(itemsTable).
		Set("synced", true).
		Where(sq.Eq{
			"collection":    string(kind),
			"id":            ref.ID,
			"date_modified": ref.DateModified,
		}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetMetaQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	query, args, err := b.
		Select("value").
		From(metaTable).
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetMetaQuery(b sq.StatementBuilderType, name, value string) (string, []any, error) {
	query, args, err := b.
		Insert(metaTable).
		Columns("name", "value").
		Values(name, value).
		Suffix(upsertMetaSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
