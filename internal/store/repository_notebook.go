// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

// Notebook payload fields touched by topic operations.
const (
	fieldTopics    = "topics"
	fieldNotebooks = "notebooks"
	fieldTitle     = "title"
)

type notebookRepository struct {
	*DB
	now    func() time.Time
	seq    func() int64
	logger *logger.Logger
}

// NewNotebookRepository constructs a [NotebookRepository] backed by db.
func NewNotebookRepository(db *DB, logger *logger.Logger) NotebookRepository {
	return &notebookRepository{
		DB:     db,
		now:    time.Now,
		seq:    func() int64 { return time.Now().UnixNano() },
		logger: logger,
	}
}

// topicEdit mutates a notebook and, when noteID is set, the note. It
// reports an error when the edit does not apply.
type topicEdit func(notebook models.Item, topics map[string][]string, note models.Item) error

func (r *notebookRepository) AddTopic(ctx context.Context, notebookID, topic string) error {
	return r.edit(ctx, "notebookRepository.AddTopic", notebookID, topic, "",
		func(_ models.Item, topics map[string][]string, _ models.Item) error {
			if _, ok := topics[topic]; ok {
				return ErrTopicExists
			}
			topics[topic] = []string{}
			return nil
		})
}

func (r *notebookRepository) DeleteTopic(ctx context.Context, notebookID, topic string) error {
	return r.edit(ctx, "notebookRepository.DeleteTopic", notebookID, topic, "",
		func(_ models.Item, topics map[string][]string, _ models.Item) error {
			if _, ok := topics[topic]; !ok {
				return ErrTopicNotFound
			}
			delete(topics, topic)
			return nil
		})
}

func (r *notebookRepository) AddNoteToTopic(ctx context.Context, notebookID, topic, noteID string) error {
	return r.edit(ctx, "notebookRepository.AddNoteToTopic", notebookID, topic, noteID,
		func(notebook models.Item, topics map[string][]string, note models.Item) error {
			notes, ok := topics[topic]
			if !ok {
				return ErrTopicNotFound
			}
			if slices.Contains(notes, noteID) {
				return ErrNoteAlreadyInTopic
			}
			topics[topic] = append(notes, noteID)

			membership := stringMap(note[fieldNotebooks])
			membership[notebookID] = notebook[fieldTitle]
			note[fieldNotebooks] = membership
			return nil
		})
}

func (r *notebookRepository) DeleteNoteFromTopic(ctx context.Context, notebookID, topic, noteID string) error {
	return r.edit(ctx, "notebookRepository.DeleteNoteFromTopic", notebookID, topic, noteID,
		func(_ models.Item, topics map[string][]string, note models.Item) error {
			notes, ok := topics[topic]
			if !ok {
				return ErrTopicNotFound
			}
			idx := slices.Index(notes, noteID)
			if idx < 0 {
				return ErrNoteNotInTopic
			}
			topics[topic] = slices.Delete(notes, idx, idx+1)

			membership := stringMap(note[fieldNotebooks])
			delete(membership, notebookID)
			note[fieldNotebooks] = membership
			return nil
		})
}

// edit loads the notebook (and the note), applies fn and writes the
// changed items back in one transaction.
func (r *notebookRepository) edit(ctx context.Context, funcName, notebookID, topic, noteID string, fn topicEdit) error {
	log := logger.FromContext(ctx)

	if topic == "" {
		return ErrEmptyTopic
	}
	if notebookID == "" {
		return ErrNotebookNotFound
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	notebook, err := r.loadTx(ctx, tx, models.CollectionNotebook, notebookID, ErrNotebookNotFound)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("notebook_id", notebookID).Msg("failed to load notebook")
		return err
	}

	var note models.Item
	if noteID != "" {
		note, err = r.loadTx(ctx, tx, models.CollectionNote, noteID, ErrNoteNotFound)
		if err != nil {
			log.Err(err).Str("func", funcName).Str("note_id", noteID).Msg("failed to load note")
			return err
		}
	}

	topics := topicsOf(notebook)
	if err = fn(notebook, topics, note); err != nil {
		return err
	}
	notebook[fieldTopics] = topics

	now := r.now().UnixMilli()
	if err = r.touchTx(ctx, tx, models.CollectionNotebook, notebook, now); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to save notebook")
		return err
	}
	if note != nil {
		if err = r.touchTx(ctx, tx, models.CollectionNote, note, now); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to save note")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *notebookRepository) loadTx(ctx context.Context, tx *sql.Tx, kind models.Collection, id string, notFound error) (models.Item, error) {
	query, args, err := buildGetItemQuery(r.builder, kind, id)
	if err != nil {
		return nil, err
	}

	_, item, err := scanItem(tx.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound
	}
	return item, err
}

// touchTx stores item as modified at now and not yet synced.
func (r *notebookRepository) touchTx(ctx context.Context, tx *sql.Tx, kind models.Collection, item models.Item, now int64) error {
	item[models.FieldDateModified] = now
	item[models.FieldSynced] = false

	row, err := newItemRow(kind, item, r.seq())
	if err != nil {
		return err
	}

	query, args, err := buildUpsertItemQuery(r.builder, row)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w (id=%s): %w", ErrExecutingStatement, row.ID, err)
	}
	return nil
}

// topicsOf converts the decoded topics field into topic -> note ids.
func topicsOf(notebook models.Item) map[string][]string {
	out := make(map[string][]string)

	raw, _ := notebook[fieldTopics].(map[string]any)
	for topic, v := range raw {
		list, _ := v.([]any)
		ids := make([]string, 0, len(list))
		for _, id := range list {
			if s, ok := id.(string); ok {
				ids = append(ids, s)
			}
		}
		out[topic] = ids
	}

	if typed, ok := notebook[fieldTopics].(map[string][]string); ok {
		for topic, ids := range typed {
			out[topic] = slices.Clone(ids)
		}
	}

	return out
}

func stringMap(v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return map[string]any{}
	}
	return m
}
