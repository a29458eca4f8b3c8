// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"slices"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	getItemQuery = "SELECT collection, id, date_modified, synced, local_only, data FROM items WHERE collection = ? AND id = ?"
	testEditTime = int64(1_700_000_000_000)
)

func newTestNotebookRepository(t *testing.T) (*notebookRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &notebookRepository{
		DB:     newDBFromSQL(db),
		now:    func() time.Time { return time.UnixMilli(testEditTime) },
		seq:    func() int64 { return 1 },
		logger: logger.Nop(),
	}, mock
}

func expectItem(mock sqlmock.Sqlmock, kind models.Collection, id, data string) {
	mock.ExpectQuery(regexp.QuoteMeta(getItemQuery)).
		WithArgs(string(kind), id).
		WillReturnRows(sqlmock.NewRows(itemColumns).AddRow(string(kind), id, int64(10), true, false, data))
}

func topicNotes(item models.Item, topic string) ([]string, bool) {
	topics, _ := item[fieldTopics].(map[string]any)
	raw, ok := topics[topic].([]any)
	if !ok {
		return nil, false
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		ids = append(ids, v.(string))
	}
	return ids, true
}

func TestNotebookRepository_AddTopic(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"title":"Work","topics":{"General":["n1"]}}`)
	mock.ExpectExec("INSERT INTO items").
		WithArgs("notebook", "nb1", int64(1), testEditTime, false, false, false, jsonArg{check: func(item models.Item) bool {
			general, ok := topicNotes(item, "General")
			planning, added := topicNotes(item, "Planning")
			return ok && slices.Equal(general, []string{"n1"}) && added && len(planning) == 0
		}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AddTopic(testContext(), "nb1", "Planning"))
}

func TestNotebookRepository_AddTopic_Exists(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{"General":[]}}`)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.AddTopic(testContext(), "nb1", "General"), ErrTopicExists)
}

func TestNotebookRepository_NotebookNotFound(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(getItemQuery)).
		WithArgs("notebook", "missing").
		WillReturnRows(sqlmock.NewRows(itemColumns))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteTopic(testContext(), "missing", "General"), ErrNotebookNotFound)
}

func TestNotebookRepository_EmptyArguments(t *testing.T) {
	repo, _ := newTestNotebookRepository(t)

	assert.ErrorIs(t, repo.AddTopic(testContext(), "nb1", ""), ErrEmptyTopic)
	assert.ErrorIs(t, repo.AddTopic(testContext(), "", "General"), ErrNotebookNotFound)
}

func TestNotebookRepository_DeleteTopic(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{"General":[],"Old":["n1"]}}`)
	mock.ExpectExec("INSERT INTO items").
		WithArgs("notebook", "nb1", int64(1), testEditTime, false, false, false, jsonArg{check: func(item models.Item) bool {
			_, old := topicNotes(item, "Old")
			_, general := topicNotes(item, "General")
			return !old && general
		}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteTopic(testContext(), "nb1", "Old"))
}

func TestNotebookRepository_DeleteTopic_NotFound(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{}}`)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteTopic(testContext(), "nb1", "Nope"), ErrTopicNotFound)
}

func TestNotebookRepository_AddNoteToTopic(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"title":"Work","topics":{"General":[]}}`)
	expectItem(mock, models.CollectionNote, "n1", `{"title":"todo"}`)
	mock.ExpectExec("INSERT INTO items").
		WithArgs("notebook", "nb1", int64(1), testEditTime, false, false, false, jsonArg{check: func(item models.Item) bool {
			notes, ok := topicNotes(item, "General")
			return ok && slices.Equal(notes, []string{"n1"})
		}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO items").
		WithArgs("note", "n1", int64(1), testEditTime, false, false, false, jsonArg{check: func(item models.Item) bool {
			membership, _ := item[fieldNotebooks].(map[string]any)
			return membership["nb1"] == "Work"
		}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.AddNoteToTopic(testContext(), "nb1", "General", "n1"))
}

func TestNotebookRepository_AddNoteToTopic_Errors(t *testing.T) {
	tests := []struct {
		name     string
		notebook string
		topic    string
		wantErr  error
	}{
		{
			name:     "unknown topic",
			notebook: `{"topics":{"General":[]}}`,
			topic:    "Other",
			wantErr:  ErrTopicNotFound,
		},
		{
			name:     "already a member",
			notebook: `{"topics":{"General":["n1"]}}`,
			topic:    "General",
			wantErr:  ErrNoteAlreadyInTopic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNotebookRepository(t)

			mock.ExpectBegin()
			expectItem(mock, models.CollectionNotebook, "nb1", tt.notebook)
			expectItem(mock, models.CollectionNote, "n1", `{}`)
			mock.ExpectRollback()

			assert.ErrorIs(t, repo.AddNoteToTopic(testContext(), "nb1", tt.topic, "n1"), tt.wantErr)
		})
	}
}

func TestNotebookRepository_AddNoteToTopic_NoteNotFound(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{"General":[]}}`)
	mock.ExpectQuery(regexp.QuoteMeta(getItemQuery)).
		WithArgs("note", "ghost").
		WillReturnRows(sqlmock.NewRows(itemColumns))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.AddNoteToTopic(testContext(), "nb1", "General", "ghost"), ErrNoteNotFound)
}

func TestNotebookRepository_DeleteNoteFromTopic(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{"General":["n0","n1","n2"]}}`)
	expectItem(mock, models.CollectionNote, "n1", `{"notebooks":{"nb1":"Work","nb2":"Home"}}`)
	mock.ExpectExec("INSERT INTO items").
		WithArgs("notebook", "nb1", int64(1), testEditTime, false, false, false, jsonArg{check: func(item models.Item) bool {
			notes, _ := topicNotes(item, "General")
			return slices.Equal(notes, []string{"n0", "n2"})
		}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO items").
		WithArgs("note", "n1", int64(1), testEditTime, false, false, false, jsonArg{check: func(item models.Item) bool {
			membership, _ := item[fieldNotebooks].(map[string]any)
			_, stillIn := membership["nb1"]
			return !stillIn && membership["nb2"] == "Home"
		}}).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteNoteFromTopic(testContext(), "nb1", "General", "n1"))
}

func TestNotebookRepository_DeleteNoteFromTopic_NotMember(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{"General":["n2"]}}`)
	expectItem(mock, models.CollectionNote, "n1", `{}`)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.DeleteNoteFromTopic(testContext(), "nb1", "General", "n1"), ErrNoteNotInTopic)
}

func TestNotebookRepository_CommitError(t *testing.T) {
	repo, mock := newTestNotebookRepository(t)

	mock.ExpectBegin()
	expectItem(mock, models.CollectionNotebook, "nb1", `{"topics":{}}`)
	mock.ExpectExec("INSERT INTO items").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	assert.ErrorIs(t, repo.AddTopic(testContext(), "nb1", "General"), ErrCommitingTransaction)
}
