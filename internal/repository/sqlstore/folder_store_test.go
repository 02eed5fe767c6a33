package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorapi/internal/model"
)

func TestFolderStore_CreateAndList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderStore(db, "postgres")
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO folders").
		WithArgs("fo1", "Physics", "alice", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "created_at"}).AddRow("fo1", "Physics", "alice", now))
	mock.ExpectQuery("SELECT (.+) FROM folders WHERE user_id = ").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "user_id", "created_at"}).AddRow("fo1", "Physics", "alice", now))

	f, err := repo.Create(ctx, &model.Folder{ID: "fo1", Name: "Physics", UserID: "alice", CreatedAt: now})
	require.NoError(t, err)
	assert.Equal(t, "Physics", f.Name)

	list, err := repo.ListByUser(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderStore_AddDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderStore(db, "postgres")
	ctx := context.Background()

	t.Run("new link", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM document_folders").
			WithArgs("fo1", "d1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectExec("INSERT INTO document_folders").
			WithArgs("d1", "fo1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		added, err := repo.AddDocument(ctx, "fo1", "d1")
		assert.NoError(t, err)
		assert.True(t, added)
	})

	t.Run("existing link", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM document_folders").
			WithArgs("fo1", "d1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		added, err := repo.AddDocument(ctx, "fo1", "d1")
		assert.NoError(t, err)
		assert.False(t, added)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFolderStore_DeleteInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFolderStore(db, "postgres")
	tm := NewTransactionManager(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM document_folders WHERE folder_id").WithArgs("fo1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM folders WHERE id").WithArgs("fo1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = tm.ExecTx(context.Background(), func(ctx context.Context) error {
		return repo.Delete(ctx, "fo1")
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
