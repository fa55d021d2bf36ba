package mysql_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	repo "github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/repository/mysql"
)

func TestThreadAddNewThread(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `threads`")).
		WithArgs("thread-123", "sebuah thread", "sebuah body", sqlmock.AnyArg(), "user-123").
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := repo.NewThreadRepository(db, fixedID).
		AddNewThread(context.TODO(), domain.NewThread{Title: "sebuah thread", Body: "sebuah body"}, "user-123")

	require.NoError(t, err)
	assert.Equal(t, domain.Thread{ID: "thread-123", Title: "sebuah thread", Owner: "user-123"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadVerifyAvailability(t *testing.T) {
	query := regexp.QuoteMeta("SELECT count(*) FROM `threads` WHERE id = ?")

	t.Run("exists", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("thread-123").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := repo.NewThreadRepository(db, fixedID).VerifyThreadAvailability(context.TODO(), "thread-123")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WithArgs("thread-404").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := repo.NewThreadRepository(db, fixedID).VerifyThreadAvailability(context.TODO(), "thread-404")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("db failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		boom := errors.New("bad connection")
		mock.ExpectQuery(query).WillReturnError(boom)

		err := repo.NewThreadRepository(db, fixedID).VerifyThreadAvailability(context.TODO(), "thread-123")
		assert.ErrorIs(t, err, boom)
	})
}

func TestThreadGetDetail(t *testing.T) {
	query := regexp.QuoteMeta("SELECT threads.id, threads.title, threads.body, threads.date, users.username FROM `threads` JOIN users ON users.id = threads.owner WHERE threads.id = ?")

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		date := time.Date(2021, 8, 8, 7, 19, 9, 0, time.UTC)
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}).
				AddRow("thread-123", "sebuah thread", "sebuah body", date, "dicoding"))

		got, err := repo.NewThreadRepository(db, fixedID).GetThreadDetailByThreadID(context.TODO(), "thread-123")

		require.NoError(t, err)
		assert.Equal(t, "dicoding", got.Username)
		assert.True(t, date.Equal(got.Date))
		assert.Nil(t, got.Comments)
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}))

		_, err := repo.NewThreadRepository(db, fixedID).GetThreadDetailByThreadID(context.TODO(), "thread-404")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestThreadFetchIDs(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `threads`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-1").AddRow("thread-2"))

	ids, err := repo.NewThreadRepository(db, fixedID).FetchIDs(context.TODO())

	require.NoError(t, err)
	assert.Equal(t, []string{"thread-1", "thread-2"}, ids)
}
