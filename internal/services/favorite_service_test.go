package services

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/promptgallery/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFavorite(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "favorites"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	require.NoError(t, svc.Add(1, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavoriteDuplicateIsClassified(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "favorites"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_user_image"})

	err := svc.Add(1, 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrDuplicateFavorite)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavoriteOtherErrorsAreNotDuplicates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "favorites"`)).
		WillReturnError(errors.New("connection lost"))

	err := svc.Add(1, 7)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrDuplicateFavorite)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavoritesByUser(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "user_id", "prompt", "image_url", "created_at", "favorited_at"}).
		AddRow(9, 1, "newest", "https://example.com/9", now.Add(-time.Hour), now).
		AddRow(4, 1, "older", "https://example.com/4", now.Add(-2*time.Hour), now.Add(-time.Minute))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT images.*, favorites.created_at AS favorited_at FROM "favorites"`)).
		WillReturnRows(rows)

	favorites, err := svc.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, uint(9), favorites[0].ID)
	assert.Equal(t, "newest", favorites[0].Prompt)
	assert.True(t, favorites[0].FavoritedAt.After(favorites[1].FavoritedAt))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavoritesEmptyIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewFavoriteService(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM "favorites"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "prompt", "image_url", "created_at", "favorited_at"}))

	favorites, err := svc.ListByUser(1)
	require.NoError(t, err)
	assert.NotNil(t, favorites)
	assert.Empty(t, favorites)

	require.NoError(t, mock.ExpectationsWereMet())
}
