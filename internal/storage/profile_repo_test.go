package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvdgp9/gema8-go/internal/model"
)

func newMockDB(t *testing.T) (*Database, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Database{DB: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestDecrementCredits(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta(`UPDATE profiles SET credits = credits - $1, updated_at = NOW()
		 WHERE user_id = $2 AND credits >= $1`)

	t.Run("sufficient balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)

		mock.ExpectExec(query).
			WithArgs(1, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.DecrementCredits(ctx, 7, 1)
		require.NoError(t, err)
		assert.True(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient balance affects no rows", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)

		mock.ExpectExec(query).
			WithArgs(5, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.DecrementCredits(ctx, 7, 5)
		require.NoError(t, err)
		assert.False(t, ok, "the WHERE guard must report the failed deduction")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)

		now := time.Now()
		rows := sqlmock.NewRows([]string{"user_id", "role", "credits", "current_language", "language_progress", "created_at", "updated_at"}).
			AddRow(int64(7), "Whisper", 500, "indonesian", []byte(`{"indonesian":{"days_active":3,"last_active":"2026-08-30"}}`), now, now)
		mock.ExpectQuery("SELECT user_id, role, credits").WithArgs(int64(7)).WillReturnRows(rows)

		profile, err := repo.FindByUserID(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, model.RoleWhisper, profile.Role)
		assert.Equal(t, 500, profile.Credits)
		assert.Equal(t, 3, profile.LanguageProgress["indonesian"].DaysActive)
	})

	t.Run("missing returns nil without error", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewProfileRepository(db)

		mock.ExpectQuery("SELECT user_id, role, credits").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		profile, err := repo.FindByUserID(ctx, 404)
		require.NoError(t, err)
		assert.Nil(t, profile)
	})
}

func TestSaveOrUpdateTranslation(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "user_id", "original_text", "normalized_text", "translated_text",
		"source_language", "target_language", "use_count", "created_at", "updated_at"}

	t.Run("miss inserts with use count one", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTranslationRepository(db)
		now := time.Now()

		mock.ExpectQuery("SELECT id, user_id, original_text").
			WithArgs(int64(7), "good morning", "english", "indonesian").
			WillReturnRows(sqlmock.NewRows(cols))
		mock.ExpectQuery("INSERT INTO translations").
			WithArgs(int64(7), "Good Morning", "good morning", "selamat pagi", "english", "indonesian").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(1), int64(7), "Good Morning", "good morning", "selamat pagi", "english", "indonesian", 1, now, now))

		saved, err := repo.SaveOrUpdate(ctx, 7, "Good Morning", "selamat pagi", "english", "indonesian")
		require.NoError(t, err)
		assert.Equal(t, 1, saved.UseCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("hit bumps the counter and keeps the stored text", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTranslationRepository(db)
		now := time.Now()

		mock.ExpectQuery("SELECT id, user_id, original_text").
			WithArgs(int64(7), "good morning", "english", "indonesian").
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(1), int64(7), "Good Morning", "good morning", "selamat pagi", "english", "indonesian", 1, now, now))
		mock.ExpectQuery("UPDATE translations SET use_count").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(1), int64(7), "Good Morning", "good morning", "selamat pagi", "english", "indonesian", 2, now, now))

		saved, err := repo.SaveOrUpdate(ctx, 7, "  GOOD   morning ", "a different translation", "english", "indonesian")
		require.NoError(t, err)
		assert.Equal(t, 2, saved.UseCount)
		assert.Equal(t, "selamat pagi", saved.TranslatedText, "first stored translation wins")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
