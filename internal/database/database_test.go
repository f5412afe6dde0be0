package database

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mrlokans/audaroky/internal/kvstore"
)

// setupTestDB creates a fresh test database
func setupTestDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabase(t *testing.T) {
	db := setupTestDB(t)

	t.Run("absent key", func(t *testing.T) {
		_, ok, err := db.Get("user_progress")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set and get", func(t *testing.T) {
		require.NoError(t, db.Set("user_progress", `{"unlockedLevels":["A"]}`))
		v, ok, err := db.Get("user_progress")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"unlockedLevels":["A"]}`, v)
	})

	t.Run("keys and delete", func(t *testing.T) {
		require.NoError(t, db.Set("audaroky_cache_word_cat_ru", "{}"))
		keys, err := db.Keys("audaroky_cache_")
		require.NoError(t, err)
		assert.Equal(t, []string{"audaroky_cache_word_cat_ru"}, keys)

		require.NoError(t, db.Delete("audaroky_cache_word_cat_ru"))
		keys, err = db.Keys("audaroky_cache_")
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("empty key", func(t *testing.T) {
		assert.ErrorIs(t, db.Set("", "v"), kvstore.ErrEmptyKey)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, db.Ping())
	})
}

func TestDatabase_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := NewDatabase(path, nil)
	require.NoError(t, err)
	require.NoError(t, db.Set("user_xp", "42"))
	require.NoError(t, db.Close())

	db, err = NewDatabase(path, nil)
	require.NoError(t, err)
	defer db.Close()

	v, ok, err := db.Get("user_xp")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", v)
}

func TestDatabase_GormLogsGoToZap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"), zap.New(core))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormLogs := func() *observer.ObservedLogs {
		return logs.Filter(func(e observer.LoggedEntry) bool { return e.LoggerName == "gorm" })
	}

	_, ok, err := db.Get("audaroky_cache_word_house_es")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, gormLogs().Len())

	db.DB.Logger.Error(context.Background(), "disk %s", "full")
	require.Equal(t, 1, gormLogs().Len())
	assert.Contains(t, gormLogs().All()[0].Message, "disk full")
}

func TestDatabase_LongKey(t *testing.T) {
	db := setupTestDB(t)
	key := "audaroky_cache_grammar_" + strings.Repeat("She sells sea shells by the sea shore. ", 20) + "_ru"

	require.NoError(t, db.Set(key, "{}"))
	v, ok, err := db.Get(key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "{}", v)
}
