package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"workload_survey/internal/model"
	"workload_survey/internal/repository"
	"workload_survey/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *repository.SQLiteKVStore {
	t.Helper()
	db, err := database.InitSQLite(filepath.Join(t.TempDir(), "survey.db"))
	require.NoError(t, err)
	store := repository.NewSQLiteKVStore(db)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteKVStore_GetPut(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	require.NoError(t, store.Put(ctx, "k", "v1"))
	require.NoError(t, store.Put(ctx, "k", "v2"))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", got)
	assert.NoError(t, store.Ping(ctx))
}

func TestAppDataRepository_FallsBackToDefaults(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)
	repo := repository.NewAppDataRepository(store, "")

	data, err := repo.Load(ctx)
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
	assert.Equal(t, model.DefaultAppData(), data)

	require.NoError(t, store.Put(ctx, repository.DefaultSnapshotKey, "{broken"))
	data, err = repo.Load(ctx)
	assert.Error(t, err)
	assert.Equal(t, model.DefaultAppData(), data)

	require.NoError(t, store.Put(ctx, repository.DefaultSnapshotKey, `{"welcomeText":"x","questions":[]}`))
	data, err = repo.Load(ctx)
	assert.Error(t, err)
	assert.Equal(t, model.DefaultAppData(), data)
}

func TestAppDataRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewAppDataRepository(newSQLiteStore(t), "snap")

	in := model.DefaultAppData()
	in.WelcomeText = "Hoş geldiniz"
	in.Personnel = []string{"Ali", "Ayşe"}
	in.Responses = []model.Response{{
		ID: "r1", Timestamp: "01.01.2025 09:00:00", PersonnelName: "Ali",
		Scores: map[string]int{"1a_t70": 5}, TotalScore: 80,
	}}
	require.NoError(t, repo.Save(ctx, in))

	out, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
