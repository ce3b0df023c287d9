package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"nitroping/models"
	"nitroping/repository/testutil"
	"nitroping/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "555555555555555555"

func TestBoostRecordRepository_GetMissing(t *testing.T) {
	repo := NewBoostRecordRepository(testutil.SetupTestRoot(t))

	record := repo.Get(context.Background(), testGuildID, testUserID)
	require.NotNil(t, record)
	assert.Nil(t, record.BoostStart)
	assert.False(t, record.IsBoosting())
}

func TestBoostRecordRepository_RoundTrip(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewBoostRecordRepository(root)
	ctx := context.Background()

	start := time.Date(2026, 3, 14, 15, 9, 26, 535000000, time.UTC)

	t.Run("boost start", func(t *testing.T) {
		want := testutil.CreateTestBoostRecord(start)
		require.NoError(t, repo.Save(ctx, testGuildID, testUserID, want))

		got := repo.Get(ctx, testGuildID, testUserID)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("boost stop overwrites", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, testGuildID, testUserID, &models.BoostRecord{}))

		path, err := root.DocumentPath(testGuildID, testUserID)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"boost_start": null}`, string(data))

		assert.False(t, repo.Get(ctx, testGuildID, testUserID).IsBoosting())
	})
}

func TestBoostRecordRepository_NormalisesToUTC(t *testing.T) {
	repo := NewBoostRecordRepository(testutil.SetupTestRoot(t))
	ctx := context.Background()

	zone := time.FixedZone("UTC+2", 2*60*60)
	start := time.Date(2026, 1, 1, 2, 0, 0, 0, zone)
	require.NoError(t, repo.Save(ctx, testGuildID, testUserID, testutil.CreateTestBoostRecord(start)))

	got := repo.Get(ctx, testGuildID, testUserID)
	require.True(t, got.IsBoosting())
	assert.True(t, start.Equal(*got.BoostStart))
	assert.Equal(t, time.UTC, got.BoostStart.Location())
}

func TestBoostRecordRepository_LegacyTimestamp(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewBoostRecordRepository(root)

	testutil.WriteRawDocument(t, root, testGuildID, testUserID, `{"boost_start": "2025-09-01T10:20:30.123456"}`)

	got := repo.Get(context.Background(), testGuildID, testUserID)
	require.True(t, got.IsBoosting())
	want := time.Date(2025, 9, 1, 10, 20, 30, 123456000, time.Local)
	assert.True(t, want.Equal(*got.BoostStart))
	assert.Equal(t, time.UTC, got.BoostStart.Location())
}

func TestBoostRecordRepository_CorruptIsNotBoosting(t *testing.T) {
	for _, data := range []string{"nope", `{"boost_start": "yesterday"}`, `{"boost_start": 12}`} {
		root := testutil.SetupTestRoot(t)
		repo := NewBoostRecordRepository(root)
		testutil.WriteRawDocument(t, root, testGuildID, testUserID, data)

		assert.False(t, repo.Get(context.Background(), testGuildID, testUserID).IsBoosting(), data)
	}
}

func TestBoostRecordRepository_RefusesGuildConfigPath(t *testing.T) {
	repo := NewBoostRecordRepository(testutil.SetupTestRoot(t))

	err := repo.Save(context.Background(), testGuildID, testGuildID, &models.BoostRecord{})
	assert.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestBoostRecord_BoostingDays(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	record := testutil.CreateTestBoostRecord(start)

	assert.Equal(t, 0, record.BoostingDays(start.Add(23*time.Hour)))
	assert.Equal(t, 1, record.BoostingDays(start.Add(24*time.Hour)))
	assert.Equal(t, 30, record.BoostingDays(start.AddDate(0, 0, 30)))
	assert.Equal(t, 0, record.BoostingDays(start.Add(-time.Hour)))
	assert.Equal(t, 0, (&models.BoostRecord{}).BoostingDays(start))
}
