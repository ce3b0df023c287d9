package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"nitroping/models"
	"nitroping/repository/testutil"
	"nitroping/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuildID = "111111111111111111"

func TestGuildConfigRepository_EnsureThenGet(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewGuildConfigRepository(root)
	ctx := context.Background()

	path, err := repo.Ensure(ctx, testGuildID)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root.Dir(), testGuildID, testGuildID+".json"), path)
	assert.FileExists(t, path)

	cfg := repo.Get(ctx, testGuildID)
	assert.Nil(t, cfg.ChannelID)
	assert.Equal(t, "Thank you for boosting the server!", cfg.Message)
	assert.Equal(t, []models.Snowflake{}, cfg.RoleIDs)
	assert.Equal(t, testGuildID, cfg.GuildID)
}

func TestGuildConfigRepository_EnsureIsIdempotent(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewGuildConfigRepository(root)
	ctx := context.Background()

	_, err := repo.Ensure(ctx, testGuildID)
	require.NoError(t, err)

	saved := testutil.CreateTestGuildConfig(testGuildID)
	require.NoError(t, repo.Save(ctx, saved))

	// A second Ensure must not reset an existing document
	_, err = repo.Ensure(ctx, testGuildID)
	require.NoError(t, err)

	got := repo.Get(ctx, testGuildID)
	if diff := cmp.Diff(saved, got); diff != "" {
		t.Errorf("config changed after second Ensure (-want +got):\n%s", diff)
	}
}

func TestGuildConfigRepository_RoundTrip(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewGuildConfigRepository(root)
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  *models.GuildConfig
	}{
		{"defaults", models.NewGuildConfig(testGuildID)},
		{"populated", testutil.CreateTestGuildConfig(testGuildID)},
		{"channel only", func() *models.GuildConfig {
			c := models.NewGuildConfig(testGuildID)
			c.SetChannel("999")
			return c
		}()},
		{"unicode message", func() *models.GuildConfig {
			c := models.NewGuildConfig(testGuildID)
			c.Message = "Merci beaucoup 💜 & <3"
			return c
		}()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, repo.Save(ctx, tt.cfg))
			got := repo.Get(ctx, testGuildID)
			if diff := cmp.Diff(tt.cfg, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGuildConfigRepository_GetMasksBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"empty file", ""},
		{"wrong types", `{"channel_id": true, "message": 5, "roles": "x"}`},
		{"array", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := testutil.SetupTestRoot(t)
			repo := NewGuildConfigRepository(root)
			testutil.WriteRawDocument(t, root, testGuildID, testGuildID, tt.data)

			got := repo.Get(context.Background(), testGuildID)
			if diff := cmp.Diff(models.NewGuildConfig(testGuildID), got); diff != "" {
				t.Errorf("expected defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGuildConfigRepository_GetMissingReturnsDefaults(t *testing.T) {
	repo := NewGuildConfigRepository(testutil.SetupTestRoot(t))

	got := repo.Get(context.Background(), testGuildID)
	assert.Equal(t, models.NewGuildConfig(testGuildID), got)
}

func TestGuildConfigRepository_LegacyDocument(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewGuildConfigRepository(root)

	// Numeric IDs and a missing message, as hand-edited files sometimes have
	testutil.WriteRawDocument(t, root, testGuildID, testGuildID,
		`{"channel_id": 222222222222222222, "roles": [333333333333333333, "444"]}`)

	got := repo.Get(context.Background(), testGuildID)
	assert.Equal(t, "222222222222222222", got.ChannelIDString())
	assert.Equal(t, models.DefaultThankYouMessage, got.Message)
	assert.Equal(t, []string{"333333333333333333", "444"}, got.RoleIDStrings())
}

func TestGuildConfigRepository_SaveDropsUnknownFields(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewGuildConfigRepository(root)
	ctx := context.Background()

	path := testutil.WriteRawDocument(t, root, testGuildID, testGuildID,
		`{"channel_id": null, "message": "hi", "roles": [], "extra": "gone"}`)

	cfg := repo.Get(ctx, testGuildID)
	require.NoError(t, repo.Save(ctx, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "extra")
	assert.JSONEq(t, `{"channel_id": null, "message": "hi", "roles": []}`, string(data))
}

func TestGuildConfigRepository_RejectsInvalidGuildID(t *testing.T) {
	root := testutil.SetupTestRoot(t)
	repo := NewGuildConfigRepository(root)
	ctx := context.Background()

	for _, id := range []string{"", "../etc", "12a", "1/2"} {
		_, err := repo.Ensure(ctx, id)
		assert.ErrorIs(t, err, storage.ErrInvalidID, "id %q", id)

		cfg := models.NewGuildConfig(id)
		assert.ErrorIs(t, repo.Save(ctx, cfg), storage.ErrInvalidID, "id %q", id)
	}

	entries, err := os.ReadDir(root.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGuildConfigRepository_SaveHonoursCancelledContext(t *testing.T) {
	repo := NewGuildConfigRepository(testutil.SetupTestRoot(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, models.NewGuildConfig(testGuildID))
	assert.ErrorIs(t, err, context.Canceled)
}
