package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"nitroping/models"
	"nitroping/storage"

	"github.com/stretchr/testify/require"
)

// SetupTestRoot opens a storage root in a fresh temp directory
func SetupTestRoot(t *testing.T) *storage.Root {
	t.Helper()
	root, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "servers"))
	require.NoError(t, err)
	return root
}

// WriteRawDocument writes raw bytes to <root>/<guildID>/<docID>.json
func WriteRawDocument(t *testing.T, root *storage.Root, guildID, docID string, data string) string {
	t.Helper()
	_, err := root.EnsureGuildDir(guildID)
	require.NoError(t, err)
	path, err := root.DocumentPath(guildID, docID)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

// CreateTestGuildConfig creates a populated guild config
func CreateTestGuildConfig(guildID string) *models.GuildConfig {
	cfg := models.NewGuildConfig(guildID)
	cfg.SetChannel("222222222222222222")
	cfg.Message = "Thanks for the boost <a:nitro:1411082919019155456>!"
	cfg.SetRoles([]string{"333333333333333333", "444444444444444444"})
	return cfg
}

// CreateTestBoostRecord creates a boost record started at the given time
func CreateTestBoostRecord(start time.Time) *models.BoostRecord {
	return &models.BoostRecord{BoostStart: &start}
}
