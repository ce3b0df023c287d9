package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"nitroping/config"
	"nitroping/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuildID = "123456789012345678"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--env-file", ""))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("NITROPING_DATA_DIR", dir)
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DISCORD_TOKEN", "")
	t.Cleanup(config.ResetConfig)
	return dir
}

func TestGuildInitThenShow(t *testing.T) {
	dir := setupDataDir(t)

	out, err := execute(t, "guild", "init", testGuildID)
	require.NoError(t, err)
	path := filepath.Join(dir, testGuildID, testGuildID+".json")
	assert.Equal(t, path+"\n", out)
	assert.FileExists(t, path)

	out, err = execute(t, "guild", "show", testGuildID)
	require.NoError(t, err)
	assert.Contains(t, out, models.DefaultThankYouMessage)
	assert.Contains(t, out, `"channel_id": null`)
}

func TestGuildShow_MissingGuildPrintsDefaults(t *testing.T) {
	dir := setupDataDir(t)

	out, err := execute(t, "guild", "show", testGuildID)

	require.NoError(t, err)
	assert.Contains(t, out, models.DefaultThankYouMessage)
	_, statErr := os.Stat(filepath.Join(dir, testGuildID))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGuild_InvalidID(t *testing.T) {
	dir := setupDataDir(t)

	_, err := execute(t, "guild", "init", "../etc")
	require.Error(t, err)

	_, err = execute(t, "guild", "show", "not-a-guild")
	require.Error(t, err)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}
