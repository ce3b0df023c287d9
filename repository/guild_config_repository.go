package repository

import (
	"context"
	"fmt"
	"os"

	"nitroping/models"
	"nitroping/storage"

	log "github.com/sirupsen/logrus"
)

// GuildConfigRepository stores one GuildConfig document per guild at
// <root>/<guildID>/<guildID>.json
type GuildConfigRepository struct {
	root *storage.Root
}

// NewGuildConfigRepository creates a new guild config repository
func NewGuildConfigRepository(root *storage.Root) *GuildConfigRepository {
	return &GuildConfigRepository{root: root}
}

// Ensure creates the default document for a guild if it does not exist yet
// and returns its path
func (r *GuildConfigRepository) Ensure(ctx context.Context, guildID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := r.root.EnsureGuildDir(guildID); err != nil {
		return "", err
	}
	path, err := r.root.DocumentPath(guildID, guildID)
	if err != nil {
		return "", err
	}

	created, err := storage.CreateDocument(path, models.NewGuildConfig(guildID))
	if err != nil {
		return "", fmt.Errorf("failed to create config for guild %s: %w", guildID, err)
	}
	if created {
		log.WithField("guild_id", guildID).Info("Created default guild config")
	}
	return path, nil
}

// Get returns the guild's config. Missing, unreadable or malformed documents
// yield the default config.
func (r *GuildConfigRepository) Get(ctx context.Context, guildID string) *models.GuildConfig {
	path, err := r.root.DocumentPath(guildID, guildID)
	if err != nil {
		log.WithError(err).Warn("Refusing to read guild config")
		return models.NewGuildConfig(guildID)
	}

	var cfg models.GuildConfig
	if err := storage.ReadDocument(path, &cfg); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithField("guild_id", guildID).Warn("Unreadable guild config, using defaults")
		}
		return models.NewGuildConfig(guildID)
	}

	cfg.GuildID = guildID
	cfg.ApplyDefaults()
	return &cfg
}

// Save replaces the guild's config document
func (r *GuildConfigRepository) Save(ctx context.Context, cfg *models.GuildConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("guild config is nil")
	}
	if _, err := r.root.EnsureGuildDir(cfg.GuildID); err != nil {
		return err
	}
	path, err := r.root.DocumentPath(cfg.GuildID, cfg.GuildID)
	if err != nil {
		return err
	}

	out := *cfg
	out.ApplyDefaults()
	if err := storage.WriteDocument(path, &out); err != nil {
		return fmt.Errorf("failed to save config for guild %s: %w", cfg.GuildID, err)
	}
	return nil
}
