package announce

import (
	"context"
	"errors"
	"fmt"

	"nitroping/models"

	log "github.com/sirupsen/logrus"
)

// ErrNoChannel is returned by previews when the guild has no configured channel
var ErrNoChannel = errors.New("no boost channel set")

// ResolveChannel picks the channel announcements go to: the configured channel
// (state cache first, then a fetch), else the guild's system channel.
func (f *Feature) ResolveChannel(ctx context.Context, guildID string, cfg *models.GuildConfig) (string, bool) {
	if channelID := cfg.ChannelIDString(); channelID != "" {
		id, err := f.resolveConfigured(ctx, channelID)
		if err == nil {
			return id, true
		}
		log.WithFields(log.Fields{
			"guild_id":   guildID,
			"channel_id": channelID,
			"error":      err,
		}).Debug("Configured boost channel unavailable, falling back to system channel")
	}

	if guild, ok := f.platform.CachedGuild(guildID); ok && guild.SystemChannelID != "" {
		return guild.SystemChannelID, true
	}
	return "", false
}

// resolveConfigured looks a channel up in the cache and falls back to fetching it
func (f *Feature) resolveConfigured(ctx context.Context, channelID string) (string, error) {
	if channel, ok := f.platform.CachedChannel(channelID); ok {
		return channel.ID, nil
	}

	channel, outcome := f.platform.FetchChannel(ctx, channelID)
	if !outcome.OK() {
		return "", fmt.Errorf("failed to fetch channel %s: %w", channelID, outcome.Err)
	}
	if channel == nil {
		return "", fmt.Errorf("channel %s not found", channelID)
	}
	return channel.ID, nil
}
