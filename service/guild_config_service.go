package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"nitroping/models"
)

const (
	// MaxRewardRoles matches the option cap of a Discord select menu
	MaxRewardRoles = 25

	// MaxMessageLength leaves room for the member mention in a 4096 character embed description
	MaxMessageLength = 2000
)

var (
	ErrEmptyMessage   = errors.New("message cannot be empty")
	ErrMessageTooLong = fmt.Errorf("message cannot be longer than %d characters", MaxMessageLength)
	ErrTooManyRoles   = fmt.Errorf("at most %d roles can be configured", MaxRewardRoles)
	ErrMissingChannel = errors.New("channel is required")
)

// guildConfigService implements the GuildConfigService interface
type guildConfigService struct {
	configRepo GuildConfigRepository
}

// NewGuildConfigService creates a new guild config service
func NewGuildConfigService(configRepo GuildConfigRepository) GuildConfigService {
	return &guildConfigService{
		configRepo: configRepo,
	}
}

// EnsureGuild makes sure a config document exists for the guild
func (s *guildConfigService) EnsureGuild(ctx context.Context, guildID string) error {
	if _, err := s.configRepo.Ensure(ctx, guildID); err != nil {
		return fmt.Errorf("failed to ensure guild config: %w", err)
	}
	return nil
}

// GetConfig returns the guild's config
func (s *guildConfigService) GetConfig(ctx context.Context, guildID string) *models.GuildConfig {
	return s.configRepo.Get(ctx, guildID)
}

// SetChannel sets the announcement channel
func (s *guildConfigService) SetChannel(ctx context.Context, guildID, channelID string) error {
	if channelID == "" {
		return ErrMissingChannel
	}
	return s.update(ctx, guildID, func(cfg *models.GuildConfig) {
		cfg.SetChannel(channelID)
	})
}

// UnsetChannel clears the announcement channel
func (s *guildConfigService) UnsetChannel(ctx context.Context, guildID string) error {
	return s.update(ctx, guildID, func(cfg *models.GuildConfig) {
		cfg.SetChannel("")
	})
}

// SetMessage sets the thank-you message
func (s *guildConfigService) SetMessage(ctx context.Context, guildID, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return ErrMessageTooLong
	}
	return s.update(ctx, guildID, func(cfg *models.GuildConfig) {
		cfg.Message = message
	})
}

// SetRoles replaces the reward roles. Duplicates are dropped, order is kept.
func (s *guildConfigService) SetRoles(ctx context.Context, guildID string, roleIDs []string) error {
	seen := make(map[string]bool, len(roleIDs))
	unique := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}
	if len(unique) > MaxRewardRoles {
		return ErrTooManyRoles
	}
	return s.update(ctx, guildID, func(cfg *models.GuildConfig) {
		cfg.SetRoles(unique)
	})
}

// update runs a read-modify-write cycle on the guild's config.
// Concurrent writers are not coordinated; the last save wins.
func (s *guildConfigService) update(ctx context.Context, guildID string, mutate func(cfg *models.GuildConfig)) error {
	cfg := s.configRepo.Get(ctx, guildID)
	mutate(cfg)
	if err := s.configRepo.Save(ctx, cfg); err != nil {
		return fmt.Errorf("failed to update guild config: %w", err)
	}
	return nil
}
