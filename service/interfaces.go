package service

import (
	"context"
	"time"

	"nitroping/events"
	"nitroping/models"
)

// GuildConfigRepository defines the interface for per-guild config storage
type GuildConfigRepository interface {
	// Ensure creates the default document for a guild if missing and returns its path
	Ensure(ctx context.Context, guildID string) (string, error)

	// Get returns the guild's config, or defaults if it is missing or corrupt
	Get(ctx context.Context, guildID string) *models.GuildConfig

	// Save replaces the guild's config document
	Save(ctx context.Context, cfg *models.GuildConfig) error
}

// BoostRecordRepository defines the interface for per-member boost record storage
type BoostRecordRepository interface {
	// Get returns the member's boost record, empty if missing or corrupt
	Get(ctx context.Context, guildID, userID string) *models.BoostRecord

	// Find is Get that also reports whether a readable record exists
	Find(ctx context.Context, guildID, userID string) (*models.BoostRecord, bool)

	// Save replaces the member's boost record
	Save(ctx context.Context, guildID, userID string, record *models.BoostRecord) error
}

// EventPublisher publishes domain events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}

// GuildConfigService defines the interface for guild configuration operations
type GuildConfigService interface {
	// EnsureGuild makes sure a config document exists for the guild
	EnsureGuild(ctx context.Context, guildID string) error

	// GetConfig returns the guild's config (defaults when unset)
	GetConfig(ctx context.Context, guildID string) *models.GuildConfig

	// SetChannel sets the announcement channel
	SetChannel(ctx context.Context, guildID, channelID string) error

	// UnsetChannel clears the announcement channel
	UnsetChannel(ctx context.Context, guildID string) error

	// SetMessage sets the thank-you message
	SetMessage(ctx context.Context, guildID, message string) error

	// SetRoles replaces the reward roles
	SetRoles(ctx context.Context, guildID string, roleIDs []string) error
}

// MemberSnapshot is the subset of a member's state the boost reactor needs
type MemberSnapshot struct {
	GuildID     string
	UserID      string
	DisplayName string
	Mention     string
	AvatarURL   string
	BoostStart  *time.Time
}

// BoostService defines the interface for member boost tracking
type BoostService interface {
	// PreviousBoostStart returns the persisted boost start used when the
	// gateway did not supply a before-snapshot. known is false when the
	// member has no record, so their earlier state is unknown.
	PreviousBoostStart(ctx context.Context, guildID, userID string) (start *time.Time, known bool)

	// RecordBaseline persists the member's current boost start without
	// classifying a transition or publishing events
	RecordBaseline(ctx context.Context, member MemberSnapshot) error

	// RecordTransition classifies the change and persists the member's boost record.
	// TransitionNone is returned without touching storage.
	RecordTransition(ctx context.Context, before *time.Time, after MemberSnapshot) (models.Transition, error)
}
