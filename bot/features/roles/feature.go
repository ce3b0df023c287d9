package roles

import (
	"context"
	"strings"

	"nitroping/bot/common"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
)

// CommandSetRoles opens the interactive reward role picker
const CommandSetRoles = "set_roles"

// Component custom ID prefixes. The session ID follows the colon.
const (
	customIDPrefix = "set_roles_"
	selectPrefix   = customIDPrefix + "select:"
	savePrefix     = customIDPrefix + "save:"
	cancelPrefix   = customIDPrefix + "cancel:"
)

// Feature implements the /set_roles picker
type Feature struct {
	platform      common.Platform
	configService service.GuildConfigService
	sessions      *SessionStore
	branding      common.Branding
	now           service.Clock
}

// NewFeature creates a new roles feature instance
func NewFeature(platform common.Platform, configService service.GuildConfigService, sessions *SessionStore, branding common.Branding, now service.Clock) *Feature {
	if sessions == nil {
		sessions = NewSessionStore(SessionTTL)
	}
	if now == nil {
		now = service.UTCNow
	}
	return &Feature{
		platform:      platform,
		configService: configService,
		sessions:      sessions,
		branding:      branding,
		now:           now,
	}
}

// Commands returns the slash command definitions of this feature
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandSetRoles,
			Description:              "Set roles to give/remove for boosters (Admin only)",
			DefaultMemberPermissions: &common.AdminPermissions,
			Contexts:                 common.GuildOnly,
		},
	}
}

// OwnsComponent reports whether a custom ID belongs to this feature
func OwnsComponent(customID string) bool {
	return strings.HasPrefix(customID, customIDPrefix)
}

// HandleComponent routes role picker component interactions
func (f *Feature) HandleComponent(ctx context.Context, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	switch {
	case strings.HasPrefix(customID, selectPrefix):
		f.handleSelect(ctx, i, strings.TrimPrefix(customID, selectPrefix))
	case strings.HasPrefix(customID, savePrefix):
		f.handleSave(ctx, i, strings.TrimPrefix(customID, savePrefix))
	case strings.HasPrefix(customID, cancelPrefix):
		f.handleCancel(ctx, i, strings.TrimPrefix(customID, cancelPrefix))
	}
}
