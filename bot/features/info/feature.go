package info

import (
	"context"

	"nitroping/bot/common"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
)

// Command names handled by this feature
const (
	CommandInvite  = "invite"
	CommandSupport = "support"
	CommandCredits = "credits"
	CommandHelp    = "help"
)

// Feature serves the static informational commands
type Feature struct {
	platform common.Platform
	branding common.Branding
	now      service.Clock
}

// NewFeature creates a new info feature instance
func NewFeature(platform common.Platform, branding common.Branding, now service.Clock) *Feature {
	if now == nil {
		now = service.UTCNow
	}
	return &Feature{
		platform: platform,
		branding: branding,
		now:      now,
	}
}

// Commands returns the slash command definitions of this feature
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{Name: CommandInvite, Description: "Get the bot invite link"},
		{Name: CommandSupport, Description: "Get invite to the support server"},
		{Name: CommandCredits, Description: "View bot credits"},
		{Name: CommandHelp, Description: "View available commands"},
	}
}

// HandleCommand routes info commands to appropriate handlers
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case CommandInvite:
		common.RespondWithMessage(ctx, f.platform, i, inviteMessage(f.branding.BotName, f.platform.ApplicationID()), true)
	case CommandSupport:
		common.RespondWithMessage(ctx, f.platform, i, "Join our support server: "+f.branding.SupportURL, true)
	case CommandCredits:
		common.RespondWithEmbeds(ctx, f.platform, i, f.buildCreditsEmbeds(), nil, true)
	case CommandHelp:
		embed := f.buildHelpEmbed(common.IsAdmin(i))
		common.RespondWithEmbeds(ctx, f.platform, i, []*discordgo.MessageEmbed{embed}, nil, true)
	}
}
