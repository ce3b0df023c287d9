package bot

import (
	"context"

	"nitroping/bot/features/boosters"
	"nitroping/bot/features/info"
	"nitroping/bot/features/roles"
	"nitroping/bot/features/settings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer recoverHandler("interaction_create", i.GuildID)
	b.routeInteraction(b.ctx, i)
}

// routeInteraction dispatches slash commands by name and components by custom ID prefix
func (b *Bot) routeInteraction(ctx context.Context, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.routeCommand(ctx, i)
	case discordgo.InteractionMessageComponent:
		b.routeComponent(ctx, i)
	}
}

func (b *Bot) routeCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	switch name {
	case settings.CommandSetChannel, settings.CommandChannelUnset, settings.CommandSetMessage,
		settings.CommandRolesList, settings.CommandTestBoost, settings.CommandTestBoostLoss:
		b.settings.HandleCommand(ctx, i)
	case roles.CommandSetRoles:
		b.roles.HandleCommand(ctx, i)
	case boosters.CommandBoosters:
		b.boosters.HandleCommand(ctx, i)
	case info.CommandInvite, info.CommandSupport, info.CommandCredits, info.CommandHelp:
		b.info.HandleCommand(ctx, i)
	default:
		log.WithField("command", name).Warn("Unknown command")
	}
}

func (b *Bot) routeComponent(ctx context.Context, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case roles.OwnsComponent(customID):
		b.roles.HandleComponent(ctx, i)
	case boosters.OwnsComponent(customID):
		b.boosters.HandleComponent(ctx, i)
	default:
		log.WithField("custom_id", customID).Debug("Unhandled component interaction")
	}
}
