package bot

import (
	"fmt"

	"nitroping/bot/features/boosters"
	"nitroping/bot/features/info"
	"nitroping/bot/features/roles"
	"nitroping/bot/features/settings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Commands returns every slash command the bot registers
func Commands() []*discordgo.ApplicationCommand {
	var commands []*discordgo.ApplicationCommand
	commands = append(commands, info.Commands()...)
	commands = append(commands, boosters.Commands()...)
	commands = append(commands, settings.Commands()...)
	commands = append(commands, roles.Commands()...)
	return commands
}

// registerCommands replaces the global command set in one call
func (b *Bot) registerCommands() error {
	appID := b.platform.ApplicationID()
	if appID == "" {
		return fmt.Errorf("application id unknown, session not ready")
	}

	registered, err := b.session.ApplicationCommandBulkOverwrite(appID, "", Commands())
	if err != nil {
		return fmt.Errorf("cannot overwrite commands: %w", err)
	}

	log.WithField("count", len(registered)).Info("Registered slash commands")
	return nil
}
