package settings

import (
	"context"

	"nitroping/bot/common"
	"nitroping/bot/features/announce"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
)

// Command names handled by this feature
const (
	CommandSetChannel    = "set_channel"
	CommandChannelUnset  = "channel_unset"
	CommandSetMessage    = "set_message"
	CommandRolesList     = "roles_list"
	CommandTestBoost     = "test_boost"
	CommandTestBoostLoss = "test_boostloss"
)

// Feature handles the administrator configuration commands
type Feature struct {
	platform      common.Platform
	configService service.GuildConfigService
	announcer     *announce.Feature
	branding      common.Branding
	now           service.Clock
}

// NewFeature creates a new settings feature instance
func NewFeature(platform common.Platform, configService service.GuildConfigService, announcer *announce.Feature, branding common.Branding, now service.Clock) *Feature {
	if now == nil {
		now = service.UTCNow
	}
	return &Feature{
		platform:      platform,
		configService: configService,
		announcer:     announcer,
		branding:      branding,
		now:           now,
	}
}

// Commands returns the slash command definitions of this feature
func Commands() []*discordgo.ApplicationCommand {
	admin := func(cmd *discordgo.ApplicationCommand) *discordgo.ApplicationCommand {
		cmd.DefaultMemberPermissions = &common.AdminPermissions
		cmd.Contexts = common.GuildOnly
		return cmd
	}

	return []*discordgo.ApplicationCommand{
		admin(&discordgo.ApplicationCommand{
			Name:        CommandTestBoost,
			Description: "Test the boost notification (Admin only)",
		}),
		admin(&discordgo.ApplicationCommand{
			Name:        CommandTestBoostLoss,
			Description: "Test the boost loss notification (Admin only)",
		}),
		admin(&discordgo.ApplicationCommand{
			Name:        CommandSetChannel,
			Description: "Set the channel for boost notifications (Admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionChannel,
					Name:         "channel",
					Description:  "The channel to send boost notifications to",
					ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews},
					Required:     true,
				},
			},
		}),
		admin(&discordgo.ApplicationCommand{
			Name:        CommandChannelUnset,
			Description: "Unset the boost notifications channel (Admin only)",
		}),
		admin(&discordgo.ApplicationCommand{
			Name:        CommandSetMessage,
			Description: "Set the boost thank you message (Admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "message",
					Description: "The new thank you message",
					Required:    true,
				},
			},
		}),
		admin(&discordgo.ApplicationCommand{
			Name:        CommandRolesList,
			Description: "List configured boost roles (Admin only)",
		}),
	}
}

// HandleCommand routes settings commands to appropriate handlers
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	// Permission check happens before any config access
	if !common.IsAdmin(i) {
		common.RespondWithError(ctx, f.platform, i, common.ErrNotAdmin.Error())
		return
	}

	var err error
	switch i.ApplicationCommandData().Name {
	case CommandSetChannel:
		err = f.handleSetChannel(ctx, i)
	case CommandChannelUnset:
		err = f.handleChannelUnset(ctx, i)
	case CommandSetMessage:
		err = f.handleSetMessage(ctx, i)
	case CommandRolesList:
		err = f.handleRolesList(ctx, i)
	case CommandTestBoost:
		err = f.handleTest(ctx, i, false)
	case CommandTestBoostLoss:
		err = f.handleTest(ctx, i, true)
	}

	if err != nil {
		common.HandleError(ctx, f.platform, i, err)
	}
}
