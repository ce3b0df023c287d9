package settings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nitroping/bot/common"
	"nitroping/bot/features/announce"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// handleSetChannel handles /set_channel
func (f *Feature) handleSetChannel(ctx context.Context, i *discordgo.InteractionCreate) error {
	channelID := common.StringOption(i, "channel")
	if err := f.configService.SetChannel(ctx, i.GuildID, channelID); err != nil {
		return common.NewSystemError(err, "Failed to set boost channel")
	}

	log.WithFields(log.Fields{
		"guild_id":   i.GuildID,
		"channel_id": channelID,
	}).Info("Boost channel updated")

	common.RespondWithMessage(ctx, f.platform, i,
		fmt.Sprintf("Boost notifications channel set to %s", common.ChannelMention(channelID)), true)
	return nil
}

// handleChannelUnset handles /channel_unset
func (f *Feature) handleChannelUnset(ctx context.Context, i *discordgo.InteractionCreate) error {
	if err := f.configService.UnsetChannel(ctx, i.GuildID); err != nil {
		return common.NewSystemError(err, "Failed to unset boost channel")
	}

	common.RespondWithMessage(ctx, f.platform, i, "Boost notifications channel unset", true)
	return nil
}

// handleSetMessage handles /set_message
func (f *Feature) handleSetMessage(ctx context.Context, i *discordgo.InteractionCreate) error {
	if err := f.configService.SetMessage(ctx, i.GuildID, common.StringOption(i, "message")); err != nil {
		return common.NewSystemError(err, "Failed to set thank you message")
	}

	common.RespondWithMessage(ctx, f.platform, i, "Boost thank you message updated!", true)
	return nil
}

// handleRolesList handles /roles_list
func (f *Feature) handleRolesList(ctx context.Context, i *discordgo.InteractionCreate) error {
	cfg := f.configService.GetConfig(ctx, i.GuildID)
	roleIDs := cfg.RoleIDStrings()
	if len(roleIDs) == 0 {
		common.RespondWithMessage(ctx, f.platform, i, "No boost roles configured!", true)
		return nil
	}

	embed := f.branding.NewEmbed("Configured Booster Roles", f.now())
	embed.Description = f.describeRoles(i.GuildID, roleIDs)

	common.RespondWithEmbeds(ctx, f.platform, i, []*discordgo.MessageEmbed{embed}, nil, true)
	return nil
}

// describeRoles renders the mentions of roles the guild still has
func (f *Feature) describeRoles(guildID string, roleIDs []string) string {
	mentions := make([]string, 0, len(roleIDs))
	for _, roleID := range roleIDs {
		if _, ok := f.platform.CachedRole(guildID, roleID); ok {
			mentions = append(mentions, common.RoleMention(roleID))
		}
	}
	if len(mentions) == 0 {
		return "*None*"
	}
	return strings.Join(mentions, ", ")
}

// handleTest handles /test_boost and /test_boostloss
func (f *Feature) handleTest(ctx context.Context, i *discordgo.InteractionCreate, stopped bool) error {
	if err := f.configService.EnsureGuild(ctx, i.GuildID); err != nil {
		return common.NewSystemError(err, "Failed to ensure guild config")
	}

	cfg := f.configService.GetConfig(ctx, i.GuildID)
	subject := announce.SnapshotMember(i.GuildID, i.Member)

	err := f.announcer.SendPreview(ctx, cfg, subject, stopped)
	if errors.Is(err, announce.ErrNoChannel) {
		common.RespondWithMessage(ctx, f.platform, i, "No boost channel set! Use /set_channel first.", true)
		return nil
	}
	if err != nil {
		return common.NewSystemError(err, "Failed to send test notification")
	}

	reply := "Test boost message sent!"
	if stopped {
		reply = "Test boost loss message sent!"
	}
	common.RespondWithMessage(ctx, f.platform, i, reply, true)
	return nil
}
