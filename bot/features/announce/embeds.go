package announce

import (
	"fmt"

	"nitroping/bot/common"
	"nitroping/models"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
)

const stoppedDescription = "stopped boosting the server. Thank you for your support!"

// buildMemberEmbed creates the announcement for a single member's boost change
func (f *Feature) buildMemberEmbed(transition models.Transition, member service.MemberSnapshot, cfg *models.GuildConfig) *discordgo.MessageEmbed {
	embed := f.branding.NewEmbed(f.branding.Title("Server Boost Update"), f.now())
	embed.Thumbnail = common.Thumbnail(member.AvatarURL)

	switch transition {
	case models.TransitionStarted:
		embed.Description = fmt.Sprintf("%s %s", member.Mention, cfg.Message)
	case models.TransitionStopped:
		embed.Description = fmt.Sprintf("%s %s", member.Mention, stoppedDescription)
	default:
		embed.Description = fmt.Sprintf("%s updated their boost status.", member.Mention)
	}
	return embed
}

// buildAggregateEmbed creates the announcement for an increase of the guild's boost count
func (f *Feature) buildAggregateEmbed(guild *discordgo.Guild, gained int, cfg *models.GuildConfig) *discordgo.MessageEmbed {
	plural := ""
	if gained > 1 {
		plural = "s"
	}

	embed := f.branding.NewEmbed(f.branding.Title(fmt.Sprintf("New Server Boost%s!", plural)), f.now())
	embed.Description = fmt.Sprintf("We just received **%d** new boost%s! %s", gained, plural, cfg.Message)
	embed.Thumbnail = common.Thumbnail(guild.IconURL("256"))
	return embed
}

// buildPreviewEmbed creates the embed posted by the test commands
func (f *Feature) buildPreviewEmbed(stopped bool, subject service.MemberSnapshot, cfg *models.GuildConfig) *discordgo.MessageEmbed {
	title := "Test Server Boost"
	description := fmt.Sprintf("%s %s", subject.Mention, cfg.Message)
	if stopped {
		title = "Test Boost Loss"
		description = fmt.Sprintf("%s %s", subject.Mention, stoppedDescription)
	}

	embed := f.branding.NewEmbed(f.branding.Title(title), f.now())
	embed.Description = description
	embed.Thumbnail = common.Thumbnail(subject.AvatarURL)
	return embed
}
