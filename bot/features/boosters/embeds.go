package boosters

import (
	"fmt"
	"strconv"

	"nitroping/bot/common"
	"nitroping/models"

	"github.com/bwmarrin/discordgo"
)

// buildPageEmbed renders one page of the booster listing
func (f *Feature) buildPageEmbed(guildID string, pages [][]models.Booster, page int) *discordgo.MessageEmbed {
	now := f.now()
	embed := f.branding.NewEmbed(f.branding.Title("Server Boosters"), now)

	if len(pages) > 1 {
		embed.Description = fmt.Sprintf("Page %d/%d", page+1, len(pages))
	}

	for _, booster := range pages[page] {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   booster.DisplayName,
			Value:  fmt.Sprintf("Boosting for %d days", models.DaysSince(booster.Since, now)),
			Inline: false,
		})
	}

	if guild, ok := f.platform.CachedGuild(guildID); ok {
		embed.Thumbnail = common.Thumbnail(guild.IconURL("256"))
	}
	return embed
}

// buildNavigation returns the Next button, or nothing for a single page
func buildNavigation(pages [][]models.Booster, page int) []discordgo.MessageComponent {
	if len(pages) <= 1 {
		return nil
	}

	next := (page + 1) % len(pages)
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Next",
					Style:    discordgo.PrimaryButton,
					CustomID: nextPrefix + strconv.Itoa(next),
				},
			},
		},
	}
}
