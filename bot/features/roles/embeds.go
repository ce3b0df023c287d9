package roles

import (
	"strings"

	"nitroping/bot/common"

	"github.com/bwmarrin/discordgo"
)

func (f *Feature) buildPickerEmbed() *discordgo.MessageEmbed {
	embed := f.branding.NewEmbed("Configure Booster Roles", f.now())
	embed.Description = "Select one or more roles from the dropdown, then press **Save**.\n" +
		"Only roles the bot can manage are shown (max 25)."
	return embed
}

func (f *Feature) buildSavedEmbed(guildID string, roleIDs []string) *discordgo.MessageEmbed {
	mentions := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		if _, ok := f.platform.CachedRole(guildID, id); ok {
			mentions = append(mentions, common.RoleMention(id))
		}
	}

	display := "*None*"
	if len(mentions) > 0 {
		display = strings.Join(mentions, ", ")
	}

	embed := f.branding.NewEmbed("Booster Roles Updated", f.now())
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Roles", Value: display, Inline: false},
	}
	return embed
}
