package info

import (
	"fmt"
	"time"

	"nitroping/bot/common"

	"github.com/bwmarrin/discordgo"
)

const (
	creditsBannerURL = "https://i.ibb.co/6QfPTnh/1credits.png"
	creditsImageURL  = "https://i.ibb.co/5WjymY0h/Nitro-Ping-Banner-2.png"
)

// HelpEntry is one line of the help listing
type HelpEntry struct {
	Command     string
	Description string
}

// PublicHelp lists the commands anyone can run
var PublicHelp = []HelpEntry{
	{"/invite", "Get the bot invite link"},
	{"/boosters", "List current server boosters and their boost duration"},
	{"/support", "Get invite to the support server"},
	{"/credits", "View bot credits"},
	{"/help", "Show this help message"},
}

// AdminHelp lists the administrator commands
var AdminHelp = []HelpEntry{
	{"/test_boost", "Test boost notification"},
	{"/test_boostloss", "Test boost loss notification"},
	{"/set_channel", "Set channel for boost notifications"},
	{"/channel_unset", "Unset boost notifications channel"},
	{"/set_message", "Set boost thank you message"},
	{"/set_roles", "Interactive role picker for boosters"},
	{"/roles_list", "List configured boost roles"},
}

func inviteMessage(botName, applicationID string) string {
	return fmt.Sprintf("Add **%s** to your server:\nhttps://discord.com/oauth2/authorize?client_id=%s", botName, applicationID)
}

// buildCreditsEmbeds returns the banner embed followed by the credits embed
func (f *Feature) buildCreditsEmbeds() []*discordgo.MessageEmbed {
	banner := &discordgo.MessageEmbed{
		Color: common.ColorBoost,
		Image: &discordgo.MessageEmbedImage{URL: creditsBannerURL},
	}

	credits := &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("%s %s", f.branding.GemEmoji, f.branding.BotName),
		Color:     common.ColorBoost,
		Timestamp: f.now().UTC().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Developers", Value: f.branding.Developers},
			{Name: "Bot host", Value: fmt.Sprintf("[%s](%s)", f.branding.HostName, f.branding.HostURL)},
		},
		Image: &discordgo.MessageEmbedImage{URL: creditsImageURL},
	}

	return []*discordgo.MessageEmbed{banner, credits}
}

// buildHelpEmbed lists the public commands, and the admin commands for administrators
func (f *Feature) buildHelpEmbed(admin bool) *discordgo.MessageEmbed {
	embed := f.branding.NewEmbed(f.branding.Title(f.branding.BotName+" Help"), f.now())

	entries := PublicHelp
	if admin {
		entries = append(append([]HelpEntry{}, PublicHelp...), AdminHelp...)
	}
	for _, entry := range entries {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  entry.Command,
			Value: entry.Description,
		})
	}
	return embed
}
