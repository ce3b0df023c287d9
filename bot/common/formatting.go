package common

import (
	"fmt"
	"time"

	"nitroping/config"

	"github.com/bwmarrin/discordgo"
)

// Branding is the text and emoji that decorate every embed
type Branding struct {
	BotName    string
	HostName   string
	BoostEmoji string
	GemEmoji   string
	SupportURL string
	Developers string
	HostURL    string
}

// BrandingFromConfig extracts the embed branding from the process config
func BrandingFromConfig(cfg *config.Config) Branding {
	return Branding{
		BotName:    cfg.BotName,
		HostName:   cfg.HostName,
		BoostEmoji: cfg.BoostEmoji,
		GemEmoji:   cfg.GemEmoji,
		SupportURL: cfg.SupportURL,
		Developers: cfg.Developers,
		HostURL:    cfg.HostURL,
	}
}

// Footer renders "<bot> • <host> • YYYY-MM-DD"
func (b Branding) Footer(now time.Time) *discordgo.MessageEmbedFooter {
	return &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("%s • %s • %s", b.BotName, b.HostName, now.UTC().Format("2006-01-02")),
	}
}

// Title wraps a title in the boost emoji on both sides
func (b Branding) Title(title string) string {
	return fmt.Sprintf("%s %s %s", b.BoostEmoji, title, b.BoostEmoji)
}

// NewEmbed creates a purple, timestamped, footed embed
func (b Branding) NewEmbed(title string, now time.Time) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:     title,
		Color:     ColorBoost,
		Timestamp: now.UTC().Format(time.RFC3339),
		Footer:    b.Footer(now),
	}
}

// Thumbnail returns a thumbnail for url, or nil when url is empty
func Thumbnail(url string) *discordgo.MessageEmbedThumbnail {
	if url == "" {
		return nil
	}
	return &discordgo.MessageEmbedThumbnail{URL: url}
}

// ChannelMention formats a channel mention
func ChannelMention(channelID string) string {
	return "<#" + channelID + ">"
}

// RoleMention formats a role mention
func RoleMention(roleID string) string {
	return "<@&" + roleID + ">"
}

// UserMention formats a user mention
func UserMention(userID string) string {
	return "<@" + userID + ">"
}

// Plural returns "s" unless n is 1
func Plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
