package common

import (
	"github.com/bwmarrin/discordgo"
)

// InteractionUser returns the user who triggered an interaction
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// InteractionUserID returns the ID of the user who triggered an interaction, or ""
func InteractionUserID(i *discordgo.InteractionCreate) string {
	if user := InteractionUser(i); user != nil {
		return user.ID
	}
	return ""
}

// IsAdmin checks the administrator bit of the invoking member's resolved permissions
func IsAdmin(i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// MemberAvatarURL returns the member's avatar, falling back to the user avatar
func MemberAvatarURL(member *discordgo.Member) string {
	if member == nil || member.User == nil {
		return ""
	}
	return member.AvatarURL("256")
}

// StringOption returns the raw string value of a top-level command option, or ""
func StringOption(i *discordgo.InteractionCreate, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name != name {
			continue
		}
		if value, ok := opt.Value.(string); ok {
			return value
		}
	}
	return ""
}

// AdminPermissions is the default member permission set for administrator commands
var AdminPermissions int64 = discordgo.PermissionAdministrator

// GuildOnly restricts a command to guild contexts
var GuildOnly = &[]discordgo.InteractionContextType{discordgo.InteractionContextGuild}
