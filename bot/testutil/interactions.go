package testutil

import (
	"github.com/bwmarrin/discordgo"
)

// Default IDs used by feature tests
const (
	GuildID   = "111111111111111111"
	ChannelID = "222222222222222222"
	UserID    = "555555555555555555"
	OtherID   = "666666666666666666"
)

// Member creates a guild member with the given permission bits
func Member(userID string, permissions int64) *discordgo.Member {
	return &discordgo.Member{
		GuildID:     GuildID,
		User:        &discordgo.User{ID: userID, Username: "user" + userID[len(userID)-2:]},
		Permissions: permissions,
	}
}

// AdminMember creates a member holding the administrator permission
func AdminMember(userID string) *discordgo.Member {
	return Member(userID, discordgo.PermissionAdministrator)
}

// CommandInteraction creates a slash command interaction
func CommandInteraction(member *discordgo.Member, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "interaction-" + name,
		AppID:   "777777777777777777",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: GuildID,
		Member:  member,
		Data: discordgo.ApplicationCommandInteractionData{
			Name:    name,
			Options: options,
		},
	}}
}

// StringOption creates a command option carrying a string value
func StringOption(name string, optionType discordgo.ApplicationCommandOptionType, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  optionType,
		Value: value,
	}
}

// ComponentInteraction creates a button interaction
func ComponentInteraction(member *discordgo.Member, customID string) *discordgo.InteractionCreate {
	return componentInteraction(member, customID, discordgo.ButtonComponent, nil)
}

// SelectInteraction creates a string select menu interaction
func SelectInteraction(member *discordgo.Member, customID string, values []string) *discordgo.InteractionCreate {
	if values == nil {
		values = []string{}
	}
	return componentInteraction(member, customID, discordgo.SelectMenuComponent, values)
}

func componentInteraction(member *discordgo.Member, customID string, componentType discordgo.ComponentType, values []string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "interaction-" + customID,
		Type:    discordgo.InteractionMessageComponent,
		GuildID: GuildID,
		Member:  member,
		Data: discordgo.MessageComponentInteractionData{
			CustomID:      customID,
			ComponentType: componentType,
			Values:        values,
		},
	}}
}
