package roles

import (
	"fmt"
	"unicode/utf8"

	"nitroping/bot/common"

	"github.com/bwmarrin/discordgo"
)

// ManageableRoles filters roles (highest first) down to those the bot can grant:
// not @everyone, not integration managed and strictly below the bot's top role.
// The result is capped at the select menu option limit.
func ManageableRoles(guildID string, roles []*discordgo.Role, botTopPosition int) []*discordgo.Role {
	manageable := make([]*discordgo.Role, 0, len(roles))
	for _, role := range roles {
		if role.ID == guildID || role.Managed || role.Position >= botTopPosition {
			continue
		}
		manageable = append(manageable, role)
		if len(manageable) == common.MaxSelectOptions {
			break
		}
	}
	return manageable
}

// OfferedOnly keeps the ids that name one of the offered roles, in order
func OfferedOnly(offered []*discordgo.Role, ids []string) []string {
	known := make(map[string]bool, len(offered))
	for _, role := range offered {
		known[role.ID] = true
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			out = append(out, id)
		}
	}
	return out
}

// TopRolePosition returns the highest position among a member's roles
func TopRolePosition(member *discordgo.Member, roles []*discordgo.Role) int {
	held := make(map[string]bool, len(member.Roles))
	for _, id := range member.Roles {
		held[id] = true
	}

	top := 0
	for _, role := range roles {
		if held[role.ID] && role.Position > top {
			top = role.Position
		}
	}
	return top
}

// maxOptionLabel is Discord's limit on select option labels, in characters
const maxOptionLabel = 100

func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// buildPickerComponents creates the select menu and the Save/Cancel buttons
func buildPickerComponents(sessionID string, roles []*discordgo.Role, selected []string) []discordgo.MessageComponent {
	isSelected := make(map[string]bool, len(selected))
	for _, id := range selected {
		isSelected[id] = true
	}

	options := make([]discordgo.SelectMenuOption, 0, len(roles))
	for _, role := range roles {
		label := truncateRunes(role.Name, maxOptionLabel)
		options = append(options, discordgo.SelectMenuOption{
			Label:       label,
			Value:       role.ID,
			Description: fmt.Sprintf("ID %s", role.ID),
			Default:     isSelected[role.ID],
		})
	}

	minValues := 0
	maxValues := len(options)
	if maxValues > common.MaxSelectOptions {
		maxValues = common.MaxSelectOptions
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    selectPrefix + sessionID,
					Placeholder: "Select booster roles (multi-select)",
					MinValues:   &minValues,
					MaxValues:   maxValues,
					Options:     options,
				},
			},
		},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Save",
					Style:    discordgo.SuccessButton,
					CustomID: savePrefix + sessionID,
				},
				discordgo.Button{
					Label:    "Cancel",
					Style:    discordgo.SecondaryButton,
					CustomID: cancelPrefix + sessionID,
				},
			},
		},
	}
}
