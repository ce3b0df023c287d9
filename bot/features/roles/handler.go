package roles

import (
	"context"
	"errors"
	"fmt"

	"nitroping/bot/common"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

const (
	msgNoManageableRoles = "No roles available! Move the bot's role above the roles you want to reward."
	msgSessionExpired    = "This role picker has expired. Run /set_roles again."
	msgNotSessionOwner   = "This role picker belongs to someone else."
)

// HandleCommand handles /set_roles
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	if !common.IsAdmin(i) {
		common.RespondWithError(ctx, f.platform, i, common.ErrNotAdmin.Error())
		return
	}

	if err := f.configService.EnsureGuild(ctx, i.GuildID); err != nil {
		common.HandleError(ctx, f.platform, i, common.NewSystemError(err, "Failed to ensure guild config"))
		return
	}

	roles := f.manageableRoles(i.GuildID)
	if len(roles) == 0 {
		common.RespondWithMessage(ctx, f.platform, i, msgNoManageableRoles, true)
		return
	}

	// Start from the roles already configured so Save without changes keeps them
	current := OfferedOnly(roles, f.configService.GetConfig(ctx, i.GuildID).RoleIDStrings())

	session := f.sessions.Start(i.GuildID, common.InteractionUserID(i))
	session = f.sessions.UpdateSelection(session, current)

	log.WithFields(log.Fields{
		"guild_id":   i.GuildID,
		"user_id":    session.UserID,
		"session_id": session.ID,
		"options":    len(roles),
	}).Debug("Opened role picker")

	common.RespondWithEmbeds(ctx, f.platform, i,
		[]*discordgo.MessageEmbed{f.buildPickerEmbed()},
		buildPickerComponents(session.ID, roles, session.Selected),
		true)
}

// manageableRoles lists the roles the bot could grant in a guild
func (f *Feature) manageableRoles(guildID string) []*discordgo.Role {
	botMember, ok := f.platform.BotMember(guildID)
	if !ok {
		return nil
	}
	roles := f.platform.GuildRoles(guildID)
	return ManageableRoles(guildID, roles, TopRolePosition(botMember, roles))
}

// lookup resolves the session of a component interaction and answers inert interactions
func (f *Feature) lookup(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) (Session, bool) {
	session, err := f.sessions.Lookup(sessionID, i.GuildID, common.InteractionUserID(i))
	switch {
	case err == nil:
		return session, true
	case errors.Is(err, ErrNotSessionOwner):
		common.RespondWithMessage(ctx, f.platform, i, msgNotSessionOwner, true)
	default:
		common.RespondWithMessage(ctx, f.platform, i, msgSessionExpired, true)
	}
	return Session{}, false
}

func (f *Feature) handleSelect(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) {
	session, ok := f.lookup(ctx, i, sessionID)
	if !ok {
		return
	}
	f.sessions.UpdateSelection(session, i.MessageComponentData().Values)
	common.AcknowledgeComponent(ctx, f.platform, i)
}

func (f *Feature) handleSave(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) {
	session, ok := f.lookup(ctx, i, sessionID)
	if !ok {
		return
	}

	// Select payloads come from the client; keep only roles the picker can offer now
	selected := OfferedOnly(f.manageableRoles(session.GuildID), session.Selected)

	if err := f.configService.SetRoles(ctx, session.GuildID, selected); err != nil {
		log.WithFields(log.Fields{
			"guild_id": session.GuildID,
			"user_id":  session.UserID,
		}).WithError(err).Error("Failed to save booster roles")
		common.UpdateMessage(ctx, f.platform, i, fmt.Sprintf("Error saving roles: %v", err), nil, nil)
		f.sessions.End(session)
		return
	}

	log.WithFields(log.Fields{
		"guild_id": session.GuildID,
		"roles":    selected,
		"dropped":  len(session.Selected) - len(selected),
	}).Info("Booster roles updated")

	f.sessions.End(session)
	common.UpdateMessage(ctx, f.platform, i, "", f.buildSavedEmbed(session.GuildID, selected), nil)
}

func (f *Feature) handleCancel(ctx context.Context, i *discordgo.InteractionCreate, sessionID string) {
	session, ok := f.lookup(ctx, i, sessionID)
	if !ok {
		return
	}
	f.sessions.End(session)
	common.UpdateMessage(ctx, f.platform, i, "Cancelled.", nil, nil)
}
