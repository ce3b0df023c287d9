package announce

import (
	"context"
	"fmt"
	"time"

	"nitroping/bot/common"
	"nitroping/events"
	"nitroping/models"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// SnapshotMember extracts what the reactor needs from a gateway member
func SnapshotMember(guildID string, member *discordgo.Member) service.MemberSnapshot {
	snapshot := service.MemberSnapshot{
		GuildID:    guildID,
		BoostStart: member.PremiumSince,
	}
	if member.User != nil {
		snapshot.UserID = member.User.ID
		snapshot.DisplayName = member.DisplayName()
		snapshot.Mention = member.Mention()
		snapshot.AvatarURL = common.MemberAvatarURL(member)
	}
	return snapshot
}

// HandleMemberUpdate classifies a member update and runs the matching side effects
func (f *Feature) HandleMemberUpdate(ctx context.Context, update *discordgo.GuildMemberUpdate) {
	if update.Member == nil || update.User == nil {
		return
	}

	guildID := update.GuildID
	after := SnapshotMember(guildID, update.Member)

	fields := log.Fields{
		"guild_id": guildID,
		"user_id":  after.UserID,
	}

	var before *time.Time
	if update.BeforeUpdate != nil {
		before = update.BeforeUpdate.PremiumSince
	} else {
		var known bool
		before, known = f.boostService.PreviousBoostStart(ctx, guildID, after.UserID)
		if !known {
			// Member was not cached and never recorded: their earlier state is unknown
			if after.BoostStart != nil {
				if err := f.boostService.RecordBaseline(ctx, after); err != nil {
					log.WithFields(fields).WithError(err).Warn("Failed to persist boost record")
				}
			}
			return
		}
	}

	transition, err := f.boostService.RecordTransition(ctx, before, after)
	if transition == models.TransitionNone {
		return
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("Failed to persist boost record")
	}

	if err := f.configService.EnsureGuild(ctx, guildID); err != nil {
		log.WithFields(fields).WithError(err).Warn("Failed to ensure guild config")
	}
	cfg := f.configService.GetConfig(ctx, guildID)

	switch transition {
	case models.TransitionStarted:
		f.updateRoles(ctx, guildID, after.UserID, cfg.RoleIDStrings(), true)
	case models.TransitionStopped:
		f.updateRoles(ctx, guildID, after.UserID, cfg.RoleIDStrings(), false)
	}

	f.announce(ctx, guildID, cfg, f.buildMemberEmbed(transition, after, cfg))
}

// updateRoles grants or revokes every configured reward role the guild still has
func (f *Feature) updateRoles(ctx context.Context, guildID, userID string, roleIDs []string, grant bool) {
	for _, roleID := range roleIDs {
		fields := log.Fields{
			"guild_id": guildID,
			"user_id":  userID,
			"role_id":  roleID,
		}

		if _, ok := f.platform.CachedRole(guildID, roleID); !ok {
			log.WithFields(fields).Debug("Skipping unknown reward role")
			continue
		}

		var outcome common.Outcome
		if grant {
			outcome = f.platform.AddRole(ctx, guildID, userID, roleID, common.ReasonStartedBoosting)
		} else {
			outcome = f.platform.RemoveRole(ctx, guildID, userID, roleID, common.ReasonStoppedBoosting)
		}

		switch outcome.Kind {
		case common.OutcomeOK:
		case common.OutcomeForbidden:
			log.WithFields(fields).Debug("Missing permission to manage reward role")
		default:
			log.WithFields(fields).WithError(outcome.Err).Warn("Failed to update reward role")
		}
	}
}

// announce posts an embed to the guild's announcement channel, if it has one
func (f *Feature) announce(ctx context.Context, guildID string, cfg *models.GuildConfig, embed *discordgo.MessageEmbed) {
	channelID, ok := f.ResolveChannel(ctx, guildID, cfg)
	if !ok {
		log.WithField("guild_id", guildID).Debug("No announcement channel, skipping boost notification")
		return
	}

	if outcome := f.platform.SendEmbeds(ctx, channelID, embed); !outcome.OK() {
		log.WithFields(log.Fields{
			"guild_id":   guildID,
			"channel_id": channelID,
			"outcome":    outcome.Kind,
		}).WithError(outcome.Err).Warn("Failed to send boost notification")
	}
}

// HandleGuildCreate records the boost count of a guild the bot can see
func (f *Feature) HandleGuildCreate(guild *discordgo.Guild) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.counts[guild.ID] = guild.PremiumSubscriptionCount
}

// HandleGuildDelete forgets a guild the bot left. Outages keep the count.
func (f *Feature) HandleGuildDelete(guild *discordgo.Guild) {
	if guild.Unavailable {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.counts, guild.ID)
}

// HandleGuildUpdate announces increases of the guild's aggregate boost count
func (f *Feature) HandleGuildUpdate(ctx context.Context, guild *discordgo.Guild) {
	current := guild.PremiumSubscriptionCount

	f.mu.Lock()
	previous, known := f.counts[guild.ID]
	f.counts[guild.ID] = current
	f.mu.Unlock()

	if !known {
		return
	}
	gained := service.BoostDelta(previous, current)
	if gained == 0 {
		return
	}

	log.WithFields(log.Fields{
		"guild_id": guild.ID,
		"previous": previous,
		"current":  current,
	}).Info("Guild boost count increased")

	cfg := f.configService.GetConfig(ctx, guild.ID)
	f.announce(ctx, guild.ID, cfg, f.buildAggregateEmbed(guild, gained, cfg))

	if f.publisher != nil {
		f.publisher.Emit(ctx, events.GuildBoostsGainedEvent{
			GuildID:  guild.ID,
			Previous: previous,
			Current:  current,
			Delta:    gained,
		})
	}
}

// SendPreview posts a test announcement with subject as the booster.
// Unlike real announcements it requires a configured channel.
func (f *Feature) SendPreview(ctx context.Context, cfg *models.GuildConfig, subject service.MemberSnapshot, stopped bool) error {
	channelID := cfg.ChannelIDString()
	if channelID == "" {
		return ErrNoChannel
	}

	resolved, err := f.resolveConfigured(ctx, channelID)
	if err != nil {
		return err
	}

	if outcome := f.platform.SendEmbeds(ctx, resolved, f.buildPreviewEmbed(stopped, subject, cfg)); !outcome.OK() {
		return fmt.Errorf("failed to send test message: %w", outcome.Err)
	}
	return nil
}
