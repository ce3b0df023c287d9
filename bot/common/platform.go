package common

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/bwmarrin/discordgo"
)

// OutcomeKind classifies the result of a platform call
type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeForbidden
	OutcomeNotFound
	OutcomeFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeForbidden:
		return "forbidden"
	case OutcomeNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// Outcome is the typed result of a best-effort platform call
type Outcome struct {
	Kind OutcomeKind
	Err  error
}

// OK reports whether the call succeeded
func (o Outcome) OK() bool {
	return o.Kind == OutcomeOK
}

// ClassifyError maps an error from discordgo to an Outcome
func ClassifyError(err error) Outcome {
	if err == nil {
		return Outcome{Kind: OutcomeOK}
	}
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return Outcome{Kind: OutcomeNotFound, Err: err}
	}

	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		switch restErr.Response.StatusCode {
		case http.StatusForbidden:
			return Outcome{Kind: OutcomeForbidden, Err: err}
		case http.StatusNotFound:
			return Outcome{Kind: OutcomeNotFound, Err: err}
		}
	}
	return Outcome{Kind: OutcomeFailed, Err: err}
}

// Platform is the slice of the Discord API the bot uses.
// Cache lookups never hit the network; everything taking a context does.
type Platform interface {
	ApplicationID() string
	GuildCount() int

	CachedGuild(guildID string) (*discordgo.Guild, bool)
	CachedChannel(channelID string) (*discordgo.Channel, bool)
	CachedRole(guildID, roleID string) (*discordgo.Role, bool)
	// GuildRoles returns the guild's roles, highest position first
	GuildRoles(guildID string) []*discordgo.Role
	// GuildMembers returns a snapshot of the cached members of a guild
	GuildMembers(guildID string) []*discordgo.Member
	BotMember(guildID string) (*discordgo.Member, bool)
	// RequestMembers asks the gateway to stream every member of a guild into the cache
	RequestMembers(guildID string) Outcome

	FetchChannel(ctx context.Context, channelID string) (*discordgo.Channel, Outcome)
	SendEmbeds(ctx context.Context, channelID string, embeds ...*discordgo.MessageEmbed) Outcome
	AddRole(ctx context.Context, guildID, userID, roleID, reason string) Outcome
	RemoveRole(ctx context.Context, guildID, userID, roleID, reason string) Outcome
	Respond(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) Outcome
	SetWatching(name string) Outcome
}

// SessionPlatform implements Platform on top of a discordgo session
type SessionPlatform struct {
	session *discordgo.Session
	timeout time.Duration
}

// NewSessionPlatform wraps a session. timeout bounds every REST call.
func NewSessionPlatform(session *discordgo.Session, timeout time.Duration) *SessionPlatform {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SessionPlatform{session: session, timeout: timeout}
}

func (p *SessionPlatform) ApplicationID() string {
	state := p.session.State
	state.RLock()
	defer state.RUnlock()
	if state.Application != nil && state.Application.ID != "" {
		return state.Application.ID
	}
	if state.User != nil {
		return state.User.ID
	}
	return ""
}

func (p *SessionPlatform) GuildCount() int {
	state := p.session.State
	state.RLock()
	defer state.RUnlock()
	return len(state.Guilds)
}

func (p *SessionPlatform) CachedGuild(guildID string) (*discordgo.Guild, bool) {
	guild, err := p.session.State.Guild(guildID)
	return guild, err == nil && guild != nil
}

func (p *SessionPlatform) CachedChannel(channelID string) (*discordgo.Channel, bool) {
	channel, err := p.session.State.Channel(channelID)
	return channel, err == nil && channel != nil
}

func (p *SessionPlatform) CachedRole(guildID, roleID string) (*discordgo.Role, bool) {
	role, err := p.session.State.Role(guildID, roleID)
	return role, err == nil && role != nil
}

func (p *SessionPlatform) GuildRoles(guildID string) []*discordgo.Role {
	guild, ok := p.CachedGuild(guildID)
	if !ok {
		return nil
	}

	p.session.State.RLock()
	roles := make([]*discordgo.Role, len(guild.Roles))
	copy(roles, guild.Roles)
	p.session.State.RUnlock()

	sort.SliceStable(roles, func(i, j int) bool {
		return roles[i].Position > roles[j].Position
	})
	return roles
}

func (p *SessionPlatform) GuildMembers(guildID string) []*discordgo.Member {
	guild, ok := p.CachedGuild(guildID)
	if !ok {
		return nil
	}

	p.session.State.RLock()
	defer p.session.State.RUnlock()
	members := make([]*discordgo.Member, 0, len(guild.Members))
	for _, member := range guild.Members {
		members = append(members, copyMember(member))
	}
	return members
}

func (p *SessionPlatform) BotMember(guildID string) (*discordgo.Member, bool) {
	guild, ok := p.CachedGuild(guildID)
	if !ok {
		return nil, false
	}

	p.session.State.RLock()
	defer p.session.State.RUnlock()
	if p.session.State.User == nil {
		return nil, false
	}
	for _, member := range guild.Members {
		if member.User != nil && member.User.ID == p.session.State.User.ID {
			return copyMember(member), true
		}
	}
	return nil, false
}

func (p *SessionPlatform) RequestMembers(guildID string) Outcome {
	return ClassifyError(p.session.RequestGuildMembers(guildID, "", 0, "", false))
}

// copyMember detaches a cached member from state. Callers must hold the state lock.
func copyMember(member *discordgo.Member) *discordgo.Member {
	out := *member
	out.Roles = append([]string(nil), member.Roles...)
	if member.User != nil {
		user := *member.User
		out.User = &user
	}
	if member.PremiumSince != nil {
		since := *member.PremiumSince
		out.PremiumSince = &since
	}
	return &out
}

func (p *SessionPlatform) FetchChannel(ctx context.Context, channelID string) (*discordgo.Channel, Outcome) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	channel, err := p.session.Channel(channelID, discordgo.WithContext(ctx))
	return channel, ClassifyError(err)
}

func (p *SessionPlatform) SendEmbeds(ctx context.Context, channelID string, embeds ...*discordgo.MessageEmbed) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	_, err := p.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: embeds,
	}, discordgo.WithContext(ctx))
	return ClassifyError(err)
}

func (p *SessionPlatform) AddRole(ctx context.Context, guildID, userID, roleID, reason string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.session.GuildMemberRoleAdd(guildID, userID, roleID,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	return ClassifyError(err)
}

func (p *SessionPlatform) RemoveRole(ctx context.Context, guildID, userID, roleID, reason string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.session.GuildMemberRoleRemove(guildID, userID, roleID,
		discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	return ClassifyError(err)
}

func (p *SessionPlatform) Respond(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) Outcome {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.session.InteractionRespond(interaction, resp, discordgo.WithContext(ctx))
	return ClassifyError(err)
}

func (p *SessionPlatform) SetWatching(name string) Outcome {
	return ClassifyError(p.session.UpdateWatchStatus(0, name))
}
