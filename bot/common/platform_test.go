package common

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatePlatform(t *testing.T) *SessionPlatform {
	t.Helper()
	session, err := discordgo.New("Bot test")
	require.NoError(t, err)

	session.State.User = &discordgo.User{ID: "bot"}
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, session.State.GuildAdd(&discordgo.Guild{
		ID: "1",
		Members: []*discordgo.Member{
			{GuildID: "1", User: &discordgo.User{ID: "bot"}, Roles: []string{"10"}},
			{GuildID: "1", User: &discordgo.User{ID: "2"}, Roles: []string{"20"}, PremiumSince: &since},
		},
	}))
	return NewSessionPlatform(session, time.Second)
}

func TestSessionPlatform_GuildMembersDetachedFromState(t *testing.T) {
	platform := newStatePlatform(t)

	members := platform.GuildMembers("1")
	require.Len(t, members, 2)

	// A later gateway update rewrites the cached member in place
	require.NoError(t, platform.session.State.MemberAdd(&discordgo.Member{
		GuildID: "1",
		User:    &discordgo.User{ID: "2"},
		Roles:   []string{"30"},
	}))

	booster := members[1]
	assert.Equal(t, "2", booster.User.ID)
	assert.Equal(t, []string{"20"}, booster.Roles)
	require.NotNil(t, booster.PremiumSince)

	cached, err := platform.session.State.Member("1", "2")
	require.NoError(t, err)
	assert.NotSame(t, cached, booster)
	assert.Nil(t, cached.PremiumSince)
}

func TestSessionPlatform_BotMember(t *testing.T) {
	platform := newStatePlatform(t)

	member, ok := platform.BotMember("1")
	require.True(t, ok)
	assert.Equal(t, []string{"10"}, member.Roles)

	cached, err := platform.session.State.Member("1", "bot")
	require.NoError(t, err)
	assert.NotSame(t, cached, member)

	_, ok = platform.BotMember("missing")
	assert.False(t, ok)
}
