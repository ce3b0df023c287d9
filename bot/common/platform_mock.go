package common

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/mock"
)

// MockPlatform is a mock implementation of Platform
type MockPlatform struct {
	mock.Mock
}

func (m *MockPlatform) ApplicationID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPlatform) GuildCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockPlatform) CachedGuild(guildID string) (*discordgo.Guild, bool) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*discordgo.Guild), args.Bool(1)
}

func (m *MockPlatform) CachedChannel(channelID string) (*discordgo.Channel, bool) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*discordgo.Channel), args.Bool(1)
}

func (m *MockPlatform) CachedRole(guildID, roleID string) (*discordgo.Role, bool) {
	args := m.Called(guildID, roleID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*discordgo.Role), args.Bool(1)
}

func (m *MockPlatform) GuildRoles(guildID string) []*discordgo.Role {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*discordgo.Role)
}

func (m *MockPlatform) GuildMembers(guildID string) []*discordgo.Member {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*discordgo.Member)
}

func (m *MockPlatform) BotMember(guildID string) (*discordgo.Member, bool) {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*discordgo.Member), args.Bool(1)
}

func (m *MockPlatform) RequestMembers(guildID string) Outcome {
	args := m.Called(guildID)
	return args.Get(0).(Outcome)
}

func (m *MockPlatform) FetchChannel(ctx context.Context, channelID string) (*discordgo.Channel, Outcome) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Get(1).(Outcome)
	}
	return args.Get(0).(*discordgo.Channel), args.Get(1).(Outcome)
}

func (m *MockPlatform) SendEmbeds(ctx context.Context, channelID string, embeds ...*discordgo.MessageEmbed) Outcome {
	args := m.Called(ctx, channelID, embeds)
	return args.Get(0).(Outcome)
}

func (m *MockPlatform) AddRole(ctx context.Context, guildID, userID, roleID, reason string) Outcome {
	args := m.Called(ctx, guildID, userID, roleID, reason)
	return args.Get(0).(Outcome)
}

func (m *MockPlatform) RemoveRole(ctx context.Context, guildID, userID, roleID, reason string) Outcome {
	args := m.Called(ctx, guildID, userID, roleID, reason)
	return args.Get(0).(Outcome)
}

func (m *MockPlatform) Respond(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) Outcome {
	args := m.Called(ctx, interaction, resp)
	return args.Get(0).(Outcome)
}

func (m *MockPlatform) SetWatching(name string) Outcome {
	args := m.Called(name)
	return args.Get(0).(Outcome)
}

// LastResponse returns the data of the most recent Respond call, or nil
func (m *MockPlatform) LastResponse() *discordgo.InteractionResponse {
	for i := len(m.Calls) - 1; i >= 0; i-- {
		if m.Calls[i].Method == "Respond" {
			return m.Calls[i].Arguments.Get(2).(*discordgo.InteractionResponse)
		}
	}
	return nil
}
