package info

import (
	"context"
	"testing"
	"time"

	"nitroping/bot/common"
	"nitroping/bot/testutil"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Feature, *common.MockPlatform) {
	t.Helper()
	platform := new(common.MockPlatform)
	platform.On("Respond", mock.Anything, mock.Anything, mock.Anything).Return(common.Outcome{Kind: common.OutcomeOK})
	branding := common.Branding{
		BotName:    "NitroPing",
		HostName:   "Silent Ember Hosting",
		BoostEmoji: "<a:nitro:1>",
		GemEmoji:   "<:gem:2>",
		SupportURL: "https://discord.gg/support",
		Developers: "Sketch494",
		HostURL:    "https://silent-ember.com/",
	}
	return NewFeature(platform, branding, func() time.Time { return testNow }), platform
}

func TestInvite(t *testing.T) {
	feature, platform := setup(t)
	platform.On("ApplicationID").Return("1411081092689166460")

	feature.HandleCommand(context.Background(), testutil.CommandInteraction(testutil.Member(testutil.UserID, 0), CommandInvite))

	resp := platform.LastResponse()
	assert.Equal(t, "Add **NitroPing** to your server:\nhttps://discord.com/oauth2/authorize?client_id=1411081092689166460", resp.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestSupport(t *testing.T) {
	feature, platform := setup(t)

	feature.HandleCommand(context.Background(), testutil.CommandInteraction(testutil.Member(testutil.UserID, 0), CommandSupport))

	resp := platform.LastResponse()
	assert.Equal(t, "Join our support server: https://discord.gg/support", resp.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestCredits(t *testing.T) {
	feature, platform := setup(t)

	feature.HandleCommand(context.Background(), testutil.CommandInteraction(testutil.Member(testutil.UserID, 0), CommandCredits))

	resp := platform.LastResponse()
	require.Len(t, resp.Data.Embeds, 2)
	assert.Equal(t, creditsBannerURL, resp.Data.Embeds[0].Image.URL)

	credits := resp.Data.Embeds[1]
	assert.Equal(t, "<:gem:2> NitroPing", credits.Title)
	require.Len(t, credits.Fields, 2)
	assert.Equal(t, "Sketch494", credits.Fields[0].Value)
	assert.Equal(t, "[Silent Ember Hosting](https://silent-ember.com/)", credits.Fields[1].Value)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestHelp(t *testing.T) {
	tests := []struct {
		name   string
		member *discordgo.Member
		fields int
	}{
		{name: "member sees public commands", member: testutil.Member(testutil.UserID, 0), fields: len(PublicHelp)},
		{name: "admin sees admin commands too", member: testutil.AdminMember(testutil.UserID), fields: len(PublicHelp) + len(AdminHelp)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feature, platform := setup(t)

			feature.HandleCommand(context.Background(), testutil.CommandInteraction(tt.member, CommandHelp))

			resp := platform.LastResponse()
			require.Len(t, resp.Data.Embeds, 1)
			embed := resp.Data.Embeds[0]
			assert.Equal(t, "<a:nitro:1> NitroPing Help <a:nitro:1>", embed.Title)
			assert.Len(t, embed.Fields, tt.fields)
			assert.Equal(t, "/invite", embed.Fields[0].Name)
			assert.Equal(t, "NitroPing • Silent Ember Hosting • 2026-03-01", embed.Footer.Text)
		})
	}

	// The shared public list is never extended in place
	assert.Len(t, PublicHelp, 5)
}
