package boosters

import (
	"context"
	"fmt"
	"testing"
	"time"

	"nitroping/bot/common"
	"nitroping/bot/testutil"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testNow   = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	okOutcome = common.Outcome{Kind: common.OutcomeOK}
)

// makeMembers creates n boosters, booster i started boosting i+1 days ago, plus one non-booster
func makeMembers(n int) []*discordgo.Member {
	members := []*discordgo.Member{
		{User: &discordgo.User{ID: "1"}, Nick: "not boosting"},
	}
	for i := 0; i < n; i++ {
		since := testNow.AddDate(0, 0, -(i + 1))
		members = append(members, &discordgo.Member{
			User:         &discordgo.User{ID: fmt.Sprintf("10%02d", i), Username: fmt.Sprintf("booster%02d", i)},
			PremiumSince: &since,
		})
	}
	return members
}

func newFeature(platform *common.MockPlatform) *Feature {
	return NewFeature(platform, common.Branding{BotName: "NitroPing", HostName: "Host", BoostEmoji: "<a:nitro:1>"},
		func() time.Time { return testNow })
}

func TestCollectBoosters_OldestFirst(t *testing.T) {
	boosters := CollectBoosters(makeMembers(3))

	require.Len(t, boosters, 3)
	assert.Equal(t, "1002", boosters[0].UserID)
	assert.Equal(t, "1000", boosters[2].UserID)
	assert.Equal(t, "booster02", boosters[0].DisplayName)
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		count int
		sizes []int
	}{
		{count: 0, sizes: []int{}},
		{count: 1, sizes: []int{1}},
		{count: 10, sizes: []int{10}},
		{count: 11, sizes: []int{10, 1}},
		{count: 23, sizes: []int{10, 10, 3}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d boosters", tt.count), func(t *testing.T) {
			pages := Paginate(CollectBoosters(makeMembers(tt.count)), PageSize)
			sizes := make([]int, 0, len(pages))
			for _, p := range pages {
				sizes = append(sizes, len(p))
			}
			assert.Equal(t, tt.sizes, sizes)
		})
	}
}

func TestHandleCommand_NoBoosters(t *testing.T) {
	ctx := context.Background()
	platform := new(common.MockPlatform)
	platform.On("GuildMembers", testutil.GuildID).Return(makeMembers(0))
	platform.On("Respond", ctx, mock.Anything, mock.Anything).Return(okOutcome)

	newFeature(platform).HandleCommand(ctx, testutil.CommandInteraction(testutil.Member(testutil.UserID, 0), CommandBoosters))

	resp := platform.LastResponse()
	assert.Equal(t, "No boosters found!", resp.Data.Content)
	assert.Empty(t, resp.Data.Embeds)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, resp.Data.Flags)
}

func TestHandleCommand_SinglePageHasNoNext(t *testing.T) {
	ctx := context.Background()
	platform := new(common.MockPlatform)
	platform.On("GuildMembers", testutil.GuildID).Return(makeMembers(4))
	platform.On("CachedGuild", testutil.GuildID).Return(&discordgo.Guild{ID: testutil.GuildID}, true)
	platform.On("Respond", ctx, mock.Anything, mock.Anything).Return(okOutcome)

	newFeature(platform).HandleCommand(ctx, testutil.CommandInteraction(testutil.Member(testutil.UserID, 0), CommandBoosters))

	resp := platform.LastResponse()
	require.Len(t, resp.Data.Embeds, 1)
	embed := resp.Data.Embeds[0]
	assert.Len(t, embed.Fields, 4)
	assert.Equal(t, "booster03", embed.Fields[0].Name)
	assert.Equal(t, "Boosting for 4 days", embed.Fields[0].Value)
	assert.Empty(t, resp.Data.Components)
	assert.Zero(t, resp.Data.Flags)
}

func TestHandleCommand_TwentyThreeBoosters(t *testing.T) {
	ctx := context.Background()
	platform := new(common.MockPlatform)
	platform.On("GuildMembers", testutil.GuildID).Return(makeMembers(23))
	platform.On("CachedGuild", testutil.GuildID).Return(nil, false)
	platform.On("Respond", ctx, mock.Anything, mock.Anything).Return(okOutcome)
	feature := newFeature(platform)
	member := testutil.Member(testutil.UserID, 0)

	feature.HandleCommand(ctx, testutil.CommandInteraction(member, CommandBoosters))

	resp := platform.LastResponse()
	assert.Len(t, resp.Data.Embeds[0].Fields, 10)
	assert.Equal(t, "Page 1/3", resp.Data.Embeds[0].Description)
	button := nextButton(t, resp)
	assert.Equal(t, "Next", button.Label)
	assert.Equal(t, "boosters_next:1", button.CustomID)

	// Walk the pages: 10, 3, then wrap to the first page
	feature.HandleComponent(ctx, testutil.ComponentInteraction(member, "boosters_next:1"))
	resp = platform.LastResponse()
	assert.Equal(t, discordgo.InteractionResponseUpdateMessage, resp.Type)
	assert.Len(t, resp.Data.Embeds[0].Fields, 10)
	assert.Equal(t, "boosters_next:2", nextButton(t, resp).CustomID)

	feature.HandleComponent(ctx, testutil.ComponentInteraction(member, "boosters_next:2"))
	resp = platform.LastResponse()
	assert.Len(t, resp.Data.Embeds[0].Fields, 3)
	assert.Equal(t, "boosters_next:0", nextButton(t, resp).CustomID)

	feature.HandleComponent(ctx, testutil.ComponentInteraction(member, "boosters_next:0"))
	resp = platform.LastResponse()
	assert.Equal(t, "Page 1/3", resp.Data.Embeds[0].Description)
}

func TestHandleComponent_ListingShrank(t *testing.T) {
	ctx := context.Background()
	platform := new(common.MockPlatform)
	platform.On("GuildMembers", testutil.GuildID).Return(makeMembers(12)).Once()
	platform.On("GuildMembers", testutil.GuildID).Return(makeMembers(0))
	platform.On("CachedGuild", testutil.GuildID).Return(nil, false)
	platform.On("Respond", ctx, mock.Anything, mock.Anything).Return(okOutcome)
	feature := newFeature(platform)
	member := testutil.Member(testutil.UserID, 0)

	feature.HandleComponent(ctx, testutil.ComponentInteraction(member, "boosters_next:5"))
	assert.Equal(t, "Page 2/2", platform.LastResponse().Data.Embeds[0].Description)

	feature.HandleComponent(ctx, testutil.ComponentInteraction(member, "boosters_next:1"))
	resp := platform.LastResponse()
	assert.Equal(t, "No boosters found!", resp.Data.Content)
	assert.Empty(t, resp.Data.Components)
}

func nextButton(t *testing.T, resp *discordgo.InteractionResponse) discordgo.Button {
	t.Helper()
	require.Len(t, resp.Data.Components, 1)
	row := resp.Data.Components[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 1)
	return row.Components[0].(discordgo.Button)
}
