package boosters

import (
	"context"
	"strconv"
	"strings"

	"nitroping/bot/common"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// CommandBoosters lists the guild's current boosters
const CommandBoosters = "boosters"

// PageSize is the number of boosters shown per page
const PageSize = 10

const nextPrefix = "boosters_next:"

// Feature implements the /boosters listing
type Feature struct {
	platform common.Platform
	branding common.Branding
	now      service.Clock
}

// NewFeature creates a new boosters feature instance
func NewFeature(platform common.Platform, branding common.Branding, now service.Clock) *Feature {
	if now == nil {
		now = service.UTCNow
	}
	return &Feature{
		platform: platform,
		branding: branding,
		now:      now,
	}
}

// Commands returns the slash command definitions of this feature
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandBoosters,
			Description: "List current server boosters",
			Contexts:    common.GuildOnly,
		},
	}
}

// OwnsComponent reports whether a custom ID belongs to this feature
func OwnsComponent(customID string) bool {
	return strings.HasPrefix(customID, nextPrefix)
}

// HandleCommand handles /boosters
func (f *Feature) HandleCommand(ctx context.Context, i *discordgo.InteractionCreate) {
	pages := Paginate(CollectBoosters(f.platform.GuildMembers(i.GuildID)), PageSize)
	if len(pages) == 0 {
		common.RespondWithMessage(ctx, f.platform, i, "No boosters found!", true)
		return
	}

	common.RespondWithEmbeds(ctx, f.platform, i,
		[]*discordgo.MessageEmbed{f.buildPageEmbed(i.GuildID, pages, 0)},
		buildNavigation(pages, 0),
		false)
}

// HandleComponent handles the Next button. The target page travels in the custom ID.
func (f *Feature) HandleComponent(ctx context.Context, i *discordgo.InteractionCreate) {
	page, err := strconv.Atoi(strings.TrimPrefix(i.MessageComponentData().CustomID, nextPrefix))
	if err != nil || page < 0 {
		log.WithField("custom_id", i.MessageComponentData().CustomID).Warn("Invalid boosters page")
		page = 0
	}

	pages := Paginate(CollectBoosters(f.platform.GuildMembers(i.GuildID)), PageSize)
	if len(pages) == 0 {
		common.UpdateMessage(ctx, f.platform, i, "No boosters found!", nil, nil)
		return
	}

	// The listing may have shrunk since the button was rendered
	page %= len(pages)

	common.UpdateMessage(ctx, f.platform, i, "", f.buildPageEmbed(i.GuildID, pages, page), buildNavigation(pages, page))
}
