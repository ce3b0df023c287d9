package common

import (
	"context"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// respond sends an interaction response and logs failures
func respond(ctx context.Context, p Platform, i *discordgo.InteractionCreate, resp *discordgo.InteractionResponse) {
	if outcome := p.Respond(ctx, i.Interaction, resp); !outcome.OK() {
		log.WithFields(log.Fields{
			"guild_id": i.GuildID,
			"outcome":  outcome.Kind,
			"error":    outcome.Err,
		}).Error("Failed to respond to interaction")
	}
}

// RespondWithMessage sends a plain text interaction response
func RespondWithMessage(ctx context.Context, p Platform, i *discordgo.InteractionCreate, message string, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Content: message,
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	respond(ctx, p, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondWithEmbeds sends embeds as an interaction response
func RespondWithEmbeds(ctx context.Context, p Platform, i *discordgo.InteractionCreate, embeds []*discordgo.MessageEmbed, components []discordgo.MessageComponent, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: embeds,
	}

	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	if len(components) > 0 {
		data.Components = components
	}

	respond(ctx, p, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// UpdateMessage replaces the message a component belongs to.
// A nil embed clears the embeds; nil components clear the components.
func UpdateMessage(ctx context.Context, p Platform, i *discordgo.InteractionCreate, content string, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	embeds := []*discordgo.MessageEmbed{}
	if embed != nil {
		embeds = append(embeds, embed)
	}
	if components == nil {
		components = []discordgo.MessageComponent{}
	}

	respond(ctx, p, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Embeds:     embeds,
			Components: components,
		},
	})
}

// AcknowledgeComponent acknowledges a component interaction without changing the message
func AcknowledgeComponent(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	respond(ctx, p, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
}
