package bot

import (
	"context"
	"fmt"
	"time"

	"nitroping/bot/common"
	"nitroping/bot/features/announce"
	"nitroping/bot/features/boosters"
	"nitroping/bot/features/info"
	"nitroping/bot/features/roles"
	"nitroping/bot/features/settings"
	"nitroping/events"
	"nitroping/service"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Intents the bot needs: guild lifecycle and member updates
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

// ensureConcurrency bounds config creation on ready
const ensureConcurrency = 8

// Config holds bot configuration
type Config struct {
	Token          string
	RequestTimeout time.Duration
	Branding       common.Branding
}

// Bot manages the Discord session and all feature modules
type Bot struct {
	// Core components
	config        Config
	session       *discordgo.Session
	platform      common.Platform
	configService service.GuildConfigService
	eventBus      *events.Bus

	ctx    context.Context
	cancel context.CancelFunc

	// GuildCreates for guilds joined before this time are startup replays
	startedAt time.Time

	// Feature modules
	announce *announce.Feature
	settings *settings.Feature
	roles    *roles.Feature
	boosters *boosters.Feature
	info     *info.Feature
}

// New creates the Discord session, opens it and registers the slash commands
func New(config Config, configService service.GuildConfigService, boostService service.BoostService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = Intents

	bot := newBot(config, common.NewSessionPlatform(dg, config.RequestTimeout), configService, boostService, eventBus)
	bot.session = dg

	// Register gateway handlers
	dg.AddHandler(bot.handleReady)
	dg.AddHandler(bot.handleGuildCreate)
	dg.AddHandler(bot.handleGuildDelete)
	dg.AddHandler(bot.handleGuildUpdate)
	dg.AddHandler(bot.handleMemberUpdate)
	dg.AddHandler(bot.handleInteraction)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		bot.cancel()
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		bot.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

// newBot wires the features around a platform without touching the network
func newBot(config Config, platform common.Platform, configService service.GuildConfigService, boostService service.BoostService, eventBus *events.Bus) *Bot {
	ctx, cancel := context.WithCancel(context.Background())

	bot := &Bot{
		config:        config,
		platform:      platform,
		configService: configService,
		eventBus:      eventBus,
		ctx:           ctx,
		cancel:        cancel,
		startedAt:     time.Now(),
	}

	var publisher service.EventPublisher
	if eventBus != nil {
		publisher = eventBus
	}

	bot.announce = announce.NewFeature(platform, configService, boostService, publisher, config.Branding, nil)
	bot.settings = settings.NewFeature(platform, configService, bot.announce, config.Branding, nil)
	bot.roles = roles.NewFeature(platform, configService, roles.NewSessionStore(roles.SessionTTL), config.Branding, nil)
	bot.boosters = boosters.NewFeature(platform, config.Branding, nil)
	bot.info = info.NewFeature(platform, config.Branding, nil)

	if eventBus != nil {
		bot.subscribe(eventBus)
	}
	return bot
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	b.cancel()
	if b.session == nil {
		return nil
	}
	return b.session.Close()
}

// subscribe registers the bot's own event handlers
func (b *Bot) subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeGuildMembership, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.GuildMembershipEvent); ok {
			log.WithFields(log.Fields{
				"guild_id":    e.GuildID,
				"joined":      e.Joined,
				"guild_count": e.GuildCount,
			}).Info("Guild membership changed")
			b.updatePresence(e.GuildCount)
		}
	})

	bus.Subscribe(events.EventTypeBoostTransition, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.BoostTransitionEvent); ok {
			log.WithFields(log.Fields{
				"guild_id":   e.GuildID,
				"user_id":    e.UserID,
				"transition": e.Transition,
			}).Debug("Boost transition recorded")
		}
	})

	bus.Subscribe(events.EventTypeGuildBoostsGained, func(ctx context.Context, event events.Event) {
		if e, ok := event.(events.GuildBoostsGainedEvent); ok {
			log.WithFields(log.Fields{
				"guild_id": e.GuildID,
				"delta":    e.Delta,
			}).Debug("Guild boosts gained")
		}
	})
}

// updatePresence sets "Watching N servers"
func (b *Bot) updatePresence(guildCount int) {
	if outcome := b.platform.SetWatching(fmt.Sprintf("%d servers", guildCount)); !outcome.OK() {
		log.WithField("outcome", outcome.Kind).WithError(outcome.Err).Warn("Failed to update presence")
	}
}

// recoverHandler keeps a panicking gateway handler from taking the process down
func recoverHandler(handler, guildID string) {
	if r := recover(); r != nil {
		log.WithFields(log.Fields{
			"handler":  handler,
			"guild_id": guildID,
			"panic":    r,
		}).Error("Gateway handler panicked")
	}
}

func (b *Bot) handleReady(s *discordgo.Session, r *discordgo.Ready) {
	defer recoverHandler("ready", "")
	b.onReady(r)
}

func (b *Bot) onReady(r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":       r.User.String(),
		"user_id":    r.User.ID,
		"guilds":     len(r.Guilds),
		"discordgo":  discordgo.VERSION,
		"session_id": r.SessionID,
	}).Info("Bot is ready")

	g, ctx := errgroup.WithContext(b.ctx)
	g.SetLimit(ensureConcurrency)
	for _, guild := range r.Guilds {
		if !guild.Unavailable {
			b.announce.HandleGuildCreate(guild)
		}
		guildID := guild.ID
		g.Go(func() error {
			if err := b.configService.EnsureGuild(ctx, guildID); err != nil {
				log.WithField("guild_id", guildID).WithError(err).Error("Failed to ensure guild config")
			}
			return nil
		})
	}
	_ = g.Wait()

	b.updatePresence(len(r.Guilds))
}

func (b *Bot) handleGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	defer recoverHandler("guild_create", g.ID)
	b.onGuildCreate(g.Guild)
}

func (b *Bot) onGuildCreate(guild *discordgo.Guild) {
	if guild.Unavailable {
		return
	}

	if err := b.configService.EnsureGuild(b.ctx, guild.ID); err != nil {
		log.WithField("guild_id", guild.ID).WithError(err).Error("Failed to ensure guild config")
	}
	b.announce.HandleGuildCreate(guild)

	// Only members of small guilds arrive with GuildCreate
	if guild.Large || guild.MemberCount > len(guild.Members) {
		if outcome := b.platform.RequestMembers(guild.ID); !outcome.OK() {
			log.WithFields(log.Fields{
				"guild_id": guild.ID,
				"outcome":  outcome.Kind,
			}).WithError(outcome.Err).Warn("Failed to request guild members")
		}
	}

	// Guilds the bot was already in stream in as GuildCreate on every connect
	if !guild.JoinedAt.After(b.startedAt) {
		log.WithField("guild_id", guild.ID).Debug("Guild available")
		return
	}

	b.emit(events.GuildMembershipEvent{
		GuildID:    guild.ID,
		Joined:     true,
		GuildCount: b.platform.GuildCount(),
	})
}

func (b *Bot) handleGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	defer recoverHandler("guild_delete", g.ID)
	b.onGuildDelete(g.Guild)
}

func (b *Bot) onGuildDelete(guild *discordgo.Guild) {
	b.announce.HandleGuildDelete(guild)
	if guild.Unavailable {
		log.WithField("guild_id", guild.ID).Warn("Guild became unavailable")
		return
	}

	b.emit(events.GuildMembershipEvent{
		GuildID:    guild.ID,
		Joined:     false,
		GuildCount: b.platform.GuildCount(),
	})
}

func (b *Bot) handleGuildUpdate(s *discordgo.Session, g *discordgo.GuildUpdate) {
	defer recoverHandler("guild_update", g.ID)
	b.announce.HandleGuildUpdate(b.ctx, g.Guild)
}

func (b *Bot) handleMemberUpdate(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
	defer recoverHandler("guild_member_update", m.GuildID)
	b.announce.HandleMemberUpdate(b.ctx, m)
}

func (b *Bot) emit(event events.Event) {
	if b.eventBus != nil {
		b.eventBus.Emit(b.ctx, event)
	}
}
