package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"nitroping/bot"
	"nitroping/bot/common"
	"nitroping/config"
	"nitroping/events"
	"nitroping/repository"
	"nitroping/service"
	"nitroping/storage"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// requestTimeout bounds every REST call to Discord
const requestTimeout = 10 * time.Second

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Connect to Discord and start announcing boosts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd.Context(), config.Options{ConfigFile: cfgFile, EnvFile: envFile})
		},
	}
}

// setupLogging applies the configured level and formatter
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(cfg.Level())
}

// Run initializes and starts the application
func Run(ctx context.Context, opts config.Options) error {
	log.Info("Starting NitroPing...")

	// Load configuration
	cfg, err := config.Init(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	setupLogging(cfg)

	// Open storage
	log.WithField("dir", cfg.DataDir).Info("Opening storage...")
	root, err := storage.Open(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	log.WithField("dir", root.Dir()).Info("Storage opened successfully")

	// Initialize event bus
	log.Info("Initializing event bus...")
	eventBus := events.NewBus()
	log.Info("Event bus initialized successfully")

	// Initialize services
	log.Info("Initializing services...")
	configService := service.NewGuildConfigService(repository.NewGuildConfigRepository(root))
	boostService := service.NewBoostService(repository.NewBoostRecordRepository(root), eventBus, service.UTCNow)
	log.Info("Services initialized successfully")

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:          cfg.DiscordToken,
		RequestTimeout: requestTimeout,
		Branding:       common.BrandingFromConfig(cfg),
	}
	discordBot, err := bot.New(botConfig, configService, boostService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Infof("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	// Give in-flight event handlers time to finish
	done := make(chan struct{})
	go func() {
		eventBus.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Shutdown completed")
	case <-time.After(10 * time.Second):
		log.Warn("Shutdown timeout exceeded")
	}

	return nil
}
