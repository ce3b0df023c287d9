package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken string `yaml:"token"`

	// Storage configuration
	DataDir string `yaml:"data_dir"` // One directory per guild lives under here

	// Branding used in embeds
	BotName    string `yaml:"bot_name"`
	HostName   string `yaml:"host_name"`
	BoostEmoji string `yaml:"boost_emoji"`
	GemEmoji   string `yaml:"gem_emoji"`
	SupportURL string `yaml:"support_url"`
	Developers string `yaml:"developers"`
	HostURL    string `yaml:"host_url"`

	LogLevel string `yaml:"log_level"`

	// Environment
	Environment string `yaml:"environment"` // "development", "production" or "test"
}

// Options controls where configuration is loaded from
type Options struct {
	ConfigFile string // Optional YAML file
	EnvFile    string // Optional .env file
	Offline    bool   // Maintenance commands that never connect skip the token check
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Init loads the configuration with the given options and installs it as the global instance
func Init(opts Options) (*Config, error) {
	cfg, err := load(opts)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = cfg
	once.Do(func() {})
	return cfg, nil
}

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by Init or tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load(Options{EnvFile: ".env"})
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// defaultConfig returns the built-in defaults
func defaultConfig() *Config {
	return &Config{
		DataDir:     "servers",
		BotName:     "NitroPing",
		HostName:    "Silent Ember Hosting",
		BoostEmoji:  "<a:nitro:1411082919019155456>",
		GemEmoji:    "<:boostergem:1411082984450162718>",
		SupportURL:  "https://discord.gg/Y64smue5uZ",
		Developers:  "Sketch494",
		HostURL:     "https://silent-ember.com/",
		LogLevel:    "info",
		Environment: "development",
	}
}

// load builds the configuration: defaults, then the YAML file, then environment variables
func load(opts Options) (*Config, error) {
	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load env file %s: %w", opts.EnvFile, err)
			}
			log.WithField("path", opts.EnvFile).Debug("No env file found")
		}
	}

	config := defaultConfig()

	if opts.ConfigFile != "" {
		data, err := os.ReadFile(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", opts.ConfigFile, err)
		}
	}

	// Environment variables win over the file
	config.DiscordToken = getEnvWithDefault("BOT_TOKEN", getEnvWithDefault("DISCORD_TOKEN", config.DiscordToken))
	config.DataDir = getEnvWithDefault("NITROPING_DATA_DIR", config.DataDir)
	config.BotName = getEnvWithDefault("NITROPING_BOT_NAME", config.BotName)
	config.HostName = getEnvWithDefault("NITROPING_HOST_NAME", config.HostName)
	config.BoostEmoji = getEnvWithDefault("NITROPING_BOOST_EMOJI", config.BoostEmoji)
	config.GemEmoji = getEnvWithDefault("NITROPING_GEM_EMOJI", config.GemEmoji)
	config.SupportURL = getEnvWithDefault("NITROPING_SUPPORT_URL", config.SupportURL)
	config.Developers = getEnvWithDefault("NITROPING_DEVELOPERS", config.Developers)
	config.HostURL = getEnvWithDefault("NITROPING_HOST_URL", config.HostURL)
	config.LogLevel = getEnvWithDefault("LOG_LEVEL", config.LogLevel)
	config.Environment = getEnvWithDefault("ENVIRONMENT", config.Environment)

	config.DiscordToken = strings.TrimSpace(config.DiscordToken)
	if config.DataDir == "" {
		config.DataDir = "servers"
	}

	if config.Environment != "test" && !opts.Offline {
		// Validate required configuration
		if config.DiscordToken == "" {
			where := "the environment"
			if opts.EnvFile != "" {
				where = fmt.Sprintf("the environment or %s", opts.EnvFile)
			}
			return nil, fmt.Errorf("BOT_TOKEN is required: set it in %s", where)
		}
	}

	if _, err := log.ParseLevel(config.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", config.LogLevel, err)
	}

	return config, nil
}

// Level returns the configured logrus level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Environment = "test"
	cfg.DiscordToken = "test-token"
	return cfg
}
