package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultThankYouMessage is the thank-you text used until an administrator sets one
const DefaultThankYouMessage = "Thank you for boosting the server!"

// Snowflake is a Discord ID as stored on disk. Older documents hold IDs as
// JSON numbers, newer ones as strings; both decode to the same value.
type Snowflake string

// UnmarshalJSON accepts both quoted and bare numeric IDs
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Snowflake(str)
		return nil
	}
	n, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid snowflake %s: %w", data, err)
	}
	*s = Snowflake(strconv.FormatUint(n, 10))
	return nil
}

// String returns the ID as a string
func (s Snowflake) String() string {
	return string(s)
}

// GuildConfig is the per-guild boost announcement configuration
type GuildConfig struct {
	GuildID   string      `json:"-"`
	ChannelID *Snowflake  `json:"channel_id"` // Nullable - falls back to the system channel
	Message   string      `json:"message"`
	RoleIDs   []Snowflake `json:"roles"` // Granted on boost start, revoked on boost stop
}

// NewGuildConfig returns the default configuration for a guild
func NewGuildConfig(guildID string) *GuildConfig {
	return &GuildConfig{
		GuildID: guildID,
		Message: DefaultThankYouMessage,
		RoleIDs: []Snowflake{},
	}
}

// ApplyDefaults fills fields a decoded document left empty
func (c *GuildConfig) ApplyDefaults() {
	if c.Message == "" {
		c.Message = DefaultThankYouMessage
	}
	if c.RoleIDs == nil {
		c.RoleIDs = []Snowflake{}
	}
	if c.ChannelID != nil && *c.ChannelID == "" {
		c.ChannelID = nil
	}
}

// ChannelIDString returns the configured channel ID or "" when unset
func (c *GuildConfig) ChannelIDString() string {
	if c.ChannelID == nil {
		return ""
	}
	return c.ChannelID.String()
}

// SetChannel sets or clears (empty ID) the announcement channel
func (c *GuildConfig) SetChannel(channelID string) {
	if channelID == "" {
		c.ChannelID = nil
		return
	}
	id := Snowflake(channelID)
	c.ChannelID = &id
}

// RoleIDStrings returns the reward role IDs as plain strings
func (c *GuildConfig) RoleIDStrings() []string {
	ids := make([]string, 0, len(c.RoleIDs))
	for _, id := range c.RoleIDs {
		if id != "" {
			ids = append(ids, id.String())
		}
	}
	return ids
}

// SetRoles replaces the reward roles, preserving order
func (c *GuildConfig) SetRoles(roleIDs []string) {
	c.RoleIDs = make([]Snowflake, 0, len(roleIDs))
	for _, id := range roleIDs {
		c.RoleIDs = append(c.RoleIDs, Snowflake(id))
	}
}
