package announce

import (
	"sync"

	"nitroping/bot/common"
	"nitroping/service"
)

// Feature reacts to boost changes: it persists member boost records,
// grants or revokes reward roles and posts announcements.
type Feature struct {
	platform      common.Platform
	configService service.GuildConfigService
	boostService  service.BoostService
	publisher     service.EventPublisher
	branding      common.Branding
	now           service.Clock

	mu     sync.Mutex
	counts map[string]int // last known boost count per guild
}

// NewFeature creates a new announce feature instance. publisher may be nil.
func NewFeature(platform common.Platform, configService service.GuildConfigService, boostService service.BoostService, publisher service.EventPublisher, branding common.Branding, now service.Clock) *Feature {
	if now == nil {
		now = service.UTCNow
	}
	return &Feature{
		platform:      platform,
		configService: configService,
		boostService:  boostService,
		publisher:     publisher,
		branding:      branding,
		now:           now,
		counts:        make(map[string]int),
	}
}

// KnownBoostCount returns the last recorded boost count of a guild
func (f *Feature) KnownBoostCount(guildID string) (int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count, ok := f.counts[guildID]
	return count, ok
}
