package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// legacyTimestampLayouts are accepted when reading boost records written
// without a zone offset. Those were written in the host's local time.
var legacyTimestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// legacyZone is the zone of offset-less timestamps
var legacyZone = time.Local

// BoostRecord tracks when a member started boosting a guild
type BoostRecord struct {
	BoostStart *time.Time `json:"boost_start"` // Nullable - nil while not boosting
}

// IsBoosting reports whether the record holds an active boost
func (r *BoostRecord) IsBoosting() bool {
	return r != nil && r.BoostStart != nil
}

// BoostingDays returns the number of whole days boosted as of now
func (r *BoostRecord) BoostingDays(now time.Time) int {
	if !r.IsBoosting() {
		return 0
	}
	return DaysSince(*r.BoostStart, now)
}

// UnmarshalJSON decodes boost_start from RFC 3339 or legacy zone-less timestamps
func (r *BoostRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		BoostStart *string `json:"boost_start"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.BoostStart = nil
	if raw.BoostStart == nil || *raw.BoostStart == "" {
		return nil
	}
	t, err := parseTimestamp(*raw.BoostStart)
	if err != nil {
		return err
	}
	r.BoostStart = &t
	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range legacyTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, legacyZone); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid boost_start timestamp %q", value)
}

// DaysSince returns the number of whole days between since and now, never negative
func DaysSince(since, now time.Time) int {
	if now.Before(since) {
		return 0
	}
	return int(now.Sub(since).Hours() / 24)
}
