package service

import (
	"time"
)

// Clock returns the current time. Tests replace it to pin "now".
type Clock func() time.Time

// UTCNow is the default Clock
func UTCNow() time.Time {
	return time.Now().UTC()
}

// FooterDate formats a time the way embed footers show it
func FooterDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
