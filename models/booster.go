package models

import "time"

// Booster is a guild member currently boosting, as seen in the gateway cache
type Booster struct {
	UserID      string
	DisplayName string
	Since       time.Time
}

// Transition describes how a member's boost status changed between two snapshots
type Transition string

const (
	TransitionNone    Transition = "none"
	TransitionStarted Transition = "started"
	TransitionStopped Transition = "stopped"
	TransitionUpdated Transition = "updated"
)
