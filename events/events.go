package events

import (
	"context"
	"sync"
	"time"

	"nitroping/models"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBoostTransition   EventType = "boost_transition"
	EventTypeGuildBoostsGained EventType = "guild_boosts_gained"
	EventTypeGuildMembership   EventType = "guild_membership"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BoostTransitionEvent represents a member starting, stopping or renewing a boost
type BoostTransitionEvent struct {
	GuildID    string
	UserID     string
	Transition models.Transition
	BoostStart *time.Time
	ObservedAt time.Time
}

func (e BoostTransitionEvent) Type() EventType {
	return EventTypeBoostTransition
}

// GuildBoostsGainedEvent represents an increase of a guild's aggregate boost count
type GuildBoostsGainedEvent struct {
	GuildID  string
	Previous int
	Current  int
	Delta    int
}

func (e GuildBoostsGainedEvent) Type() EventType {
	return EventTypeGuildBoostsGained
}

// GuildMembershipEvent is emitted when the bot joins or leaves a guild
type GuildMembershipEvent struct {
	GuildID    string
	Joined     bool
	GuildCount int
}

func (e GuildMembershipEvent) Type() EventType {
	return EventTypeGuildMembership
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
	inflight sync.WaitGroup
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Emitting event to handlers")

	// Call handlers asynchronously to avoid blocking the gateway loop
	b.inflight.Add(len(handlers))
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer b.inflight.Done()
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}

// Wait blocks until every handler started by Emit has returned
func (b *Bus) Wait() {
	b.inflight.Wait()
}
