package service

import (
	"context"
	"fmt"
	"time"

	"nitroping/events"
	"nitroping/models"

	log "github.com/sirupsen/logrus"
)

// boostService implements the BoostService interface
type boostService struct {
	recordRepo BoostRecordRepository
	publisher  EventPublisher
	now        Clock
}

// NewBoostService creates a new boost service. publisher may be nil.
func NewBoostService(recordRepo BoostRecordRepository, publisher EventPublisher, now Clock) BoostService {
	if now == nil {
		now = UTCNow
	}
	return &boostService{
		recordRepo: recordRepo,
		publisher:  publisher,
		now:        now,
	}
}

// ClassifyTransition compares two boost-start snapshots of the same member
func ClassifyTransition(before, after *time.Time) models.Transition {
	switch {
	case before == nil && after == nil:
		return models.TransitionNone
	case before == nil:
		return models.TransitionStarted
	case after == nil:
		return models.TransitionStopped
	case before.Equal(*after):
		return models.TransitionNone
	default:
		return models.TransitionUpdated
	}
}

// BoostDelta returns how many boosts were gained between two aggregate counts.
// Decreases report zero.
func BoostDelta(before, after int) int {
	if after > before {
		return after - before
	}
	return 0
}

// PreviousBoostStart returns the persisted boost start for a member
func (s *boostService) PreviousBoostStart(ctx context.Context, guildID, userID string) (*time.Time, bool) {
	record, known := s.recordRepo.Find(ctx, guildID, userID)
	return record.BoostStart, known
}

// RecordBaseline stores what the member looks like now so the next update has something to compare with
func (s *boostService) RecordBaseline(ctx context.Context, member MemberSnapshot) error {
	if err := s.recordRepo.Save(ctx, member.GuildID, member.UserID, &models.BoostRecord{BoostStart: member.BoostStart}); err != nil {
		return fmt.Errorf("failed to save boost record: %w", err)
	}

	log.WithFields(log.Fields{
		"guild_id": member.GuildID,
		"user_id":  member.UserID,
		"boosting": member.BoostStart != nil,
	}).Debug("Recorded boost baseline")
	return nil
}

// RecordTransition classifies the change and persists the member's boost record
func (s *boostService) RecordTransition(ctx context.Context, before *time.Time, after MemberSnapshot) (models.Transition, error) {
	transition := ClassifyTransition(before, after.BoostStart)
	if transition == models.TransitionNone {
		return transition, nil
	}

	record := &models.BoostRecord{}
	if transition != models.TransitionStopped {
		record.BoostStart = after.BoostStart
	}

	var err error
	if saveErr := s.recordRepo.Save(ctx, after.GuildID, after.UserID, record); saveErr != nil {
		err = fmt.Errorf("failed to save boost record: %w", saveErr)
	}

	log.WithFields(log.Fields{
		"guild_id":   after.GuildID,
		"user_id":    after.UserID,
		"transition": transition,
	}).Info("Member boost status changed")

	if s.publisher != nil {
		s.publisher.Emit(ctx, events.BoostTransitionEvent{
			GuildID:    after.GuildID,
			UserID:     after.UserID,
			Transition: transition,
			BoostStart: after.BoostStart,
			ObservedAt: s.now(),
		})
	}

	return transition, err
}
