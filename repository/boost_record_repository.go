package repository

import (
	"context"
	"fmt"
	"os"

	"nitroping/models"
	"nitroping/storage"

	log "github.com/sirupsen/logrus"
)

// BoostRecordRepository stores one BoostRecord per member at
// <root>/<guildID>/<userID>.json
type BoostRecordRepository struct {
	root *storage.Root
}

// NewBoostRecordRepository creates a new boost record repository
func NewBoostRecordRepository(root *storage.Root) *BoostRecordRepository {
	return &BoostRecordRepository{root: root}
}

// Get returns the member's boost record, or an empty record when the
// document is missing or corrupt
func (r *BoostRecordRepository) Get(ctx context.Context, guildID, userID string) *models.BoostRecord {
	record, _ := r.Find(ctx, guildID, userID)
	return record
}

// Find is Get that also reports whether a readable record exists
func (r *BoostRecordRepository) Find(ctx context.Context, guildID, userID string) (*models.BoostRecord, bool) {
	path, err := r.root.DocumentPath(guildID, userID)
	if err != nil {
		log.WithError(err).Warn("Refusing to read boost record")
		return &models.BoostRecord{}, false
	}

	var record models.BoostRecord
	if err := storage.ReadDocument(path, &record); err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).WithFields(log.Fields{
				"guild_id": guildID,
				"user_id":  userID,
			}).Warn("Unreadable boost record, treating as not boosting")
		}
		return &models.BoostRecord{}, false
	}
	return &record, true
}

// Save replaces the member's boost record
func (r *BoostRecordRepository) Save(ctx context.Context, guildID, userID string, record *models.BoostRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if userID == guildID {
		// <guildID>.json is the guild config
		return fmt.Errorf("%w: user id equals guild id %s", storage.ErrInvalidID, guildID)
	}
	if _, err := r.root.EnsureGuildDir(guildID); err != nil {
		return err
	}
	path, err := r.root.DocumentPath(guildID, userID)
	if err != nil {
		return err
	}

	out := models.BoostRecord{}
	if record != nil && record.BoostStart != nil {
		start := record.BoostStart.UTC().Round(0)
		out.BoostStart = &start
	}
	if err := storage.WriteDocument(path, &out); err != nil {
		return fmt.Errorf("failed to save boost record for user %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}
