package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// ErrInvalidID is returned for IDs that are not Discord snowflakes
var ErrInvalidID = errors.New("invalid discord id")

var snowflakePattern = regexp.MustCompile(`^[0-9]{1,20}$`)

// Root is the on-disk storage root holding one directory per guild
type Root struct {
	dir string
}

// Open creates the storage root if needed and checks that it is a writable directory
func Open(ctx context.Context, dir string) (*Root, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", abs, err)
	}

	// Probe that we can actually write here
	probe, err := os.CreateTemp(abs, ".probe-*")
	if err != nil {
		return nil, fmt.Errorf("storage directory %s is not writable: %w", abs, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	return &Root{dir: abs}, nil
}

// Dir returns the absolute storage root
func (r *Root) Dir() string {
	return r.dir
}

// GuildDir returns the directory holding a guild's documents
func (r *Root) GuildDir(guildID string) (string, error) {
	if !ValidID(guildID) {
		return "", fmt.Errorf("%w: guild %q", ErrInvalidID, guildID)
	}
	return filepath.Join(r.dir, guildID), nil
}

// DocumentPath returns <root>/<guildID>/<docID>.json
func (r *Root) DocumentPath(guildID, docID string) (string, error) {
	dir, err := r.GuildDir(guildID)
	if err != nil {
		return "", err
	}
	if !ValidID(docID) {
		return "", fmt.Errorf("%w: document %q", ErrInvalidID, docID)
	}
	return filepath.Join(dir, docID+".json"), nil
}

// EnsureGuildDir creates the guild directory if it does not exist
func (r *Root) EnsureGuildDir(guildID string) (string, error) {
	dir, err := r.GuildDir(guildID)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create guild directory %s: %w", dir, err)
	}
	return dir, nil
}

// ValidID reports whether id looks like a Discord snowflake
func ValidID(id string) bool {
	return snowflakePattern.MatchString(id)
}
