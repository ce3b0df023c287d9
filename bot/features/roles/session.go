package roles

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// SessionTTL is how long an untouched role picker stays usable
const SessionTTL = 5 * time.Minute

var (
	ErrSessionExpired  = errors.New("role picker session expired")
	ErrNotSessionOwner = errors.New("role picker belongs to another user")
)

// Session stores the role picker state of one administrator
type Session struct {
	ID       string
	GuildID  string
	UserID   string
	Selected []string
}

// SessionStore keeps role picker sessions keyed by session ID, with a
// second index so a new picker replaces the user's previous one.
type SessionStore struct {
	cache *cache.Cache
	ttl   time.Duration
}

// NewSessionStore creates a store whose sessions expire after ttl without use
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: cache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func ownerKey(guildID, userID string) string {
	return "owner:" + guildID + ":" + userID
}

// Start opens a new session for (guildID, userID), replacing any previous one
func (s *SessionStore) Start(guildID, userID string) Session {
	if previous, ok := s.cache.Get(ownerKey(guildID, userID)); ok {
		s.cache.Delete(sessionKey(previous.(string)))
	}

	session := Session{
		ID:       uuid.NewString(),
		GuildID:  guildID,
		UserID:   userID,
		Selected: []string{},
	}
	s.save(session)
	return session
}

// Lookup returns the session for a component interaction and refreshes its expiry
func (s *SessionStore) Lookup(sessionID, guildID, userID string) (Session, error) {
	value, ok := s.cache.Get(sessionKey(sessionID))
	if !ok {
		return Session{}, ErrSessionExpired
	}
	session := value.(Session)

	if session.GuildID != guildID || session.UserID != userID {
		return Session{}, ErrNotSessionOwner
	}

	s.save(session)
	return session, nil
}

// UpdateSelection replaces the selected role IDs of a session
func (s *SessionStore) UpdateSelection(session Session, selected []string) Session {
	session.Selected = append([]string{}, selected...)
	s.save(session)
	return session
}

// End removes a session
func (s *SessionStore) End(session Session) {
	s.cache.Delete(sessionKey(session.ID))
	if current, ok := s.cache.Get(ownerKey(session.GuildID, session.UserID)); ok && current.(string) == session.ID {
		s.cache.Delete(ownerKey(session.GuildID, session.UserID))
	}
}

func (s *SessionStore) save(session Session) {
	s.cache.Set(sessionKey(session.ID), session, s.ttl)
	s.cache.Set(ownerKey(session.GuildID, session.UserID), session.ID, s.ttl)
}
