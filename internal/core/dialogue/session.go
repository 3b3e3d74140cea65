package dialogue

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type userLock struct {
	mu   sync.Mutex
	refs int
}

// SessionStore keeps one session per user and serializes work per user.
// Callers must hold the user's lock (see Acquire) while reading or changing
// that user's session.
type SessionStore struct {
	clock   clockwork.Clock
	timeout time.Duration

	mu       sync.Mutex
	sessions map[int64]*Session
	locks    map[int64]*userLock
}

// NewSessionStore creates a store whose sessions expire after timeout of inactivity
func NewSessionStore(clock clockwork.Clock, timeout time.Duration) *SessionStore {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &SessionStore{
		clock:    clock,
		timeout:  timeout,
		sessions: make(map[int64]*Session),
		locks:    make(map[int64]*userLock),
	}
}

// Acquire blocks until the caller owns userID and returns the release func
func (s *SessionStore) Acquire(userID int64) func() {
	l := s.ref(userID)
	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.unref(userID, l)
	}
}

func (s *SessionStore) tryAcquire(userID int64) (func(), bool) {
	l := s.ref(userID)
	if !l.mu.TryLock() {
		s.unref(userID, l)
		return nil, false
	}
	return func() {
		l.mu.Unlock()
		s.unref(userID, l)
	}, true
}

func (s *SessionStore) ref(userID int64) *userLock {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &userLock{}
		s.locks[userID] = l
	}
	l.refs++
	return l
}

func (s *SessionStore) unref(userID int64, l *userLock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(s.locks, userID)
	}
}

// Lookup returns the live session for userID. A session that has outlived
// the timeout is removed and returned as expired instead.
func (s *SessionStore) Lookup(userID int64) (active *Session, expired *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil, nil
	}
	if s.isExpired(sess, s.clock.Now()) {
		delete(s.sessions, userID)
		return nil, sess
	}
	return sess, nil
}

// Start opens a fresh session in the Choosing state, replacing any other
func (s *SessionStore) Start(userID, chatID int64) *Session {
	sess := &Session{
		UserID:       userID,
		ChatID:       chatID,
		State:        StateChoosing,
		LastActivity: s.clock.Now(),
	}
	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()
	return sess
}

// Touch records activity on the session
func (s *SessionStore) Touch(sess *Session) {
	s.mu.Lock()
	sess.LastActivity = s.clock.Now()
	s.mu.Unlock()
}

// End drops the session together with any pending forecast
func (s *SessionStore) End(userID int64) {
	s.mu.Lock()
	delete(s.sessions, userID)
	s.mu.Unlock()
}

// Len returns the number of open sessions
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes and returns every expired session. Users with an event in
// flight are skipped and picked up on a later pass.
func (s *SessionStore) Sweep() []*Session {
	s.mu.Lock()
	ids := make([]int64, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	var expired []*Session
	for _, id := range ids {
		release, ok := s.tryAcquire(id)
		if !ok {
			continue
		}
		if _, gone := s.Lookup(id); gone != nil {
			expired = append(expired, gone)
		}
		release()
	}
	return expired
}

// RunSweeper sweeps every interval until ctx is done, handing each expired
// session to onExpire.
func (s *SessionStore) RunSweeper(ctx context.Context, interval time.Duration, onExpire func(context.Context, *Session)) {
	ticker := s.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			for _, sess := range s.Sweep() {
				onExpire(ctx, sess)
			}
		}
	}
}

func (s *SessionStore) isExpired(sess *Session, now time.Time) bool {
	return now.Sub(sess.LastActivity) >= s.timeout
}
