package session

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/Spyder-19/Fragmented-Squares/pkg/models/board"
	"github.com/Spyder-19/Fragmented-Squares/pkg/models/message"
)

var ErrUnknownSession = errors.New("unknown session uid")

// Session is one independent game behind an opaque uid handle. All state
// access goes through Do so a move commits fully before the next request
// observes anything.
type Session struct {
	Uid message.SessionUid

	mu   sync.Mutex
	game *board.Game
}

func (s *Session) Do(f func(g *board.Game) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return f(s.game)
}

func (s *Session) replace(g *board.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game = g
}

// Store owns every live session. All boards share the configured shape; each
// graph gets its own coloring from the store's seeded source.
type Store struct {
	mu       sync.RWMutex
	shape    board.Shape
	rng      *rand.Rand
	sessions map[message.SessionUid]*Session
}

func NewStore(shape board.Shape, seed int64) *Store {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Store{
		shape:    shape,
		rng:      rand.New(rand.NewSource(seed)),
		sessions: make(map[message.SessionUid]*Session),
	}
}

func (st *Store) Shape() board.Shape {
	return st.shape
}

func (st *Store) New() *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	sess := &Session{
		Uid:  message.NewSessionUid(),
		game: board.NewGame(st.shape, st.rng),
	}
	st.sessions[sess.Uid] = sess
	return sess
}

func (st *Store) Get(uid message.SessionUid) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	if sess, c := st.sessions[uid]; c {
		return sess, nil
	}
	return nil, ErrUnknownSession
}

// Reset rebuilds the session's graph and game from the same shape with a
// fresh coloring. The swap is a single pointer replacement, so observers see
// either the old game or the new one, never a half-built board.
func (st *Store) Reset(uid message.SessionUid) (*Session, error) {
	sess, err := st.Get(uid)
	if err != nil {
		return nil, err
	}

	st.mu.Lock()
	game := board.NewGame(st.shape, st.rng)
	st.mu.Unlock()

	sess.replace(game)
	return sess, nil
}

func (st *Store) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
