package storefront

import (
	"sync"
	"time"

	"github.com/MikeRez0/bakery/internal/core/port"
)

// Session is the storefront state of one user: the active filter and the headers of the pages fetched so far.
type Session struct {
	mu          sync.Mutex
	provider    *OrdersDataProvider
	headers     *HeaderGenerator
	filter      OrderFilter
	unsubscribe func()
}

func NewSession(service port.OrderService, now func() time.Time) *Session {
	s := &Session{
		provider: NewOrdersDataProvider(service, now),
		headers:  NewHeaderGenerator(now),
	}
	s.headers.ResetHeaderChain(false)
	s.unsubscribe = s.provider.AddPageObserver(s.headers.OrdersRead)
	return s
}

// Lock serializes the operations of one user; presenters built on the session hold it for a whole request.
func (s *Session) Lock() {
	s.mu.Lock()
}

func (s *Session) Unlock() {
	s.mu.Unlock()
}

func (s *Session) Filter() OrderFilter {
	return s.filter
}

func (s *Session) Headers() *HeaderGenerator {
	return s.headers
}

func (s *Session) Provider() *OrdersDataProvider {
	return s.provider
}

func (s *Session) close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// Sessions keeps one storefront Session per user id.
type Sessions struct {
	service port.OrderService
	now     func() time.Time

	mu       sync.Mutex
	sessions map[int64]*Session
}

func NewSessions(service port.OrderService, now func() time.Time) *Sessions {
	return &Sessions{
		service:  service,
		now:      now,
		sessions: make(map[int64]*Session),
	}
}

func (s *Sessions) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[userID]
	if !ok {
		session = NewSession(s.service, s.now)
		s.sessions[userID] = session
	}
	return session
}

// Drop discards the session of the user, e.g. on logout.
func (s *Sessions) Drop(userID int64) {
	s.mu.Lock()
	session, ok := s.sessions[userID]
	delete(s.sessions, userID)
	s.mu.Unlock()

	if ok {
		session.Lock()
		session.close()
		session.Unlock()
	}
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
