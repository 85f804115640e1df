package cart

import (
	"sync"
	"time"

	"github.com/glowcosmetics/storefront/internal/models"
)

// Snapshot is the rendered view of one cart handed to the HTTP layer.
type Snapshot struct {
	Items []LineItem `json:"items"`
	Total float64    `json:"total"`
	Open  bool       `json:"open"`
}

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Store owns one Cart per session ID. A browser only issues one cart
// request at a time, but a server can see parallel requests for the
// same session, so the store serializes all cart access behind one
// mutex while the Cart itself stays lock-free. Sessions that go idle
// are discarded by the eviction loop; carts are never persisted.
type Store struct {
	mu    sync.Mutex
	carts map[string]*session
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*session)}
}

func (s *Store) cart(sessionID string) *Cart {
	sess, ok := s.carts[sessionID]
	if !ok {
		sess = &session{cart: New()}
		s.carts[sessionID] = sess
	}
	sess.lastSeen = time.Now()
	return sess.cart
}

func (s *Store) Add(sessionID string, p models.Product) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Add(p)
	return snapshot(c)
}

func (s *Store) Remove(sessionID string, productID int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.Remove(productID)
	return snapshot(c)
}

func (s *Store) UpdateQuantity(sessionID string, productID, quantity int) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.UpdateQuantity(productID, quantity)
	return snapshot(c)
}

func (s *Store) SetOpen(sessionID string, open bool) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sessionID)
	c.SetOpen(open)
	return snapshot(c)
}

func (s *Store) Get(sessionID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.cart(sessionID))
}

// Drop discards a session's cart immediately.
func (s *Store) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

// Len reports how many session carts the store currently holds.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.carts)
}

// EvictIdle discards every cart not touched for longer than maxIdle and
// returns how many were evicted.
func (s *Store) EvictIdle(maxIdle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, sess := range s.carts {
		if time.Since(sess.lastSeen) > maxIdle {
			delete(s.carts, id)
			evicted++
		}
	}
	return evicted
}

// StartEvictionLoop evicts idle carts every interval. Run it in its own
// goroutine; abandoned sessions would otherwise accumulate forever,
// since any cookie-less client mints a new session per request.
func (s *Store) StartEvictionLoop(interval, maxIdle time.Duration) {
	for {
		time.Sleep(interval)
		s.EvictIdle(maxIdle)
	}
}

func snapshot(c *Cart) Snapshot {
	return Snapshot{Items: c.Items(), Total: c.Total(), Open: c.Open()}
}
