package auth

import (
	"sync"
	"time"
)

// Session хранит серверное состояние одного клиента.
type Session struct {
	UserID  int
	Flash   string
	Created time.Time
}

// SessionStore provides a thread-safe session storage
type SessionStore struct {
	data  map[string]Session
	mutex sync.RWMutex
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]Session)}
}

func (s *SessionStore) Get(token string) (Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	sess, ok := s.data[token]
	return sess, ok
}

func (s *SessionStore) Put(token string, sess Session) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.data[token] = sess
}

// Update применяет fn к существующей сессии. false, если сессии нет.
func (s *SessionStore) Update(token string, fn func(*Session)) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	sess, ok := s.data[token]
	if !ok {
		return false
	}
	fn(&sess)
	s.data[token] = sess
	return true
}

func (s *SessionStore) Delete(token string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.data, token)
}

// Expire удаляет сессии, созданные раньше cutoff, и возвращает их число.
func (s *SessionStore) Expire(cutoff time.Time) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	n := 0
	for token, sess := range s.data {
		if sess.Created.Before(cutoff) {
			delete(s.data, token)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.data)
}
