package store

import "sync"

// Memory is an in-memory KV used by tests and as a fallback when no
// database is available.
type Memory struct {
	mu sync.Mutex
	m  map[string]string

	// FailSet, when true, makes Set return an error. Tests use it to
	// exercise best-effort persistence paths.
	FailSet bool
}

var _ KV = (*Memory)(nil)

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

// Get implements KV.
func (s *Memory) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

// Set implements KV.
func (s *Memory) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSet {
		return errSetFailed
	}
	s.m[key] = value
	return nil
}

// Delete implements KV.
func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}
