package secret

import "sync"

// MemoryStash keeps tokens in memory.
// Its zero value is ready for use.
type MemoryStash struct {
	m sync.Map // host -> token
}

var _ Stash = (*MemoryStash)(nil)

// SaveToken saves a token.
func (m *MemoryStash) SaveToken(host, token string) error {
	m.m.Store(host, token)
	return nil
}

// LoadToken loads a token.
func (m *MemoryStash) LoadToken(host string) (string, error) {
	token, ok := m.m.Load(host)
	if !ok {
		return "", ErrNotFound
	}
	return token.(string), nil
}

// DeleteToken deletes a token.
func (m *MemoryStash) DeleteToken(host string) error {
	m.m.Delete(host)
	return nil
}
