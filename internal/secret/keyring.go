package secret

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// DefaultKeyringService is the keychain service name
// that tokens are filed under.
const DefaultKeyringService = "panqake"

// Keyring stores tokens in the system keychain.
//
// Its zero value is ready for use.
type Keyring struct {
	// Service defaults to DefaultKeyringService.
	Service string
}

var _ Stash = (*Keyring)(nil)

func (k *Keyring) service() string {
	if k.Service == "" {
		return DefaultKeyringService
	}
	return k.Service
}

// SaveToken saves a token in the keychain.
func (k *Keyring) SaveToken(host, token string) error {
	return keyring.Set(k.service(), host, token)
}

// LoadToken loads a token from the keychain.
func (k *Keyring) LoadToken(host string) (string, error) {
	token, err := keyring.Get(k.service(), host)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return token, err
}

// DeleteToken removes a token from the keychain.
func (k *Keyring) DeleteToken(host string) error {
	err := keyring.Delete(k.service(), host)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
