// Package secret stores access tokens for code hosting services.
package secret

import (
	"errors"

	"github.com/zalando/go-keyring"
)

var (
	// ErrNotFound is returned when no token is stored for a host.
	ErrNotFound = errors.New("secret not found")

	// ErrKeyringUnsupported indicates that the system keychain
	// is not available on this platform.
	ErrKeyringUnsupported = keyring.ErrUnsupportedPlatform
)

// Stash stores one token per host, e.g. "github.com".
type Stash interface {
	SaveToken(host, token string) error

	// LoadToken returns [ErrNotFound] if no token is stored for host.
	LoadToken(host string) (string, error)

	// DeleteToken is a no-op if no token is stored for host.
	DeleteToken(host string) error
}
