package secret

import "errors"

// FallbackStash uses Secondary when Primary is unavailable,
// e.g. on systems without a keychain.
type FallbackStash struct {
	Primary, Secondary Stash // required
}

var _ Stash = (*FallbackStash)(nil)

// SaveToken saves to Primary, or to Secondary if that fails.
func (f *FallbackStash) SaveToken(host, token string) error {
	if err := f.Primary.SaveToken(host, token); err != nil {
		return f.Secondary.SaveToken(host, token)
	}
	return nil
}

// LoadToken loads from Primary.
// Secondary is consulted only if Primary failed
// for a reason other than a missing token.
func (f *FallbackStash) LoadToken(host string) (string, error) {
	token, err := f.Primary.LoadToken(host)
	if err != nil && !errors.Is(err, ErrNotFound) {
		token, err = f.Secondary.LoadToken(host)
	}
	return token, err
}

// DeleteToken deletes from both stashes.
func (f *FallbackStash) DeleteToken(host string) error {
	primaryErr := f.Primary.DeleteToken(host)
	if errors.Is(primaryErr, ErrKeyringUnsupported) {
		primaryErr = nil
	}
	return errors.Join(primaryErr, f.Secondary.DeleteToken(host))
}
