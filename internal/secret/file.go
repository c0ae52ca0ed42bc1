package secret

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/SarthakJariwala/panqake/internal/osutil"
	"github.com/SarthakJariwala/panqake/internal/silog"
)

// FileStash stores tokens in plain text in a JSON file
// readable only by the current user.
// It warns the first time it creates the file.
type FileStash struct {
	Path string        // required
	Log  *silog.Logger // required

	mu sync.Mutex
}

var _ Stash = (*FileStash)(nil)

type fileStashData struct {
	Hosts map[string]fileStashToken `json:"hosts"`
}

type fileStashToken struct {
	Token string `json:"token"`
}

func (f *FileStash) load() (*fileStashData, error) {
	data := fileStashData{Hosts: make(map[string]fileStashToken)}
	bs, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &data, nil
		}
		return nil, fmt.Errorf("read %v: %w", f.Path, err)
	}

	if err := json.Unmarshal(bs, &data); err != nil {
		return nil, fmt.Errorf("decode %v: %w", f.Path, err)
	}
	if data.Hosts == nil {
		data.Hosts = make(map[string]fileStashToken)
	}
	return &data, nil
}

func (f *FileStash) save(data *fileStashData) error {
	if len(data.Hosts) == 0 {
		if err := os.Remove(f.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove %v: %w", f.Path, err)
		}
		return nil
	}

	bs, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	_, statErr := os.Stat(f.Path)
	if err := osutil.WriteFileAtomic(f.Path, bs, 0o600); err != nil {
		return err
	}
	if errors.Is(statErr, os.ErrNotExist) {
		f.Log.Warnf("Storing tokens in plain text at %v", f.Path)
	}
	return nil
}

// SaveToken saves a token to the file.
func (f *FileStash) SaveToken(host, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	data.Hosts[host] = fileStashToken{Token: token}
	return f.save(data)
}

// LoadToken loads a token from the file.
func (f *FileStash) LoadToken(host string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return "", err
	}
	tok, ok := data.Hosts[host]
	if !ok {
		return "", ErrNotFound
	}
	return tok.Token, nil
}

// DeleteToken deletes a token from the file.
// The file is removed once it holds no tokens.
func (f *FileStash) DeleteToken(host string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := data.Hosts[host]; !ok {
		return nil
	}
	delete(data.Hosts, host)
	return f.save(data)
}
