// Package state stores branch relationships for all repositories
// a user works with.
//
// Records for each repository live under a single key:
// the repository's identity.
//
//	{"<repo>": {"<branch>": {"parent": "<branch>"}}}
//
// Concurrent writers are not coordinated: the last write wins.
package state

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/SarthakJariwala/panqake/internal/must"
	"github.com/SarthakJariwala/panqake/internal/silog"
	"github.com/SarthakJariwala/panqake/internal/state/storage"
)

// StoreCorruptError indicates that the stored data cannot be read.
// Nothing is written to a corrupt store.
type StoreCorruptError struct {
	// RepoID is the repository being read, if known.
	RepoID string

	Err error
}

func (e *StoreCorruptError) Error() string {
	if e.RepoID != "" {
		return fmt.Sprintf("branch metadata for %v is unreadable: %v", e.RepoID, e.Err)
	}
	return fmt.Sprintf("branch metadata is unreadable: %v", e.Err)
}

func (e *StoreCorruptError) Unwrap() error { return e.Err }

// Store provides access to the branch metadata of all repositories.
type Store struct {
	db  *storage.DB
	log *silog.Logger
}

// NewStore builds a Store on top of the given backend.
func NewStore(backend storage.Backend, log *silog.Logger) *Store {
	if log == nil {
		log = silog.Nop()
	}
	return &Store{
		db:  storage.NewDB(backend),
		log: log,
	}
}

// Load returns the records for the given repository.
// A repository with no records yields an empty map.
func (s *Store) Load(ctx context.Context, repoID string) (Records, error) {
	records, err := s.get(ctx, repoID)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return make(Records), nil
		}
		return nil, err
	}
	return records, nil
}

func (s *Store) get(ctx context.Context, repoID string) (Records, error) {
	var raw map[string]*Branch
	if err := s.db.Get(ctx, repoID, &raw); err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			return nil, err
		}
		return nil, &StoreCorruptError{RepoID: repoID, Err: err}
	}

	records := make(Records, len(raw))
	for name, b := range raw {
		if b == nil {
			s.log.Debug("Ignoring empty branch record", "repo", repoID, "branch", name)
			continue
		}
		records[name] = b
	}
	return records, nil
}

// Save replaces the records of the given repository.
func (s *Store) Save(ctx context.Context, repoID string, records Records, msg string) error {
	must.NotBeBlankf(repoID, "repository identity must be set")
	if records == nil {
		records = make(Records)
	}

	if err := s.db.Set(ctx, repoID, records, msg); err != nil {
		return s.wrapWriteErr(repoID, err)
	}
	return nil
}

// Migrate moves records stored under legacy identities
// into the canonical identity repoID.
//
// Records already present under repoID take precedence.
// The legacy keys are removed in the same write.
// It returns the legacy identities that were migrated;
// if none exist, nothing is written.
func (s *Store) Migrate(ctx context.Context, repoID string, legacy []string) ([]string, error) {
	must.NotBeBlankf(repoID, "repository identity must be set")

	canonical, err := s.Load(ctx, repoID)
	if err != nil {
		return nil, err
	}

	var migrated []string
	seen := map[string]struct{}{repoID: {}}
	for _, id := range legacy {
		if _, ok := seen[id]; ok || id == "" {
			continue
		}
		seen[id] = struct{}{}

		records, err := s.get(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotExist) {
				continue
			}
			return nil, err
		}

		for _, name := range slices.Sorted(maps.Keys(records)) {
			if _, ok := canonical[name]; ok {
				s.log.Debug("Keeping existing record over legacy record",
					"branch", name, "legacy", id)
				continue
			}
			if p := records[name].Parent; p != "" && closesCycle(canonical, name, p) {
				s.log.Warn("Dropping legacy record that would form a cycle",
					"branch", name, "parent", p, "legacy", id)
				continue
			}
			canonical[name] = records[name]
		}
		migrated = append(migrated, id)
	}

	if len(migrated) == 0 {
		return nil, nil
	}

	err = s.db.Update(ctx, storage.UpdateRequest{
		Sets:    []storage.SetRequest{{Key: repoID, Value: canonical}},
		Deletes: migrated,
		Message: fmt.Sprintf("migrate %v to %v", migrated, repoID),
	})
	if err != nil {
		return nil, s.wrapWriteErr(repoID, err)
	}

	s.log.Debug("Migrated legacy branch metadata", "from", migrated, "to", repoID)
	return migrated, nil
}

func (s *Store) wrapWriteErr(repoID string, err error) error {
	if corruptErr := new(storage.CorruptError); errors.As(err, &corruptErr) {
		return &StoreCorruptError{RepoID: repoID, Err: err}
	}
	return fmt.Errorf("save branch metadata: %w", err)
}

// OpenOptions configures Open.
type OpenOptions struct {
	Backend storage.Backend // required
	RepoID  string          // required

	// Legacy lists older identities of the same repository.
	// Their records are migrated into RepoID.
	Legacy []string

	Log *silog.Logger
}

// RepoStore is a [Store] bound to a single repository.
type RepoStore struct {
	store  *Store
	repoID string
}

// Open binds a store to a repository,
// migrating records stored under legacy identities first.
func Open(ctx context.Context, opts OpenOptions) (*RepoStore, error) {
	must.Bef(opts.Backend != nil, "a storage backend is required")

	store := NewStore(opts.Backend, opts.Log)
	migrated, err := store.Migrate(ctx, opts.RepoID, opts.Legacy)
	if err != nil {
		return nil, fmt.Errorf("migrate legacy metadata: %w", err)
	}
	if len(migrated) > 0 {
		store.log.Infof("Migrated branch metadata from %v", migrated)
	}

	return &RepoStore{store: store, repoID: opts.RepoID}, nil
}

// RepoID reports the identity this store is bound to.
func (r *RepoStore) RepoID() string { return r.repoID }

// Load returns the repository's records.
func (r *RepoStore) Load(ctx context.Context) (Records, error) {
	return r.store.Load(ctx, r.repoID)
}

// Save replaces the repository's records.
func (r *RepoStore) Save(ctx context.Context, records Records, msg string) error {
	return r.store.Save(ctx, r.repoID, records, msg)
}

// closesCycle reports whether making parent the parent of branch
// would create a cycle in records.
func closesCycle(records Records, branch, parent string) bool {
	cur := parent
	for range len(records) + 1 {
		if cur == branch {
			return true
		}
		r, ok := records[cur]
		if !ok || r.Parent == "" {
			return false
		}
		cur = r.Parent
	}
	return false
}
