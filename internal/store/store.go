// Package store provides the small key/value store the client uses for
// session state (the admin flag and the stored API-URL override). It stands
// in for the browser's local storage: keys never expire and optionally
// survive process restarts through a file snapshot.
package store

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"
)

// Store is the persistence collaborator for client session state.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
	// Flush writes the store to its backing file, if any.
	Flush() error
}

// CacheStore is a go-cache backed Store. With a path it snapshots to disk on
// Flush and loads existing state at construction; without one it is purely
// in-memory.
type CacheStore struct {
	cache *gocache.Cache
	path  string
}

// New returns an in-memory store.
func New() *CacheStore {
	return &CacheStore{cache: gocache.New(gocache.NoExpiration, 0)}
}

// NewFile returns a store that snapshots to path on Flush. State already
// saved at path is loaded; a missing file is not an error.
func NewFile(path string) (*CacheStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty file path")
	}
	s := &CacheStore{cache: gocache.New(gocache.NoExpiration, 0), path: path}
	// LoadFile fails on a missing snapshot; first run starts empty.
	_ = s.cache.LoadFile(path)
	return s, nil
}

func (s *CacheStore) Get(key string) (string, bool) {
	v, found := s.cache.Get(key)
	if !found {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

func (s *CacheStore) Set(key, value string) {
	s.cache.Set(key, value, gocache.NoExpiration)
}

func (s *CacheStore) Delete(key string) {
	s.cache.Delete(key)
}

func (s *CacheStore) Flush() error {
	if s.path == "" {
		return nil
	}
	return s.cache.SaveFile(s.path)
}
