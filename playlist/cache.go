package playlist

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes parsed playlists by a caller-chosen key, typically a
// URL combined with an ETag or Last-Modified value so a change to the
// underlying document naturally evicts the stale entry under a new
// key. Live (unexpired) media playlists should not be cached by URL
// alone, since they're expected to change between refreshes.
type Cache struct {
	lru *lru.Cache[string, *Playlist]
}

// NewCache returns a Cache holding at most size parsed playlists,
// evicting the least recently used entry once full.
func NewCache(size int) (*Cache, error) {
	c, err := lru.New[string, *Playlist](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: c}, nil
}

// Get returns the cached playlist for key, if present.
func (c *Cache) Get(key string) (*Playlist, bool) {
	return c.lru.Get(key)
}

// Put stores pl under key, evicting the least recently used entry if
// the cache is at capacity.
func (c *Cache) Put(key string, pl *Playlist) {
	c.lru.Add(key, pl)
}

// Remove evicts key, if present.
func (c *Cache) Remove(key string) {
	c.lru.Remove(key)
}

// Len reports the number of playlists currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
