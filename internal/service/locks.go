package service

import (
	"fmt"
	"sync"
)

// keyedLocks serializes scan processing per (user, location) pair. Without
// it two concurrent scans could both read the same "most recent" event and
// both insert a CheckIn, breaking the alternation invariant.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedLocks) get(userID, locationID uint) *sync.Mutex {
	key := fmt.Sprintf("%d:%d", userID, locationID)
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
