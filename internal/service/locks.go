package service

import "sync"

// keyedMutex hands out one mutex per key so the admission sequence can
// be serialized per participant without serializing participants against
// each other.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int]*sync.Mutex)}
}

// get returns the mutex for key, creating it on first use. Mutexes are
// retained for the life of the process; the key space is bounded by the
// participants this instance has seen.
func (k *keyedMutex) get(key int) *sync.Mutex {
	k.mu.Lock()
	defer k.mu.Unlock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	return m
}
