package service

import "sync"

// matchLocker serializes actions per match id. Actions against different
// matches proceed independently. Entries are reference counted and removed
// once the last holder releases, so deleted or finished matches do not pin
// a mutex forever.
type matchLocker struct {
	mu    sync.Mutex
	locks map[string]*matchLock
}

type matchLock struct {
	sync.Mutex
	refs int
}

func newMatchLocker() *matchLocker {
	return &matchLocker{
		locks: make(map[string]*matchLock),
	}
}

func (that *matchLocker) Lock(matchID string) func() {
	that.mu.Lock()
	entry, ok := that.locks[matchID]
	if !ok {
		entry = &matchLock{}
		that.locks[matchID] = entry
	}
	entry.refs++
	that.mu.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		that.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(that.locks, matchID)
		}
		that.mu.Unlock()
	}
}

func (that *matchLocker) size() int {
	that.mu.Lock()
	defer that.mu.Unlock()
	return len(that.locks)
}
