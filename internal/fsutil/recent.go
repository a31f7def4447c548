package fsutil

import (
	"sync"
	"time"
)

const DefaultRecentTTL = 2 * time.Second

// RecentWrites remembers paths the process wrote itself so a file watcher can
// tell them apart from edits made by someone else. A nil *RecentWrites
// remembers nothing.
type RecentWrites struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	paths map[string]time.Time
}

func NewRecentWrites(ttl time.Duration) *RecentWrites {
	if ttl <= 0 {
		ttl = DefaultRecentTTL
	}

	return &RecentWrites{
		ttl:   ttl,
		now:   time.Now,
		paths: map[string]time.Time{},
	}
}

// Mark records path as written now. Paths are slash-separated and relative to
// the watched root.
func (r *RecentWrites) Mark(path string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for p, at := range r.paths {
		if now.Sub(at) > r.ttl {
			delete(r.paths, p)
		}
	}
	r.paths[path] = now
}

// Recent reports whether path was marked within the ttl.
func (r *RecentWrites) Recent(path string) bool {
	if r == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	at, ok := r.paths[path]
	if !ok {
		return false
	}
	if r.now().Sub(at) > r.ttl {
		delete(r.paths, path)
		return false
	}
	return true
}
