package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// CollisionResolver hands out target paths for a batch of renames. When two
// sources render to the same target, the later one gets a " (N)" suffix
// before its extension. Targets are compared case-insensitively since many
// media libraries live on case-insensitive filesystems. All methods are
// goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // folded target → source that claimed it
	counters map[string]int    // folded requested target → next suffix
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Reserve marks target as taken by a file that is not part of the batch,
// such as one already present in the library. A batch source that had
// claimed target loses it and gets a suffixed name on its next Resolve.
func (cr *CollisionResolver) Reserve(target string) {
	cr.mu.Lock()
	defer cr.mu.Unlock()
	cr.owners[foldPath(target)] = ""
}

// Resolve returns the final target for source. A target that is free, or
// already owned by source, is returned unchanged.
func (cr *CollisionResolver) Resolve(source, target string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	key := foldPath(target)
	owner, taken := cr.owners[key]
	if !taken || (owner == source && source != "") {
		cr.owners[key] = source
		return target
	}

	dir := filepath.Dir(target)
	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(filepath.Base(target), ext)

	n := cr.counters[key]
	if n < 2 {
		n = 2
	}
	for {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		ck := foldPath(candidate)
		if o, ok := cr.owners[ck]; !ok || (o == source && source != "") {
			cr.counters[key] = n + 1
			cr.owners[ck] = source
			return candidate
		}
		n++
	}
}

func foldPath(p string) string {
	return strings.ToLower(filepath.Clean(p))
}
