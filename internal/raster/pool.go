package raster

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const (
	defaultMaxPerSize = 3
	defaultMaxAge     = 60 * time.Second
)

type poolEntry struct {
	bitmap   *Bitmap
	inUse    bool
	lastUsed time.Time
}

// Pool recycles Bitmaps keyed by their dimensions so that per-frame redraws
// do not allocate. A full e-paper frame is hundreds of kilobytes and redraws
// are frequent; reusing buffers keeps the collector quiet on small devices.
//
// The render path itself is single-threaded, but eviction may be driven from
// a housekeeping goroutine, so the pool is guarded by one mutex. Between
// Acquire and Release the caller owns the bitmap exclusively.
type Pool struct {
	mu         sync.Mutex
	partitions map[string][]*poolEntry
	maxPerSize int
	maxAge     time.Duration

	hits    int
	misses  int
	created int
	reused  int
	evicted int
}

// PoolStats is a snapshot of the pool's counters.
type PoolStats struct {
	Hits    int
	Misses  int
	Created int
	Reused  int
	Evicted int
	HitRate float64
	Size    int
	InUse   int
}

// NewPool returns a pool with the default partition size (3) and entry age
// limit (60s).
func NewPool() *Pool {
	return NewPoolConfig(defaultMaxPerSize, defaultMaxAge)
}

func NewPoolConfig(maxPerSize int, maxAge time.Duration) *Pool {
	return &Pool{
		partitions: make(map[string][]*poolEntry),
		maxPerSize: maxPerSize,
		maxAge:     maxAge,
	}
}

func partitionKey(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// Acquire returns a bitmap of the given dimensions with its buffer reset to
// the requested fill. A free pooled bitmap of matching size is reused (the
// very same object a prior Release handed back); otherwise a new one is
// allocated, tracked while the partition has room and untracked once it is
// full. Untracked bitmaps are never reused.
func (p *Pool) Acquire(width, height int, black bool) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Pool can't provide a %dx%d bitmap", width, height)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := partitionKey(width, height)
	for _, entry := range p.partitions[key] {
		if !entry.inUse {
			entry.inUse = true
			entry.lastUsed = time.Now()
			entry.bitmap.Fill(black)
			p.hits++
			p.reused++
			return entry.bitmap, nil
		}
	}

	b, err := New(width, height, black)
	if err != nil {
		return nil, err
	}
	p.misses++
	p.created++

	if len(p.partitions[key]) < p.maxPerSize {
		p.partitions[key] = append(p.partitions[key], &poolEntry{
			bitmap:   b,
			inUse:    true,
			lastUsed: time.Now(),
		})
	}
	return b, nil
}

// Release hands a bitmap back to the pool. Bitmaps the pool doesn't track
// (overflow allocations, or bitmaps from another pool) are silently ignored.
// The caller must not touch the bitmap after releasing it.
func (p *Pool) Release(b *Bitmap) {
	if b == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, entry := range p.partitions[partitionKey(b.width, b.height)] {
		if entry.bitmap == b {
			entry.inUse = false
			entry.lastUsed = time.Now()
			return
		}
	}
}

// EvictOld drops free entries that have not been used for the pool's age
// limit and returns how many were dropped. In-use entries are never evicted.
// There is no background timer; the owner decides when housekeeping runs.
func (p *Pool) EvictOld() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	evicted := 0
	for key, entries := range p.partitions {
		kept := entries[:0]
		for _, entry := range entries {
			if !entry.inUse && now.Sub(entry.lastUsed) >= p.maxAge {
				evicted++
				continue
			}
			kept = append(kept, entry)
		}
		if len(kept) == 0 {
			delete(p.partitions, key)
		} else {
			p.partitions[key] = kept
		}
	}

	p.evicted += evicted
	if evicted > 0 {
		slog.Debug("Evicted stale pool bitmaps", "count", evicted)
	}
	return evicted
}

// Clear drops every partition, used at shutdown or under memory pressure.
// Counters are kept; they describe the pool's lifetime, not its contents.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.partitions = make(map[string][]*poolEntry)
}

func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := PoolStats{
		Hits:    p.hits,
		Misses:  p.misses,
		Created: p.created,
		Reused:  p.reused,
		Evicted: p.evicted,
	}
	if total := p.hits + p.misses; total > 0 {
		s.HitRate = float64(p.hits) / float64(total)
	}
	for _, entries := range p.partitions {
		s.Size += len(entries)
		for _, entry := range entries {
			if entry.inUse {
				s.InUse++
			}
		}
	}
	return s
}
