// Package layercache keeps rasterized slot layers between frames.
//
// A rating bar redraws every slot on every frame, but a slot layer only
// depends on the shape, its geometry and one fill color, so bars that
// share a style (and the same bar on the next frame) reuse the same
// layers. Layers are immutable once stored.
package layercache

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// DefaultCapacity is the number of layers kept when New is given a
// non-positive capacity. A five-slot bar with a partial slot needs two.
const DefaultCapacity = 128

// Key identifies a rasterized layer.
type Key struct {
	Shape       int
	Size        float64
	BorderWidth float64
	Fill        gg.RGBA
	Border      gg.RGBA
}

// valid reports whether k equals itself. A NaN in any field breaks map
// lookups, so such keys are never stored.
func (k Key) valid() bool {
	return k == k
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Len       int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// HitRate returns hits / (hits + misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

type entry struct {
	img  image.Image
	node *node
}

// Cache is an LRU cache of layers. It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	entries  map[Key]*entry
	order    recency
	capacity int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// New creates a cache holding at most capacity layers.
func New(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		entries:  make(map[Key]*entry, capacity),
		capacity: capacity,
	}
}

// Get returns the layer stored under key.
func (c *Cache) Get(key Key) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.order.moveToFront(e.node)
	c.hits.Add(1)
	return e.img, true
}

// GetOrCreate returns the layer stored under key, calling create to
// rasterize it on a miss. Errors from create are returned and nothing is
// stored.
//
// create runs without the lock held, so two goroutines missing the same
// key may both rasterize it; the later result wins.
//
// Keys holding NaN bypass the cache: create is called every time.
func (c *Cache) GetOrCreate(key Key, create func() (image.Image, error)) (image.Image, error) {
	if !key.valid() {
		c.misses.Add(1)
		return create()
	}
	if img, ok := c.Get(key); ok {
		return img, nil
	}
	img, err := create()
	if err != nil {
		return nil, err
	}
	c.Set(key, img)
	return img, nil
}

// Set stores img under key, evicting the least recently used layers when
// the cache is full. Keys holding NaN are ignored.
func (c *Cache) Set(key Key, img image.Image) {
	if !key.valid() {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.img = img
		c.order.moveToFront(e.node)
		return
	}
	for c.order.len >= c.capacity {
		oldest, ok := c.order.popBack()
		if !ok {
			break
		}
		delete(c.entries, oldest)
		c.evictions.Add(1)
	}
	c.entries[key] = &entry{img: img, node: c.order.pushFront(key)}
}

// Clear drops every layer. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry, c.capacity)
	c.order = recency{}
}

// Len returns the number of stored layers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of the cache counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Len:       c.Len(),
		Capacity:  c.capacity,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
