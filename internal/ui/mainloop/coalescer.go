package mainloop

import "sync"

// Coalescer keeps at most one task per key in flight. A task is in flight
// from the moment it is posted until it returns; posts for a key that is
// already in flight are dropped.
type Coalescer struct {
	mu        sync.Mutex
	inFlight  map[string]bool
	post      func(func()) bool
	destroyed bool
}

// NewCoalescer wraps a post function, usually Loop.Post.
func NewCoalescer(post func(func()) bool) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}

	return &Coalescer{
		inFlight: make(map[string]bool),
		post:     post,
	}
}

// Post schedules fn under key. It returns false when the work was dropped
// because the key is in flight, the coalescer is destroyed, or the post
// function refused it.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed || c.inFlight[key] {
		c.mu.Unlock()
		return false
	}
	c.inFlight[key] = true
	post := c.post
	c.mu.Unlock()

	accepted := post(func() {
		c.mu.Lock()
		destroyed := c.destroyed
		c.mu.Unlock()

		if !destroyed {
			fn()
		}

		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
	})
	if !accepted {
		c.mu.Lock()
		delete(c.inFlight, key)
		c.mu.Unlock()
	}
	return accepted
}

// InFlight reports whether work for key is pending or running.
func (c *Coalescer) InFlight(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight[key]
}

// Destroy drops all pending work and refuses further posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	c.inFlight = map[string]bool{}
	c.mu.Unlock()
}
