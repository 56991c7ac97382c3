package mainloop

import "testing"

func queuePost(queue *[]func()) func(func()) bool {
	return func(fn func()) bool {
		*queue = append(*queue, fn)
		return true
	}
}

func TestCoalescerDropsPostsWhilePending(t *testing.T) {
	queue := make([]func(), 0, 8)
	c := NewCoalescer(queuePost(&queue))

	value := 0
	for i := 1; i <= 5; i++ {
		v := i
		c.Post("suspend-pass", func() { value = v })
	}

	if len(queue) != 1 {
		t.Fatalf("expected 1 scheduled callback, got %d", len(queue))
	}
	queue[0]()

	if value != 1 {
		t.Fatalf("expected first callback to run, got %d", value)
	}
	if c.InFlight("suspend-pass") {
		t.Fatalf("expected key to be released after the task returned")
	}
}

func TestCoalescerDropsPostsWhileRunning(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(queuePost(&queue))

	nested := true
	c.Post("suspend-pass", func() {
		nested = c.Post("suspend-pass", func() {})
	})
	queue[0]()

	if nested {
		t.Fatalf("expected post during a running task to be dropped")
	}
	if len(queue) != 1 {
		t.Fatalf("expected no new callback, got %d", len(queue))
	}
	if !c.Post("suspend-pass", func() {}) {
		t.Fatalf("expected post to be accepted once the task finished")
	}
}

func TestCoalescerKeysAreIndependent(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(queuePost(&queue))

	c.Post("a", func() {})
	c.Post("b", func() {})

	if len(queue) != 2 {
		t.Fatalf("expected 2 scheduled callbacks, got %d", len(queue))
	}
}

func TestCoalescerReleasesKeyWhenPostRefused(t *testing.T) {
	refuse := true
	c := NewCoalescer(func(fn func()) bool {
		if refuse {
			return false
		}
		fn()
		return true
	})

	if c.Post("k", func() {}) {
		t.Fatalf("expected refused post to report false")
	}
	refuse = false
	ran := false
	c.Post("k", func() { ran = true })
	if !ran {
		t.Fatalf("expected key to be usable after a refused post")
	}
}

func TestCoalescerDropsWorkAfterDestroy(t *testing.T) {
	queue := make([]func(), 0, 4)
	c := NewCoalescer(queuePost(&queue))

	ran := false
	c.Post("reclaim", func() { ran = true })
	c.Destroy()

	if len(queue) != 1 {
		t.Fatalf("expected one queued callback before destroy, got %d", len(queue))
	}
	queue[0]()

	if ran {
		t.Fatalf("expected queued work to be dropped after destroy")
	}

	c.Post("reclaim", func() { ran = true })
	if len(queue) != 1 {
		t.Fatalf("expected no new callback after destroy, got %d", len(queue))
	}
}

func TestNewCoalescerPanicsOnNilPost(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected NewCoalescer to panic when post is nil")
		}
	}()

	_ = NewCoalescer(nil)
}
