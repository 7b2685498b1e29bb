package poller

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	// DefaultConversationInterval is the refresh cadence while a single
	// conversation is open.
	DefaultConversationInterval = 3 * time.Second

	// DefaultListInterval is the refresh cadence for conversation-list
	// views, whose previews change far less often.
	DefaultListInterval = 5 * time.Minute

	// DefaultMaxConsecutiveFailures is how many fetch failures in a row are
	// tolerated before the loop pauses.
	DefaultMaxConsecutiveFailures = 3
)

// FetchFunc performs one fetch and returns the fresh state to apply.
type FetchFunc func(ctx context.Context) (interface{}, error)

// ApplyFunc receives the result of a completed, non-superseded fetch.
type ApplyFunc func(result interface{})

// Poller drives convergence of a view with the store in the absence of a
// push channel. At most one fetch per poller is in flight: a tick that
// arrives while the previous fetch is still outstanding is skipped, and a
// generation counter discards any fetch that completes after it has been
// superseded, so a slow response can never overwrite fresher state.
//
// After maxFailures consecutive fetch errors the loop pauses and flips into
// an unavailable state instead of hammering a broken backend; Resume
// restarts it.
type Poller struct {
	interval    time.Duration
	maxFailures int
	fetch       FetchFunc
	apply       ApplyFunc

	mu          sync.Mutex
	generation  uint64
	inFlight    bool
	failures    int
	unavailable bool
	running     bool
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}

	// invoked once when the loop pauses after repeated failures
	onUnavailable func()
}

func New(interval time.Duration, fetch FetchFunc, apply ApplyFunc) *Poller {
	if interval <= 0 {
		interval = DefaultConversationInterval
	}
	return &Poller{
		interval:    interval,
		maxFailures: DefaultMaxConsecutiveFailures,
		fetch:       fetch,
		apply:       apply,
	}
}

// SetMaxFailures overrides the consecutive-failure budget.
func (p *Poller) SetMaxFailures(n int) {
	if n > 0 {
		p.maxFailures = n
	}
}

// OnUnavailable registers a callback fired when the loop pauses.
func (p *Poller) OnUnavailable(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onUnavailable = fn
}

// Start begins polling until Stop is called or ctx is cancelled. The first
// fetch is issued immediately rather than one interval in.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.running = true
	p.ctx = ctx
	p.cancel = cancel
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.tick(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.tick(ctx)
			}
		}
	}()
}

// Stop cancels the loop and invalidates any in-flight fetch; its result will
// be discarded even if it completes later. Blocks until the loop goroutine
// has exited.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	p.generation++
	cancel := p.cancel
	done := p.done
	p.mu.Unlock()

	cancel()
	<-done
}

// Poke requests an immediate out-of-band fetch, subject to the same
// single-in-flight rule as a regular tick. Used when an unlock timer fires
// between polls.
func (p *Poller) Poke() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	ctx := p.ctx
	p.mu.Unlock()
	p.tick(ctx)
}

// Unavailable reports whether the loop has paused after repeated failures.
func (p *Poller) Unavailable() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unavailable
}

// Resume clears the unavailable state so the next Start polls again.
func (p *Poller) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = 0
	p.unavailable = false
}

func (p *Poller) tick(ctx context.Context) {
	p.mu.Lock()
	if p.inFlight || p.unavailable {
		// previous fetch still outstanding, skip this tick
		p.mu.Unlock()
		return
	}
	p.inFlight = true
	gen := p.generation
	p.mu.Unlock()

	go func() {
		result, err := p.fetch(ctx)

		p.mu.Lock()
		p.inFlight = false
		if gen != p.generation {
			// superseded while in flight, discard
			p.mu.Unlock()
			return
		}
		if err != nil {
			p.failures++
			failures := p.failures
			paused := false
			if p.failures >= p.maxFailures {
				p.unavailable = true
				paused = true
			}
			onUnavailable := p.onUnavailable
			p.mu.Unlock()

			log.Printf("Poll fetch failed (%d consecutive): %v", failures, err)
			if paused && onUnavailable != nil {
				onUnavailable()
			}
			return
		}
		p.failures = 0
		apply := p.apply
		p.mu.Unlock()

		if apply != nil {
			apply(result)
		}
	}()
}
