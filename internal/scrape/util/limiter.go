package util

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// Pacer spaces requests per hostname. The listing walk hits the same host
// page after page; the delay is courtesy toward the upstream source, not a
// correctness requirement.
type Pacer struct {
	mu sync.Mutex
	m  map[string]*rate.Limiter
	r  rate.Limit
	b  int
}

func NewPacer(reqPerSec float64, burst int) *Pacer {
	return &Pacer{
		m: make(map[string]*rate.Limiter),
		r: rate.Limit(reqPerSec),
		b: burst,
	}
}

func (p *Pacer) limiterFor(host string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if lim, ok := p.m[host]; ok {
		return lim
	}
	lim := rate.NewLimiter(p.r, p.b)
	p.m[host] = lim
	return lim
}

// WaitURL blocks until a request to raw's host is allowed or ctx ends.
func (p *Pacer) WaitURL(ctx context.Context, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return p.limiterFor("_").Wait(ctx)
	}
	return p.limiterFor(u.Host).Wait(ctx)
}
