// Package ratelimit paces successive requests against the lottery API.
package ratelimit

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces page fetches with a token bucket plus a randomized jitter
// sleep. The jitter is politeness toward the remote service, not a
// correctness requirement.
type Pacer struct {
	limiter   *rate.Limiter
	minJitter time.Duration
	maxJitter time.Duration
}

// NewPacer creates a pacer allowing requestsPerSecond sustained with the
// given burst, sleeping an extra random duration in [minJitter, maxJitter]
// per wait.
func NewPacer(requestsPerSecond float64, burst int, minJitter, maxJitter time.Duration) *Pacer {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 2.0
	}
	if burst <= 0 {
		burst = 1
	}
	if maxJitter < minJitter {
		maxJitter = minJitter
	}
	return &Pacer{
		limiter:   rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
		minJitter: minJitter,
		maxJitter: maxJitter,
	}
}

// Wait blocks until the next request may proceed or the context is done.
func (p *Pacer) Wait(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return err
	}

	d := p.jitter()
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Pacer) jitter() time.Duration {
	spread := p.maxJitter - p.minJitter
	if spread <= 0 {
		return p.minJitter
	}
	return p.minJitter + time.Duration(rand.Int63n(int64(spread)))
}
