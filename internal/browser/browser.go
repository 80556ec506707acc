// Package browser is the obstruction-suppression side channel of the live
// pipeline. HelloWork layers job-alert popups over its listing pages; a real
// browser backend can click them away before the HTML fetch runs. The
// pipeline only ever talks to the Automation interface, so the backend can
// be swapped or stubbed, and the default costs nothing.
package browser

import "context"

// Automation drives a page long enough to clear modal interstitials.
// Implementations must be safe to call in any order; every method is
// best-effort and the caller swallows errors.
type Automation interface {
	Initialize(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	SuppressObstructions(ctx context.Context) error
	Close() error
}

// Noop is the default backend: plain HTTP fetching, nothing to dismiss.
type Noop struct{}

func (Noop) Initialize(context.Context) error           { return nil }
func (Noop) Navigate(context.Context, string) error     { return nil }
func (Noop) SuppressObstructions(context.Context) error { return nil }
func (Noop) Close() error                               { return nil }
