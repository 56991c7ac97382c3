// Package cdp drives a Chromium-family browser over the DevTools protocol.
package cdp

//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks

import (
	"context"

	"github.com/chromedp/chromedp"
)

// Executor is the seam between the adapter and chromedp.
type Executor interface {
	// NewTab derives a context bound to a new target. The target is created
	// by the first Run on that context.
	NewTab(parent context.Context) (context.Context, context.CancelFunc)
	// Run executes actions against the target bound to ctx.
	Run(ctx context.Context, actions ...chromedp.Action) error
	// Close closes the target bound to ctx and waits for it to go away.
	Close(ctx context.Context) error
}

type chromedpExecutor struct{}

func (chromedpExecutor) NewTab(parent context.Context) (context.Context, context.CancelFunc) {
	return chromedp.NewContext(parent)
}

func (chromedpExecutor) Run(ctx context.Context, actions ...chromedp.Action) error {
	return chromedp.Run(ctx, actions...)
}

func (chromedpExecutor) Close(ctx context.Context) error {
	return chromedp.Cancel(ctx)
}
