// internal/browser/chrome.go
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/afontaine/marquee/internal/log"
	"github.com/afontaine/marquee/internal/stream"
)

// Chrome runs a Chromium instance via chromedp, sniffing media URLs
// from its network traffic.
type Chrome struct {
	ctx    context.Context
	cancel context.CancelFunc

	events    chan Event
	closeOnce sync.Once

	mu         sync.Mutex
	currentURL string
	seen       map[string]bool // sniffed URLs already reported
}

// NewChrome launches Chromium and starts listening for page lifecycle
// and network events. bin overrides the browser binary when non-empty.
func NewChrome(bin string) (*Chrome, error) {
	opts := chromedp.DefaultExecAllocatorOptions[:]
	if bin != "" {
		opts = append(opts, chromedp.ExecPath(bin))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	ctx, ctxCancel := chromedp.NewContext(allocCtx)

	c := &Chrome{
		ctx: ctx,
		cancel: func() {
			ctxCancel()
			allocCancel()
		},
		events: make(chan Event, 32),
		seen:   make(map[string]bool),
	}

	chromedp.ListenTarget(ctx, c.handleTarget)

	if err := chromedp.Run(ctx, network.Enable()); err != nil {
		c.cancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return c, nil
}

// handleTarget folds CDP events into browser events.
func (c *Chrome) handleTarget(ev any) {
	switch e := ev.(type) {
	case *network.EventRequestWillBeSent:
		c.handleRequest(e.Request.URL)
	case *page.EventLoadEventFired:
		go c.reportLoadFinished()
	}
}

// handleRequest reports media URLs once each per navigation.
func (c *Chrome) handleRequest(url string) {
	kind, ok := classifyMediaURL(url)
	if !ok {
		return
	}
	c.mu.Lock()
	if c.seen[url] {
		c.mu.Unlock()
		return
	}
	c.seen[url] = true
	c.mu.Unlock()

	c.emit(StreamFound{URL: url, Kind: kind})
}

// reportLoadFinished fetches the loaded page's title before emitting.
func (c *Chrome) reportLoadFinished() {
	var title string
	if err := chromedp.Run(c.ctx, chromedp.Title(&title)); err != nil {
		log.L().WithError(err).Debug("browser: fetch title")
	}
	c.mu.Lock()
	url := c.currentURL
	c.mu.Unlock()
	c.emit(LoadFinished{URL: url, Title: title})
}

// classifyMediaURL reports whether a request URL looks like a playable
// stream and which kind.
func classifyMediaURL(url string) (StreamKind, bool) {
	if stream.LooksLikeHLS(url) {
		return StreamHLS, true
	}
	if strings.Contains(strings.ToLower(url), ".mp4") {
		return StreamMP4, true
	}
	return "", false
}

// Navigate starts loading url. The result arrives as a LoadFinished or
// LoadFailed event; sniffed-URL dedup resets for the new page.
func (c *Chrome) Navigate(url string) error {
	c.mu.Lock()
	c.currentURL = url
	c.seen = make(map[string]bool)
	c.mu.Unlock()

	go func() {
		if err := chromedp.Run(c.ctx, chromedp.Navigate(url)); err != nil {
			c.emit(LoadFailed{URL: url, Desc: err.Error()})
		}
	}()
	return nil
}

func (c *Chrome) Events() <-chan Event {
	return c.events
}

// Close shuts the browser down. Safe to call more than once.
func (c *Chrome) Close() error {
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.events)
	})
	return nil
}

// emit delivers an event without blocking CDP callbacks.
func (c *Chrome) emit(ev Event) {
	defer func() {
		// The events channel closes on shutdown while CDP callbacks may
		// still be in flight; a late emit is a no-op, not a crash.
		_ = recover()
	}()
	select {
	case c.events <- ev:
	default:
		log.L().Debug("browser: dropping event, consumer behind")
	}
}
