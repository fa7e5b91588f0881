package fetcher

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"schemer/internal/browser"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// WaitStrategy wait strategy type
type WaitStrategy string

const (
	WaitStrategyLoad    WaitStrategy = "load"    // Wait for page load and network idle
	WaitStrategyElement WaitStrategy = "element" // Wait for specific element to appear
	WaitStrategyTime    WaitStrategy = "time"    // Wait for fixed time
)

// ParseWaitStrategy validates a wait strategy flag value.
func ParseWaitStrategy(s string) (WaitStrategy, error) {
	switch ws := WaitStrategy(strings.ToLower(s)); ws {
	case WaitStrategyLoad, WaitStrategyElement, WaitStrategyTime:
		return ws, nil
	default:
		return "", fmt.Errorf("invalid wait strategy: %s", s)
	}
}

// DefaultTimeout applies when Options.Timeout is not positive.
const DefaultTimeout = 30 * time.Second

// Options controls a single fetch.
type Options struct {
	WaitFor    WaitStrategy
	WaitTarget string // selector for element strategy, milliseconds for time strategy
	Timeout    time.Duration
}

// Result is the rendered page.
type Result struct {
	HTML     string
	Title    string
	URL      string // final URL after redirects
	LoadTime time.Duration
}

// Fetcher renders pages in a browser.
type Fetcher struct {
	browser *browser.Browser
}

func NewFetcher(browser *browser.Browser) *Fetcher {
	return &Fetcher{
		browser: browser,
	}
}

// Fetch navigates to url, waits for rendering and returns the page HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts Options) (*Result, error) {
	startTime := time.Now()
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	page, err := f.browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)
	if err := page.Timeout(opts.Timeout).Navigate(url); err != nil {
		return nil, fmt.Errorf("failed to navigate: %w", err)
	}

	if err := applyWaitStrategy(page, opts); err != nil {
		return nil, fmt.Errorf("wait strategy failed: %w", err)
	}

	html, err := page.Timeout(opts.Timeout).HTML()
	if err != nil {
		return nil, fmt.Errorf("failed to get page HTML: %w", err)
	}

	info, err := page.Info()
	if err != nil {
		return nil, fmt.Errorf("failed to get page info: %w", err)
	}

	return &Result{
		HTML:     html,
		Title:    info.Title,
		URL:      info.URL,
		LoadTime: time.Since(startTime),
	}, nil
}

func applyWaitStrategy(page *rod.Page, opts Options) error {
	switch opts.WaitFor {
	case WaitStrategyElement:
		if opts.WaitTarget == "" {
			return fmt.Errorf("wait target is required for element strategy")
		}
		if _, err := page.Timeout(opts.Timeout).Element(opts.WaitTarget); err != nil {
			return fmt.Errorf("failed to wait for element '%s': %w", opts.WaitTarget, err)
		}

	case WaitStrategyTime:
		if opts.WaitTarget == "" {
			return fmt.Errorf("wait target is required for time strategy")
		}
		ms, err := strconv.Atoi(opts.WaitTarget)
		if err != nil || ms < 0 {
			return fmt.Errorf("invalid wait time '%s'", opts.WaitTarget)
		}
		if err := page.Timeout(opts.Timeout).WaitLoad(); err != nil {
			return fmt.Errorf("failed to wait for page load: %w", err)
		}
		time.Sleep(time.Duration(ms) * time.Millisecond)

	default:
		if err := page.Timeout(opts.Timeout).WaitLoad(); err != nil {
			return fmt.Errorf("failed to wait for page load: %w", err)
		}
		// Documentation pages are rendered client side after load, so also
		// wait for the network to go quiet.
		wait := page.Timeout(opts.Timeout).WaitRequestIdle(
			500*time.Millisecond, nil, nil,
			[]proto.NetworkResourceType{proto.NetworkResourceTypeImage, proto.NetworkResourceTypeMedia},
		)
		wait()
	}

	return nil
}
