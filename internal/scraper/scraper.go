// Package scraper renders a documentation page in a short-lived browser.
package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"schemer/internal/browser"
	"schemer/internal/fetcher"
)

// Options configures a scrape.
type Options struct {
	Fetch    fetcher.Options
	ShowUI   bool
	ProxyURL string // used for a second attempt when the direct one fails
	Bin      string
}

// Scrape fetches target, retrying once through the proxy when one is
// configured and the direct attempt fails.
func Scrape(ctx context.Context, target string, opts Options) (*fetcher.Result, error) {
	result, err := scrape(ctx, target, browser.Config{Headless: !opts.ShowUI, Bin: opts.Bin}, opts.Fetch)
	if err == nil {
		return result, nil
	}
	if opts.ProxyURL == "" {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}

	slog.Warn("first attempt failed, retrying with proxy", "err", err, "proxy", opts.ProxyURL)
	result, err = scrape(ctx, target, browser.Config{ProxyURL: opts.ProxyURL, Headless: !opts.ShowUI, Bin: opts.Bin}, opts.Fetch)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page (even with proxy): %w", err)
	}
	slog.Info("fetched with proxy", "proxy", opts.ProxyURL)
	return result, nil
}

func scrape(ctx context.Context, target string, cfg browser.Config, opts fetcher.Options) (*fetcher.Result, error) {
	b, err := browser.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create browser: %w", err)
	}
	defer b.Close()

	result, err := fetcher.NewFetcher(b).Fetch(ctx, target, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	slog.Debug("page rendered", "url", result.URL, "title", result.Title, "load_time", result.LoadTime)
	return result, nil
}
