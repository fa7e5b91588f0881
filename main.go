package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"schemer/internal/config"
	"schemer/internal/dom"
	"schemer/internal/extractor"
	"schemer/internal/fetcher"
	"schemer/internal/formatter"
	"schemer/internal/logger"
	"schemer/internal/profile"
	"schemer/internal/schema"
	"schemer/internal/scraper"
	"schemer/internal/sites/apple"
	"schemer/internal/writer"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var version = "dev"

type options struct {
	outputFormat string
	waitFor      string
	waitTarget   string
	timeout      time.Duration
	showUI       bool
	proxyURL     string
	browserBin   string
	profile      string
	template     string
	markdown     bool
	slug         bool
	stdout       bool
	logLevel     string
	logJSON      bool
}

// app carries the collaborators of a run so tests can replace the browser
// and the filesystem.
type app struct {
	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	scrape func(ctx context.Context, target string, opts scraper.Options) (*fetcher.Result, error)
}

func main() {
	a := &app{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
		scrape: scraper.Scrape,
	}
	if err := a.rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) rootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:     "schemer <URL> [output_directory]",
		Short:   "Generate a JSON Schema from a rendered API documentation page",
		Version: version,
		Long: `schemer renders an API documentation page in a headless browser, reads
the title, abstract, type, platform version and property rows from the page
and writes a JSON Schema document named after the page title.`,
		Example: `  # Write JWSTransactionDecodedPayload.json into ./schemas
  schemer https://developer.apple.com/documentation/appstoreserverapi/jwstransactiondecodedpayload schemas

  # Print a YAML rendition with Markdown descriptions
  schemer --stdout -f yaml --markdown https://developer.apple.com/documentation/appstoreserverapi/jwstransaction`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				cmd.SetOut(a.stderr)
				_ = cmd.Usage()
				return errors.New("missing documentation URL")
			}
			return cobra.RangeArgs(1, 2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), opts, args)
		},
		SilenceUsage: true,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputFormat, "format", "f", formatter.FormatJSON, "Output format (json, yaml)")
	flags.StringVarP(&opts.waitFor, "wait-for", "w", string(fetcher.WaitStrategyLoad), "Wait strategy (load, element, time)")
	flags.StringVarP(&opts.waitTarget, "wait-target", "T", "", "Wait target (selector for 'element' strategy, milliseconds for 'time' strategy)")
	flags.DurationVarP(&opts.timeout, "timeout", "t", fetcher.DefaultTimeout, "Page load timeout")
	flags.BoolVar(&opts.showUI, "showui", false, "Show browser UI (disable headless mode)")
	flags.StringVarP(&opts.proxyURL, "proxy", "p", os.Getenv("SCHEMER_PROXY"), "Proxy URL used to retry failed fetches, defaults to SCHEMER_PROXY env var")
	flags.StringVar(&opts.browserBin, "browser", os.Getenv("SCHEMER_BROWSER"), "Browser executable, defaults to SCHEMER_BROWSER env var")
	flags.StringVar(&opts.profile, "profile", "", "Site markup profile (default: chosen from the URL host, else apple)")
	flags.StringVar(&opts.template, "template", "", "json5 file with default document fields")
	flags.BoolVar(&opts.markdown, "markdown", false, "Render descriptions as Markdown instead of plain text")
	flags.BoolVar(&opts.slug, "slug", false, "Name the output file after the slug of the title")
	flags.BoolVar(&opts.stdout, "stdout", false, "Print the schema instead of writing a file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "Log as JSON")

	return cmd
}

func (a *app) run(ctx context.Context, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log := logger.New(a.stderr, opts.logLevel, opts.logJSON)
	slog.SetDefault(log)

	target := normalizeURL(args[0])
	outputDir := "."
	if len(args) > 1 {
		outputDir = args[1]
	}

	ext, err := formatter.Extension(opts.outputFormat)
	if err != nil {
		return err
	}
	waitFor, err := fetcher.ParseWaitStrategy(opts.waitFor)
	if err != nil {
		return err
	}
	p, err := resolveProfile(opts.profile, target)
	if err != nil {
		return err
	}
	waitTarget := opts.waitTarget
	if waitFor == fetcher.WaitStrategyElement && waitTarget == "" {
		waitTarget = p.Ready
	}
	if waitFor != fetcher.WaitStrategyLoad && waitTarget == "" {
		return fmt.Errorf("--wait-target is required when using '%s' wait strategy", waitFor)
	}

	var defaults schema.Header
	if opts.template != "" {
		defaults, err = config.ReadTemplate(a.fs, opts.template)
		if err != nil {
			return fmt.Errorf("failed to read template: %w", err)
		}
	}

	result, err := a.scrape(ctx, target, scraper.Options{
		Fetch: fetcher.Options{
			WaitFor:    waitFor,
			WaitTarget: waitTarget,
			Timeout:    opts.timeout,
		},
		ShowUI:   opts.showUI,
		ProxyURL: opts.proxyURL,
		Bin:      opts.browserBin,
	})
	if err != nil {
		return err
	}

	root, err := dom.ParseString(result.HTML, p.Selectors)
	if err != nil {
		return err
	}

	render := dom.PlainText
	if opts.markdown {
		render = dom.MarkdownText
	}
	doc, err := extractor.New(extractor.Options{
		Observer: logger.Observer{Logger: log},
		Defaults: defaults,
		Render:   render,
	}).Extract(root, target)
	if err != nil {
		return err
	}

	out, err := formatter.Format(doc, opts.outputFormat)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if opts.stdout {
		_, err := a.stdout.Write(out)
		return err
	}

	var writerOpts []writer.Option
	if opts.slug {
		writerOpts = append(writerOpts, writer.WithSlug())
	}
	path, err := writer.New(a.fs, writerOpts...).Write(outputDir, doc.Title, ext, out)
	if err != nil {
		return err
	}
	log.Info("schema generated", "path", path)
	return nil
}

func resolveProfile(name, target string) (*profile.Profile, error) {
	if name != "" {
		p, ok := profile.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown profile: %s (available: %s)", name, strings.Join(profile.Names(), ", "))
		}
		return p, nil
	}
	if p, ok := profile.ForURL(target); ok {
		return p, nil
	}
	p, _ := profile.Get(apple.Name)
	return p, nil
}

// normalizeURL adds https:// when the URL has no scheme.
func normalizeURL(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return rawURL
	}
	lower := strings.ToLower(rawURL)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return "https://" + rawURL
	}
	return rawURL
}
