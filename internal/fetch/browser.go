package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// MinContentLength is the minimum extracted text length to consider an HTTP fetch complete.
// Shorter text usually means the posting is rendered client-side.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be a rendered posting.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// WithBrowser renders a page in headless Chrome and returns the resulting HTML.
// Requires Chrome or Chromium on the host.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger.Debug("starting headless browser", zap.String("url", url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// ATS boards hydrate the description after load
		chromedp.Sleep(2*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	logger.Debug("rendered page", zap.String("url", url), zap.Int("bytes", len(html)))
	return html, nil
}

// Posting is a job posting fetched from the web.
type Posting struct {
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	Text     string   `json:"text"`
	Rendered bool     `json:"rendered"`
}

// JobPosting fetches a job posting and extracts its text with platform-specific selectors.
// With opts.UseBrowser set, short pages are re-rendered in a headless browser; a browser
// failure keeps the HTTP text.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (*Posting, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	logger := opts.logger()

	platform := DetectPlatform(urlStr)
	logger.Debug("fetching job posting", zap.String("url", urlStr), zap.String("platform", string(platform)))

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	contentSelectors := PlatformContentSelectors(platform)
	noiseSelectors := PlatformNoiseSelectors(platform)

	text, err := ExtractMainText(result.HTML, contentSelectors, noiseSelectors...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	logger.Debug("extracted posting text", zap.Int("chars", len(text)))

	posting := &Posting{URL: urlStr, Platform: platform, Text: text}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		render := opts.Render
		if render == nil {
			render = func(ctx context.Context, url string) (string, error) {
				return WithBrowser(ctx, url, opts.BrowserTimeout, logger)
			}
		}

		logger.Info("content too short, rendering with browser",
			zap.Int("chars", len(text)),
			zap.Int("min_chars", MinContentLength),
		)
		if html, err := render(ctx, urlStr); err != nil {
			logger.Warn("browser rendering failed, using HTTP content", zap.Error(err))
		} else if rendered, err := ExtractMainText(html, contentSelectors, noiseSelectors...); err != nil {
			logger.Warn("browser content extraction failed", zap.Error(err))
		} else if len(rendered) > len(text) {
			posting.Text = rendered
			posting.Rendered = true
		}
	}

	if strings.TrimSpace(posting.Text) == "" {
		return nil, &Error{URL: urlStr, Message: "no text content found"}
	}
	return posting, nil
}
