package scraper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/vpricescan/vpricego/internal/config"
	"github.com/vpricescan/vpricego/internal/utils"
)

const (
	// maxScrapedRunes caps the page text so it fits an extraction prompt.
	maxScrapedRunes = 12000

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Fetcher grabs the visible text of a listing page with a headless browser,
// for ads the user pastes as a link instead of text.
type Fetcher struct {
	cfg   config.ScraperConfig
	retry *utils.RetryConfig
	run   func(ctx context.Context, actions ...chromedp.Action) error
}

// New creates a ready-to-use Fetcher.
func New(cfg config.ScraperConfig) *Fetcher {
	attempts := cfg.MaxRetries
	if attempts < 1 {
		attempts = 1
	}
	return &Fetcher{
		cfg: cfg,
		retry: &utils.RetryConfig{
			MaxAttempts: attempts,
			BaseDelay:   2 * time.Second,
		},
		run: chromedp.Run,
	}
}

// FetchText navigates to url and returns the page body text, whitespace
// collapsed and capped. Marketplaces that demand a login or block headless
// browsers surface here as a fetch error.
func (f *Fetcher) FetchText(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	var bodyText string
	err := f.retry.Do("listing page fetch", func() error {
		// Each attempt gets its own deadline; a shared one would leave
		// retries running against an already expired context.
		timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, f.cfg.Timeout)
		defer cancelTimeout()

		return f.run(timeoutCtx,
			chromedp.Navigate(url),
			chromedp.WaitReady("body", chromedp.ByQuery),
			chromedp.Text("body", &bodyText, chromedp.ByQuery),
		)
	})
	if err != nil {
		return "", fmt.Errorf("could not read listing page: %w", err)
	}

	clean := strings.TrimSpace(whitespaceRe.ReplaceAllString(bodyText, " "))
	r := []rune(clean)
	if len(r) > maxScrapedRunes {
		r = r[:maxScrapedRunes]
	}
	return string(r), nil
}
