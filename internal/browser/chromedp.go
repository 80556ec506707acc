package browser

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// suppressScript clicks every element that looks like a popup close button.
// It runs once immediately and again after short delays to catch the
// job-alert modal, which mounts late.
const suppressScript = `
(function () {
  function closePopups() {
    var selectors = [
      'button[aria-label="Close"]',
      '.close-button',
      '.tw-absolute.tw-right-3',
      '[role="button"][class*="close"]',
    ];
    var n = 0;
    selectors.forEach(function (sel) {
      document.querySelectorAll(sel).forEach(function (el) {
        try { el.click(); n++; } catch (e) {}
      });
    });
    return n;
  }
  closePopups();
  setTimeout(closePopups, 1000);
  setTimeout(closePopups, 3000);
  return true;
})();
`

// Chrome runs a headless Chrome via chromedp. One Chrome instance serves
// one collection run; Initialize and Close bracket the run.
type Chrome struct {
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
}

var errNotInitialized = errors.New("browser: not initialized")

func NewChrome() *Chrome { return &Chrome{} }

func (c *Chrome) Initialize(ctx context.Context) error {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("lang", "fr-FR"),
		)...)

	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	headers := network.Headers{"Accept-Language": "fr-FR,fr;q=0.9,en;q=0.7"}
	if err := chromedp.Run(tabCtx,
		network.Enable(),
		network.SetExtraHTTPHeaders(headers),
	); err != nil {
		tabCancel()
		allocCancel()
		return err
	}

	c.allocCancel = allocCancel
	c.tabCtx = tabCtx
	c.tabCancel = tabCancel
	log.Printf("[browser] chrome ready")
	return nil
}

func (c *Chrome) Navigate(_ context.Context, url string) error {
	if c.tabCtx == nil {
		return errNotInitialized
	}
	// Tab lifetime is owned by Initialize/Close, not the caller's ctx.
	navCtx, cancel := context.WithTimeout(c.tabCtx, 15*time.Second)
	defer cancel()
	return chromedp.Run(navCtx, chromedp.Navigate(url))
}

func (c *Chrome) SuppressObstructions(_ context.Context) error {
	if c.tabCtx == nil {
		return errNotInitialized
	}
	runCtx, cancel := context.WithTimeout(c.tabCtx, 5*time.Second)
	defer cancel()

	var ok bool
	if err := chromedp.Run(runCtx, chromedp.Evaluate(suppressScript, &ok)); err != nil {
		return err
	}
	log.Printf("[browser] popup suppression script injected")
	return nil
}

func (c *Chrome) Close() error {
	if c.tabCancel != nil {
		c.tabCancel()
		c.tabCancel = nil
	}
	if c.allocCancel != nil {
		c.allocCancel()
		c.allocCancel = nil
	}
	c.tabCtx = nil
	return nil
}
