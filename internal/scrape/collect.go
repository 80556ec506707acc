package scrape

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"interim-engine/internal/browser"
	"interim-engine/internal/domain"
	"interim-engine/internal/events"
	"interim-engine/internal/recency"
	"interim-engine/internal/scrape/util"
)

const (
	defaultMaxPages = 20
	listingPath     = "/fr-fr/interim"
)

// Query names a listing walk. Title filtering happens after collection, so
// only the city shapes the URL.
type Query struct {
	City  string
	Title string
}

// Collector walks the paginated listing until it runs dry. It tolerates a
// lot: a failed page ends the walk with whatever was already collected, and
// the browser side channel may fail without consequence.
type Collector struct {
	fetcher  *Fetcher
	pacer    *util.Pacer
	auto     browser.Automation
	hub      *events.Hub
	baseURL  string
	maxPages int
}

func NewCollector(fetcher *Fetcher, pacer *util.Pacer, auto browser.Automation, hub *events.Hub, baseURL string, maxPages int) *Collector {
	if auto == nil {
		auto = browser.Noop{}
	}
	if baseURL == "" {
		baseURL = sourceOrigin
	}
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Collector{
		fetcher:  fetcher,
		pacer:    pacer,
		auto:     auto,
		hub:      hub,
		baseURL:  baseURL,
		maxPages: maxPages,
	}
}

// ListingURL builds the page URL for a city. Page 1 is the bare listing;
// later pages add ?page=N.
func ListingURL(base, city string, page int) string {
	if base == "" {
		base = sourceOrigin
	}
	u := base + listingPath
	if s := util.CitySlug(city); s != "" {
		u = fmt.Sprintf("%s/ville_%s-75000.html", u, s)
	}
	if page > 1 {
		u = fmt.Sprintf("%s?page=%d", u, page)
	}
	return u
}

// Collect fetches and parses pages until one yields zero offers, the markup
// stops advertising a next page, the ceiling is hit, or a fetch fails. It
// returns every in-window offer accumulated up to that point; it never
// returns an error.
func (c *Collector) Collect(ctx context.Context, q Query) []domain.JobOffer {
	startURL := ListingURL(c.baseURL, q.City, 1)

	// Popup suppression runs beside the fetch loop; its failure must never
	// abort a collection.
	var g errgroup.Group
	g.Go(func() error {
		if err := c.auto.Initialize(ctx); err != nil {
			log.Printf("[scrape] browser side channel unavailable: %v", err)
			return nil
		}
		if err := c.auto.Navigate(ctx, startURL); err == nil {
			_ = c.auto.SuppressObstructions(ctx)
		}
		return nil
	})
	defer func() {
		_ = g.Wait()
		_ = c.auto.Close()
	}()

	var out []domain.JobOffer
	seen := make(map[string]struct{})

	for page := 1; page <= c.maxPages; page++ {
		pageURL := ListingURL(c.baseURL, q.City, page)
		c.publish(events.Progress(events.PageStarted, page, 0,
			fmt.Sprintf("analyse de la page %d des offres d'intérim", page)))

		if c.pacer != nil {
			if err := c.pacer.WaitURL(ctx, pageURL); err != nil {
				log.Printf("[scrape] pacing interrupted on page %d: %v", page, err)
				break
			}
		}

		markup, err := c.fetcher.Page(ctx, pageURL)
		if err != nil {
			log.Printf("[scrape] page %d failed, keeping %d offers: %v", page, len(out), err)
			break
		}

		offers, hasNext, err := ParseListing(markup, c.baseURL, page, q.City)
		if err != nil {
			log.Printf("[scrape] page %d unparsable, keeping %d offers: %v", page, len(out), err)
			break
		}

		kept := 0
		for _, o := range offers {
			if !recency.WithinWindow(o.PostedAt) {
				continue
			}
			if _, dup := seen[o.ID]; dup {
				continue
			}
			seen[o.ID] = struct{}{}
			out = append(out, o)
			kept++
		}

		c.publish(events.Progress(events.PageDone, page, kept,
			fmt.Sprintf("page %d complétée avec %d offres", page, kept)))

		if len(offers) == 0 || !hasNext {
			break
		}
	}

	log.Printf("[scrape] collected %d offers for city=%q", len(out), q.City)
	return out
}

// FetchDetail grabs the raw markup of one offer's detail page.
func (c *Collector) FetchDetail(ctx context.Context, url string) (string, error) {
	if c.pacer != nil {
		if err := c.pacer.WaitURL(ctx, url); err != nil {
			return "", err
		}
	}
	return c.fetcher.Page(ctx, url)
}

func (c *Collector) publish(e events.Event) {
	if c.hub != nil {
		c.hub.Publish(e)
	}
}

// FilterByTitle keeps offers whose title contains needle, case-insensitively.
// An empty needle keeps everything.
func FilterByTitle(offers []domain.JobOffer, needle string) []domain.JobOffer {
	if needle == "" {
		return offers
	}
	n := strings.ToLower(needle)
	out := make([]domain.JobOffer, 0, len(offers))
	for _, o := range offers {
		if strings.Contains(strings.ToLower(o.Title), n) {
			out = append(out, o)
		}
	}
	return out
}
