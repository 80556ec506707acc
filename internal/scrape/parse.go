package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"interim-engine/internal/domain"
	"interim-engine/internal/scrape/util"
)

const sourceOrigin = "https://www.hellowork.com"

// A strategy extracts one field from a job card. Strategies for a field are
// tried in order until one yields a non-empty value; the upstream markup
// mixes stable data-testid hooks with tailwind class soup, so every field
// gets at least one heuristic fallback.
type strategy func(card *goquery.Selection) string

func sel(selector string) strategy {
	return func(card *goquery.Selection) string {
		return util.CleanText(card.Find(selector).First().Text())
	}
}

func attr(selector, name string) strategy {
	return func(card *goquery.Selection) string {
		v, _ := card.Find(selector).First().Attr(name)
		return strings.TrimSpace(v)
	}
}

// textShape scans the selector's matches for the first whose text satisfies
// match. cascadia has no :contains(), so shape checks happen in Go.
func textShape(selector string, match func(string) bool) strategy {
	return func(card *goquery.Selection) string {
		var out string
		card.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			t := util.CleanText(s.Text())
			if t != "" && match(t) {
				out = t
				return false
			}
			return true
		})
		return out
	}
}

func extract(card *goquery.Selection, strategies ...strategy) string {
	for _, st := range strategies {
		if v := st(card); v != "" {
			return v
		}
	}
	return ""
}

var (
	titleStrategies = []strategy{
		sel(`h3[data-testid="job-title"]`),
		sel(`h3.tw-text-lg`),
	}
	companyStrategies = []strategy{
		sel(`[data-testid="company-name"]`),
		sel(`a.tw-text-hw-primaryDarker`),
	}
	locationStrategies = []strategy{
		sel(`[data-testid="job-location"]`),
		textShape(`span.tw-text-hw-neutral-700`, func(t string) bool { return strings.Contains(t, "-") }),
	}
	descriptionStrategies = []strategy{
		sel(`[data-testid="job-description"]`),
		sel(`div.tw-text-hw-neutral-800`),
	}
	salaryStrategies = []strategy{
		textShape(`span`, func(t string) bool { return strings.Contains(t, "€") }),
	}
	durationStrategies = []strategy{
		textShape(`span.tw-ml-auto, [data-testid="job-contract-type"]`, func(t string) bool {
			return strings.Contains(t, "jour") || strings.Contains(t, "mois") || strings.Contains(t, "semaine")
		}),
	}
	postedAtStrategies = []strategy{
		sel(`[data-testid="job-date"]`),
		sel(`span.tw-text-hw-neutral-500`),
	}
	linkStrategies = []strategy{
		attr(`a[href^="/fr-fr/emplois/"]`, "href"),
	}
	logoStrategies = []strategy{
		attr(`img`, "src"),
	}
)

// ParseListing turns one listing page into offers. base is the source origin
// relative detail links resolve against; city is the queried city, used as
// the location fallback. A page with zero cards is a normal outcome (it
// tells the driver the listing is exhausted), so the only error here is
// unreadable markup.
//
// hasNext reports whether the page advertises a further page.
func ParseListing(markup, base string, page int, city string) (offers []domain.JobOffer, hasNext bool, err error) {
	if base == "" {
		base = sourceOrigin
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, false, fmt.Errorf("parse listing: %w", err)
	}

	doc.Find(`article[data-testid="job-card"]`).Each(func(i int, card *goquery.Selection) {
		title := extract(card, titleStrategies...)
		if title == "" {
			// A card without a title is navigation chrome, not an offer.
			return
		}

		offerPath := extract(card, linkStrategies...)
		id := fmt.Sprintf("hw-page%d-%d", page, i)
		if s := util.OfferSlug(offerPath); s != "" {
			id = fmt.Sprintf("hw-page%d-%s", page, s)
		}

		company := extract(card, companyStrategies...)
		if company == "" {
			company = domain.CompanyUnknown
		}
		location := extract(card, locationStrategies...)
		if location == "" {
			location = city
		}
		description := extract(card, descriptionStrategies...)
		if description == "" {
			description = domain.DescriptionUnknown
		}

		offers = append(offers, domain.JobOffer{
			ID:           id,
			Title:        title,
			Company:      company,
			Location:     location,
			Description:  description,
			Salary:       extract(card, salaryStrategies...),
			ContractType: domain.ContractInterim,
			Duration:     extract(card, durationStrategies...),
			URL:          util.AbsoluteURL(base, offerPath),
			PostedAt:     extract(card, postedAtStrategies...),
			LogoURL:      extract(card, logoStrategies...),
		})
	})

	hasNext = doc.Find(`.tw-pagination-next, [aria-label="Next page"]`).Length() > 0
	return offers, hasNext, nil
}

// DetailDescription pulls the long-form description out of a detail page.
// Empty means the page did not expose one.
func DetailDescription(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}
	return util.CleanText(doc.Find(".tw-prose").Text())
}
