package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interim-engine/internal/events"
)

func cardMarkup(id int, title, postedAt string) string {
	return fmt.Sprintf(`
<article data-testid="job-card">
  <h3 data-testid="job-title">%s</h3>
  <span data-testid="company-name">Adecco</span>
  <span data-testid="job-location">Paris - 75</span>
  <span data-testid="job-date">%s</span>
  <a href="/fr-fr/emplois/%d.html">Voir l'offre</a>
</article>`, title, postedAt, id)
}

func listingPage(hasNext bool, cards ...string) string {
	body := ""
	for _, c := range cards {
		body += c
	}
	if hasNext {
		body += `<button class="tw-pagination-next">Suivant</button>`
	}
	return "<html><body>" + body + "</body></html>"
}

func newTestCollector(baseURL string) *Collector {
	return NewCollector(NewFetcher(2*time.Second), nil, nil, nil, baseURL, 10)
}

func TestCollectWalksUntilLastPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			fmt.Fprint(w, listingPage(true,
				cardMarkup(100, "Développeur Web H/F", "il y a 2 heures"),
				cardMarkup(101, "Cariste H/F", "il y a 1 jour"),
			))
		case "2":
			fmt.Fprint(w, listingPage(true,
				cardMarkup(200, "Comptable H/F", "il y a 1 semaine"),
				cardMarkup(201, "Archiviste H/F", "il y a 6 mois"), // outside the window
			))
		default:
			fmt.Fprint(w, listingPage(false))
		}
	}))
	defer srv.Close()

	offers := newTestCollector(srv.URL).Collect(context.Background(), Query{City: "Paris"})

	require.Len(t, offers, 3)
	assert.Equal(t, "hw-page1-100", offers[0].ID)
	assert.Equal(t, "hw-page1-101", offers[1].ID)
	assert.Equal(t, "hw-page2-200", offers[2].ID)
	for _, o := range offers {
		assert.NotEmpty(t, o.Title)
		assert.NotEmpty(t, o.Company)
	}
}

func TestCollectStopsWithoutNextIndicator(t *testing.T) {
	var pages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		fmt.Fprint(w, listingPage(false, cardMarkup(1, "Agent Logistique H/F", "hier")))
	}))
	defer srv.Close()

	offers := newTestCollector(srv.URL).Collect(context.Background(), Query{City: "Paris"})

	assert.Len(t, offers, 1)
	assert.Equal(t, 1, pages)
}

func TestCollectKeepsPartialResultsOnFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "2" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, listingPage(true, cardMarkup(1, "Manutentionnaire H/F", "il y a 3 heures")))
	}))
	defer srv.Close()

	offers := newTestCollector(srv.URL).Collect(context.Background(), Query{City: "Paris"})

	require.Len(t, offers, 1)
	assert.Equal(t, "hw-page1-1", offers[0].ID)
}

func TestCollectHonorsPageCeiling(t *testing.T) {
	var pages int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pages++
		// Every page claims a next page; the ceiling has to stop the walk.
		fmt.Fprint(w, listingPage(true, cardMarkup(pages, fmt.Sprintf("Poste %d H/F", pages), "il y a 1 jour")))
	}))
	defer srv.Close()

	c := NewCollector(NewFetcher(2*time.Second), nil, nil, nil, srv.URL, 3)
	offers := c.Collect(context.Background(), Query{City: "Paris"})

	assert.Len(t, offers, 3)
	assert.Equal(t, 3, pages)
}

func TestCollectPublishesProgress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, listingPage(false, cardMarkup(1, "Vendeur H/F", "aujourd'hui")))
	}))
	defer srv.Close()

	hub := events.NewHub()
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	c := NewCollector(NewFetcher(2*time.Second), nil, nil, hub, srv.URL, 5)
	c.Collect(context.Background(), Query{City: "Paris"})

	var got []events.Event
	for len(ch) > 0 {
		got = append(got, <-ch)
	}
	require.Len(t, got, 2)
	assert.Equal(t, events.PageStarted, got[0].Type)
	assert.Equal(t, events.PageDone, got[1].Type)
	assert.Equal(t, 1, got[1].Offers)
}

func TestListingURL(t *testing.T) {
	assert.Equal(t, "https://www.hellowork.com/fr-fr/interim/ville_paris-75000.html",
		ListingURL("", "Paris", 1))
	assert.Equal(t, "https://www.hellowork.com/fr-fr/interim/ville_orleans-75000.html?page=3",
		ListingURL("", "Orléans", 3))
	assert.Equal(t, "https://www.hellowork.com/fr-fr/interim",
		ListingURL("", "", 1))
}

func TestFetcherStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewFetcher(2*time.Second).Page(context.Background(), srv.URL)
	require.Error(t, err)
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, http.StatusForbidden, fe.Status)
}

func TestFetcherSendsBrowserHeaders(t *testing.T) {
	var ua, lang string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		lang = r.Header.Get("Accept-Language")
		fmt.Fprint(w, "<html></html>")
	}))
	defer srv.Close()

	_, err := NewFetcher(2*time.Second).Page(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, ua, "Chrome/")
	assert.Contains(t, lang, "fr-FR")
}
