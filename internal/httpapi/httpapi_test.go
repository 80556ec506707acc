package httpapi

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interim-engine/internal/domain"
	"interim-engine/internal/events"
	"interim-engine/internal/search"
	"interim-engine/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	ctx := context.Background()
	require.NoError(t, st.Insert(ctx, store.SeedOffers()))
	require.NoError(t, st.Insert(ctx, store.Generate(100, rand.New(rand.NewSource(3)))))

	mux := NewMux(Deps{
		Search: search.New(st, nil, nil, false),
		Store:  st,
		Hub:    events.NewHub(),
	})
	srv := httptest.NewServer(Chain(mux, RequestID, Recover))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if v != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}
	return resp
}

func TestJobsList(t *testing.T) {
	srv := newTestServer(t)

	var page jobsPage
	resp := getJSON(t, srv.URL+"/jobs?city=Paris&page=1&page_size=10", &page)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.LessOrEqual(t, len(page.Results), 10)
	assert.GreaterOrEqual(t, page.Total, len(page.Results))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
}

func TestJobsListTitleFilter(t *testing.T) {
	srv := newTestServer(t)

	var page jobsPage
	getJSON(t, srv.URL+"/jobs?city=Paris&title=d%C3%A9veloppeur&page_size=100", &page)
	require.NotEmpty(t, page.Results)
	for _, o := range page.Results {
		assert.Contains(t, o.Title, "veloppeur")
	}
}

func TestJobsDetail(t *testing.T) {
	srv := newTestServer(t)

	var offer domain.JobOffer
	resp := getJSON(t, srv.URL+"/jobs/hw-real-1", &offer)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hw-real-1", offer.ID)
	assert.Equal(t, "Facilites Manager Sénior H/F", offer.Title)
}

func TestJobsDetailNotFound(t *testing.T) {
	srv := newTestServer(t)

	var apiErr APIError
	resp := getJSON(t, srv.URL+"/jobs/does-not-exist", &apiErr)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", apiErr.Error.Code)
	assert.NotEmpty(t, apiErr.Error.RequestID)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]any
	resp := getJSON(t, srv.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.Greater(t, body["offers"], float64(0))
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/jobs", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
