package search

import (
	"context"
	"log"
	"sort"

	"interim-engine/internal/domain"
	"interim-engine/internal/events"
	"interim-engine/internal/recency"
	"interim-engine/internal/scrape"
	"interim-engine/internal/store"
)

// allResults is the page size used when a caller wants every match.
const allResults = 10000

// Service answers job searches from the local corpus or, when configured
// live, from the listing walk. Searches never fail: any degraded path ends
// in the static fallback set.
type Service struct {
	store     *store.Store
	collector *scrape.Collector
	hub       *events.Hub
	live      bool
}

// New wires a service. collector and hub may be nil when live is false.
func New(st *store.Store, c *scrape.Collector, hub *events.Hub, live bool) *Service {
	return &Service{store: st, collector: c, hub: hub, live: live}
}

// SearchJobs returns every offer matching the city and title filters, newest
// first. Both filters are case-insensitive substrings; empty means no filter.
func (s *Service) SearchJobs(ctx context.Context, city, jobTitle string) []domain.JobOffer {
	var offers []domain.JobOffer

	if s.live && s.collector != nil {
		offers = s.collector.Collect(ctx, scrape.Query{City: city, Title: jobTitle})
		offers = scrape.FilterByTitle(offers, jobTitle)
	} else {
		var err error
		offers, _, err = s.store.SearchPage(ctx, city, jobTitle, 1, allResults)
		if err != nil {
			log.Printf("[search] corpus query failed, using fallback data: %v", err)
			offers = nil
		}
	}

	if len(offers) == 0 {
		offers = scrape.Backup(city, jobTitle)
		if s.hub != nil {
			s.hub.Publish(events.Progress(events.FallbackUsed, 0, len(offers),
				"utilisation des données de secours"))
		}
	}

	SortByFreshness(offers)
	return offers
}

// SearchJobsPaginated slices the full sorted result set. Pages are 1-based;
// out-of-range pages yield an empty slice and the unchanged total.
func (s *Service) SearchJobsPaginated(ctx context.Context, city, jobTitle string, page, pageSize int) ([]domain.JobOffer, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	all := s.SearchJobs(ctx, city, jobTitle)
	total := len(all)

	start := (page - 1) * pageSize
	if start >= total {
		return []domain.JobOffer{}, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total
}

// SortByFreshness orders offers newest first by their relative posting
// phrase. Offers without a posting date keep their position relative to each
// other and to anything they cannot be compared with.
func SortByFreshness(offers []domain.JobOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		a, b := offers[i].PostedAt, offers[j].PostedAt
		if a == "" || b == "" {
			return false
		}
		return recency.Score(a) < recency.Score(b)
	})
}
