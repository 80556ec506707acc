package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interim-engine/internal/domain"
)

const listingFixture = `
<html><body>
<article data-testid="job-card">
  <img src="https://cdn.hellowork.com/logos/eurofirms.png"/>
  <h3 data-testid="job-title">Inventoriste H/F</h3>
  <span data-testid="company-name">Eurofirms France</span>
  <span data-testid="job-location">Paris - 75</span>
  <div data-testid="job-description">Comptage et saisie des stocks en magasin.</div>
  <span>11,88 € / heure</span>
  <span data-testid="job-contract-type">1 jour</span>
  <span data-testid="job-date">il y a 3 heures</span>
  <a href="/fr-fr/emplois/41064210.html">Voir l'offre</a>
</article>
<article data-testid="job-card">
  <h3 class="tw-text-lg">Chef de Chantier H/F</h3>
  <a class="tw-text-hw-primaryDarker" href="#">Bref Service</a>
  <span class="tw-text-hw-neutral-700">Paris 12e - 75</span>
  <div class="tw-text-hw-neutral-800">Encadrement d'une équipe gros oeuvre.</div>
  <span class="tw-ml-auto">3 mois</span>
  <span class="tw-text-hw-neutral-500">il y a 2 jours</span>
  <a href="/fr-fr/emplois/41057542.html">Voir l'offre</a>
</article>
<article data-testid="job-card">
  <span data-testid="company-name">Entreprise Sans Titre</span>
  <div data-testid="job-description">Carte sans titre, à ignorer.</div>
</article>
<article data-testid="job-card">
  <h3 data-testid="job-title">Cariste H/F</h3>
</article>
<nav><button class="tw-pagination-next">Suivant</button></nav>
</body></html>`

func TestParseListing(t *testing.T) {
	offers, hasNext, err := ParseListing(listingFixture, "", 1, "Paris")
	require.NoError(t, err)
	assert.True(t, hasNext)
	require.Len(t, offers, 3) // titleless card dropped

	first := offers[0]
	assert.Equal(t, "hw-page1-41064210", first.ID)
	assert.Equal(t, "Inventoriste H/F", first.Title)
	assert.Equal(t, "Eurofirms France", first.Company)
	assert.Equal(t, "Paris - 75", first.Location)
	assert.Equal(t, "Comptage et saisie des stocks en magasin.", first.Description)
	assert.Equal(t, "11,88 € / heure", first.Salary)
	assert.Equal(t, "1 jour", first.Duration)
	assert.Equal(t, "il y a 3 heures", first.PostedAt)
	assert.Equal(t, "https://www.hellowork.com/fr-fr/emplois/41064210.html", first.URL)
	assert.Equal(t, "https://cdn.hellowork.com/logos/eurofirms.png", first.LogoURL)
	assert.Equal(t, domain.ContractInterim, first.ContractType)
}

func TestParseListingFallbackSelectors(t *testing.T) {
	offers, _, err := ParseListing(listingFixture, "", 1, "Paris")
	require.NoError(t, err)

	second := offers[1]
	assert.Equal(t, "Chef de Chantier H/F", second.Title)
	assert.Equal(t, "Bref Service", second.Company)
	assert.Equal(t, "Paris 12e - 75", second.Location)
	assert.Equal(t, "Encadrement d'une équipe gros oeuvre.", second.Description)
	assert.Equal(t, "3 mois", second.Duration)
	assert.Equal(t, "il y a 2 jours", second.PostedAt)
	assert.Empty(t, second.Salary)
}

func TestParseListingBareCardGetsPlaceholders(t *testing.T) {
	offers, _, err := ParseListing(listingFixture, "", 2, "Lyon")
	require.NoError(t, err)

	bare := offers[2]
	assert.Equal(t, "Cariste H/F", bare.Title)
	assert.Equal(t, domain.CompanyUnknown, bare.Company)
	assert.Equal(t, "Lyon", bare.Location)
	assert.Equal(t, domain.DescriptionUnknown, bare.Description)
	assert.Equal(t, "hw-page2-3", bare.ID) // no link, falls back to card index

	for _, o := range offers {
		assert.NotEmpty(t, o.Title)
		assert.NotEmpty(t, o.Company)
	}
}

func TestParseListingEmptyPage(t *testing.T) {
	offers, hasNext, err := ParseListing(`<html><body><p>Aucune offre</p></body></html>`, "", 1, "Paris")
	require.NoError(t, err)
	assert.Empty(t, offers)
	assert.False(t, hasNext)
}

func TestDetailDescription(t *testing.T) {
	markup := `<html><body><div class="tw-prose">Description   complète
	de la mission.</div></body></html>`
	assert.Equal(t, "Description complète de la mission.", DetailDescription(markup))
	assert.Equal(t, "", DetailDescription(`<html><body></body></html>`))
}
