package scrape

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interim-engine/internal/domain"
)

func TestBackupIsTaggedAndComplete(t *testing.T) {
	offers := Backup("", "")
	require.NotEmpty(t, offers)

	seen := make(map[string]struct{})
	for _, o := range offers {
		assert.True(t, strings.HasPrefix(o.ID, BackupPrefix), o.ID)
		assert.Contains(t, o.Title, "[DONNÉE DE SECOURS]")
		assert.NotEmpty(t, o.Company)
		assert.Equal(t, "Paris - 75", o.Location)
		assert.Equal(t, domain.ContractInterim, o.ContractType)

		_, dup := seen[o.ID]
		assert.False(t, dup, "duplicate id %s", o.ID)
		seen[o.ID] = struct{}{}
	}
}

func TestBackupUsesQueriedCity(t *testing.T) {
	for _, o := range Backup("Lyon", "") {
		assert.Equal(t, "Lyon - 75", o.Location)
	}
}

func TestBackupTitleFilter(t *testing.T) {
	offers := Backup("", "développeur")
	require.Len(t, offers, 1)
	assert.Contains(t, offers[0].Title, "Développeur Web Full Stack")

	assert.Empty(t, Backup("", "astronaute"))
}

func TestSyntheticDeterministicWithSeed(t *testing.T) {
	a := Synthetic("Paris", "", 25, rand.New(rand.NewSource(42)))
	b := Synthetic("Paris", "", 25, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)

	c := Synthetic("Paris", "", 25, rand.New(rand.NewSource(7)))
	assert.NotEqual(t, a, c)
}

func TestSyntheticShape(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	offers := Synthetic("Lille", "Cariste", 10, rng)
	require.Len(t, offers, 10)

	for _, o := range offers {
		assert.True(t, strings.HasPrefix(o.Title, "Cariste "))
		assert.True(t, strings.HasSuffix(o.Title, "H/F"))
		assert.True(t, strings.HasPrefix(o.Location, "Lille - "))
		assert.Equal(t, domain.ContractInterim, o.ContractType)
		assert.NotEmpty(t, o.Salary)
		assert.NotEmpty(t, o.PostedAt)
	}
}
