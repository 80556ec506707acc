package scrape

import (
	"fmt"
	"math/rand"
	"strings"

	"interim-engine/internal/domain"
)

// BackupPrefix tags fallback records so callers and tests can tell static
// data from live data without a separate flag.
const (
	BackupPrefix      = "hw-backup-"
	backupTitleMarker = "[DONNÉE DE SECOURS] "
)

func backupLocation(city string) string {
	if city == "" {
		return "Paris - 75"
	}
	return city + " - 75"
}

// Backup returns the fixed fallback set, optionally narrowed by a
// case-insensitive title substring. The records mirror real listings so a
// degraded search still looks plausible.
func Backup(city, jobTitle string) []domain.JobOffer {
	loc := backupLocation(city)

	offers := []domain.JobOffer{
		{
			ID:           BackupPrefix + "1",
			Title:        backupTitleMarker + "Inventoriste H/F",
			Company:      "Eurofirms France",
			Location:     loc,
			Description:  "Rejoignez Eurofirms France et profitez d'un accompagnement d'excellence. Poste pour personnes en situation de handicap accepté.",
			Salary:       "11,88 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "1 jour",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41064210.html",
			PostedAt:     "il y a 3 heures",
		},
		{
			ID:           BackupPrefix + "2",
			Title:        backupTitleMarker + "Chef de Chantier H/F",
			Company:      "Bref Service",
			Location:     loc,
			Description:  "Une bonne connaissance des règles et dispositifs de sécurité. Rémunération à définir en fonction du profil.",
			Salary:       "2 000 - 3 300 € / mois",
			ContractType: domain.ContractInterim,
			Duration:     "3 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41057542.html",
			PostedAt:     "il y a 2 heures",
		},
		{
			ID:           BackupPrefix + "3",
			Title:        backupTitleMarker + "Coordinateur Import H/F",
			Company:      "Supplay",
			Location:     loc,
			Description:  "Sens du détail - Rigueur - Force de proposition - Capacité d'écoute et d'analyse",
			Salary:       "30 000 € / an",
			ContractType: domain.ContractInterim,
			Duration:     "1 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41062984.html",
			PostedAt:     "il y a 3 heures",
		},
		{
			ID:           BackupPrefix + "4",
			Title:        backupTitleMarker + "Assistant Comptable Copropriété H/F",
			Company:      "Intérim Nation",
			Location:     loc,
			Description:  "Expérience de 1 à 2 ans au sein d'un cabinet immobilier exigée. La maîtrise du logiciel Even est un plus.",
			Salary:       "25 000 - 30 000 € / an",
			ContractType: domain.ContractInterim,
			URL:          "https://www.hellowork.com/fr-fr/emplois/41063712.html",
			PostedAt:     "il y a 2 heures",
		},
		{
			ID:           BackupPrefix + "5",
			Title:        backupTitleMarker + "Développeur Web Full Stack H/F",
			Company:      "IT Interim",
			Location:     loc,
			Description:  "Vous maîtrisez HTML, CSS, JavaScript, React, Node.js. Vous êtes autonome et rigoureux, capable de travailler en équipe sur des projets web complexes.",
			Salary:       "450 - 500 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "6 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41058399.html",
			PostedAt:     "il y a 1 jour",
		},
		{
			ID:           BackupPrefix + "6",
			Title:        backupTitleMarker + "Infirmier(e) H/F",
			Company:      "Medical Interim",
			Location:     loc,
			Description:  "Diplôme d'État d'infirmier exigé. Expérience en EHPAD appréciée. Vous êtes disponible pour des remplacements ponctuels ou missions de longue durée.",
			Salary:       "22 - 25 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "Mission régulière",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41059874.html",
			PostedAt:     "il y a 5 heures",
		},
		{
			ID:           BackupPrefix + "7",
			Title:        backupTitleMarker + "Manutentionnaire H/F",
			Company:      "Adequat",
			Location:     loc,
			Description:  "Chargement/déchargement de marchandises, préparation de commandes. Première expérience en logistique souhaitée. Port de charges lourdes.",
			Salary:       "11,52 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "1 semaine",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41061423.html",
			PostedAt:     "il y a 6 heures",
		},
		{
			ID:           BackupPrefix + "8",
			Title:        backupTitleMarker + "Assistant Commercial H/F",
			Company:      "Manpower",
			Location:     loc,
			Description:  "Gestion des appels entrants, suivi administratif des commandes, relation clients. Vous êtes organisé(e) et possédez d'excellentes qualités relationnelles.",
			Salary:       "13 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "3 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41060145.html",
			PostedAt:     "il y a 1 jour",
		},
		{
			ID:           BackupPrefix + "9",
			Title:        backupTitleMarker + "Comptable Général H/F",
			Company:      "Expectra",
			Location:     loc,
			Description:  "Saisie comptable, lettrage, rapprochements bancaires, déclarations TVA. Vous justifiez d'une expérience significative en comptabilité générale.",
			Salary:       "18 - 20 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "4 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41062178.html",
			PostedAt:     "il y a 3 heures",
		},
		{
			ID:           BackupPrefix + "10",
			Title:        backupTitleMarker + "Technicien de Maintenance H/F",
			Company:      "Randstad",
			Location:     loc,
			Description:  "Maintenance préventive et curative des installations industrielles. Formation technique (électromécanique, électrotechnique) exigée.",
			Salary:       "14 - 16 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "2 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41063001.html",
			PostedAt:     "il y a 4 heures",
		},
		{
			ID:           BackupPrefix + "11",
			Title:        backupTitleMarker + "Conducteur d'Engins H/F",
			Company:      "Proman",
			Location:     loc,
			Description:  "Conduite d'engins de chantier (pelle, chargeuse, etc.). CACES R482 exigé. Expérience significative sur chantier BTP.",
			Salary:       "15 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "1 mois renouvelable",
			URL:          "https://www.hellowork.com/fr-fr/emplois/41061789.html",
			PostedAt:     "il y a 2 jours",
		},
	}

	return FilterByTitle(offers, jobTitle)
}

// Generator vocabularies; synthetic offers are cartesian draws over these.
var (
	genCities     = []string{"Paris", "Lyon", "Marseille", "Bordeaux", "Lille", "Toulouse", "Nantes", "Strasbourg"}
	genCompanies  = []string{"Adecco", "Manpower", "Randstad", "Synergie", "Proman", "Expectra", "Page Personnel", "Kelly Services"}
	genRoles      = []string{"Développeur", "Commercial", "Assistant", "Comptable", "Technicien", "Conducteur", "Agent", "Manutentionnaire"}
	genQualifiers = []string{"Web", "Administratif", "Commercial", "Junior", "Senior", "Expérimenté", "de Maintenance", "Logistique"}
	genDurations  = []string{"1 semaine", "2 semaines", "1 mois", "2 mois", "3 mois", "6 mois"}
	genSalaries   = []string{"11,50 € / heure", "12,75 € / heure", "14 € / heure", "2000 € / mois", "2200 € / mois", "2500 € / mois"}
	genPostedAt   = []string{"il y a 2 heures", "il y a 3 heures", "il y a 1 jour", "il y a 2 jours", "il y a 1 semaine", "il y a 2 semaines"}
)

// Synthetic builds count plausible offers. Pass a seeded rng for
// reproducible output; tests rely on that.
func Synthetic(city, jobTitle string, count int, rng *rand.Rand) []domain.JobOffer {
	pick := func(v []string) string { return v[rng.Intn(len(v))] }

	selectedCity := city
	if selectedCity == "" {
		selectedCity = pick(genCities)
	}

	offers := make([]domain.JobOffer, 0, count)
	for i := 0; i < count; i++ {
		title := fmt.Sprintf("%s %s H/F", pick(genRoles), pick(genQualifiers))
		if jobTitle != "" {
			title = fmt.Sprintf("%s %s H/F", jobTitle, pick(genQualifiers))
		}
		duration := pick(genDurations)
		id := fmt.Sprintf("hw-synth-%d", i+1)

		offers = append(offers, domain.JobOffer{
			ID:           id,
			Title:        title,
			Company:      pick(genCompanies),
			Location:     fmt.Sprintf("%s - %d", selectedCity, rng.Intn(95)+1),
			Description:  fmt.Sprintf("Nous recherchons un(e) %s pour une mission de %s. Poste à pourvoir immédiatement. Expérience souhaitée.", strings.ToLower(title), strings.ToLower(duration)),
			Salary:       pick(genSalaries),
			ContractType: domain.ContractInterim,
			Duration:     duration,
			URL:          "https://www.example.com/offre/" + id,
			PostedAt:     pick(genPostedAt),
		})
	}
	return offers
}
