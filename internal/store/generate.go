package store

import (
	"fmt"
	"math/rand"

	"interim-engine/internal/domain"
)

// Vocabulary for the generated part of the corpus. Locations stay inside
// Paris so that city filters behave like the live site does for the 75
// department.
var (
	genLocations = []string{
		"Paris - 75", "Paris 1er - 75", "Paris 2e - 75", "Paris 3e - 75",
		"Paris 4e - 75", "Paris 5e - 75", "Paris 6e - 75", "Paris 7e - 75",
		"Paris 8e - 75", "Paris 9e - 75", "Paris 10e - 75", "Paris 11e - 75",
		"Paris 12e - 75", "Paris 13e - 75", "Paris 14e - 75", "Paris 15e - 75",
		"Paris 16e - 75", "Paris 17e - 75", "Paris 18e - 75", "Paris 19e - 75",
		"Paris 20e - 75",
	}

	genCompanies = []string{
		"Adecco", "Manpower", "Randstad", "Synergie", "Proman", "Crit",
		"Supplay", "Adequat", "Expectra", "Slash Intérim", "Mistertemp'",
		"Intérim Nation", "Eurofirms France", "Temporis", "Start People",
		"Actual", "Triangle Intérim", "Partnaire", "Aquila RH", "Menway Emploi",
		"Akkodis Talent", "GIF Emploi", "Vitalis Médical", "Domino RH",
	}

	genRoles = []string{
		"Développeur Web", "Développeur Full Stack", "Technicien de Maintenance",
		"Assistant Administratif", "Comptable", "Assistant Comptable",
		"Chargé de Recrutement", "Manutentionnaire", "Cariste", "Préparateur de Commandes",
		"Agent de Production", "Électricien", "Plombier", "Chef de Chantier",
		"Conducteur de Travaux", "Infirmier", "Aide-Soignant", "Secrétaire Médicale",
		"Vendeur", "Hôte de Caisse", "Serveur", "Cuisinier", "Commis de Cuisine",
		"Agent de Sécurité", "Agent d'Entretien", "Chauffeur Livreur",
		"Conducteur SPL", "Gestionnaire de Paie", "Assistant Commercial",
		"Téléconseiller", "Agent Logistique", "Magasinier", "Soudeur",
		"Mécanicien", "Peintre en Bâtiment", "Menuisier",
	}

	genQualifiers = []string{
		"", "Junior", "Confirmé", "Sénior", "Expérimenté", "Polyvalent",
	}

	genDurations = []string{
		"1 jour", "3 jours", "1 semaine", "2 semaines", "1 mois", "2 mois",
		"3 mois", "4 mois", "6 mois", "9 mois", "12 mois", "18 mois",
	}

	genPostedAt = []string{
		"il y a 1 heure", "il y a 2 heures", "il y a 3 heures", "il y a 5 heures",
		"il y a 8 heures", "il y a 12 heures", "il y a 23 heures",
		"aujourd'hui", "hier",
		"il y a 1 jour", "il y a 2 jours", "il y a 3 jours", "il y a 5 jours",
		"il y a 1 semaine", "il y a 2 semaines", "il y a 3 semaines",
	}

	genSalaries = []string{
		"11,88 € / heure", "12,50 € / heure", "13 € / heure", "14,20 € / heure",
		"15 € / heure", "1 900 - 2 100 € / mois", "2 000 - 2 300 € / mois",
		"2 200 - 2 600 € / mois", "2 500 - 2 900 € / mois",
		"28 000 - 32 000 € / an", "32 000 - 38 000 € / an",
		"350 - 400 € / jour", "450 - 550 € / jour",
	}
)

// Generate builds count synthetic offers ("hw-gen-N") in insertion order.
// The same rng seed always yields the same corpus, which keeps detail ids
// stable between restarts of a given build.
func Generate(count int, rng *rand.Rand) []domain.JobOffer {
	offers := make([]domain.JobOffer, 0, count)
	for i := 0; i < count; i++ {
		role := genRoles[rng.Intn(len(genRoles))]
		qualifier := genQualifiers[rng.Intn(len(genQualifiers))]
		title := role
		if qualifier != "" {
			title += " " + qualifier
		}
		title += " H/F"

		company := genCompanies[rng.Intn(len(genCompanies))]
		location := genLocations[rng.Intn(len(genLocations))]
		refID := 42000000 + rng.Intn(400000)

		offers = append(offers, domain.JobOffer{
			ID:       fmt.Sprintf("hw-gen-%d", i+1),
			Title:    title,
			Company:  company,
			Location: location,
			Description: fmt.Sprintf(
				"%s recherche un(e) %s pour une mission d'intérim à %s. Poste à pourvoir immédiatement. Une première expérience sur un poste similaire est appréciée.",
				company, title, location),
			Salary:       genSalaries[rng.Intn(len(genSalaries))],
			ContractType: domain.ContractInterim,
			Duration:     genDurations[rng.Intn(len(genDurations))],
			URL:          fmt.Sprintf("https://www.hellowork.com/fr-fr/emplois/%d.html", refID),
			PostedAt:     genPostedAt[rng.Intn(len(genPostedAt))],
		})
	}
	return offers
}
