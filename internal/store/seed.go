package store

import "interim-engine/internal/domain"

// SeedOffers is the hand-authored part of the corpus, transcribed from real
// Paris listings. Ids are stable ("hw-real-N") so detail links keep working
// across restarts.
func SeedOffers() []domain.JobOffer {
	return []domain.JobOffer{
		{
			ID:           "hw-real-1",
			Title:        "Facilites Manager Sénior H/F",
			Company:      "Avenir RH",
			Location:     "Paris - 75",
			Description:  "Avenir RH recherche un(e) Facilites Manager Sénior pour l'un de ses clients. Vous serez responsable de la gestion des installations et des services généraux pour assurer le bon fonctionnement des locaux et des équipements. Vous superviserez les prestataires externes et coordonnerez les projets d'aménagement.",
			Salary:       "42 000 - 46 000 € / an",
			ContractType: domain.ContractInterim,
			Duration:     "2 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42310521.html",
			PostedAt:     "il y a 23 heures",
		},
		{
			ID:           "hw-real-2",
			Title:        "Éducateur Spécialisé H/F",
			Company:      "Slash Intérim",
			Location:     "Paris 1er - 75",
			Description:  "Slash Intérim recrute un(e) Éducateur Spécialisé pour l'un de ses clients du secteur social. Vous serez en charge de l'accompagnement éducatif et social des personnes en difficulté. Vous élaborerez et mettrez en œuvre des projets éducatifs personnalisés.",
			Salary:       "16 € / heure",
			ContractType: domain.ContractInterim,
			URL:          "https://www.hellowork.com/fr-fr/emplois/42311045.html",
			PostedAt:     "il y a 11 heures",
		},
		{
			ID:           "hw-real-3",
			Title:        "Monteur CVC sur Site H/F",
			Company:      "Jacem",
			Location:     "Paris 15e - 75",
			Description:  "Jacem recherche un(e) Monteur CVC (Chauffage, Ventilation, Climatisation) sur site. Vous serez chargé(e) de l'installation et du raccordement des équipements de chauffage, ventilation et climatisation selon les plans et schémas fournis. Expérience en CVC requise.",
			Salary:       "2 300 - 2 700 € / mois",
			ContractType: domain.ContractInterim,
			Duration:     "4 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42309875.html",
			PostedAt:     "il y a 1 jour",
		},
		{
			ID:           "hw-real-4",
			Title:        "Conducteur SPL en Citerne Pulve H/F",
			Company:      "GT Solutions emploi",
			Location:     "Paris - 75",
			Description:  "GT Solutions emploi recherche un(e) Conducteur SPL en Citerne Pulvérulents. Vous transporterez des matières pulvérulentes en citerne sur semi-remorque. Permis CE et FIMO/FCO à jour exigés. Expérience en conduite de citerne souhaitée.",
			ContractType: domain.ContractInterim,
			Duration:     "3 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42309772.html",
			PostedAt:     "il y a 1 jour",
		},
		{
			ID:           "hw-real-5",
			Title:        "Chef d'Équipe Plombier Chauffagiste H/F",
			Company:      "Jacem",
			Location:     "Paris - 75",
			Description:  "Jacem recherche un(e) Chef d'Équipe Plombier Chauffagiste pour coordonner et superviser une équipe de techniciens sur des chantiers de plomberie et chauffage. Vous veillerez au respect des délais, des normes de qualité et de sécurité. Expérience significative en plomberie-chauffage exigée.",
			ContractType: domain.ContractInterim,
			Duration:     "4 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42308652.html",
			PostedAt:     "il y a 2 jours",
		},
		{
			ID:           "hw-real-6",
			Title:        "Conseiller Beauté H/F",
			Company:      "Pharmanimation",
			Location:     "Paris - 75",
			Description:  "Pharmanimation recherche un(e) Conseiller Beauté pour animer un stand dans une pharmacie parisienne. Vous conseillerez les clients sur les produits cosmétiques et réaliserez des ventes. Connaissance des produits de dermo-cosmétique et expérience en conseil beauté souhaitées.",
			Salary:       "12 € / heure",
			ContractType: domain.ContractInterim,
			Duration:     "17 jours",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42308548.html",
			PostedAt:     "il y a 2 jours",
		},
		{
			ID:           "hw-real-7",
			Title:        "Technicien Informatique H/F",
			Company:      "Akkodis Talent",
			Location:     "Paris 1er - 75",
			Description:  "Akkodis Talent recherche un(e) Technicien Informatique pour l'un de ses clients. Vous assurerez le support technique auprès des utilisateurs, diagnostiquerez et résoudrez les problèmes informatiques. Connaissances en environnement Windows et réseaux requises.",
			Salary:       "25 000 - 26 000 € / an",
			ContractType: domain.ContractInterim,
			URL:          "https://www.hellowork.com/fr-fr/emplois/42311623.html",
			PostedAt:     "il y a 2 heures",
		},
		{
			ID:           "hw-real-8",
			Title:        "Technicien de Maintenance Industrielle H/F",
			Company:      "Mistertemp'",
			Location:     "Paris 13e - 75",
			Description:  "Mistertemp' recherche un(e) Technicien de Maintenance Industrielle pour assurer la maintenance préventive et curative d'équipements industriels. Vous interviendrez sur des installations mécaniques, électriques et automatisées. Compétences en électrotechnique, mécanique et pneumatique requises.",
			Salary:       "2 400 - 3 300 € / mois",
			ContractType: domain.ContractInterim,
			Duration:     "354 jours",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42310987.html",
			PostedAt:     "il y a 6 heures",
		},
		{
			ID:           "hw-real-9",
			Title:        "Développeur React H/F",
			Company:      "Akkodis IT",
			Location:     "Paris 8e - 75",
			Description:  "Akkodis IT recherche un(e) Développeur React pour développer des applications web modernes. Vous maîtrisez React, TypeScript et avez une bonne connaissance des API RESTful. Vous travaillerez sur des projets complexes dans un environnement agile.",
			Salary:       "500 - 550 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "6 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42310154.html",
			PostedAt:     "il y a 12 heures",
		},
		{
			ID:           "hw-real-10",
			Title:        "Ingénieur DevOps H/F",
			Company:      "Tech Solutions",
			Location:     "Paris 12e - 75",
			Description:  "Tech Solutions recherche un(e) Ingénieur DevOps pour renforcer son équipe. Vous serez en charge de l'infrastructure cloud et de l'automatisation des déploiements. Expérience avec AWS, Kubernetes et Terraform requise.",
			Salary:       "45 000 - 55 000 € / an",
			ContractType: domain.ContractInterim,
			Duration:     "10 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42307721.html",
			PostedAt:     "il y a 2 jours",
		},
		{
			ID:           "hw-real-11",
			Title:        "Data Scientist H/F",
			Company:      "Data Experts",
			Location:     "Paris 9e - 75",
			Description:  "Data Experts recherche un(e) Data Scientist pour analyser des volumes importants de données et développer des modèles prédictifs. Connaissance approfondie de Python, R et des algorithmes de machine learning nécessaire.",
			Salary:       "500 - 600 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "4 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42308932.html",
			PostedAt:     "il y a 1 jour",
		},
		{
			ID:           "hw-real-12",
			Title:        "UX/UI Designer H/F",
			Company:      "Creative Studio",
			Location:     "Paris 10e - 75",
			Description:  "Creative Studio recherche un(e) UX/UI Designer pour concevoir des interfaces utilisateur intuitives et esthétiques. Vous maîtrisez Figma, Sketch et avez une bonne compréhension des principes d'accessibilité.",
			Salary:       "400 - 450 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "3 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42310033.html",
			PostedAt:     "il y a 14 heures",
		},
		{
			ID:           "hw-real-13",
			Title:        "Consultant SAP H/F",
			Company:      "ERP Solutions",
			Location:     "Paris - 75",
			Description:  "ERP Solutions recherche un(e) Consultant SAP pour accompagner ses clients dans l'implémentation et l'optimisation de leurs solutions SAP. Expertise dans au moins un module SAP (FI/CO, SD, MM, PP) et expérience projet requises.",
			Salary:       "550 - 650 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "9 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42307543.html",
			PostedAt:     "il y a 3 jours",
		},
		{
			ID:           "hw-real-14",
			Title:        "Développeur Java Spring H/F",
			Company:      "Software Expert",
			Location:     "Paris 17e - 75",
			Description:  "Software Expert recherche un(e) Développeur Java Spring pour rejoindre une équipe de développement back-end. Maîtrise de Java, Spring Boot, et des bases de données SQL requise. Expérience en développement d'API RESTful appréciée.",
			Salary:       "450 - 500 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "6 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42310456.html",
			PostedAt:     "il y a 8 heures",
		},
		{
			ID:           "hw-real-15",
			Title:        "Administrateur Base de Données H/F",
			Company:      "DataTech",
			Location:     "Paris 8e - 75",
			Description:  "DataTech recherche un(e) Administrateur Base de Données pour gérer et optimiser les bases de données de l'entreprise. Expertise en Oracle, PostgreSQL ou SQL Server requise. Vous serez responsable des sauvegardes, de la performance et de la sécurité des données.",
			Salary:       "40 000 - 45 000 € / an",
			ContractType: domain.ContractInterim,
			Duration:     "4 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42309231.html",
			PostedAt:     "il y a 1 jour",
		},
		{
			ID:           "hw-real-16",
			Title:        "Product Owner H/F",
			Company:      "Digital Products",
			Location:     "Paris 9e - 75",
			Description:  "Digital Products recherche un(e) Product Owner pour définir et prioriser les fonctionnalités des produits numériques. Vous travaillerez en étroite collaboration avec les équipes de développement et les parties prenantes. Expérience en méthodologie Agile/Scrum indispensable.",
			Salary:       "500 - 550 € / jour",
			ContractType: domain.ContractInterim,
			Duration:     "6 mois",
			URL:          "https://www.hellowork.com/fr-fr/emplois/42310123.html",
			PostedAt:     "il y a 12 heures",
		},
	}
}
