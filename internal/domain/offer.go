package domain

// ContractInterim is the only contract category this engine handles.
// Every offer that leaves the pipeline carries it.
const ContractInterim = "Intérim"

// Placeholders used when a listing card could be parsed only partially.
const (
	CompanyUnknown     = "Entreprise non précisée"
	DescriptionUnknown = "Aucune description disponible"
)

// JobOffer is one normalized temporary-staffing posting. Offers are built
// once (by the parser, the generator, or the backup set) and never mutated
// afterwards.
type JobOffer struct {
	ID           string `json:"id"`
	Title        string `json:"title"` // may end with the "H/F" marker; callers strip it if needed
	Company      string `json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	Salary       string `json:"salary,omitempty"`
	ContractType string `json:"contractType"`
	Duration     string `json:"duration,omitempty"`
	URL          string `json:"url"`
	PostedAt     string `json:"postedAt,omitempty"` // relative phrase as shown upstream ("il y a 2 heures")
	LogoURL      string `json:"logoUrl,omitempty"`
}
