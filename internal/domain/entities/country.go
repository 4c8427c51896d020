// Package entities contains domain entities used across the application.
package entities

// Country is a single culture profile from the reference catalog.
// Countries are read-only once the catalog has been published.
type Country struct {
	ID              string    `json:"id"`              // unique slug, e.g. "japan"
	Name            string    `json:"name"`            // display name
	Region          string    `json:"region"`          // continent or region name
	Capital         string    `json:"capital"`         // capital city
	Language        string    `json:"language"`        // primary language
	Currency        string    `json:"currency"`        // currency name
	Population      string    `json:"population"`      // human readable population
	Flag            string    `json:"flag"`            // flag emoji
	Greeting        string    `json:"greeting"`        // common greeting in the primary language
	Description     string    `json:"description"`     // short summary
	TraditionalFood []string  `json:"traditionalFood"` // signature dishes, most famous first
	Holidays        []Holiday `json:"holidays"`        // named holidays, most famous first
	Clothing        Clothing  `json:"clothing"`        // traditional clothing
	Phrases         []Phrase  `json:"phrases"`         // useful phrases
	Customs         []string  `json:"customs"`         // etiquette and customs
	FunFacts        []string  `json:"funFacts"`        // trivia
}

// Holiday is a named celebration of a country.
type Holiday struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Clothing describes the traditional dress of a country.
type Clothing struct {
	Traditional string `json:"traditional"`
	Description string `json:"description"`
}

// Phrase is a phrase in the local language with its translation.
type Phrase struct {
	Phrase      string `json:"phrase"`
	Translation string `json:"translation"`
}

// SignatureFood returns the most famous traditional dish, if any.
func (c *Country) SignatureFood() (string, bool) {
	if len(c.TraditionalFood) == 0 || c.TraditionalFood[0] == "" {
		return "", false
	}
	return c.TraditionalFood[0], true
}

// SignatureHoliday returns the most famous holiday, if any.
func (c *Country) SignatureHoliday() (Holiday, bool) {
	if len(c.Holidays) == 0 || c.Holidays[0].Name == "" {
		return Holiday{}, false
	}
	return c.Holidays[0], true
}

// Catalog is the full reference collection loaded from the data file.
type Catalog struct {
	Countries []*Country `json:"countries"`
	Regions   []string   `json:"regions"`
}

// FindByID returns the country with the given id.
func (c *Catalog) FindByID(id string) (*Country, bool) {
	for _, country := range c.Countries {
		if country.ID == id {
			return country, true
		}
	}
	return nil, false
}
