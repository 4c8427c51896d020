package service

import (
	"strings"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
)

// FeaturedCount is the number of countries shown when nothing is searched.
const FeaturedCount = 3

// RegionAll disables region filtering.
const RegionAll = "all"

// CountryService implements catalog browsing: lookup, search and region filters.
type CountryService struct {
	catalog CatalogProvider
	rng     Rand
}

// NewCountryService creates a new CountryService.
func NewCountryService(catalog CatalogProvider, rng Rand) *CountryService {
	return &CountryService{catalog: catalog, rng: NewLockedRand(rng)}
}

// CatalogStats summarizes a list of countries.
type CatalogStats struct {
	Countries int `json:"countries"`
	Regions   int `json:"regions"`
	Languages int `json:"languages"`
}

// Get returns the country with the given id.
func (s *CountryService) Get(id string) (*entities.Country, error) {
	c, err := s.catalog.Catalog()
	if err != nil {
		return nil, err
	}

	country, ok := c.FindByID(id)
	if !ok {
		return nil, repository.ErrCountryNotFound
	}
	return country, nil
}

// All returns every country in catalog order.
func (s *CountryService) All() ([]*entities.Country, error) {
	c, err := s.catalog.Catalog()
	if err != nil {
		return nil, err
	}
	return c.Countries, nil
}

// Regions returns the catalog region list.
func (s *CountryService) Regions() ([]string, error) {
	c, err := s.catalog.Catalog()
	if err != nil {
		return nil, err
	}
	return c.Regions, nil
}

// Featured returns the first n countries.
func (s *CountryService) Featured(n int) ([]*entities.Country, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	if n < len(all) {
		return all[:n], nil
	}
	return all, nil
}

// Random returns a random country.
func (s *CountryService) Random() (*entities.Country, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, repository.ErrCountryNotFound
	}
	return all[s.rng.Intn(len(all))], nil
}

// Search matches query case-insensitively against name, region and language.
// An empty query returns the featured countries.
func (s *CountryService) Search(query string) ([]*entities.Country, error) {
	if strings.TrimSpace(query) == "" {
		return s.Featured(FeaturedCount)
	}
	return s.Browse(query, RegionAll)
}

// FilterByRegion returns countries of region; "all" or empty returns everything.
func (s *CountryService) FilterByRegion(region string) ([]*entities.Country, error) {
	return s.Browse("", region)
}

// Browse applies the search query and the region filter together.
func (s *CountryService) Browse(query, region string) ([]*entities.Country, error) {
	all, err := s.All()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]*entities.Country, 0, len(all))
	for _, c := range all {
		if matchesQuery(c, q) && matchesRegion(c, region) {
			out = append(out, c)
		}
	}
	return out, nil
}

func matchesQuery(c *entities.Country, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Region), q) ||
		strings.Contains(strings.ToLower(c.Language), q)
}

func matchesRegion(c *entities.Country, region string) bool {
	return region == "" || region == RegionAll || c.Region == region
}

// Stats counts countries, distinct regions and distinct languages.
func Stats(countries []*entities.Country) CatalogStats {
	regions := make(map[string]struct{})
	languages := make(map[string]struct{})
	for _, c := range countries {
		regions[c.Region] = struct{}{}
		languages[c.Language] = struct{}{}
	}
	return CatalogStats{
		Countries: len(countries),
		Regions:   len(regions),
		Languages: len(languages),
	}
}
