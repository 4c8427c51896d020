package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync/atomic"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

var (
	ErrCatalogNotReady = errors.New("catalog is not loaded yet")
	ErrCountryNotFound = errors.New("country not found")
	ErrEmptyCatalog    = errors.New("catalog has no countries")
)

// CountryRepository provides access to the cultural catalog loaded from a JSON file.
// Load can be called repeatedly; readers always see a complete catalog.
type CountryRepository struct {
	path    string
	catalog atomic.Pointer[entities.Catalog]
}

// NewCountryRepository creates a repository for the JSON file at path.
// Nothing is read until Load is called.
func NewCountryRepository(path string) *CountryRepository {
	return &CountryRepository{path: path}
}

// Load reads and publishes the catalog. On failure the previously
// published catalog, if any, stays in place.
func (r *CountryRepository) Load(_ context.Context) error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return err
	}

	r.catalog.Store(catalog)
	return nil
}

// Set publishes an already parsed catalog.
func (r *CountryRepository) Set(catalog *entities.Catalog) {
	r.catalog.Store(catalog)
}

// Loaded reports whether a catalog has been published.
func (r *CountryRepository) Loaded() bool {
	return r.catalog.Load() != nil
}

// Catalog returns the published catalog or ErrCatalogNotReady.
func (r *CountryRepository) Catalog() (*entities.Catalog, error) {
	c := r.catalog.Load()
	if c == nil {
		return nil, ErrCatalogNotReady
	}
	return c, nil
}

// GetByID returns the country with the given id.
func (r *CountryRepository) GetByID(id string) (*entities.Country, error) {
	c, err := r.Catalog()
	if err != nil {
		return nil, err
	}

	country, ok := c.FindByID(id)
	if !ok {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

// GetAll returns every country in catalog order.
func (r *CountryRepository) GetAll() ([]*entities.Country, error) {
	c, err := r.Catalog()
	if err != nil {
		return nil, err
	}
	return c.Countries, nil
}

// ParseCatalog decodes a catalog document and derives missing regions.
func ParseCatalog(data []byte) (*entities.Catalog, error) {
	var catalog entities.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog JSON: %w", err)
	}

	countries := make([]*entities.Country, 0, len(catalog.Countries))
	seen := make(map[string]struct{}, len(catalog.Countries))
	for _, c := range catalog.Countries {
		if c == nil || c.ID == "" {
			continue
		}
		if _, dup := seen[c.ID]; dup {
			return nil, fmt.Errorf("duplicate country id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		countries = append(countries, c)
	}
	if len(countries) == 0 {
		return nil, ErrEmptyCatalog
	}
	catalog.Countries = countries

	if len(catalog.Regions) == 0 {
		catalog.Regions = deriveRegions(countries)
	}

	return &catalog, nil
}

func deriveRegions(countries []*entities.Country) []string {
	regions := make([]string, 0)
	for _, c := range countries {
		if c.Region != "" && !slices.Contains(regions, c.Region) {
			regions = append(regions, c.Region)
		}
	}
	slices.Sort(regions)
	return regions
}
