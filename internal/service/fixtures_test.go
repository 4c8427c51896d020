package service

import (
	"math/rand"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func testCountries() []*entities.Country {
	return []*entities.Country{
		{
			ID: "japan", Name: "Japan", Region: "Asia", Capital: "Tokyo", Language: "Japanese",
			TraditionalFood: []string{"Sushi", "Ramen"},
			Holidays:        []entities.Holiday{{Name: "Golden Week"}},
			Clothing:        entities.Clothing{Traditional: "Kimono"},
		},
		{
			ID: "mexico", Name: "Mexico", Region: "North America", Capital: "Mexico City", Language: "Spanish",
			TraditionalFood: []string{"Tacos"},
			Holidays:        []entities.Holiday{{Name: "Día de los Muertos"}},
			Clothing:        entities.Clothing{Traditional: "Sombrero"},
		},
		{
			ID: "france", Name: "France", Region: "Europe", Capital: "Paris", Language: "French",
			TraditionalFood: []string{"Croissant"},
			Holidays:        []entities.Holiday{{Name: "Bastille Day"}},
			Clothing:        entities.Clothing{Traditional: "Beret"},
		},
		{
			ID: "kenya", Name: "Kenya", Region: "Africa", Capital: "Nairobi", Language: "Swahili",
			TraditionalFood: []string{"Ugali"},
			Holidays:        []entities.Holiday{{Name: "Jamhuri Day"}},
			Clothing:        entities.Clothing{Traditional: "Kanga"},
		},
	}
}

func testCatalog() *entities.Catalog {
	return &entities.Catalog{
		Countries: testCountries(),
		Regions:   []string{"Africa", "Asia", "Europe", "North America"},
	}
}

// capitalsOnly returns two countries that only yield capital questions.
func capitalsOnly() *entities.Catalog {
	return &entities.Catalog{
		Countries: []*entities.Country{
			{ID: "a", Name: "Aland", Capital: "Alpha"},
			{ID: "b", Name: "Boland", Capital: "Beta"},
		},
	}
}
