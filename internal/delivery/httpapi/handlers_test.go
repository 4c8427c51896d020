package httpapi

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/cultural-explorer-bot/internal/domain/entities"
	"github.com/aliskhannn/cultural-explorer-bot/internal/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
)

func newTestRouter(t *testing.T, catalog *entities.Catalog) http.Handler {
	t.Helper()

	repo := repository.NewCountryRepository("")
	if catalog != nil {
		repo.Set(catalog)
	}

	countries := service.NewCountryService(repo, rand.New(rand.NewSource(1)))
	return NewHandler(countries, zap.NewNop()).Routes([]string{"http://localhost:5173"})
}

func testCatalog() *entities.Catalog {
	return &entities.Catalog{
		Countries: []*entities.Country{
			{ID: "japan", Name: "Japan", Region: "Asia", Language: "Japanese"},
			{ID: "india", Name: "India", Region: "Asia", Language: "Hindi"},
			{ID: "france", Name: "France", Region: "Europe", Language: "French"},
		},
		Regions: []string{"Asia", "Europe"},
	}
}

func doGet(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doGet(t, newTestRouter(t, nil), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestCatalogNotReady(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, target := range []string{"/api/countries", "/api/countries/japan", "/api/regions", "/api/stats", "/api/random"} {
		t.Run(target, func(t *testing.T) {
			rec := doGet(t, h, target)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.JSONEq(t, `{"error":"catalog not ready"}`, rec.Body.String())
		})
	}
}

func TestListCountries(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		wantIDs []string
	}{
		{name: "all", target: "/api/countries", wantIDs: []string{"japan", "india", "france"}},
		{name: "query by language", target: "/api/countries?q=hin", wantIDs: []string{"india"}},
		{name: "region", target: "/api/countries?region=Asia", wantIDs: []string{"japan", "india"}},
		{name: "region all", target: "/api/countries?region=all", wantIDs: []string{"japan", "india", "france"}},
		{name: "query and region", target: "/api/countries?q=a&region=Europe", wantIDs: []string{"france"}},
		{name: "no match", target: "/api/countries?q=zzz", wantIDs: []string{}},
	}

	h := newTestRouter(t, testCatalog())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, h, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp countriesResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			ids := make([]string, 0, len(resp.Countries))
			for _, c := range resp.Countries {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, len(tt.wantIDs), resp.Stats.Countries)
		})
	}
}

func TestGetCountry(t *testing.T) {
	h := newTestRouter(t, testCatalog())

	rec := doGet(t, h, "/api/countries/france")
	require.Equal(t, http.StatusOK, rec.Code)

	var c entities.Country
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "France", c.Name)

	rec = doGet(t, h, "/api/countries/atlantis")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"country not found"}`, rec.Body.String())
}

func TestStatsAndRegions(t *testing.T) {
	h := newTestRouter(t, testCatalog())

	rec := doGet(t, h, "/api/stats")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"countries":3,"regions":2,"languages":3}`, rec.Body.String())

	rec = doGet(t, h, "/api/regions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"regions":["Asia","Europe"]}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(t, testCatalog())

	req := httptest.NewRequest(http.MethodOptions, "/api/countries", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
