//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

const fakeAPIKey = "e2e-key"

type fakeCity struct {
	Name    string
	Region  string
	Country string
	TempC   float64
	Text    string
}

var fakeCities = []fakeCity{
	{Name: "Kayseri", Region: "Kayseri", Country: "Turkey", TempC: 14, Text: "Partly cloudy"},
	{Name: "London", Region: "City of London, Greater London", Country: "United Kingdom", TempC: 9, Text: "Light rain"},
	{Name: "Londonderry", Region: "Derry", Country: "United Kingdom", TempC: 7, Text: "Overcast"},
}

// FakeWeatherAPI serves the search and forecast endpoints from fakeCities
type FakeWeatherAPI struct {
	server *httptest.Server

	mu       sync.Mutex
	searches []string
	fetches  []string
}

// NewFakeWeatherAPI starts the fake API on a loopback port
func NewFakeWeatherAPI() *FakeWeatherAPI {
	f := &FakeWeatherAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("/search.json", f.handleSearch)
	mux.HandleFunc("/forecast.json", f.handleForecast)
	f.server = httptest.NewServer(mux)
	return f
}

// URL is the base URL to pass as --api-url
func (f *FakeWeatherAPI) URL() string {
	return f.server.URL
}

// Close stops the server
func (f *FakeWeatherAPI) Close() {
	f.server.Close()
}

// Searches returns the queries received so far
func (f *FakeWeatherAPI) Searches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.searches...)
}

// Fetches returns the forecast locations received so far
func (f *FakeWeatherAPI) Fetches() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.fetches...)
}

func (f *FakeWeatherAPI) authorized(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("key") == fakeAPIKey {
		return true
	}
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": 2006, "message": "API key is invalid."},
	})
	return false
}

func (f *FakeWeatherAPI) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(w, r) {
		return
	}
	q := r.URL.Query().Get("q")
	f.mu.Lock()
	f.searches = append(f.searches, q)
	f.mu.Unlock()

	results := []map[string]any{}
	for i, c := range fakeCities {
		if strings.HasPrefix(strings.ToLower(c.Name), strings.ToLower(q)) {
			results = append(results, map[string]any{
				"id":      i + 1,
				"name":    c.Name,
				"region":  c.Region,
				"country": c.Country,
			})
		}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(results)
}

func (f *FakeWeatherAPI) handleForecast(w http.ResponseWriter, r *http.Request) {
	if !f.authorized(w, r) {
		return
	}
	q := r.URL.Query().Get("q")
	f.mu.Lock()
	f.fetches = append(f.fetches, q)
	f.mu.Unlock()

	var city *fakeCity
	for i := range fakeCities {
		if strings.EqualFold(fakeCities[i].Name, q) {
			city = &fakeCities[i]
		}
	}
	if city == nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 1006, "message": "No matching location found."},
		})
		return
	}

	days := []map[string]any{}
	sunrises := []string{"07:10 AM", "07:11 AM", "07:12 AM"}
	for i, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		days = append(days, map[string]any{
			"date": date,
			"day": map[string]any{
				"avgtemp_c":            city.TempC + float64(i),
				"mintemp_c":            city.TempC - 3,
				"maxtemp_c":            city.TempC + 4,
				"daily_chance_of_rain": 20,
				"condition":            map[string]any{"text": city.Text},
			},
			"astro": map[string]any{"sunrise": sunrises[i], "sunset": "05:00 PM"},
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"location": map[string]any{
			"name":      city.Name,
			"region":    city.Region,
			"country":   city.Country,
			"localtime": "2024-01-01 10:00",
		},
		"current": map[string]any{
			"temp_c":      city.TempC,
			"feelslike_c": city.TempC - 1,
			"wind_kph":    11.2,
			"humidity":    64,
			"is_day":      1,
			"condition":   map[string]any{"text": city.Text},
		},
		"forecast": map[string]any{"forecastday": days},
	})
}
