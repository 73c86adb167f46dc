package domain

import (
	"errors"
	"time"
)

const (
	// MinQueryLength is the shortest query that may reach the location lookup
	MinQueryLength = 3
	// ForecastDays is the number of days requested by the screen
	ForecastDays = 7
	// DefaultLocation is fetched once when the screen starts
	DefaultLocation = "Kayseri"
)

// LocationCandidate is one match returned by a location search
type LocationCandidate struct {
	ID      int64
	Name    string
	Region  string
	Country string
	Lat     float64
	Lon     float64
	URL     string
}

// Label returns the text shown in the search panel
func (c LocationCandidate) Label() string {
	return c.Name + ", " + c.Country
}

// ForecastRequest names the location and number of days to fetch
type ForecastRequest struct {
	LocationName string
	Days         int
}

// NewForecastRequest builds the request the screen uses for a location
func NewForecastRequest(locationName string) ForecastRequest {
	return ForecastRequest{LocationName: locationName, Days: ForecastDays}
}

// Validate checks the request preconditions
func (r ForecastRequest) Validate() error {
	if r.LocationName == "" {
		return errors.New("location name is empty")
	}
	if r.Days < 1 {
		return errors.New("day count must be at least 1")
	}
	return nil
}

// Location is the resolved place a snapshot belongs to
type Location struct {
	Name      string
	Region    string
	Country   string
	LocalTime string
}

// CurrentConditions holds the observed weather right now
type CurrentConditions struct {
	TemperatureC    float64
	FeelsLikeC      float64
	ConditionText   string
	WindKph         float64
	HumidityPercent int
	IsDay           bool
}

// ForecastDay is one entry of the daily forecast
type ForecastDay struct {
	Date            string // YYYY-MM-DD
	AvgTemperatureC float64
	MinTemperatureC float64
	MaxTemperatureC float64
	ConditionText   string
	ChanceOfRain    int
	Sunrise         string
	Sunset          string
}

// Weekday returns the short weekday name for the date, or the raw date if it cannot be parsed
func (d ForecastDay) Weekday() string {
	t, err := time.Parse("2006-01-02", d.Date)
	if err != nil {
		return d.Date
	}
	return t.Format("Mon")
}

// WeatherSnapshot is the complete current and forecast payload for one location.
// A snapshot is always replaced as a whole, never patched.
type WeatherSnapshot struct {
	Location  Location
	Current   CurrentConditions
	Days      []ForecastDay
	FetchedAt time.Time
}

// Sunrise returns today's sunrise time if the forecast has one
func (s *WeatherSnapshot) Sunrise() string {
	if s == nil || len(s.Days) == 0 {
		return ""
	}
	return s.Days[0].Sunrise
}
