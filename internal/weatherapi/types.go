package weatherapi

import (
	"time"

	"skycast/internal/domain"
)

// searchEntry is one element of the /search.json array
type searchEntry struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Region  string  `json:"region"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	URL     string  `json:"url"`
}

type condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// forecastResponse mirrors the subset of /forecast.json the screen uses
type forecastResponse struct {
	Location struct {
		Name      string `json:"name"`
		Region    string `json:"region"`
		Country   string `json:"country"`
		LocalTime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC      float64   `json:"temp_c"`
		FeelsLikeC float64   `json:"feelslike_c"`
		WindKph    float64   `json:"wind_kph"`
		Humidity   int       `json:"humidity"`
		IsDay      int       `json:"is_day"`
		Condition  condition `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC          float64   `json:"avgtemp_c"`
				MinTempC          float64   `json:"mintemp_c"`
				MaxTempC          float64   `json:"maxtemp_c"`
				DailyChanceOfRain int       `json:"daily_chance_of_rain"`
				Condition         condition `json:"condition"`
			} `json:"day"`
			Astro struct {
				Sunrise string `json:"sunrise"`
				Sunset  string `json:"sunset"`
			} `json:"astro"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// errorResponse is the body weatherapi.com sends on failure
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (e searchEntry) toDomain() domain.LocationCandidate {
	return domain.LocationCandidate{
		ID:      e.ID,
		Name:    e.Name,
		Region:  e.Region,
		Country: e.Country,
		Lat:     e.Lat,
		Lon:     e.Lon,
		URL:     e.URL,
	}
}

func (r *forecastResponse) toDomain(fetchedAt time.Time) *domain.WeatherSnapshot {
	snap := &domain.WeatherSnapshot{
		Location: domain.Location{
			Name:      r.Location.Name,
			Region:    r.Location.Region,
			Country:   r.Location.Country,
			LocalTime: r.Location.LocalTime,
		},
		Current: domain.CurrentConditions{
			TemperatureC:    r.Current.TempC,
			FeelsLikeC:      r.Current.FeelsLikeC,
			ConditionText:   r.Current.Condition.Text,
			WindKph:         r.Current.WindKph,
			HumidityPercent: r.Current.Humidity,
			IsDay:           r.Current.IsDay == 1,
		},
		Days:      make([]domain.ForecastDay, 0, len(r.Forecast.ForecastDay)),
		FetchedAt: fetchedAt,
	}
	for _, fd := range r.Forecast.ForecastDay {
		snap.Days = append(snap.Days, domain.ForecastDay{
			Date:            fd.Date,
			AvgTemperatureC: fd.Day.AvgTempC,
			MinTemperatureC: fd.Day.MinTempC,
			MaxTemperatureC: fd.Day.MaxTempC,
			ConditionText:   fd.Day.Condition.Text,
			ChanceOfRain:    fd.Day.DailyChanceOfRain,
			Sunrise:         fd.Astro.Sunrise,
			Sunset:          fd.Astro.Sunset,
		})
	}
	return snap
}
