package ui

import (
	"skycast/internal/domain"
)

// searchResultMsg carries the outcome of a location search
type searchResultMsg struct {
	query      string
	candidates []domain.LocationCandidate
	err        error
}

// forecastResultMsg carries the outcome of a forecast fetch
type forecastResultMsg struct {
	request  domain.ForecastRequest
	snapshot *domain.WeatherSnapshot
	err      error
}

// clearStatusMsg clears the status bar if no newer message replaced it
type clearStatusMsg struct {
	seq int
}

// pagerClosedMsg is sent when the forecast pager exits
type pagerClosedMsg struct {
	err error
}
