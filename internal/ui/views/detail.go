package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"skycast/internal/domain"
)

// RenderForecastDetail renders the full forecast as a table for the pager
func RenderForecastDetail(snap *domain.WeatherSnapshot) string {
	if snap == nil {
		return "No forecast loaded.\n"
	}

	var b strings.Builder
	loc := snap.Location
	title := loc.Name
	if loc.Region != "" {
		title += ", " + loc.Region
	}
	if loc.Country != "" {
		title += ", " + loc.Country
	}
	fmt.Fprintf(&b, "%s\n", title)
	if loc.LocalTime != "" {
		fmt.Fprintf(&b, "Local time: %s\n", loc.LocalTime)
	}

	cur := snap.Current
	fmt.Fprintf(&b, "\nNow: %.1f°C (feels like %.1f°C), %s\n", cur.TemperatureC, cur.FeelsLikeC, cur.ConditionText)
	fmt.Fprintf(&b, "Wind %.1f km/h, humidity %d%%\n\n", cur.WindKph, cur.HumidityPercent)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Day", "Avg", "Min", "Max", "Rain", "Sunrise", "Sunset", "Condition")
	for _, d := range snap.Days {
		t.Row(
			d.Date,
			d.Weekday(),
			fmt.Sprintf("%.1f°", d.AvgTemperatureC),
			fmt.Sprintf("%.1f°", d.MinTemperatureC),
			fmt.Sprintf("%.1f°", d.MaxTemperatureC),
			fmt.Sprintf("%d%%", d.ChanceOfRain),
			d.Sunrise,
			d.Sunset,
			d.ConditionText,
		)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if !snap.FetchedAt.IsZero() {
		fmt.Fprintf(&b, "\nFetched %s\n", snap.FetchedAt.Format("2006-01-02 15:04:05"))
	}
	return b.String()
}
