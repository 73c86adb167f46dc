package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"skycast/internal/domain"
)

// maxPanelRows limits how many candidates are listed at once
const maxPanelRows = 8

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	SearchInput   string // rendered text input
	InputFocused  bool
	Candidates    []domain.LocationCandidate
	PanelVisible  bool
	SelectedIndex int
	Snapshot      *domain.WeatherSnapshot
	Loading       bool
	Spinner       string
	StatusMessage string
	StatusIsError bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	sections := []string{
		r.renderTitle(state),
		r.renderSearch(state),
	}

	if state.PanelVisible {
		sections = append(sections, r.renderCandidates(state))
	}

	sections = append(sections, r.renderWeather(state))

	if status := r.renderStatus(state); status != "" {
		sections = append(sections, status)
	}
	if state.HelpView != "" {
		sections = append(sections, r.styles.Help.Render(state.HelpView))
	}

	return r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("skycast")
	if !state.Loading {
		return logo
	}

	indicator := r.styles.StatusLoading.Render(strings.TrimSpace(state.Spinner + " Loading forecast"))
	width := r.contentWidth(state)
	gap := width - lipgloss.Width(logo) - lipgloss.Width(indicator)
	if gap < 2 {
		gap = 2
	}
	return logo + strings.Repeat(" ", gap) + indicator
}

func (r *Renderer) renderSearch(state ViewState) string {
	style := r.styles.SearchBox
	if state.InputFocused {
		style = r.styles.SearchFocused
	}
	width := r.contentWidth(state) - 4
	if width < 20 {
		width = 20
	}
	return style.Width(width).Render(state.SearchInput)
}

func (r *Renderer) renderCandidates(state ViewState) string {
	start := 0
	if state.SelectedIndex >= maxPanelRows {
		start = state.SelectedIndex - maxPanelRows + 1
	}
	end := start + maxPanelRows
	if end > len(state.Candidates) {
		end = len(state.Candidates)
	}

	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		c := state.Candidates[i]
		line := "📍 " + c.Label()
		if i == state.SelectedIndex {
			line = r.styles.Selected.Render(line)
		} else {
			line = r.styles.Candidate.Render(line)
		}
		if c.Region != "" {
			line += "  " + r.styles.Region.Render(c.Region)
		}
		rows = append(rows, line)
	}
	if len(state.Candidates) > maxPanelRows {
		rows = append(rows, r.styles.Dim.Render(fmt.Sprintf("%d of %d", state.SelectedIndex+1, len(state.Candidates))))
	}
	return r.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (r *Renderer) renderWeather(state ViewState) string {
	snap := state.Snapshot
	if snap == nil {
		if state.Loading {
			return r.styles.Dim.Render("\nFetching weather...")
		}
		return r.styles.Dim.Render("\nNo weather data yet. Search for a city to begin.")
	}

	header := r.styles.Location.Render(snap.Location.Name+",") + " " + r.styles.Country.Render(snap.Location.Country)

	cur := snap.Current
	temp := r.styles.Temperature.
		Foreground(lipgloss.Color(TemperatureColor(cur.TemperatureC))).
		Render(fmt.Sprintf("%s  %.0f°", ConditionIcon(cur.ConditionText), cur.TemperatureC))
	condition := r.styles.Condition.Render(cur.ConditionText)

	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Stat.Render(fmt.Sprintf("💨 %.0fkm", cur.WindKph)),
		r.styles.Stat.Render(fmt.Sprintf("💧 %d%%", cur.HumidityPercent)),
		r.styles.Stat.Render("🌅 "+sunriseOrDash(snap.Sunrise())),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		header,
		"",
		temp,
		condition,
		"",
		stats,
		r.styles.Section.Render("📅 Daily Forecast"),
		r.renderDays(state),
	)
}

func (r *Renderer) renderDays(state ViewState) string {
	days := state.Snapshot.Days
	if len(days) == 0 {
		return r.styles.Dim.Render("No forecast available")
	}

	cardWidth := lipgloss.Width(r.styles.DayCard.Render(""))
	perRow := len(days)
	if width := r.contentWidth(state); width > 0 && cardWidth > 0 {
		if fit := width / cardWidth; fit > 0 && fit < perRow {
			perRow = fit
		}
	}

	var rows []string
	for start := 0; start < len(days); start += perRow {
		end := start + perRow
		if end > len(days) {
			end = len(days)
		}
		cards := make([]string, 0, end-start)
		for _, d := range days[start:end] {
			cards = append(cards, r.styles.DayCard.Render(lipgloss.JoinVertical(lipgloss.Center,
				ConditionIcon(d.ConditionText),
				r.styles.DayLabel.Render(d.Weekday()),
				r.styles.DayTemp.Render(fmt.Sprintf("%.0f°", d.AvgTemperatureC)),
			)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.StatusMessage == "" {
		return ""
	}
	if state.StatusIsError {
		return "\n" + r.styles.StatusError.Render(state.StatusMessage)
	}
	return "\n" + r.styles.Status.Render(state.StatusMessage)
}

// contentWidth is the usable width inside the main padding
func (r *Renderer) contentWidth(state ViewState) int {
	w := state.Width - r.styles.Main.GetHorizontalFrameSize()
	if w < 0 {
		return 0
	}
	return w
}

func sunriseOrDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
